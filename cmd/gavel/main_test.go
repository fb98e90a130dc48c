package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gavel/internal/testsupport"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTestConfig(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	sourceDir := filepath.Join(root, "sources")
	members := []string{"Alice Adams", "Bob Brown"}
	header := testsupport.Header(members...)
	testsupport.WriteCSV(t, filepath.Join(sourceDir, "LAUSD-2024-Votes.csv"), header, [][]string{
		testsupport.Row(members, map[string]string{
			"event_id": "E1", "event_date": "2024-01-09", "agenda_sequence": "1",
			"title": "Adopt Annual Budget", "passed": "1", "action": "Adopted",
		}, map[string]string{"Alice Adams": "Yes", "Bob Brown": "No"}),
	})

	content := fmt.Sprintf(`[paths]
source_dir = %q
output_dir = %q
log_dir = %q
`, sourceDir, filepath.Join(root, "output"), filepath.Join(root, "logs"))
	path := filepath.Join(root, "gavel.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestCheckCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)
	out, err := executeCommand(t, "--config", cfgPath, "check")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "All integrity checks passed") {
		t.Errorf("output missing pass marker:\n%s", out)
	}
	if !strings.Contains(out, "Votes: 1") {
		t.Errorf("output missing vote count:\n%s", out)
	}
}

func TestRunCommandPublishes(t *testing.T) {
	cfgPath := writeTestConfig(t)
	out, err := executeCommand(t, "--config", cfgPath, "run")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Published") {
		t.Errorf("output missing publish summary:\n%s", out)
	}
	outputDir := filepath.Join(filepath.Dir(cfgPath), "output")
	if _, err := os.Stat(filepath.Join(outputDir, "stats.json")); err != nil {
		t.Errorf("missing stats.json: %v", err)
	}
}

func TestRosterCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)
	out, err := executeCommand(t, "--config", cfgPath, "roster")
	if err != nil {
		t.Fatalf("roster failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Alice Adams") || !strings.Contains(out, "Bob Brown") {
		t.Errorf("roster output missing members:\n%s", out)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := executeCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := executeCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init without --overwrite should fail")
	}
	if _, err := executeCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite failed: %v", err)
	}
}

func TestConfigShowCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)
	out, err := executeCommand(t, "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "source_dir") {
		t.Errorf("config show missing paths section:\n%s", out)
	}
}

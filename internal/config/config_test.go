package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("exists should be false for a missing file")
	}
	if cfg.Pipeline.AlignmentMinShared != defaultAlignmentMinShared {
		t.Errorf("AlignmentMinShared = %d, want %d", cfg.Pipeline.AlignmentMinShared, defaultAlignmentMinShared)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadParsesAndExpands(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gavel.toml")
	content := `
[paths]
source_dir = "` + filepath.Join(dir, "csv") + `"
output_dir = "` + filepath.Join(dir, "data") + `"

[pipeline]
alignment_min_shared = 5

[logging]
level = "WARN"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("exists should be true")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Pipeline.AlignmentMinShared != 5 {
		t.Errorf("AlignmentMinShared = %d, want 5", cfg.Pipeline.AlignmentMinShared)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (lowercased)", cfg.Logging.Level)
	}
	if !filepath.IsAbs(cfg.Paths.SourceDir) {
		t.Errorf("SourceDir not absolute: %q", cfg.Paths.SourceDir)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero threshold", func(c *Config) { c.Pipeline.AlignmentMinShared = 0 }, "alignment_min_shared"},
		{"negative margin", func(c *Config) { c.Pipeline.CloseVoteMargin = -1 }, "close_vote_margin"},
		{"zero topics", func(c *Config) { c.Pipeline.MaxTopics = 0 }, "max_topics"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.normalizeLogging()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[pipeline]") {
		t.Error("sample config missing [pipeline] section")
	}

	// The sample must itself load cleanly.
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// VoteColumns is the reserved-column subset most fixtures need, in the
// order the upstream exports emit them. Member name columns append after.
var VoteColumns = []string{
	"event_id", "event_date", "event_time", "event_item_id",
	"agenda_number", "agenda_sequence", "title", "action", "passed",
	"consent", "tally", "roll_call_flag",
	"agenda_link", "minutes_link", "video_link", "Agenda_item_fulltext",
}

// Header returns VoteColumns followed by the given member columns.
func Header(members ...string) []string {
	header := append([]string(nil), VoteColumns...)
	return append(header, members...)
}

// Row builds a CSV row for Header(members...). Fields holds values for the
// reserved columns by name; votes holds per-member tokens by name. Missing
// entries become empty cells.
func Row(members []string, fields map[string]string, votes map[string]string) []string {
	row := make([]string, 0, len(VoteColumns)+len(members))
	for _, col := range VoteColumns {
		row = append(row, fields[col])
	}
	for _, member := range members {
		row = append(row, votes[member])
	}
	return row
}

// WriteCSV writes a CSV file with the given header and rows, creating
// parent directories as needed.
func WriteCSV(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture directory: %v", err)
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture %s: %v", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		t.Fatalf("write fixture header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("write fixture row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush fixture: %v", err)
	}
}

package meetings

import (
	"testing"

	"gavel/internal/source"
)

func TestAggregateMergesSameDateEvents(t *testing.T) {
	records := []source.RawRecord{
		{EventID: "E1", EventDate: "2024-03-12", AgendaLink: "https://example.org/agenda", Voted: true},
		{EventID: "E2", EventDate: "2024-03-12", VideoLink: "https://example.org/video"},
	}

	all := Aggregate(records, nil)
	if len(all) != 1 {
		t.Fatalf("got %d meetings, want 1 merged meeting", len(all))
	}

	m := all[0]
	if m.EventID != "E1" {
		t.Errorf("EventID = %q, want first group's id", m.EventID)
	}
	if m.AgendaURL != "https://example.org/agenda" {
		t.Errorf("AgendaURL = %q", m.AgendaURL)
	}
	if m.VideoURL != "https://example.org/video" {
		t.Errorf("VideoURL = %q", m.VideoURL)
	}
	if m.AgendaItemCount() != 2 {
		t.Errorf("AgendaItemCount = %d, want 2", m.AgendaItemCount())
	}
	if m.VoteCount() != 1 || m.NonVotedCount() != 1 {
		t.Errorf("counts = %d voted / %d non-voted, want 1/1", m.VoteCount(), m.NonVotedCount())
	}
}

func TestAggregateConservesRecords(t *testing.T) {
	records := []source.RawRecord{
		{EventID: "E1", EventDate: "2024-01-09", EventItemID: "a"},
		{EventID: "E1", EventDate: "2024-01-09", EventItemID: "b"},
		{EventID: "E2", EventDate: "2024-02-13", EventItemID: "c"},
		{EventDate: "2024-02-13", EventItemID: "d"},
		{EventDate: "2024-03-12", EventItemID: "e"},
	}

	all := Aggregate(records, nil)

	seen := make(map[string]int)
	total := 0
	for _, meeting := range all {
		for _, rec := range meeting.Records {
			seen[rec.EventItemID]++
			total++
		}
	}
	if total != len(records) {
		t.Fatalf("aggregation changed record count: %d != %d", total, len(records))
	}
	for _, rec := range records {
		if seen[rec.EventItemID] != 1 {
			t.Errorf("record %q appears %d times, want exactly 1", rec.EventItemID, seen[rec.EventItemID])
		}
	}
}

func TestAggregateOrdersAndNumbersByDate(t *testing.T) {
	records := []source.RawRecord{
		{EventID: "E3", EventDate: "2024-03-12"},
		{EventID: "E1", EventDate: "2024-01-09"},
		{EventID: "E2", EventDate: "2024-02-13"},
	}

	all := Aggregate(records, nil)
	wantDates := []string{"2024-01-09", "2024-02-13", "2024-03-12"}
	for i, meeting := range all {
		if meeting.Date != wantDates[i] {
			t.Errorf("meeting %d date = %q, want %q", i, meeting.Date, wantDates[i])
		}
		if meeting.ID != i+1 {
			t.Errorf("meeting %d id = %d, want %d", i, meeting.ID, i+1)
		}
		if meeting.Type != "regular" {
			t.Errorf("meeting type = %q, want regular", meeting.Type)
		}
	}
}

func TestAggregateLinkPriorityFollowsEncounterOrder(t *testing.T) {
	records := []source.RawRecord{
		{EventID: "E1", EventDate: "2024-01-09", MinutesLink: "first"},
		{EventID: "E1", EventDate: "2024-01-09", MinutesLink: "second"},
		{EventID: "E2", EventDate: "2024-01-09", MinutesLink: "third"},
	}

	all := Aggregate(records, nil)
	if len(all) != 1 {
		t.Fatalf("got %d meetings, want 1", len(all))
	}
	if all[0].MinutesURL != "first" {
		t.Errorf("MinutesURL = %q, want first non-empty in encounter order", all[0].MinutesURL)
	}
}

func TestIndexResolvesEventIDThenDate(t *testing.T) {
	records := []source.RawRecord{
		{EventID: "E1", EventDate: "2024-01-09"},
		{EventID: "E2", EventDate: "2024-01-09"},
		{EventDate: "2024-02-13"},
	}
	all := Aggregate(records, nil)
	idx := NewIndex(all)

	januaryID := all[0].ID
	if got := idx.Resolve("E2", ""); got != januaryID {
		t.Errorf("Resolve by merged event id = %d, want %d", got, januaryID)
	}
	if got := idx.Resolve("", "2024-02-13"); got != all[1].ID {
		t.Errorf("Resolve by date = %d, want %d", got, all[1].ID)
	}
	if got := idx.Resolve("unknown", "2024-01-09"); got != januaryID {
		t.Errorf("Resolve should fall back to date, got %d", got)
	}
	if got := idx.Resolve("unknown", "1999-01-01"); got != 0 {
		t.Errorf("Resolve of unknown keys = %d, want 0", got)
	}
}

package votes

import (
	"reflect"
	"testing"

	"gavel/internal/meetings"
	"gavel/internal/roster"
	"gavel/internal/source"
	"gavel/internal/taxonomy"
)

var testOptions = Options{MaxTopics: 3, FulltextClassifyBytes: 500}

func buildFixture(t *testing.T, records []source.RawRecord) ([]Vote, *roster.Registry) {
	t.Helper()
	tax, err := taxonomy.Default()
	if err != nil {
		t.Fatalf("taxonomy.Default: %v", err)
	}
	registry := roster.Build(records, tax, nil)
	all := meetings.Aggregate(records, nil)
	return Construct(records, meetings.NewIndex(all), registry, tax, testOptions, nil), registry
}

func TestConstructOrdersByDateThenSequence(t *testing.T) {
	records := []source.RawRecord{
		{EventDate: "2024-02-13", AgendaSequence: 1, Title: "B", Voted: true, Passed: "1", Outcome: source.OutcomePass},
		{EventDate: "2024-01-09", AgendaSequence: 2, Title: "A2", Voted: true, Passed: "1", Outcome: source.OutcomePass},
		{EventDate: "2024-01-09", AgendaSequence: 1, Title: "A1", Voted: true, Passed: "1", Outcome: source.OutcomePass},
		{EventDate: "2024-01-09", Title: "Report", Voted: false},
	}

	all, _ := buildFixture(t, records)
	wantTitles := []string{"A1", "A2", "B"}
	if len(all) != len(wantTitles) {
		t.Fatalf("got %d votes, want %d (non-voted records excluded)", len(all), len(wantTitles))
	}
	for i, vote := range all {
		if vote.Title != wantTitles[i] {
			t.Errorf("vote %d title = %q, want %q", i, vote.Title, wantTitles[i])
		}
		if vote.ID != i+1 {
			t.Errorf("vote %d id = %d, want %d", i, vote.ID, i+1)
		}
	}
}

func TestConstructTalliesFromDecodedChoices(t *testing.T) {
	records := []source.RawRecord{
		{
			EventDate: "2024-01-09", Voted: true, Outcome: source.OutcomeFail,
			// Upstream tally disagrees on purpose; it must be ignored.
			Tally: "7-0",
			MemberVotes: map[string]source.Choice{
				"Alice Adams": source.ChoiceAye,
				"Bob Brown":   source.ChoiceNay,
				"Carol Chen":  source.ChoiceNay,
				"Dan Diaz":    source.ChoiceAbstain,
				"Erin Ellis":  source.ChoiceAbsent,
				"Frank Field": source.ChoiceRecusal,
			},
		},
	}

	all, _ := buildFixture(t, records)
	vote := all[0]
	if vote.Ayes != 1 || vote.Noes != 2 || vote.Abstain != 1 || vote.Absent != 1 {
		t.Errorf("tallies = %d/%d/%d/%d, want 1/2/1/1", vote.Ayes, vote.Noes, vote.Abstain, vote.Absent)
	}
	if len(vote.Members) != 6 {
		t.Fatalf("got %d entries, want 6", len(vote.Members))
	}

	// Entries sort by full name, and every category count matches the
	// entries carrying that choice.
	counts := map[source.Choice]int{}
	previous := ""
	for _, entry := range vote.Members {
		if entry.FullName < previous {
			t.Errorf("entries not sorted by name: %q after %q", entry.FullName, previous)
		}
		previous = entry.FullName
		counts[entry.Choice]++
	}
	if counts[source.ChoiceAye] != vote.Ayes || counts[source.ChoiceNay] != vote.Noes ||
		counts[source.ChoiceAbstain] != vote.Abstain || counts[source.ChoiceAbsent] != vote.Absent {
		t.Errorf("tally/entry mismatch: counts=%v vote=%d/%d/%d/%d",
			counts, vote.Ayes, vote.Noes, vote.Abstain, vote.Absent)
	}
}

func TestConstructSectionAndItemNumber(t *testing.T) {
	records := []source.RawRecord{
		{EventDate: "2024-01-09", AgendaSequence: 1, Consent: "1", AgendaNumber: "12a", Voted: true, Outcome: source.OutcomePass},
		{EventDate: "2024-01-09", AgendaSequence: 2, Consent: "0", Voted: true, Outcome: source.OutcomePass},
	}

	all, _ := buildFixture(t, records)
	if all[0].Section != SectionConsent {
		t.Errorf("Section = %q, want CONSENT for consent flag 1", all[0].Section)
	}
	if all[0].ItemNumber != "12a" {
		t.Errorf("ItemNumber = %q, want source agenda number", all[0].ItemNumber)
	}
	if all[1].Section != SectionGeneral {
		t.Errorf("Section = %q, want GENERAL", all[1].Section)
	}
	if all[1].ItemNumber != "2" {
		t.Errorf("ItemNumber = %q, want vote id fallback", all[1].ItemNumber)
	}
}

func TestConstructResolvesMeetingAcrossMergedEvents(t *testing.T) {
	records := []source.RawRecord{
		{EventID: "E1", EventDate: "2024-01-09", Voted: true, Outcome: source.OutcomePass},
		{EventID: "E2", EventDate: "2024-01-09", Voted: true, Outcome: source.OutcomePass},
	}

	all, _ := buildFixture(t, records)
	if all[0].MeetingID == 0 || all[0].MeetingID != all[1].MeetingID {
		t.Errorf("merged events should share a meeting id: %d vs %d", all[0].MeetingID, all[1].MeetingID)
	}
}

func TestConstructTopicFallback(t *testing.T) {
	records := []source.RawRecord{
		{EventDate: "2024-01-09", Title: "Zzyzx", Voted: true, Outcome: source.OutcomePass},
	}
	all, _ := buildFixture(t, records)
	if !reflect.DeepEqual(all[0].Topics, []string{taxonomy.GeneralTopic}) {
		t.Errorf("Topics = %v, want [General]", all[0].Topics)
	}
}

func TestVoteMarginAndUnanimous(t *testing.T) {
	v := Vote{Ayes: 3, Noes: 4}
	if v.Margin() != 1 {
		t.Errorf("Margin = %d, want 1", v.Margin())
	}
	if v.Unanimous() {
		t.Error("vote with noes should not be unanimous")
	}
	u := Vote{Ayes: 7, Absent: 1}
	if !u.Unanimous() {
		t.Error("vote with only ayes and absences is unanimous")
	}
}

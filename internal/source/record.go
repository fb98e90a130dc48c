package source

import "fmt"

// Choice is a canonical decoded vote choice.
type Choice string

const (
	ChoiceAye     Choice = "AYE"
	ChoiceNay     Choice = "NAY"
	ChoiceAbstain Choice = "ABSTAIN"
	ChoiceAbsent  Choice = "ABSENT"
	ChoiceRecusal Choice = "RECUSAL"
)

// Substantive reports whether the choice is an affirmative or negative
// vote, the only choices that count for dissent and alignment.
func (c Choice) Substantive() bool {
	return c == ChoiceAye || c == ChoiceNay
}

// Outcome is the normalized result of a decided agenda item.
type Outcome string

const (
	OutcomePass      Outcome = "PASS"
	OutcomeFail      Outcome = "FAIL"
	OutcomeTabled    Outcome = "TABLED"
	OutcomeWithdrawn Outcome = "WITHDRAWN"
	OutcomeContinued Outcome = "CONTINUED"
	OutcomeRemoved   Outcome = "REMOVED"
	// OutcomeFlag marks an outcome no rule could classify. It is surfaced
	// for manual review and never silently treated as pass or fail.
	OutcomeFlag Outcome = "FLAG"
)

// Decided reports whether the outcome is a definitive pass or fail.
func (o Outcome) Decided() bool {
	return o == OutcomePass || o == OutcomeFail
}

// Tag identifies the extraction batch a record came from. Quarter zero
// means an annual export.
type Tag struct {
	Year    int
	Quarter int
}

// Before orders tags chronologically: by year, then quarter.
func (t Tag) Before(other Tag) bool {
	if t.Year != other.Year {
		return t.Year < other.Year
	}
	return t.Quarter < other.Quarter
}

// String renders "2024" for annual tags and "2020-Q1" for quarterly ones.
func (t Tag) String() string {
	if t.Quarter == 0 {
		return fmt.Sprintf("%d", t.Year)
	}
	return fmt.Sprintf("%d-Q%d", t.Year, t.Quarter)
}

// RawRecord is one normalized agenda-item row. Records are created once by
// the normalizer and never mutated afterwards; downstream components
// consume them by value.
type RawRecord struct {
	EventID        string
	EventDate      string
	EventTime      string
	EventLocation  string
	EventItemID    string
	AgendaNumber   string
	AgendaSequence int
	MatterFile     string
	Title          string
	Action         string
	Passed         string
	Outcome        Outcome
	VoteType       string
	Consent        string
	// Tally is the upstream tally string, preserved as provenance only.
	// Published tallies are always recomputed from MemberVotes.
	Tally       string
	Mover       string
	Seconder    string
	RollCall    string
	AgendaLink  string
	MinutesLink string
	VideoLink   string
	Fulltext    string
	Sponsor     string
	// MemberVotes maps canonical member names to decoded choices. Only
	// recognizable tokens appear; silence means no recorded choice.
	MemberVotes map[string]Choice
	// Voted marks records carrying a decided-status signal: a parsed
	// pass/fail flag, a roll-call flag, or at least one decoded choice.
	Voted  bool
	Source Tag
}

// IsConsent reports whether the record belongs to the consent section.
func (r RawRecord) IsConsent() bool {
	return r.Consent == "1"
}

package votes

import (
	"log/slog"
	"sort"
	"strconv"

	"gavel/internal/logging"
	"gavel/internal/meetings"
	"gavel/internal/roster"
	"gavel/internal/source"
	"gavel/internal/taxonomy"
)

// Section labels for the two agenda tracks.
const (
	SectionConsent = "CONSENT"
	SectionGeneral = "GENERAL"
)

// MemberVoteEntry is one member's recorded choice on one vote.
type MemberVoteEntry struct {
	MemberID int
	FullName string
	Choice   source.Choice
}

// Vote is one decided agenda item.
type Vote struct {
	ID          int
	Outcome     source.Outcome
	Ayes        int
	Noes        int
	Abstain     int
	Absent      int
	ItemNumber  string
	Section     string
	Title       string
	Description string
	MeetingDate string
	MeetingType string
	// MeetingID references the owning meeting; members are referenced by
	// id so later stages never alias meeting or member values.
	MeetingID   int
	Topics      []string
	Members     []MemberVoteEntry
	EventItemID string
}

// Margin is the |ayes - noes| distance used for close-vote detection.
func (v Vote) Margin() int {
	margin := v.Ayes - v.Noes
	if margin < 0 {
		margin = -margin
	}
	return margin
}

// Unanimous reports whether nobody voted no or abstained.
func (v Vote) Unanimous() bool {
	return v.Noes == 0 && v.Abstain == 0
}

// Options bound topic classification.
type Options struct {
	MaxTopics             int
	FulltextClassifyBytes int
}

// Construct builds the ordered vote list from all decided records.
func Construct(records []source.RawRecord, idx *meetings.Index, registry *roster.Registry, tax *taxonomy.Taxonomy, opts Options, logger *slog.Logger) []Vote {
	log := logging.NewComponentLogger(logger, "votes")

	var decided []source.RawRecord
	for _, rec := range records {
		if rec.Voted {
			decided = append(decided, rec)
		}
	}
	sort.SliceStable(decided, func(i, j int) bool {
		if decided[i].EventDate != decided[j].EventDate {
			return decided[i].EventDate < decided[j].EventDate
		}
		return decided[i].AgendaSequence < decided[j].AgendaSequence
	})

	result := make([]Vote, 0, len(decided))
	for i, rec := range decided {
		vote := Vote{
			ID:          i + 1,
			Outcome:     rec.Outcome,
			ItemNumber:  rec.AgendaNumber,
			Section:     SectionGeneral,
			Title:       rec.Title,
			Description: rec.Fulltext,
			MeetingDate: rec.EventDate,
			MeetingType: "regular",
			MeetingID:   idx.Resolve(rec.EventID, rec.EventDate),
			Topics:      tax.Classify(rec.Title, rec.Fulltext, opts.MaxTopics, opts.FulltextClassifyBytes),
			EventItemID: rec.EventItemID,
		}
		if vote.ItemNumber == "" {
			vote.ItemNumber = strconv.Itoa(vote.ID)
		}
		if rec.IsConsent() {
			vote.Section = SectionConsent
		}

		names := make([]string, 0, len(rec.MemberVotes))
		for name := range rec.MemberVotes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			choice := rec.MemberVotes[name]
			switch choice {
			case source.ChoiceAye:
				vote.Ayes++
			case source.ChoiceNay:
				vote.Noes++
			case source.ChoiceAbstain:
				vote.Abstain++
			case source.ChoiceAbsent:
				vote.Absent++
			}
			member, ok := registry.Lookup(name)
			if !ok {
				// Cannot happen when the registry was built from the same
				// record set; kept as a guard for partial reruns.
				continue
			}
			vote.Members = append(vote.Members, MemberVoteEntry{
				MemberID: member.ID,
				FullName: name,
				Choice:   choice,
			})
		}

		result = append(result, vote)
	}

	log.Info("constructed votes", logging.Int("votes", len(result)))

	return result
}

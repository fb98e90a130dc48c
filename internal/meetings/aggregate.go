package meetings

import (
	"log/slog"
	"sort"

	"gavel/internal/logging"
	"gavel/internal/source"
)

// Meeting is one merged calendar session and the records it owns.
type Meeting struct {
	ID         int
	EventID    string
	Date       string
	Type       string
	AgendaURL  string
	MinutesURL string
	VideoURL   string
	Records    []source.RawRecord
}

// AgendaItemCount returns the number of records in the meeting.
func (m Meeting) AgendaItemCount() int { return len(m.Records) }

// VoteCount returns the number of decided items.
func (m Meeting) VoteCount() int {
	count := 0
	for _, rec := range m.Records {
		if rec.Voted {
			count++
		}
	}
	return count
}

// NonVotedCount returns the number of items that never reached a decision.
func (m Meeting) NonVotedCount() int { return len(m.Records) - m.VoteCount() }

type group struct {
	records    []source.RawRecord
	date       string
	eventID    string
	agendaURL  string
	minutesURL string
	videoURL   string
}

func (g *group) absorb(rec source.RawRecord) {
	g.records = append(g.records, rec)
	g.date = rec.EventDate
	g.eventID = rec.EventID
	if g.agendaURL == "" {
		g.agendaURL = rec.AgendaLink
	}
	if g.minutesURL == "" {
		g.minutesURL = rec.MinutesLink
	}
	if g.videoURL == "" {
		g.videoURL = rec.VideoLink
	}
}

// Aggregate builds meetings from the complete record set.
func Aggregate(records []source.RawRecord, logger *slog.Logger) []Meeting {
	log := logging.NewComponentLogger(logger, "meetings")

	// Primary grouping: event id when present, else date. Encounter order
	// is preserved so link priority does not depend on map iteration.
	groupIndex := make(map[string]int)
	var groups []*group
	for _, rec := range records {
		key := rec.EventID
		if key == "" {
			key = rec.EventDate
		}
		i, ok := groupIndex[key]
		if !ok {
			i = len(groups)
			groupIndex[key] = i
			groups = append(groups, &group{})
		}
		groups[i].absorb(rec)
	}

	// Same-date merge, again in encounter order.
	dateIndex := make(map[string]int)
	var merged []*group
	for _, g := range groups {
		i, ok := dateIndex[g.date]
		if !ok {
			i = len(merged)
			dateIndex[g.date] = i
			merged = append(merged, g)
			continue
		}
		target := merged[i]
		target.records = append(target.records, g.records...)
		if target.agendaURL == "" {
			target.agendaURL = g.agendaURL
		}
		if target.minutesURL == "" {
			target.minutesURL = g.minutesURL
		}
		if target.videoURL == "" {
			target.videoURL = g.videoURL
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].date < merged[j].date
	})

	result := make([]Meeting, 0, len(merged))
	for i, g := range merged {
		result = append(result, Meeting{
			ID:         i + 1,
			EventID:    g.eventID,
			Date:       g.date,
			Type:       "regular",
			AgendaURL:  g.agendaURL,
			MinutesURL: g.minutesURL,
			VideoURL:   g.videoURL,
			Records:    g.records,
		})
	}

	log.Info("aggregated meetings",
		logging.Int("meetings", len(result)),
		logging.Int("records", len(records)))

	return result
}

// Index resolves event ids and dates to meeting ids for vote construction.
type Index struct {
	byKey map[string]int
}

// NewIndex registers each meeting under its event id, its date, and every
// event id of its merged records.
func NewIndex(all []Meeting) *Index {
	idx := &Index{byKey: make(map[string]int)}
	for _, meeting := range all {
		if meeting.EventID != "" {
			idx.byKey[meeting.EventID] = meeting.ID
		}
		idx.byKey[meeting.Date] = meeting.ID
		for _, rec := range meeting.Records {
			if rec.EventID != "" {
				idx.byKey[rec.EventID] = meeting.ID
			}
		}
	}
	return idx
}

// Resolve returns the meeting id for an event id or date, preferring the
// event id. Zero means no meeting matched.
func (i *Index) Resolve(eventID, date string) int {
	if eventID != "" {
		if id, ok := i.byKey[eventID]; ok {
			return id
		}
	}
	return i.byKey[date]
}

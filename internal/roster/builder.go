package roster

import (
	"log/slog"
	"sort"
	"strings"

	"gavel/internal/logging"
	"gavel/internal/source"
	"gavel/internal/taxonomy"
)

// Member is one canonical board member.
type Member struct {
	ID        int
	FullName  string
	ShortName string
	Position  string
	// StartDate and EndDate bound observed activity (ISO dates). EndDate
	// is empty while the member is current.
	StartDate string
	EndDate   string
	IsCurrent bool
}

// Registry is the immutable member list plus name and id lookups.
type Registry struct {
	Members []Member
	byName  map[string]int
	byID    map[int]int
}

// Lookup resolves a canonical full name to its member.
func (r *Registry) Lookup(fullName string) (Member, bool) {
	i, ok := r.byName[fullName]
	if !ok {
		return Member{}, false
	}
	return r.Members[i], true
}

// ByID resolves a member id.
func (r *Registry) ByID(id int) (Member, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Member{}, false
	}
	return r.Members[i], true
}

type observation struct {
	first string
	last  string
	tags  map[source.Tag]struct{}
}

// Build derives the registry from the complete record set.
func Build(records []source.RawRecord, tax *taxonomy.Taxonomy, logger *slog.Logger) *Registry {
	log := logging.NewComponentLogger(logger, "roster")

	observed := make(map[string]*observation)
	var latest source.Tag
	haveTag := false
	for _, rec := range records {
		if !haveTag || latest.Before(rec.Source) {
			latest = rec.Source
			haveTag = true
		}
		for name := range rec.MemberVotes {
			obs := observed[name]
			if obs == nil {
				obs = &observation{first: rec.EventDate, last: rec.EventDate, tags: make(map[source.Tag]struct{})}
				observed[name] = obs
			}
			if rec.EventDate < obs.first {
				obs.first = rec.EventDate
			}
			if rec.EventDate > obs.last {
				obs.last = rec.EventDate
			}
			obs.tags[rec.Source] = struct{}{}
		}
	}

	names := make([]string, 0, len(observed))
	for name := range observed {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ki, kj := lastNameKey(names[i]), lastNameKey(names[j])
		if ki != kj {
			return ki < kj
		}
		return names[i] < names[j]
	})

	registry := &Registry{
		Members: make([]Member, 0, len(names)),
		byName:  make(map[string]int, len(names)),
		byID:    make(map[int]int, len(names)),
	}
	for i, name := range names {
		obs := observed[name]
		_, isCurrent := obs.tags[latest]
		member := Member{
			ID:        i + 1,
			FullName:  name,
			ShortName: shortName(name, tax),
			Position:  "Board Member",
			StartDate: obs.first,
			IsCurrent: isCurrent,
		}
		if !isCurrent {
			member.EndDate = obs.last
		}
		registry.Members = append(registry.Members, member)
		registry.byName[name] = i
		registry.byID[member.ID] = i
	}

	log.Info("built member registry",
		logging.Int("members", len(registry.Members)),
		logging.String("latest_batch", latest.String()))

	return registry
}

func lastNameKey(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return fullName
	}
	return parts[len(parts)-1]
}

// shortName derives the display surname: explicit overrides first, then
// generational suffixes kept attached to the preceding token, then the
// plain last token.
func shortName(fullName string, tax *taxonomy.Taxonomy) string {
	if short, ok := tax.ShortNameOverride(fullName); ok {
		return short
	}
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return fullName
	}
	last := parts[len(parts)-1]
	if len(parts) >= 3 && tax.IsGenerationalSuffix(last) {
		return parts[len(parts)-2] + " " + last
	}
	return last
}

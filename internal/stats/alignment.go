package stats

import (
	"log/slog"
	"sort"

	"gavel/internal/logging"
	"gavel/internal/roster"
	"gavel/internal/votes"
)

// Pair is the agreement record for one pair of members.
type Pair struct {
	Member1       string
	Member2       string
	SharedVotes   int
	Agreements    int
	AgreementRate float64
}

// Alignment carries all materialized pairs plus the ranked extremes.
type Alignment struct {
	Members      []string
	Pairs        []Pair
	MostAligned  []Pair
	LeastAligned []Pair
}

// ComputeAlignment walks every member pair in id order and measures how
// often both cast the same substantive choice on the same vote. Pairs
// with fewer than minShared shared votes are dropped.
func ComputeAlignment(registry *roster.Registry, all []votes.Vote, minShared int, logger *slog.Logger) Alignment {
	log := logging.NewComponentLogger(logger, "alignment")

	members := registry.Members
	result := Alignment{Members: make([]string, 0, len(members))}
	for _, m := range members {
		result.Members = append(result.Members, m.ShortName)
	}

	// Per-vote substantive choices keyed by member id, precomputed so the
	// pair loop stays O(pairs * votes).
	choices := make([]map[int]string, len(all))
	for i, vote := range all {
		byID := make(map[int]string, len(vote.Members))
		for _, entry := range vote.Members {
			if entry.Choice.Substantive() {
				byID[entry.MemberID] = string(entry.Choice)
			}
		}
		choices[i] = byID
	}

	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			shared, agreements := 0, 0
			for _, byID := range choices {
				a, okA := byID[members[i].ID]
				b, okB := byID[members[j].ID]
				if !okA || !okB {
					continue
				}
				shared++
				if a == b {
					agreements++
				}
			}
			if shared < minShared {
				continue
			}
			result.Pairs = append(result.Pairs, Pair{
				Member1:       members[i].ShortName,
				Member2:       members[j].ShortName,
				SharedVotes:   shared,
				Agreements:    agreements,
				AgreementRate: round1(float64(agreements) / float64(shared) * 100),
			})
		}
	}

	// Stable sorts keep discovery order for equal rates.
	sort.SliceStable(result.Pairs, func(a, b int) bool {
		return result.Pairs[a].AgreementRate > result.Pairs[b].AgreementRate
	})
	result.MostAligned = topPairs(result.Pairs, false)
	result.LeastAligned = topPairs(result.Pairs, true)

	log.Info("computed alignment",
		logging.Int("members", len(members)),
		logging.Int("pairs", len(result.Pairs)))

	return result
}

func topPairs(pairs []Pair, ascending bool) []Pair {
	ranked := make([]Pair, len(pairs))
	copy(ranked, pairs)
	if ascending {
		sort.SliceStable(ranked, func(a, b int) bool {
			return ranked[a].AgreementRate < ranked[b].AgreementRate
		})
	}
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}

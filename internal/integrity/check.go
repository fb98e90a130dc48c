package integrity

import (
	"fmt"
	"log/slog"

	"gavel/internal/logging"
	"gavel/internal/meetings"
	"gavel/internal/roster"
	"gavel/internal/votes"
)

// Check validates cross-references and id uniqueness over the reduced
// graph and returns one human-readable line per problem found.
func Check(registry *roster.Registry, all []meetings.Meeting, voteList []votes.Vote, logger *slog.Logger) []string {
	log := logging.NewComponentLogger(logger, "integrity")

	var problems []string

	meetingIDs := make(map[int]bool, len(all))
	for _, meeting := range all {
		if meetingIDs[meeting.ID] {
			problems = append(problems, fmt.Sprintf("duplicate meeting id %d", meeting.ID))
		}
		meetingIDs[meeting.ID] = true
	}

	voteIDs := make(map[int]bool, len(voteList))
	for _, vote := range voteList {
		if voteIDs[vote.ID] {
			problems = append(problems, fmt.Sprintf("duplicate vote id %d", vote.ID))
		}
		voteIDs[vote.ID] = true

		if !meetingIDs[vote.MeetingID] {
			problems = append(problems, fmt.Sprintf("vote %d references unknown meeting %d", vote.ID, vote.MeetingID))
		}
		for _, entry := range vote.Members {
			if _, ok := registry.ByID(entry.MemberID); !ok {
				problems = append(problems, fmt.Sprintf("vote %d references unknown member %d (%s)", vote.ID, entry.MemberID, entry.FullName))
			}
		}
	}

	if len(problems) > 0 {
		log.Warn("integrity problems found", logging.Int("problems", len(problems)))
		for _, problem := range problems {
			log.Warn(problem)
		}
	} else {
		log.Info("integrity checks passed",
			logging.Int("meetings", len(all)),
			logging.Int("votes", len(voteList)))
	}

	return problems
}

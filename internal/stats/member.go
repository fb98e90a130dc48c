package stats

import (
	"math"

	"gavel/internal/roster"
	"gavel/internal/source"
	"gavel/internal/votes"
)

// MemberStats summarizes one member's voting behavior.
type MemberStats struct {
	TotalVotes         int
	AyeCount           int
	NayCount           int
	AbstainCount       int
	AbsentCount        int
	RecusalCount       int
	AyePercentage      float64
	ParticipationRate  float64
	DissentRate        float64
	VotesOnLosingSide  int
	VotesOnWinningSide int
	CloseVoteDissents  int
}

// HistoryEntry is one vote in a member's history.
type HistoryEntry struct {
	VoteID      int
	MeetingDate string
	ItemNumber  string
	Title       string
	Choice      source.Choice
	Outcome     source.Outcome
	Topics      []string
	MeetingType string
}

// ComputeMember derives stats and vote history for one member, considering
// only votes that carry an entry for them. closeMargin is the |ayes-noes|
// bound for close-vote dissents.
func ComputeMember(member roster.Member, all []votes.Vote, closeMargin int) (MemberStats, []HistoryEntry) {
	var s MemberStats
	validVotes := 0
	history := make([]HistoryEntry, 0, len(all))

	for _, vote := range all {
		var choice source.Choice
		found := false
		for _, entry := range vote.Members {
			if entry.MemberID == member.ID {
				choice = entry.Choice
				found = true
				break
			}
		}
		if !found {
			continue
		}

		s.TotalVotes++
		switch choice {
		case source.ChoiceAye:
			s.AyeCount++
		case source.ChoiceNay:
			s.NayCount++
		case source.ChoiceAbstain:
			s.AbstainCount++
		case source.ChoiceAbsent:
			s.AbsentCount++
		case source.ChoiceRecusal:
			s.RecusalCount++
		}

		if vote.Outcome.Decided() && choice.Substantive() {
			validVotes++
			dissent := (vote.Outcome == source.OutcomePass && choice == source.ChoiceNay) ||
				(vote.Outcome == source.OutcomeFail && choice == source.ChoiceAye)
			if dissent {
				s.VotesOnLosingSide++
				if vote.Margin() <= closeMargin {
					s.CloseVoteDissents++
				}
			} else {
				s.VotesOnWinningSide++
			}
		}

		history = append(history, HistoryEntry{
			VoteID:      vote.ID,
			MeetingDate: vote.MeetingDate,
			ItemNumber:  vote.ItemNumber,
			Title:       vote.Title,
			Choice:      choice,
			Outcome:     vote.Outcome,
			Topics:      vote.Topics,
			MeetingType: vote.MeetingType,
		})
	}

	if s.TotalVotes > 0 {
		s.AyePercentage = round1(float64(s.AyeCount) / float64(s.TotalVotes) * 100)
		participating := s.TotalVotes - s.AbsentCount - s.AbstainCount
		s.ParticipationRate = round1(float64(participating) / float64(s.TotalVotes) * 100)
	}
	if validVotes > 0 {
		s.DissentRate = round1(float64(s.VotesOnLosingSide) / float64(validVotes) * 100)
	}

	return s, history
}

// round1 rounds to one decimal place, matching the published precision.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

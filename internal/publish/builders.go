package publish

import (
	"math"
	"sort"
	"strconv"

	"gavel/internal/meetings"
	"gavel/internal/roster"
	"gavel/internal/source"
	"gavel/internal/stats"
	"gavel/internal/taxonomy"
	"gavel/internal/votes"
)

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func yearOf(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// availableYears returns the distinct years of the given dates, newest
// first.
func availableYears(dates []string) []int {
	seen := make(map[int]bool)
	years := make([]int, 0)
	for _, date := range dates {
		year, ok := yearOf(date)
		if !ok || seen[year] {
			continue
		}
		seen[year] = true
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func buildStats(registry *roster.Registry, allMeetings []meetings.Meeting, allVotes []votes.Vote) statsDocument {
	passCount, unanimousCount := 0, 0
	dateStart, dateEnd := "", ""
	for _, vote := range allVotes {
		if vote.Outcome == source.OutcomePass {
			passCount++
		}
		if vote.Unanimous() {
			unanimousCount++
		}
		if vote.MeetingDate == "" {
			continue
		}
		if dateStart == "" || vote.MeetingDate < dateStart {
			dateStart = vote.MeetingDate
		}
		if vote.MeetingDate > dateEnd {
			dateEnd = vote.MeetingDate
		}
	}

	totalAgendaItems := 0
	for _, meeting := range allMeetings {
		totalAgendaItems += meeting.AgendaItemCount()
	}

	doc := statsDocument{Success: true, Stats: siteStats{
		TotalMeetings:       len(allMeetings),
		TotalVotes:          len(allVotes),
		TotalCouncilMembers: len(registry.Members),
		TotalAgendaItems:    totalAgendaItems,
		TotalNonVotedItems:  totalAgendaItems - len(allVotes),
		DateRange:           dateRange{Start: dateStart, End: dateEnd},
	}}
	if len(allVotes) > 0 {
		doc.Stats.PassRate = round1(float64(passCount) / float64(len(allVotes)) * 100)
		doc.Stats.UnanimousRate = round1(float64(unanimousCount) / float64(len(allVotes)) * 100)
	}
	return doc
}

func buildMemberStats(s stats.MemberStats) memberStatsDoc {
	return memberStatsDoc{
		TotalVotes:         s.TotalVotes,
		AyeCount:           s.AyeCount,
		NayCount:           s.NayCount,
		AbstainCount:       s.AbstainCount,
		AbsentCount:        s.AbsentCount,
		RecusalCount:       s.RecusalCount,
		AyePercentage:      s.AyePercentage,
		ParticipationRate:  s.ParticipationRate,
		DissentRate:        s.DissentRate,
		VotesOnLosingSide:  s.VotesOnLosingSide,
		VotesOnWinningSide: s.VotesOnWinningSide,
		CloseVoteDissents:  s.CloseVoteDissents,
	}
}

func buildCouncilMember(m roster.Member, s stats.MemberStats) councilMember {
	return councilMember{
		ID:        m.ID,
		FullName:  m.FullName,
		ShortName: m.ShortName,
		Position:  m.Position,
		StartDate: m.StartDate,
		EndDate:   nullableString(m.EndDate),
		IsCurrent: m.IsCurrent,
		Stats:     buildMemberStats(s),
	}
}

func buildCouncil(registry *roster.Registry, memberStats map[int]stats.MemberStats) councilDocument {
	doc := councilDocument{Success: true, Members: make([]councilMember, 0, len(registry.Members))}
	for _, m := range registry.Members {
		doc.Members = append(doc.Members, buildCouncilMember(m, memberStats[m.ID]))
	}
	return doc
}

func buildMemberDetail(m roster.Member, s stats.MemberStats, history []stats.HistoryEntry) memberDetailDocument {
	recent := make([]voteHistoryDoc, 0, len(history))
	for _, entry := range history {
		recent = append(recent, voteHistoryDoc{
			VoteID:      entry.VoteID,
			MeetingDate: entry.MeetingDate,
			ItemNumber:  entry.ItemNumber,
			Title:       entry.Title,
			VoteChoice:  string(entry.Choice),
			Outcome:     string(entry.Outcome),
			Topics:      entry.Topics,
			MeetingType: entry.MeetingType,
		})
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].MeetingDate > recent[j].MeetingDate
	})
	return memberDetailDocument{Success: true, Member: memberDetail{
		councilMember: buildCouncilMember(m, s),
		RecentVotes:   recent,
	}}
}

func buildMeetingSummary(m meetings.Meeting) meetingSummary {
	return meetingSummary{
		ID:              m.ID,
		EventID:         m.EventID,
		MeetingDate:     m.Date,
		MeetingType:     m.Type,
		AgendaURL:       nullableString(m.AgendaURL),
		MinutesURL:      nullableString(m.MinutesURL),
		VideoURL:        nullableString(m.VideoURL),
		AgendaItemCount: m.AgendaItemCount(),
		VoteCount:       m.VoteCount(),
		NonVotedCount:   m.NonVotedCount(),
	}
}

func buildMeetings(allMeetings []meetings.Meeting) meetingsDocument {
	dates := make([]string, 0, len(allMeetings))
	for _, m := range allMeetings {
		dates = append(dates, m.Date)
	}
	years := availableYears(dates)

	list := make([]meetingSummary, 0, len(allMeetings))
	for _, m := range allMeetings {
		list = append(list, buildMeetingSummary(m))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].MeetingDate > list[j].MeetingDate
	})
	return meetingsDocument{Success: true, Meetings: list, AvailableYears: years}
}

func buildMeetingDetail(m meetings.Meeting, allVotes []votes.Vote) meetingDetailDocument {
	meetingVotes := make([]votes.Vote, 0)
	for _, vote := range allVotes {
		if vote.MeetingID == m.ID {
			meetingVotes = append(meetingVotes, vote)
		}
	}

	recs := make([]int, len(m.Records))
	for i := range recs {
		recs[i] = i
	}
	sort.SliceStable(recs, func(a, b int) bool {
		return m.Records[recs[a]].AgendaSequence < m.Records[recs[b]].AgendaSequence
	})

	items := make([]any, 0, len(m.Records))
	for _, ri := range recs {
		rec := m.Records[ri]
		if rec.Voted {
			item := votedAgendaItem{
				AgendaSequence: rec.AgendaSequence,
				ItemType:       "voted",
				ItemNumber:     rec.AgendaNumber,
				Title:          rec.Title,
				Section:        votes.SectionGeneral,
				MatterFile:     nullableString(rec.MatterFile),
				MatterType:     "Resolution",
				Topics:         []string{taxonomy.GeneralTopic},
			}
			if rec.IsConsent() {
				item.Section = votes.SectionConsent
			}
			for _, vote := range meetingVotes {
				if vote.EventItemID == rec.EventItemID {
					item.Topics = vote.Topics
					item.Vote = &agendaVote{
						ID:      vote.ID,
						Outcome: string(rec.Outcome),
						Ayes:    vote.Ayes,
						Noes:    vote.Noes,
						Abstain: vote.Abstain,
						Absent:  vote.Absent,
					}
					break
				}
			}
			items = append(items, item)
		} else {
			items = append(items, nonVotedAgendaItem{
				AgendaSequence: rec.AgendaSequence,
				ItemType:       "non_voted",
				Category:       "other",
				Importance:     "low",
				DisplayType:    "procedural",
				Title:          rec.Title,
				MatterFile:     nullableString(rec.MatterFile),
				Action:         nullableString(rec.Action),
			})
		}
	}

	return meetingDetailDocument{Success: true, Meeting: meetingDetail{
		ID:              m.ID,
		EventID:         m.EventID,
		MeetingDate:     m.Date,
		MeetingType:     m.Type,
		AgendaURL:       nullableString(m.AgendaURL),
		MinutesURL:      nullableString(m.MinutesURL),
		VideoURL:        nullableString(m.VideoURL),
		VoteCount:       m.VoteCount(),
		NonVotedCount:   m.NonVotedCount(),
		AgendaItemCount: m.AgendaItemCount(),
		AgendaItems:     items,
	}}
}

func buildVoteList(allVotes []votes.Vote) votesDocument {
	list := make([]voteSummary, 0, len(allVotes))
	for _, vote := range allVotes {
		list = append(list, voteSummary{
			ID:          vote.ID,
			Outcome:     string(vote.Outcome),
			Ayes:        vote.Ayes,
			Noes:        vote.Noes,
			Abstain:     vote.Abstain,
			Absent:      vote.Absent,
			ItemNumber:  vote.ItemNumber,
			Section:     vote.Section,
			Title:       vote.Title,
			MeetingDate: vote.MeetingDate,
			MeetingType: vote.MeetingType,
			Topics:      vote.Topics,
		})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].MeetingDate > list[j].MeetingDate
	})
	return votesDocument{Success: true, Votes: list}
}

func buildVoteDetail(vote votes.Vote) voteDetailDocument {
	memberVotes := make([]memberVoteDoc, 0, len(vote.Members))
	for _, entry := range vote.Members {
		memberVotes = append(memberVotes, memberVoteDoc{
			MemberID:   entry.MemberID,
			FullName:   entry.FullName,
			VoteChoice: string(entry.Choice),
		})
	}
	var meetingID *int
	if vote.MeetingID != 0 {
		id := vote.MeetingID
		meetingID = &id
	}
	return voteDetailDocument{Success: true, Vote: voteDetail{
		ID:          vote.ID,
		ItemNumber:  vote.ItemNumber,
		Title:       vote.Title,
		Description: vote.Description,
		Outcome:     string(vote.Outcome),
		Ayes:        vote.Ayes,
		Noes:        vote.Noes,
		Abstain:     vote.Abstain,
		Absent:      vote.Absent,
		MeetingID:   meetingID,
		MeetingDate: vote.MeetingDate,
		MeetingType: vote.MeetingType,
		MemberVotes: memberVotes,
		Topics:      vote.Topics,
	}}
}

func buildAlignment(a stats.Alignment) alignmentDocument {
	convert := func(pairs []stats.Pair) []alignmentPair {
		out := make([]alignmentPair, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, alignmentPair{
				Member1:       p.Member1,
				Member2:       p.Member2,
				SharedVotes:   p.SharedVotes,
				Agreements:    p.Agreements,
				AgreementRate: p.AgreementRate,
			})
		}
		return out
	}
	members := a.Members
	if members == nil {
		members = make([]string, 0)
	}
	return alignmentDocument{
		Success:        true,
		Members:        members,
		AlignmentPairs: convert(a.Pairs),
		MostAligned:    convert(a.MostAligned),
		LeastAligned:   convert(a.LeastAligned),
	}
}

func buildAgendaItems(allMeetings []meetings.Meeting, tax *taxonomy.Taxonomy, maxTopics, fulltextBytes, previewBytes int) agendaItemsDocument {
	items := make([]searchAgendaItem, 0)
	for _, meeting := range allMeetings {
		for _, rec := range meeting.Records {
			if rec.Voted || rec.Title == "" {
				continue
			}
			var preview *string
			if rec.Fulltext != "" {
				window := rec.Fulltext
				if len(window) > previewBytes {
					window = window[:previewBytes]
				}
				preview = &window
			}
			topics := tax.Classify(rec.Title, rec.Fulltext, maxTopics, fulltextBytes)
			if len(topics) == 1 && topics[0] == taxonomy.GeneralTopic {
				topics = make([]string, 0)
			}
			items = append(items, searchAgendaItem{
				EventItemID:        nullableString(rec.EventItemID),
				MeetingDate:        rec.EventDate,
				MeetingID:          meeting.ID,
				AgendaSequence:     rec.AgendaSequence,
				Title:              rec.Title,
				MatterFile:         nullableString(rec.MatterFile),
				Action:             nullableString(rec.Action),
				Category:           "other",
				Topics:             topics,
				DescriptionPreview: preview,
			})
		}
	}
	return agendaItemsDocument{Success: true, AgendaItems: items}
}

package publish

// Document shapes. Field declaration order fixes the JSON key order, so
// the order here is part of the published contract.

type statsDocument struct {
	Success bool      `json:"success"`
	Stats   siteStats `json:"stats"`
}

type siteStats struct {
	TotalMeetings       int       `json:"total_meetings"`
	TotalVotes          int       `json:"total_votes"`
	TotalCouncilMembers int       `json:"total_council_members"`
	TotalAgendaItems    int       `json:"total_agenda_items"`
	TotalNonVotedItems  int       `json:"total_non_voted_items"`
	FirstReadings       int       `json:"first_readings"`
	PassRate            float64   `json:"pass_rate"`
	UnanimousRate       float64   `json:"unanimous_rate"`
	DateRange           dateRange `json:"date_range"`
}

type dateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type memberStatsDoc struct {
	TotalVotes         int     `json:"total_votes"`
	AyeCount           int     `json:"aye_count"`
	NayCount           int     `json:"nay_count"`
	AbstainCount       int     `json:"abstain_count"`
	AbsentCount        int     `json:"absent_count"`
	RecusalCount       int     `json:"recusal_count"`
	AyePercentage      float64 `json:"aye_percentage"`
	ParticipationRate  float64 `json:"participation_rate"`
	DissentRate        float64 `json:"dissent_rate"`
	VotesOnLosingSide  int     `json:"votes_on_losing_side"`
	VotesOnWinningSide int     `json:"votes_on_winning_side"`
	CloseVoteDissents  int     `json:"close_vote_dissents"`
}

type councilDocument struct {
	Success bool            `json:"success"`
	Members []councilMember `json:"members"`
}

type councilMember struct {
	ID        int            `json:"id"`
	FullName  string         `json:"full_name"`
	ShortName string         `json:"short_name"`
	Position  string         `json:"position"`
	StartDate string         `json:"start_date"`
	EndDate   *string        `json:"end_date"`
	IsCurrent bool           `json:"is_current"`
	Stats     memberStatsDoc `json:"stats"`
}

type memberDetailDocument struct {
	Success bool         `json:"success"`
	Member  memberDetail `json:"member"`
}

type memberDetail struct {
	councilMember
	RecentVotes []voteHistoryDoc `json:"recent_votes"`
}

type voteHistoryDoc struct {
	VoteID      int      `json:"vote_id"`
	MeetingDate string   `json:"meeting_date"`
	ItemNumber  string   `json:"item_number"`
	Title       string   `json:"title"`
	VoteChoice  string   `json:"vote_choice"`
	Outcome     string   `json:"outcome"`
	Topics      []string `json:"topics"`
	MeetingType string   `json:"meeting_type"`
}

type meetingsDocument struct {
	Success        bool             `json:"success"`
	Meetings       []meetingSummary `json:"meetings"`
	AvailableYears []int            `json:"available_years"`
}

type meetingSummary struct {
	ID                int     `json:"id"`
	EventID           string  `json:"event_id"`
	MeetingDate       string  `json:"meeting_date"`
	MeetingType       string  `json:"meeting_type"`
	LegistarURL       *string `json:"legistar_url"`
	AgendaURL         *string `json:"agenda_url"`
	MinutesURL        *string `json:"minutes_url"`
	VideoURL          *string `json:"video_url"`
	AgendaItemCount   int     `json:"agenda_item_count"`
	VoteCount         int     `json:"vote_count"`
	NonVotedCount     int     `json:"non_voted_count"`
	FirstReadingCount int     `json:"first_reading_count"`
}

type meetingDetailDocument struct {
	Success bool          `json:"success"`
	Meeting meetingDetail `json:"meeting"`
}

type meetingDetail struct {
	ID                int     `json:"id"`
	EventID           string  `json:"event_id"`
	MeetingDate       string  `json:"meeting_date"`
	MeetingType       string  `json:"meeting_type"`
	LegistarURL       *string `json:"legistar_url"`
	AgendaURL         *string `json:"agenda_url"`
	MinutesURL        *string `json:"minutes_url"`
	VideoURL          *string `json:"video_url"`
	VoteCount         int     `json:"vote_count"`
	NonVotedCount     int     `json:"non_voted_count"`
	FirstReadingCount int     `json:"first_reading_count"`
	AgendaItemCount   int     `json:"agenda_item_count"`
	// AgendaItems mixes votedAgendaItem and nonVotedAgendaItem values,
	// which carry different key sets.
	AgendaItems []any `json:"agenda_items"`
}

type votedAgendaItem struct {
	AgendaSequence int         `json:"agenda_sequence"`
	ItemType       string      `json:"item_type"`
	ItemNumber     string      `json:"item_number"`
	Title          string      `json:"title"`
	Section        string      `json:"section"`
	MatterFile     *string     `json:"matter_file"`
	MatterType     string      `json:"matter_type"`
	Topics         []string    `json:"topics"`
	Vote           *agendaVote `json:"vote"`
}

type nonVotedAgendaItem struct {
	AgendaSequence int         `json:"agenda_sequence"`
	ItemType       string      `json:"item_type"`
	Category       string      `json:"category"`
	Importance     string      `json:"importance"`
	DisplayType    string      `json:"display_type"`
	Title          string      `json:"title"`
	MatterFile     *string     `json:"matter_file"`
	MatterType     *string     `json:"matter_type"`
	Action         *string     `json:"action"`
	Description    *string     `json:"description"`
	Topics         []string    `json:"topics"`
	Vote           *agendaVote `json:"vote"`
}

type agendaVote struct {
	ID      int    `json:"id"`
	Outcome string `json:"outcome"`
	Ayes    int    `json:"ayes"`
	Noes    int    `json:"noes"`
	Abstain int    `json:"abstain"`
	Absent  int    `json:"absent"`
}

type votesDocument struct {
	Success bool          `json:"success"`
	Votes   []voteSummary `json:"votes"`
}

type voteSummary struct {
	ID          int      `json:"id"`
	Outcome     string   `json:"outcome"`
	Ayes        int      `json:"ayes"`
	Noes        int      `json:"noes"`
	Abstain     int      `json:"abstain"`
	Absent      int      `json:"absent"`
	ItemNumber  string   `json:"item_number"`
	Section     string   `json:"section"`
	Title       string   `json:"title"`
	MeetingDate string   `json:"meeting_date"`
	MeetingType string   `json:"meeting_type"`
	Topics      []string `json:"topics"`
}

type votesIndexDocument struct {
	Success        bool  `json:"success"`
	AvailableYears []int `json:"available_years"`
}

type voteDetailDocument struct {
	Success bool       `json:"success"`
	Vote    voteDetail `json:"vote"`
}

type voteDetail struct {
	ID          int             `json:"id"`
	ItemNumber  string          `json:"item_number"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Outcome     string          `json:"outcome"`
	Ayes        int             `json:"ayes"`
	Noes        int             `json:"noes"`
	Abstain     int             `json:"abstain"`
	Absent      int             `json:"absent"`
	MeetingID   *int            `json:"meeting_id"`
	MeetingDate string          `json:"meeting_date"`
	MeetingType string          `json:"meeting_type"`
	MemberVotes []memberVoteDoc `json:"member_votes"`
	Topics      []string        `json:"topics"`
}

type memberVoteDoc struct {
	MemberID   int    `json:"member_id"`
	FullName   string `json:"full_name"`
	VoteChoice string `json:"vote_choice"`
}

type alignmentDocument struct {
	Success        bool            `json:"success"`
	Members        []string        `json:"members"`
	AlignmentPairs []alignmentPair `json:"alignment_pairs"`
	MostAligned    []alignmentPair `json:"most_aligned"`
	LeastAligned   []alignmentPair `json:"least_aligned"`
}

type alignmentPair struct {
	Member1       string  `json:"member1"`
	Member2       string  `json:"member2"`
	SharedVotes   int     `json:"shared_votes"`
	Agreements    int     `json:"agreements"`
	AgreementRate float64 `json:"agreement_rate"`
}

type agendaItemsDocument struct {
	Success     bool               `json:"success"`
	AgendaItems []searchAgendaItem `json:"agenda_items"`
}

type searchAgendaItem struct {
	EventItemID        *string  `json:"event_item_id"`
	MeetingDate        string   `json:"meeting_date"`
	MeetingID          int      `json:"meeting_id"`
	AgendaSequence     int      `json:"agenda_sequence"`
	Title              string   `json:"title"`
	MatterFile         *string  `json:"matter_file"`
	MatterType         *string  `json:"matter_type"`
	Action             *string  `json:"action"`
	Category           string   `json:"category"`
	Topics             []string `json:"topics"`
	DescriptionPreview *string  `json:"description_preview"`
}

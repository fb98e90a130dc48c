package publish

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"

	"gavel/internal/logging"
	"gavel/internal/meetings"
	"gavel/internal/roster"
	"gavel/internal/stats"
	"gavel/internal/taxonomy"
	"gavel/internal/votes"
)

// Input is the complete reduced graph handed to the publisher.
type Input struct {
	Registry    *roster.Registry
	Meetings    []meetings.Meeting
	Votes       []votes.Vote
	MemberStats map[int]stats.MemberStats
	Histories   map[int][]stats.HistoryEntry
	Alignment   stats.Alignment
	Taxonomy    *taxonomy.Taxonomy
}

// Options bound topic classification and description previews in the
// published documents.
type Options struct {
	MaxTopics             int
	FulltextClassifyBytes int
	PreviewBytes          int
}

// Publisher writes the document tree into one output directory.
type Publisher struct {
	outputDir string
	opts      Options
	logger    *slog.Logger
}

// New returns a publisher rooted at outputDir.
func New(outputDir string, opts Options, logger *slog.Logger) *Publisher {
	return &Publisher{
		outputDir: outputDir,
		opts:      opts,
		logger:    logging.NewComponentLogger(logger, "publish"),
	}
}

// Publish renders every document and returns the number of files written.
// The whole run holds a file lock so concurrent publishes into the same
// directory fail fast instead of interleaving.
func (p *Publisher) Publish(in Input) (int, error) {
	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(p.outputDir, ".publish.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return 0, fmt.Errorf("acquire publish lock: %w", err)
	}
	if !locked {
		return 0, fmt.Errorf("output directory %s is locked by another publish", p.outputDir)
	}
	defer lock.Unlock()

	// Drop previously generated per-id subtrees so removed entities do
	// not survive as stale documents.
	for _, subdir := range []string{"council", "meetings", "votes"} {
		if err := os.RemoveAll(filepath.Join(p.outputDir, subdir)); err != nil {
			return 0, fmt.Errorf("clean %s subtree: %w", subdir, err)
		}
	}

	written := 0
	write := func(name string, doc any) error {
		if err := writeJSON(filepath.Join(p.outputDir, name), doc); err != nil {
			return err
		}
		written++
		return nil
	}

	if err := write("stats.json", buildStats(in.Registry, in.Meetings, in.Votes)); err != nil {
		return written, err
	}
	if err := write("council.json", buildCouncil(in.Registry, in.MemberStats)); err != nil {
		return written, err
	}
	for _, m := range in.Registry.Members {
		doc := buildMemberDetail(m, in.MemberStats[m.ID], in.Histories[m.ID])
		if err := write(filepath.Join("council", strconv.Itoa(m.ID)+".json"), doc); err != nil {
			return written, err
		}
	}
	if err := write("meetings.json", buildMeetings(in.Meetings)); err != nil {
		return written, err
	}
	for _, meeting := range in.Meetings {
		doc := buildMeetingDetail(meeting, in.Votes)
		if err := write(filepath.Join("meetings", strconv.Itoa(meeting.ID)+".json"), doc); err != nil {
			return written, err
		}
	}
	if err := write("votes.json", buildVoteList(in.Votes)); err != nil {
		return written, err
	}

	voteDates := make([]string, 0, len(in.Votes))
	for _, vote := range in.Votes {
		voteDates = append(voteDates, vote.MeetingDate)
	}
	years := availableYears(voteDates)
	if err := write("votes-index.json", votesIndexDocument{Success: true, AvailableYears: years}); err != nil {
		return written, err
	}
	for _, year := range years {
		prefix := strconv.Itoa(year)
		yearVotes := make([]votes.Vote, 0)
		for _, vote := range in.Votes {
			if len(vote.MeetingDate) >= 4 && vote.MeetingDate[:4] == prefix {
				yearVotes = append(yearVotes, vote)
			}
		}
		if err := write("votes-"+prefix+".json", buildVoteList(yearVotes)); err != nil {
			return written, err
		}
	}
	for _, vote := range in.Votes {
		if err := write(filepath.Join("votes", strconv.Itoa(vote.ID)+".json"), buildVoteDetail(vote)); err != nil {
			return written, err
		}
	}
	if err := write("alignment.json", buildAlignment(in.Alignment)); err != nil {
		return written, err
	}
	agenda := buildAgendaItems(in.Meetings, in.Taxonomy, p.opts.MaxTopics, p.opts.FulltextClassifyBytes, p.opts.PreviewBytes)
	if err := write("agenda-items.json", agenda); err != nil {
		return written, err
	}

	p.logger.Info("published documents",
		logging.String("dir", p.outputDir),
		logging.Int("files", written))

	return written, nil
}

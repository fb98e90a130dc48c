package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"gavel/internal/archive"
	"gavel/internal/config"
	"gavel/internal/integrity"
	"gavel/internal/logging"
	"gavel/internal/meetings"
	"gavel/internal/publish"
	"gavel/internal/roster"
	"gavel/internal/source"
	"gavel/internal/stats"
	"gavel/internal/taxonomy"
	"gavel/internal/votes"
)

// FileCount records how many rows one source file contributed.
type FileCount struct {
	Label   string
	Format  source.Format
	Records int
}

// Result is everything one run produced.
type Result struct {
	RunID       string
	Files       []FileCount
	LoadErrors  []string
	Records     int
	Registry    *roster.Registry
	Meetings    []meetings.Meeting
	Votes       []votes.Vote
	MemberStats map[int]stats.MemberStats
	Histories   map[int][]stats.HistoryEntry
	Alignment   stats.Alignment
	Problems    []string
	Published   int
}

// Runner executes pipeline runs against one configuration.
type Runner struct {
	cfg    *config.Config
	tax    *taxonomy.Taxonomy
	logger *slog.Logger
}

// New prepares a runner, loading the taxonomy override when configured.
func New(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	var (
		tax *taxonomy.Taxonomy
		err error
	)
	if cfg.Taxonomy.Path != "" {
		tax, err = taxonomy.Load(cfg.Taxonomy.Path)
	} else {
		tax, err = taxonomy.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, tax: tax, logger: logger}, nil
}

// Evaluate runs the in-memory phases: load, reduce, compute, validate.
// It never touches the output directory.
func (r *Runner) Evaluate() (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	log := logging.NewComponentLogger(r.logger, "pipeline").With(
		logging.String(logging.FieldRunID, result.RunID))

	descriptors, err := source.Discover(r.cfg.Paths.SourceDir)
	if err != nil {
		return nil, err
	}
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("no vote exports found in %s", r.cfg.Paths.SourceDir)
	}
	log.Info("discovered source files", logging.Int("files", len(descriptors)))

	reader := source.NewReader(r.tax, r.logger)
	var records []source.RawRecord
	for _, desc := range descriptors {
		loaded, err := reader.Load(desc)
		if err != nil {
			result.LoadErrors = append(result.LoadErrors, err.Error())
			log.Warn("skipping unreadable source file",
				logging.String(logging.FieldSource, desc.Path),
				logging.Error(err))
			continue
		}
		result.Files = append(result.Files, FileCount{
			Label:   desc.Tag.String(),
			Format:  desc.Format,
			Records: len(loaded),
		})
		records = append(records, loaded...)
		log.Info("loaded source file",
			logging.String("batch", desc.Tag.String()),
			logging.Int("records", len(loaded)))
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records loaded from %d source files", len(descriptors))
	}
	result.Records = len(records)

	result.Registry = roster.Build(records, r.tax, r.logger)
	result.Meetings = meetings.Aggregate(records, r.logger)
	result.Votes = votes.Construct(records, meetings.NewIndex(result.Meetings),
		result.Registry, r.tax, votes.Options{
			MaxTopics:             r.cfg.Pipeline.MaxTopics,
			FulltextClassifyBytes: r.cfg.Pipeline.FulltextClassifyBytes,
		}, r.logger)

	result.MemberStats = make(map[int]stats.MemberStats, len(result.Registry.Members))
	result.Histories = make(map[int][]stats.HistoryEntry, len(result.Registry.Members))
	for _, m := range result.Registry.Members {
		s, history := stats.ComputeMember(m, result.Votes, r.cfg.Pipeline.CloseVoteMargin)
		result.MemberStats[m.ID] = s
		result.Histories[m.ID] = history
	}
	result.Alignment = stats.ComputeAlignment(result.Registry, result.Votes,
		r.cfg.Pipeline.AlignmentMinShared, r.logger)

	result.Problems = integrity.Check(result.Registry, result.Meetings, result.Votes, r.logger)

	log.Info("run evaluated",
		logging.Int("records", result.Records),
		logging.Int("members", len(result.Registry.Members)),
		logging.Int("meetings", len(result.Meetings)),
		logging.Int("votes", len(result.Votes)),
		logging.Int("pairs", len(result.Alignment.Pairs)),
		logging.Int("problems", len(result.Problems)))

	return result, nil
}

// Run evaluates the pipeline, publishes the document tree, and snapshots
// the archive when enabled.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	result, err := r.Evaluate()
	if err != nil {
		return nil, err
	}

	publisher := publish.New(r.cfg.Paths.OutputDir, publish.Options{
		MaxTopics:             r.cfg.Pipeline.MaxTopics,
		FulltextClassifyBytes: r.cfg.Pipeline.FulltextClassifyBytes,
		PreviewBytes:          r.cfg.Pipeline.PreviewBytes,
	}, r.logger)
	result.Published, err = publisher.Publish(publish.Input{
		Registry:    result.Registry,
		Meetings:    result.Meetings,
		Votes:       result.Votes,
		MemberStats: result.MemberStats,
		Histories:   result.Histories,
		Alignment:   result.Alignment,
		Taxonomy:    r.tax,
	})
	if err != nil {
		return result, fmt.Errorf("publish: %w", err)
	}

	if r.cfg.Archive.Enabled {
		if err := r.snapshot(ctx, result); err != nil {
			return result, fmt.Errorf("archive: %w", err)
		}
	}

	return result, nil
}

func (r *Runner) snapshot(ctx context.Context, result *Result) error {
	path, err := config.ExpandPath(r.cfg.Archive.Path)
	if err != nil {
		return err
	}
	store, err := archive.Open(path, r.logger)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Snapshot(ctx, result.Registry, result.Meetings, result.Votes)
}

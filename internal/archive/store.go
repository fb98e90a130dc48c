package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"gavel/internal/logging"
	"gavel/internal/meetings"
	"gavel/internal/roster"
	"gavel/internal/votes"
)

// Store manages archive persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the archive database.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure archive directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	return &Store{db: db, path: path, logger: logging.NewComponentLogger(logger, "archive")}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

var schema = []string{
	`CREATE TABLE members (
        id INTEGER PRIMARY KEY,
        full_name TEXT NOT NULL,
        short_name TEXT NOT NULL,
        position TEXT NOT NULL,
        start_date TEXT NOT NULL,
        end_date TEXT,
        is_current INTEGER NOT NULL
    )`,
	`CREATE TABLE meetings (
        id INTEGER PRIMARY KEY,
        event_id TEXT,
        meeting_date TEXT NOT NULL,
        meeting_type TEXT NOT NULL,
        agenda_url TEXT,
        minutes_url TEXT,
        video_url TEXT,
        agenda_item_count INTEGER NOT NULL,
        vote_count INTEGER NOT NULL
    )`,
	`CREATE TABLE votes (
        id INTEGER PRIMARY KEY,
        meeting_id INTEGER NOT NULL REFERENCES meetings(id),
        outcome TEXT NOT NULL,
        ayes INTEGER NOT NULL,
        noes INTEGER NOT NULL,
        abstain INTEGER NOT NULL,
        absent INTEGER NOT NULL,
        item_number TEXT NOT NULL,
        section TEXT NOT NULL,
        title TEXT NOT NULL,
        meeting_date TEXT NOT NULL,
        topics TEXT NOT NULL
    )`,
	`CREATE TABLE member_votes (
        vote_id INTEGER NOT NULL REFERENCES votes(id),
        member_id INTEGER NOT NULL REFERENCES members(id),
        vote_choice TEXT NOT NULL,
        PRIMARY KEY (vote_id, member_id)
    )`,
}

// Snapshot replaces the archive contents with the given graph.
func (s *Store) Snapshot(ctx context.Context, registry *roster.Registry, allMeetings []meetings.Meeting, allVotes []votes.Vote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"member_votes", "votes", "meetings", "members"} {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	for _, m := range registry.Members {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO members (id, full_name, short_name, position, start_date, end_date, is_current)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.FullName, m.ShortName, m.Position, m.StartDate,
			nullableString(m.EndDate), boolInt(m.IsCurrent))
		if err != nil {
			return fmt.Errorf("insert member %d: %w", m.ID, err)
		}
	}

	for _, meeting := range allMeetings {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO meetings (id, event_id, meeting_date, meeting_type, agenda_url, minutes_url, video_url, agenda_item_count, vote_count)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			meeting.ID, nullableString(meeting.EventID), meeting.Date, meeting.Type,
			nullableString(meeting.AgendaURL), nullableString(meeting.MinutesURL),
			nullableString(meeting.VideoURL), meeting.AgendaItemCount(), meeting.VoteCount())
		if err != nil {
			return fmt.Errorf("insert meeting %d: %w", meeting.ID, err)
		}
	}

	for _, vote := range allVotes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO votes (id, meeting_id, outcome, ayes, noes, abstain, absent, item_number, section, title, meeting_date, topics)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			vote.ID, vote.MeetingID, string(vote.Outcome), vote.Ayes, vote.Noes,
			vote.Abstain, vote.Absent, vote.ItemNumber, vote.Section, vote.Title,
			vote.MeetingDate, strings.Join(vote.Topics, ","))
		if err != nil {
			return fmt.Errorf("insert vote %d: %w", vote.ID, err)
		}
		for _, entry := range vote.Members {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO member_votes (vote_id, member_id, vote_choice) VALUES (?, ?, ?)`,
				vote.ID, entry.MemberID, string(entry.Choice))
			if err != nil {
				return fmt.Errorf("insert member vote %d/%d: %w", vote.ID, entry.MemberID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	s.logger.Info("snapshot written",
		logging.String("path", s.path),
		logging.Int("members", len(registry.Members)),
		logging.Int("meetings", len(allMeetings)),
		logging.Int("votes", len(allVotes)))

	return nil
}

// Counts returns the row counts of the three entity tables.
func (s *Store) Counts(ctx context.Context) (members, meetings, votes int, err error) {
	counts := []struct {
		table string
		dest  *int
	}{
		{"members", &members},
		{"meetings", &meetings},
		{"votes", &votes},
	}
	for _, c := range counts {
		row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table)
		if err = row.Scan(c.dest); err != nil {
			return 0, 0, 0, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return members, meetings, votes, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

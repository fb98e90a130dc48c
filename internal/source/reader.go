package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gavel/internal/logging"
	"gavel/internal/taxonomy"
)

// Reserved column names shared by both formats. Anything else (minus the
// taxonomy exclusions) is a member vote column.
var fixedColumns = map[string]struct{}{
	"event_id": {}, "event_date": {}, "event_time": {}, "event_location": {},
	"event_item_id": {}, "agenda_number": {}, "agenda_sequence": {},
	"matter_file": {}, "matter_name": {}, "matter_title": {},
	"matter_type": {}, "matter_type_name": {}, "matter_status": {}, "matter_status_name": {},
	"matter_intro_date": {}, "matter_passed_date": {}, "matter_enactment_date": {},
	"matter_enactment_number": {}, "matter_requester": {}, "matter_body_name": {},
	"title": {}, "action": {}, "action_text": {}, "passed": {}, "vote_type": {}, "consent": {},
	"tally": {}, "mover": {}, "seconder": {}, "roll_call_flag": {},
	"agenda_link": {}, "minutes_link": {}, "video_link": {}, "attachment_links": {},
	"Agenda_item_fulltext": {},
	// FileMaker-specific columns
	"source": {}, "notice_date": {}, "sponsor": {}, "cosponsors": {}, "student_votes": {},
	// Legistar-specific columns
	"legislative_history": {},
}

var headerCaser = cases.Title(language.AmericanEnglish)

// Reader normalizes source files into RawRecords.
type Reader struct {
	tax    *taxonomy.Taxonomy
	logger *slog.Logger
}

// NewReader constructs a Reader. A nil logger disables logging.
func NewReader(tax *taxonomy.Taxonomy, logger *slog.Logger) *Reader {
	return &Reader{
		tax:    tax,
		logger: logging.NewComponentLogger(logger, "normalizer"),
	}
}

type memberColumn struct {
	index     int
	canonical string
}

// Load reads one source file and returns its normalized records in row
// order. A missing or malformed file is an input contract violation and
// fails the whole file.
func (r *Reader) Load(desc Descriptor) ([]RawRecord, error) {
	file, err := os.Open(desc.Path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer file.Close()

	cr := csv.NewReader(file)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", desc.Path, err)
	}

	index := make(map[string]int, len(header))
	var members []memberColumn
	for i, col := range header {
		if _, reserved := fixedColumns[col]; reserved {
			index[col] = i
			continue
		}
		name := strings.TrimSpace(col)
		if name == "" || r.tax.IsExcludedColumn(name) {
			continue
		}
		members = append(members, memberColumn{index: i, canonical: r.canonicalName(name)})
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []RawRecord
	rowNum := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d of %s: %w", rowNum+1, desc.Path, err)
		}
		rowNum++

		eventDate := field(row, "event_date")
		if eventDate == "" {
			continue
		}
		title := field(row, "title")

		memberVotes := make(map[string]Choice)
		for _, member := range members {
			if member.index >= len(row) {
				continue
			}
			token := strings.TrimSpace(row[member.index])
			if token == "" {
				continue
			}
			if choice, ok := DecodeChoice(token); ok {
				memberVotes[member.canonical] = choice
			}
		}

		passed := field(row, "passed")
		rollCall := field(row, "roll_call_flag")
		voted := passed == "0" || passed == "1" || rollCall == "1" || len(memberVotes) > 0
		if !voted && title == "" {
			continue
		}

		action := field(row, "action")

		agendaSeq := 0
		if raw := field(row, "agenda_sequence"); raw != "" {
			agendaSeq, err = strconv.Atoi(raw)
			if err != nil {
				agendaSeq = 0
				r.logger.Warn("unparseable agenda sequence, defaulting to 0",
					logging.String(logging.FieldSource, desc.Tag.String()),
					logging.Int("row", rowNum),
					logging.String("value", raw))
			}
		}

		records = append(records, RawRecord{
			EventID:        field(row, "event_id"),
			EventDate:      eventDate,
			EventTime:      field(row, "event_time"),
			EventLocation:  field(row, "event_location"),
			EventItemID:    field(row, "event_item_id"),
			AgendaNumber:   field(row, "agenda_number"),
			AgendaSequence: agendaSeq,
			MatterFile:     field(row, "matter_file"),
			Title:          title,
			Action:         action,
			Passed:         passed,
			Outcome:        NormalizeOutcome(passed, action),
			VoteType:       field(row, "vote_type"),
			Consent:        field(row, "consent"),
			Tally:          field(row, "tally"),
			Mover:          field(row, "mover"),
			Seconder:       field(row, "seconder"),
			RollCall:       rollCall,
			AgendaLink:     field(row, "agenda_link"),
			MinutesLink:    field(row, "minutes_link"),
			VideoLink:      field(row, "video_link"),
			Fulltext:       field(row, "Agenda_item_fulltext"),
			Sponsor:        field(row, "sponsor"),
			MemberVotes:    memberVotes,
			Voted:          voted,
			Source:         desc.Tag,
		})
	}

	r.logger.Info("loaded source file",
		logging.String(logging.FieldSource, desc.Tag.String()),
		logging.String("format", string(desc.Format)),
		logging.Int("records", len(records)))

	return records, nil
}

// canonicalName maps a member column header to the canonical member name.
// Headers arriving fully upper-cased (an occasional FileMaker artifact)
// are title-cased before correction.
func (r *Reader) canonicalName(header string) string {
	name := header
	if name != "" && name == strings.ToUpper(name) {
		name = headerCaser.String(strings.ToLower(name))
	}
	return r.tax.CorrectName(name)
}

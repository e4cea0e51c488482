// Package activity keeps the append-only log of accepted form submissions.
package activity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one row in the activity log.
type Entry struct {
	Timestamp    time.Time
	SubmissionID uuid.UUID
	Form         string
	RecordID     string
	Summary      string
}

// NewEntry stamps a submission with a fresh ID.
func NewEntry(now time.Time, form, recordID, summary string) Entry {
	return Entry{
		Timestamp:    now.UTC().Truncate(time.Second),
		SubmissionID: uuid.New(),
		Form:         form,
		RecordID:     recordID,
		Summary:      summary,
	}
}

// Header is the CSV header for activity-log.csv.
const Header = "timestamp,submission_id,form,record_id,summary"

// RelPath is the log location inside a workspace.
const RelPath = "logs/activity-log.csv"

const (
	numFields       = 5
	colTimestamp    = 0
	colSubmissionID = 1
	colForm         = 2
	colRecordID     = 3
	colSummary      = 4
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSubmissionID] = e.SubmissionID.String()
	row[colForm] = e.Form
	row[colRecordID] = e.RecordID
	row[colSummary] = e.Summary
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}
	sid, err := uuid.Parse(record[colSubmissionID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing submission id %q: %w", record[colSubmissionID], err)
	}

	return Entry{
		Timestamp:    ts,
		SubmissionID: sid,
		Form:         record[colForm],
		RecordID:     record[colRecordID],
		Summary:      record[colSummary],
	}, nil
}

// Append writes entries to <root>/logs/activity-log.csv, creating the file and header if needed.
func Append(root string, entries ...Entry) error {
	path := filepath.Join(root, RelPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <root>/logs/activity-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, RelPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening activity log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading activity log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

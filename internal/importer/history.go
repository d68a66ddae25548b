package importer

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Source identifies where an import batch came from.
type Source string

const (
	SourceCSV Source = "csv"
	SourceSQL Source = "sql"
)

// Entry records one completed import batch.
type Entry struct {
	ID         uuid.UUID `json:"id"`
	Source     Source    `json:"source"`
	Filename   string    `json:"filename,omitempty"`
	Records    int       `json:"records"`
	ImportedAt time.Time `json:"imported_at"`
}

// History is a session-scoped log of completed imports. It is owned by the
// caller and handed to the import pathways by reference; it is never a
// process-wide singleton.
type History struct {
	mu      sync.Mutex
	entries []Entry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Record appends a completed batch. ID and timestamp are filled in here.
func (h *History) Record(source Source, filename string, records int) Entry {
	entry := Entry{
		ID:         uuid.New(),
		Source:     source,
		Filename:   filename,
		Records:    records,
		ImportedAt: time.Now(),
	}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()

	return entry
}

// Entries returns a copy of the recorded batches, newest first.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]Entry, len(h.entries))
	for i, entry := range h.entries {
		entries[len(h.entries)-1-i] = entry
	}

	return entries
}

// AbortError reports an import halted partway through. Rows inserted before
// the failure stay inserted; there is no rollback.
type AbortError struct {
	Inserted int
	Err      error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("import aborted after %d inserted records: %v", e.Inserted, e.Err)
}

func (e *AbortError) Unwrap() error {
	return e.Err
}

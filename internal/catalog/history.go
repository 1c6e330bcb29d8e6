package catalog

// history.go keeps a session-scoped record of recent ingestions so the UI
// can show what was loaded, from where, and whether it succeeded. The log is
// a fixed-size ring; persistence is out of scope, so the history dies with
// the process.

import (
	"sync"
	"time"
)

// IngestSource identifies which ingestion path produced a collection.
type IngestSource string

const (
	SourceCSV      IngestSource = "csv"
	SourceJSON     IngestSource = "json"
	SourceXLSX     IngestSource = "xlsx"
	SourceSupplier IngestSource = "supplier"
)

// IngestionRecord describes one completed or failed ingestion.
type IngestionRecord struct {
	Source   IngestSource `json:"source"`
	FileName string       `json:"fileName,omitempty"`
	Records  int          `json:"records"`
	Error    string       `json:"error,omitempty"`
	At       time.Time    `json:"at"`
}

// DefaultHistorySize is how many ingestion records are retained.
const DefaultHistorySize = 50

// History is a fixed-size, most-recent-first ingestion log.
type History struct {
	mu      sync.Mutex
	entries []IngestionRecord
	max     int
}

// NewHistory creates a history retaining at most max entries.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// RecordSuccess appends a successful ingestion.
func (h *History) RecordSuccess(source IngestSource, fileName string, records int) {
	h.add(IngestionRecord{
		Source:   source,
		FileName: fileName,
		Records:  records,
		At:       time.Now().UTC(),
	})
}

// RecordFailure appends a failed ingestion.
func (h *History) RecordFailure(source IngestSource, fileName string, err error) {
	rec := IngestionRecord{
		Source:   source,
		FileName: fileName,
		At:       time.Now().UTC(),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	h.add(rec)
}

func (h *History) add(rec IngestionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]IngestionRecord{rec}, h.entries...)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Recent returns the retained records, most recent first.
func (h *History) Recent() []IngestionRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]IngestionRecord(nil), h.entries...)
}

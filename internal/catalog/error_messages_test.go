package catalog

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"nil error", nil, ""},
		{"unrecognized format", ErrUnrecognizedFormat, "FMT001"},
		{"invalid json", fmt.Errorf("invalid JSON: unexpected end of JSON input"), "PARSE001"},
		{"csv parse error", errors.New("record on line 3: wrong number of fields"), "PARSE002"},
		{"bad workbook", errors.New("zip: not a valid zip archive"), "PARSE003"},
		{"empty csv", ErrEmptyCSV, "FILE002"},
		{"empty workbook", ErrEmptyWorkbook, "FILE002"},
		{"body too large", errors.New("http: request body too large"), "FILE003"},
		{"feed timeout", errors.New("Get \"http://feed\": context deadline exceeded"), "FEED002"},
		{"feed refused", errors.New("dial tcp: connection refused"), "FEED001"},
		{"feed status", errors.New("unexpected status 503"), "FEED003"},
		{"unknown supplier", errors.New("supplier not found: acme"), "FEED003"},
		{"unknown error", errors.New("something novel"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, got.Code, tt.wantCode)
			}
			if tt.err != nil && (got.Message == "" || got.Action == "") {
				t.Errorf("MapError(%v) missing message or action: %+v", tt.err, got)
			}
		})
	}
}

func TestHistory_RingAndOrder(t *testing.T) {
	h := NewHistory(3)

	h.RecordSuccess(SourceCSV, "a.csv", 10)
	h.RecordFailure(SourceJSON, "b.json", errors.New("invalid JSON: oops"))
	h.RecordSuccess(SourceXLSX, "c.xlsx", 5)
	h.RecordSuccess(SourceSupplier, "", 20)

	got := h.Recent()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (oldest evicted)", len(got))
	}

	// Most recent first.
	if got[0].Source != SourceSupplier || got[0].Records != 20 {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Source != SourceXLSX || got[1].FileName != "c.xlsx" {
		t.Errorf("got[1] = %+v", got[1])
	}
	if got[2].Source != SourceJSON || got[2].Error == "" {
		t.Errorf("got[2] = %+v", got[2])
	}

	for _, rec := range got {
		if rec.At.IsZero() {
			t.Errorf("record missing timestamp: %+v", rec)
		}
	}
}

func TestNewHistory_DefaultSize(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistorySize+10; i++ {
		h.RecordSuccess(SourceCSV, "f.csv", i)
	}
	if got := len(h.Recent()); got != DefaultHistorySize {
		t.Errorf("len = %d, want %d", got, DefaultHistorySize)
	}
}

package domain

import (
	"testing"
	"time"
)

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already normal", "cats", "cats"},
		{"surrounding whitespace", "  Cats ", "cats"},
		{"mixed case", "GoLDeN GaTe", "golden gate"},
		{"tabs and newlines", "\tsunset\n", "sunset"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTerm(tt.raw); got != tt.want {
				t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSearchRecord_ToHistoryEntry(t *testing.T) {
	now := time.Now()
	rec := &SearchRecord{
		ID:          "rec-1",
		UserID:      "user-1",
		Term:        "cats",
		CreatedAt:   now,
		ResultCount: 12,
	}

	entry := rec.ToHistoryEntry()

	if entry.ID != rec.ID {
		t.Errorf("expected ID %s, got %s", rec.ID, entry.ID)
	}
	if entry.Term != rec.Term {
		t.Errorf("expected term %s, got %s", rec.Term, entry.Term)
	}
	if !entry.Timestamp.Equal(now) {
		t.Errorf("expected timestamp %v, got %v", now, entry.Timestamp)
	}
	if entry.ResultCount != 12 {
		t.Errorf("expected result count 12, got %d", entry.ResultCount)
	}
}

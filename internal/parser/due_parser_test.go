package parser_test

import (
	"testing"
	"time"

	"github.com/karanvs/studybuddy/internal/parser"
)

func TestParseDueDateAbsolute(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-09-15", time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)},
		{"15/09/2026", time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)},
		{"29/02/2024", time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local)}, // leap day
	}
	for _, tt := range tests {
		got, err := parser.ParseDueDate(tt.in)
		if err != nil {
			t.Errorf("ParseDueDate(%q) error: %v", tt.in, err)
			continue
		}
		if got == nil || !got.Equal(tt.want) {
			t.Errorf("ParseDueDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDueDateRelative(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	tests := []struct {
		in   string
		want time.Time
	}{
		{"today", today},
		{"tomorrow", today.AddDate(0, 0, 1)},
		{"3 days", today.AddDate(0, 0, 3)},
		{"1 day", today.AddDate(0, 0, 1)},
		{"2 weeks", today.AddDate(0, 0, 14)},
	}
	for _, tt := range tests {
		got, err := parser.ParseDueDate(tt.in)
		if err != nil {
			t.Errorf("ParseDueDate(%q) error: %v", tt.in, err)
			continue
		}
		if got == nil || !got.Equal(tt.want) {
			t.Errorf("ParseDueDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDueDateInvalid(t *testing.T) {
	invalid := []string{"soon", "31/02/2026", "0 days", "400 days", "5 months"}
	for _, in := range invalid {
		if _, err := parser.ParseDueDate(in); err == nil {
			t.Errorf("ParseDueDate(%q): expected error", in)
		}
	}
}

func TestParseDueDateEmpty(t *testing.T) {
	got, err := parser.ParseDueDate("")
	if err != nil || got != nil {
		t.Errorf("ParseDueDate(\"\") = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestFormatDue(t *testing.T) {
	today := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		due  time.Time
		want string
	}{
		{time.Date(2024, 5, 9, 0, 0, 0, 0, time.Local), "OVERDUE (09 May 2024)"},
		{time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local), "due today (10 May 2024)"},
		{time.Date(2024, 5, 11, 0, 0, 0, 0, time.Local), "due tomorrow (11 May 2024)"},
		{time.Date(2024, 5, 14, 0, 0, 0, 0, time.Local), "due 14 May 2024 (in 4 days)"},
		{time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local), "due 20 Jun 2024"},
	}
	for _, tt := range tests {
		if got := parser.FormatDue(tt.due, today); got != tt.want {
			t.Errorf("FormatDue(%v) = %q, want %q", tt.due, got, tt.want)
		}
	}
}

func TestFormatDueAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// Saturday before the 2024-03-10 spring-forward: Sunday is 23 hours
	// long, but it is still "tomorrow", not "today".
	today := time.Date(2024, 3, 9, 12, 0, 0, 0, ny)
	due := time.Date(2024, 3, 10, 0, 0, 0, 0, ny)

	if got, want := parser.FormatDue(due, today), "due tomorrow (10 Mar 2024)"; got != want {
		t.Errorf("FormatDue(%v) = %q, want %q", due, got, want)
	}
}

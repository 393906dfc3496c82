package stats_test

import (
	"testing"
	"time"

	"github.com/karanvs/studybuddy/internal/stats"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "friday maps to its monday",
			in:   time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC),
			want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday maps to itself",
			in:   time.Date(2024, 5, 6, 23, 59, 59, 0, time.UTC),
			want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps back six days",
			in:   time.Date(2024, 5, 12, 1, 0, 0, 0, time.UTC),
			want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stats.StartOfWeek(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 10, 0, 0, 1, 0, time.UTC)
	b := time.Date(2024, 5, 10, 23, 59, 59, 0, time.UTC)
	c := time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)

	if !stats.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if stats.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b time.Time
		want int
	}{
		{
			time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 11, 1, 0, 0, 0, time.UTC),
			1,
		},
		{
			time.Date(2024, 5, 10, 1, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 10, 23, 0, 0, 0, time.UTC),
			0,
		},
		{
			time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			-2,
		},
		{
			time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			2, // 2024 is a leap year
		},
	}
	for _, tt := range tests {
		if got := stats.DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// 2024-03-10 is the US spring-forward: that Sunday is only 23 hours
	// long, so a raw duration/24 would truncate these to one day short.
	tests := []struct {
		a, b time.Time
		want int
	}{
		{
			time.Date(2024, 3, 9, 12, 0, 0, 0, ny),
			time.Date(2024, 3, 10, 12, 0, 0, 0, ny),
			1,
		},
		{
			time.Date(2024, 3, 10, 0, 0, 0, 0, ny),
			time.Date(2024, 3, 11, 0, 0, 0, 0, ny),
			1,
		},
		{
			time.Date(2024, 3, 4, 0, 0, 0, 0, ny), // Monday to next Monday
			time.Date(2024, 3, 11, 0, 0, 0, 0, ny),
			7,
		},
		{
			time.Date(2024, 11, 3, 0, 0, 0, 0, ny), // fall-back: 25-hour day
			time.Date(2024, 11, 4, 0, 0, 0, 0, ny),
			1,
		},
	}
	for _, tt := range tests {
		if got := stats.DaysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

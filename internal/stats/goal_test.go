package stats_test

import (
	"testing"

	"github.com/karanvs/studybuddy/internal/stats"
)

func TestDailyGoalPercent(t *testing.T) {
	tests := []struct {
		minutes float64
		want    int
	}{
		{0, 0},
		{-5, 0}, // malformed negative duration clamps rather than underflows
		{15, 25},
		{30, 50},
		{59.7, 100}, // rounds to the nearest percent
		{60, 100},
		{120, 100}, // clamped, not 200
	}
	for _, tt := range tests {
		if got := stats.DailyGoalPercent(tt.minutes); got != tt.want {
			t.Errorf("DailyGoalPercent(%v) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestDailyGoalPercentMonotonic(t *testing.T) {
	prev := 0
	for minutes := 0.0; minutes <= 150; minutes += 5 {
		pct := stats.DailyGoalPercent(minutes)
		if pct < prev {
			t.Fatalf("DailyGoalPercent decreased at %v minutes: %d < %d", minutes, pct, prev)
		}
		if pct < 0 || pct > 100 {
			t.Fatalf("DailyGoalPercent(%v) = %d, outside [0,100]", minutes, pct)
		}
		prev = pct
	}
}

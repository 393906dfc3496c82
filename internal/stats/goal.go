package stats

import (
	"math"
)

// DailyGoalMinutes is the fixed daily study-time target backing the
// completion-percentage metric.
const DailyGoalMinutes = 60

// DailyGoalPercent converts today's logged minutes into goal completion,
// clamped to [0, 100].
func DailyGoalPercent(todayMinutes float64) int {
	if todayMinutes <= 0 {
		return 0
	}
	pct := int(math.Round(100 * todayMinutes / DailyGoalMinutes))
	if pct > 100 {
		return 100
	}
	return pct
}

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/planner"
	"github.com/karanvs/studybuddy/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your study dashboard",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		engine := stats.NewEngine(store)

		userStats, err := engine.UserStats(cfg.Owner)
		if err != nil {
			fmt.Printf("Warning: store unavailable, showing defaults (%v)\n", err)
		}

		fmt.Printf("Study dashboard for %s\n\n", cfg.Owner)
		fmt.Printf("  Streak:          %d day(s)\n", userStats.Streak)
		fmt.Printf("  Total hours:     %.1fh\n", userStats.TotalHours)
		fmt.Printf("  This week:       %.1fh\n", userStats.HoursWeek)
		fmt.Printf("  Topics mastered: %d\n", userStats.TopicsMastered)
		fmt.Printf("  Daily goal:      %d%%\n\n", userStats.DailyGoalPct)

		weekly, _ := engine.WeeklyActivity(cfg.Owner)
		printActivityBars(weekly)

		if subjects, err := engine.SubjectTotals(cfg.Owner); err == nil && len(subjects) > 0 {
			fmt.Println("\nBy subject:")
			for _, s := range subjects {
				fmt.Printf("  %-20s %6.1fh\n", s.Subject, s.Minutes/60)
			}
		}

		if tasks, err := store.ListTasks(cfg.Owner); err == nil {
			now := time.Now()
			pending := planner.PendingDueToday(tasks, now)
			week := planner.DueThisWeek(tasks, now)
			fmt.Printf("\nTasks: %d due today, %d due this week\n", len(pending), week)
		}
	}),
}

// printActivityBars renders the trailing 7-day chart as proportional bars.
func printActivityBars(weekly []stats.DayActivity) {
	maxHours := 0.0
	for _, d := range weekly {
		if d.Hours > maxHours {
			maxHours = d.Hours
		}
	}
	if maxHours == 0 {
		maxHours = 1
	}

	fmt.Println("Last 7 days:")
	for _, d := range weekly {
		width := int(d.Hours / maxHours * 30)
		fmt.Printf("  %-4s %-30s %.1fh\n", d.Day, strings.Repeat("█", width), d.Hours)
	}
}

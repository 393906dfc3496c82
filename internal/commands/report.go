package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/report"
	"github.com/karanvs/studybuddy/internal/stats"
)

var reportCmd = &cobra.Command{
	Use:   "report [file.xlsx]",
	Short: "Export your study report as an XLSX workbook",
	Args:  cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		engine := stats.NewEngine(store)

		userStats, err := engine.UserStats(cfg.Owner)
		if err != nil {
			fmt.Printf("Error computing stats: %v\n", err)
			return
		}
		weekly, err := engine.WeeklyActivity(cfg.Owner)
		if err != nil {
			fmt.Printf("Error computing weekly activity: %v\n", err)
			return
		}
		subjects, err := engine.SubjectTotals(cfg.Owner)
		if err != nil {
			fmt.Printf("Error computing subject totals: %v\n", err)
			return
		}

		path := fmt.Sprintf("study_report_%s.xlsx", cfg.Owner)
		if len(args) == 1 {
			path = args[0]
		}

		err = report.WriteXLSX(path, report.Data{
			Owner:       cfg.Owner,
			GeneratedAt: time.Now(),
			Stats:       userStats,
			Weekly:      weekly,
			Subjects:    subjects,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Report written to %s\n", path)
	}),
}

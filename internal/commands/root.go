package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "studybuddy",
	Short: "A CLI study tracker and planner",
	Long: `studybuddy tracks your study sessions and derives your progress from them.
Log sessions, plan exams and tasks, review flashcards, and watch your streak grow.`,
}

// withStore wraps a command function with config loading and a store handle
// that lives for the duration of the command.
func withStore(fn func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		store, err := db.Open(cfg.DBPath)
		if err != nil {
			log.Fatal("failed to open store", "path", cfg.DBPath, "err", err)
		}
		defer store.Close()
		fn(cmd, args, store, cfg)
	}
}

// SetVersion sets the version information.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("studybuddy %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(summariesCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(versionCmd)
}

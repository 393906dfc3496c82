package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/stats"
	"github.com/karanvs/studybuddy/internal/tui"
)

var logCmd = &cobra.Command{
	Use:   "log [subject] [minutes]",
	Short: "Log a finished study session",
	Long: `Log a study session after the fact.

Examples:
  studybuddy log math 45              # 45 minutes of math, just now
  studybuddy log physics 90 --date 2026-08-30`,
	Args: cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		minutes, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Error: invalid duration '%s'\n", args[1])
			return
		}

		startedAt := time.Now()
		if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
			d, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
			if err != nil {
				fmt.Printf("Error: invalid date '%s' (use yyyy-mm-dd)\n", dateStr)
				return
			}
			startedAt = d
		}

		session, err := store.InsertSession(cfg.Owner, args[0], minutes, startedAt)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Logged %.1f minutes of %s on %s\n",
			session.DurationMinutes, session.Subject, session.StartedAt.Format("2006-01-02"))
	}),
}

var startCmd = &cobra.Command{
	Use:   "start [subject]",
	Short: "Start a study timer",
	Long: `Start a live study timer. Opens the timer UI by default, use --no-ui to
start it in the background.

Examples:
  studybuddy start math         # timed session with UI
  studybuddy start math --no-ui # just start the clock`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		timer, err := store.StartTimer(cfg.Owner, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("Timer started for %s at %s\n", timer.Subject, timer.StartedAt.Format("15:04:05"))
			return
		}

		sessions, err := store.ListSessions(cfg.Owner)
		if err != nil {
			sessions = nil // timer still works, goal bar just starts at zero
		}
		baseMinutes := stats.MinutesOn(sessions, time.Now())

		stopRequested, err := tui.RunTimerTUI(timer, baseMinutes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if !stopRequested {
			fmt.Printf("Timer left running for %s. Stop it with 'studybuddy stop'.\n", timer.Subject)
			return
		}

		session, err := store.StopTimer(cfg.Owner)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Logged %.1f minutes of %s\n", session.DurationMinutes, session.Subject)
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running study timer and log the session",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		session, err := store.StopTimer(cfg.Owner)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Stopped. Logged %.1f minutes of %s\n", session.DurationMinutes, session.Subject)
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running timer, if any",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		timer, err := store.ActiveTimer(cfg.Owner)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if timer == nil {
			fmt.Println("No study timer running")
			return
		}

		elapsed := time.Since(timer.StartedAt)
		fmt.Printf("Studying %s since %s (%.0f minutes)\n",
			timer.Subject, timer.StartedAt.Format("15:04:05"), elapsed.Minutes())
	}),
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List logged study sessions",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		sessions, err := store.ListSessions(cfg.Owner)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions logged yet. Use 'studybuddy log' or 'studybuddy start' to begin.")
			return
		}

		fmt.Printf("%-5s %-20s %-10s %s\n", "ID", "SUBJECT", "MINUTES", "DATE")
		fmt.Println(strings.Repeat("-", 55))
		for _, s := range sessions {
			subject := s.Subject
			if len(subject) > 18 {
				subject = subject[:15] + "..."
			}
			fmt.Printf("%-5d %-20s %-10.1f %s\n",
				s.ID, subject, s.DurationMinutes, s.StartedAt.Format("2006-01-02 15:04"))
		}
	}),
}

func init() {
	logCmd.Flags().String("date", "", "Session date as yyyy-mm-dd (defaults to now)")
	startCmd.Flags().Bool("no-ui", false, "Start the timer without the interactive UI")
}

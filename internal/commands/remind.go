package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/remind"
	"github.com/karanvs/studybuddy/internal/stats"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the reminder loop",
	Long: `Run the background reminder loop. Once per hour, inside the configured
reminder window, it sends a desktop notification when the daily study goal is
unmet or tasks are due today.

Use --once to run a single check and exit.`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		engine := stats.NewEngine(store)
		reminder := remind.New(engine, store, remind.DesktopNotifier{},
			cfg.Owner, cfg.ReminderStartHour, cfg.ReminderEndHour)

		once, _ := cmd.Flags().GetBool("once")
		if once {
			reminder.Check()
			return
		}

		if err := reminder.Start(); err != nil {
			log.Fatal("failed to start reminder loop", "err", err)
		}
		defer reminder.Stop()

		log.Info("reminder loop running",
			"owner", cfg.Owner,
			"window", fmt.Sprintf("%02d:00-%02d:00", cfg.ReminderStartHour, cfg.ReminderEndHour))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("reminder loop stopping")
	}),
}

func init() {
	remindCmd.Flags().Bool("once", false, "Run a single reminder check and exit")
}

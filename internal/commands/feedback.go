package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Leave and browse feedback about the app",
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add [message]",
	Short: "Submit feedback with a 1-5 rating",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		rating, _ := cmd.Flags().GetInt("rating")
		message := strings.Join(args, " ")

		if _, err := store.SaveFeedback(cfg.Owner, message, rating); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Thanks! Your feedback has been saved.")
	}),
}

var feedbackListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List submitted feedback",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		entries, err := store.ListFeedback()
		if err != nil {
			fmt.Printf("Error fetching feedback: %v\n", err)
			return
		}
		if len(entries) == 0 {
			fmt.Println("No feedback submitted yet.")
			return
		}

		for _, fb := range entries {
			fmt.Printf("%s  %s (%d/5)\n", fb.CreatedAt.Format("2006-01-02 15:04"), fb.Owner, fb.Rating)
			fmt.Printf("  %s\n\n", fb.Message)
		}
	}),
}

func init() {
	feedbackAddCmd.Flags().IntP("rating", "r", 3, "Overall rating from 1 (poor) to 5 (excellent)")

	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackListCmd)
}

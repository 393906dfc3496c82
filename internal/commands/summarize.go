package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/summarize"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize study notes with the configured model",
	Long: `Send notes to the configured summarization model and store the result.
Reads from the given file, or from stdin when no file is passed.

Requires AI_URL and AI_API_KEY in the environment or .env.`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		var text string
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				fmt.Printf("Error reading %s: %v\n", args[0], err)
				return
			}
			text = string(data)
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Printf("Error reading stdin: %v\n", err)
				return
			}
			text = string(data)
		}

		if strings.TrimSpace(text) == "" {
			fmt.Println("Error: nothing to summarize")
			return
		}

		client, err := summarize.NewClient()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		summary, err := client.Summarize(ctx, text)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if _, err := store.SaveSummary(cfg.Owner, text, summary); err != nil {
			fmt.Printf("Warning: summary not saved: %v\n", err)
		}

		fmt.Println(summary)
	}),
}

var summariesCmd = &cobra.Command{
	Use:   "summaries",
	Short: "List saved summaries",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		summaries, err := store.ListSummaries(cfg.Owner)
		if err != nil {
			fmt.Printf("Error fetching summaries: %v\n", err)
			return
		}
		if len(summaries) == 0 {
			fmt.Println("No summaries saved yet.")
			return
		}

		for _, s := range summaries {
			preview := strings.ReplaceAll(s.SummaryText, "\n", " ")
			if len(preview) > 70 {
				preview = preview[:67] + "..."
			}
			fmt.Printf("#%-4d %s  %s\n", s.ID, s.CreatedAt.Format("2006-01-02"), preview)
		}
	}),
}

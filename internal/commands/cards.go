package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/tui"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage and review flashcards",
}

var cardAddCmd = &cobra.Command{
	Use:   "add [question] [answer]",
	Short: "Add a flashcard",
	Args:  cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		card, err := store.CreateFlashcard(cfg.Owner, args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added card #%d\n", card.ID)
	}),
}

var cardListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List flashcards",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		cards, err := store.ListFlashcards(cfg.Owner)
		if err != nil {
			fmt.Printf("Error fetching cards: %v\n", err)
			return
		}
		if len(cards) == 0 {
			fmt.Println("No flashcards yet. Add one with 'studybuddy card add'.")
			return
		}

		fmt.Printf("%-4s %-44s %s\n", "ID", "QUESTION", "ANSWER")
		fmt.Println(strings.Repeat("-", 80))
		for _, card := range cards {
			question := card.Question
			if len(question) > 42 {
				question = question[:39] + "..."
			}
			answer := card.Answer
			if len(answer) > 28 {
				answer = answer[:25] + "..."
			}
			fmt.Printf("%-4d %-44s %s\n", card.ID, question, answer)
		}
	}),
}

var cardRmCmd = &cobra.Command{
	Use:   "rm [card-id...]",
	Short: "Delete flashcards",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		var ids []uint
		for _, arg := range args {
			id, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				fmt.Printf("Error: invalid card ID '%s'\n", arg)
				return
			}
			ids = append(ids, uint(id))
		}

		if err := store.DeleteFlashcards(cfg.Owner, ids); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted %d card(s)\n", len(ids))
	}),
}

var cardReviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review your flashcards interactively",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		cards, err := store.ListFlashcards(cfg.Owner)
		if err != nil {
			fmt.Printf("Error fetching cards: %v\n", err)
			return
		}
		if len(cards) == 0 {
			fmt.Println("No flashcards to review. Add some with 'studybuddy card add'.")
			return
		}

		correct, missed, cancelled, err := tui.RunReviewTUI(cards)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if cancelled {
			fmt.Println("Review cancelled.")
			return
		}
		fmt.Printf("Review done: %d correct, %d missed\n", correct, missed)
	}),
}

func init() {
	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardRmCmd)
	cardCmd.AddCommand(cardReviewCmd)
}

package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/parser"
	"github.com/karanvs/studybuddy/internal/planner"
)

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Manage upcoming exams",
}

var examAddCmd = &cobra.Command{
	Use:   "add [subject]",
	Short: "Add an upcoming exam",
	Long: `Add an exam with its date and a 1-5 difficulty rating.

Examples:
  studybuddy exam add calculus --date 2026-09-20 --difficulty 4
  studybuddy exam add biology --date "2 weeks" --difficulty 2 --notes "chapters 1-6"`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		dateInput, _ := cmd.Flags().GetString("date")
		examDate, err := parser.ParseDueDate(dateInput)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if examDate == nil {
			fmt.Println("Error: --date is required")
			return
		}

		difficulty, _ := cmd.Flags().GetInt("difficulty")
		notes, _ := cmd.Flags().GetString("notes")

		exam, err := store.CreateExam(cfg.Owner, args[0],
			examDate.Format(parser.StoredDateLayout), notes, difficulty)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Added exam #%d: %s on %s (difficulty %d)\n",
			exam.ID, exam.Subject, exam.ExamDate, exam.Difficulty)
	}),
}

var examListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List upcoming exams",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		exams, err := store.ListExams(cfg.Owner)
		if err != nil {
			fmt.Printf("Error fetching exams: %v\n", err)
			return
		}
		if len(exams) == 0 {
			fmt.Println("No exams added yet. Use 'studybuddy exam add' to plan one.")
			return
		}

		now := time.Now()
		fmt.Printf("%-4s %-20s %-12s %-10s %-10s %s\n", "ID", "SUBJECT", "DATE", "DIFF", "STATUS", "NOTES")
		fmt.Println(strings.Repeat("-", 80))
		for _, exam := range exams {
			status := "?"
			if d, ok := planner.ParseRecordDate(exam.ExamDate); ok {
				if plan, err := planner.BuildRevisionPlan(exam.Subject, d, exam.Difficulty, now); err == nil {
					status = plan.Status.String()
				}
			}

			subject := exam.Subject
			if len(subject) > 18 {
				subject = subject[:15] + "..."
			}
			notes := exam.Notes
			if len(notes) > 24 {
				notes = notes[:21] + "..."
			}

			fmt.Printf("%-4d %-20s %-12s %-10d %-10s %s\n",
				exam.ID, subject, exam.ExamDate, exam.Difficulty, status, notes)
		}
	}),
}

var examRmCmd = &cobra.Command{
	Use:   "rm [exam-id]",
	Short: "Delete an exam",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		examID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid exam ID '%s'\n", args[0])
			return
		}

		if err := store.DeleteExam(cfg.Owner, uint(examID)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted exam #%d\n", examID)
	}),
}

func init() {
	examAddCmd.Flags().StringP("date", "d", "", "Exam date: yyyy-mm-dd, dd/mm/yyyy, X days, X weeks")
	examAddCmd.Flags().IntP("difficulty", "f", 3, "Difficulty rating from 1 (easy) to 5 (hard)")
	examAddCmd.Flags().StringP("notes", "n", "", "Free-form notes")

	examCmd.AddCommand(examAddCmd)
	examCmd.AddCommand(examListCmd)
	examCmd.AddCommand(examRmCmd)
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/karanvs/studybuddy/internal/config"
	"github.com/karanvs/studybuddy/internal/db"
	"github.com/karanvs/studybuddy/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show revision plans for your upcoming exams",
	Long: `Derive a revision plan for every stored exam: how many focused revision
sessions to fit into the days left, based on the exam's difficulty.

With --hours, additionally spread a fixed daily commitment over the remaining
days.

Examples:
  studybuddy plan
  studybuddy plan --hours 2`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		exams, err := store.ListExams(cfg.Owner)
		if err != nil {
			fmt.Printf("Error fetching exams: %v\n", err)
			return
		}
		if len(exams) == 0 {
			fmt.Println("No exams to plan for. Add one with 'studybuddy exam add'.")
			return
		}

		hoursPerDay, _ := cmd.Flags().GetInt("hours")
		now := time.Now()

		for _, exam := range exams {
			examDate, ok := planner.ParseRecordDate(exam.ExamDate)
			if !ok {
				fmt.Printf("%s: skipping, unreadable exam date %q\n", exam.Subject, exam.ExamDate)
				continue
			}

			plan, err := planner.BuildRevisionPlan(exam.Subject, examDate, exam.Difficulty, now)
			if err != nil {
				fmt.Printf("%s: %v\n", exam.Subject, err)
				continue
			}

			fmt.Printf("\n%s (%s)\n", plan.Subject, plan.ExamDate.Format("02 Jan 2006"))
			switch plan.Status {
			case planner.PlanDueToday:
				fmt.Println("  Exam is today! Use this day for review and rest.")
			case planner.PlanPassed:
				fmt.Println("  Exam completed.")
			default:
				fmt.Printf("  %d days left\n", plan.DaysLeft)
				fmt.Printf("  Suggested plan: %d sessions of focused study\n", plan.Sessions)
				if hoursPerDay > 0 {
					study, err := planner.BuildStudyPlan(exam.Subject, examDate, hoursPerDay, now)
					if err != nil {
						fmt.Printf("  %v\n", err)
						continue
					}
					fmt.Printf("  At %d hour(s) per day that is %d hours of study before the exam\n",
						study.DailyHours, study.TotalHours)
				}
			}
		}
	}),
}

func init() {
	planCmd.Flags().Int("hours", 0, "Also plan a fixed number of study hours per day")
}

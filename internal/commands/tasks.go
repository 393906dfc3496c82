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

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a study task",
	Long: `Add a task with an optional deadline, subject and priority.

Examples:
  studybuddy add "Finish lab report" --due tomorrow --subject chemistry
  studybuddy add "Revise chapter 4" --due "3 days" --priority high`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		dueInput, _ := cmd.Flags().GetString("due")
		dueDate := ""
		if dueInput != "" {
			due, err := parser.ParseDueDate(dueInput)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if due != nil {
				dueDate = due.Format(parser.StoredDateLayout)
			}
		}

		subject, _ := cmd.Flags().GetString("subject")
		dueTime, _ := cmd.Flags().GetString("time")
		priority, _ := cmd.Flags().GetString("priority")

		task, err := store.CreateTask(db.CreateTaskRequest{
			Owner:    cfg.Owner,
			Title:    args[0],
			Subject:  subject,
			DueDate:  dueDate,
			DueTime:  dueTime,
			Priority: priority,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Added task #%d: %s\n", task.ID, task.Title)
		if task.DueDate != "" {
			if due, ok := planner.ParseRecordDate(task.DueDate); ok {
				fmt.Printf("Deadline: %s\n", parser.FormatDue(due, time.Now()))
			}
		}
	}),
}

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks. By default pending tasks only; use --all to include completed ones, --today for today's deadlines.",
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		tasks, err := store.ListTasks(cfg.Owner)
		if err != nil {
			fmt.Printf("Error fetching tasks: %v\n", err)
			return
		}

		all, _ := cmd.Flags().GetBool("all")
		todayOnly, _ := cmd.Flags().GetBool("today")
		now := time.Now()

		if todayOnly {
			if all {
				tasks = planner.DueToday(tasks, now)
			} else {
				tasks = planner.PendingDueToday(tasks, now)
			}
		} else if !all {
			filtered := tasks[:0]
			for _, t := range tasks {
				if !t.Completed {
					filtered = append(filtered, t)
				}
			}
			tasks = filtered
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'studybuddy add \"task title\"' to create one.")
			return
		}

		fmt.Printf("%-4s %-6s %-36s %-14s %-8s %s\n", "ID", "STATE", "TITLE", "SUBJECT", "PRIO", "DUE")
		fmt.Println(strings.Repeat("-", 90))
		for _, task := range tasks {
			state := "todo"
			if task.Completed {
				state = "done"
			}

			title := task.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}
			subject := task.Subject
			if len(subject) > 12 {
				subject = subject[:9] + "..."
			}

			dueStr := ""
			if due, ok := planner.ParseRecordDate(task.DueDate); ok {
				dueStr = parser.FormatDue(due, now)
				if task.DueTime != "" {
					dueStr += " " + task.DueTime
				}
			}

			fmt.Printf("%-4d %-6s %-36s %-14s %-8s %s\n",
				task.ID, state, title, subject, task.Priority, dueStr)
		}
	}),
}

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := store.SetTaskCompleted(uint(taskID), true)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Marked task #%d as done: %s\n", task.ID, task.Title)
	}),
}

var undoneCmd = &cobra.Command{
	Use:   "undone [task-id]",
	Short: "Mark a completed task as pending again",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		task, err := store.SetTaskCompleted(uint(taskID), false)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Marked task #%d back to todo: %s\n", task.ID, task.Title)
	}),
}

var rmCmd = &cobra.Command{
	Use:   "rm [task-id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *db.Store, cfg config.Config) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		if err := store.DeleteTask(uint(taskID)); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Deleted task #%d\n", taskID)
	}),
}

func init() {
	addCmd.Flags().StringP("due", "d", "", "Deadline: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, X days, X weeks")
	addCmd.Flags().StringP("subject", "s", "", "Subject the task belongs to")
	addCmd.Flags().StringP("time", "t", "", "Free-text time of day, e.g. \"after lunch\"")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high (default medium)")
	listCmd.Flags().BoolP("all", "a", false, "Include completed tasks")
	listCmd.Flags().Bool("today", false, "Show only tasks due today")
}

package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"zenplan/internal/plan"
	"zenplan/internal/ui"
)

func newAddCmd() *cobra.Command {
	var prio string
	var date string
	var at string
	var remindMin string
	var repeating bool

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to a day (max 5 per day)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := parseDay(date)
			if err != nil {
				return err
			}

			in := plan.AddTaskInput{
				Text:        args[0],
				Priority:    plan.ParsePriority(prio),
				Date:        day,
				IsRepeating: repeating,
			}
			if at != "" {
				deadline, err := parseClock(day, at)
				if err != nil {
					return err
				}
				in.Deadline = &deadline
				offset, err := plan.ParseReminderOffset(remindMin)
				if err != nil {
					return err
				}
				in.ReminderOffset = &offset
			} else if cmd.Flags().Changed("remind") {
				return errors.New("--remind needs --at")
			}

			task, err := svc.AddTask(ctx, in)
			if err != nil {
				return err
			}

			pal := ui.PaletteFor(cfg.Theme)
			line := fmt.Sprintf("%s %s %s", ui.Checkbox(false), ui.PriorityDot(plan.Priority(task.Priority), pal), task.Text)
			if task.IsRepeating {
				line += " " + ui.IconLoop
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("#%d · %s", task.ID, task.Date.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&prio, "prio", "p", "medium", "Priority (high|medium|low)")
	cmd.Flags().StringVarP(&date, "date", "d", "today", "Day (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVar(&at, "at", "", "Deadline time on that day (HH:MM)")
	cmd.Flags().StringVar(&remindMin, "remind", "0", "Reminder lead time in minutes (0|5|15|30|60|120)")
	cmd.Flags().BoolVar(&repeating, "repeat", false, "Recreate this task every day")

	return cmd
}

package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"zenplan/internal/plan"
	"zenplan/internal/ui"
)

func newEditCmd() *cobra.Command {
	var text string
	var prio string
	var at string
	var remindMin string
	var repeating bool
	var noRepeat bool
	var clearDeadline bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's text, priority, deadline or repeat flag",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := parseID(args[0]); err != nil {
				return err
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

			id, _ := parseID(args[0])
			task, err := svc.TaskRepo().Get(ctx, id)
			if err != nil {
				return err
			}
			if task == nil {
				return plan.NotFoundError{Kind: "task", ID: id}
			}

			// Unchanged flags keep the stored values.
			in := plan.UpdateTaskInput{
				Text:        task.Text,
				Priority:    plan.Priority(task.Priority),
				Deadline:    task.Deadline,
				IsRepeating: task.IsRepeating,
			}
			if task.ReminderOffset != nil {
				o := plan.ReminderOffset(*task.ReminderOffset)
				in.ReminderOffset = &o
			}

			if cmd.Flags().Changed("text") {
				in.Text = text
			}
			if cmd.Flags().Changed("prio") {
				in.Priority = plan.ParsePriority(prio)
			}
			if clearDeadline {
				in.Deadline = nil
				in.ReminderOffset = nil
			}
			if cmd.Flags().Changed("at") {
				deadline, err := parseClock(task.Date, at)
				if err != nil {
					return err
				}
				in.Deadline = &deadline
				if in.ReminderOffset == nil {
					o := plan.OffsetAtTime
					in.ReminderOffset = &o
				}
			}
			if cmd.Flags().Changed("remind") {
				if in.Deadline == nil {
					return errors.New("--remind needs a deadline (--at)")
				}
				offset, err := plan.ParseReminderOffset(remindMin)
				if err != nil {
					return err
				}
				in.ReminderOffset = &offset
			}
			if repeating {
				in.IsRepeating = true
			}
			if noRepeat {
				in.IsRepeating = false
			}

			updated, err := svc.UpdateTask(ctx, id, in)
			if err != nil {
				return err
			}
			pal := ui.PaletteFor(cfg.Theme)
			fmt.Fprintln(cmd.OutOrStdout(), taskLine(*updated, pal))
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "New task text")
	cmd.Flags().StringVarP(&prio, "prio", "p", "", "Priority (high|medium|low)")
	cmd.Flags().StringVar(&at, "at", "", "Deadline time (HH:MM)")
	cmd.Flags().StringVar(&remindMin, "remind", "0", "Reminder lead time in minutes (0|5|15|30|60|120)")
	cmd.Flags().BoolVar(&repeating, "repeat", false, "Mark as repeating")
	cmd.Flags().BoolVar(&noRepeat, "no-repeat", false, "Clear the repeat flag")
	cmd.Flags().BoolVar(&clearDeadline, "clear-deadline", false, "Remove deadline and reminder")

	return cmd
}

package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/dateutil"
	"zenplan/internal/plan"
	"zenplan/internal/storage"
	"zenplan/internal/ui"
)

func newListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a day's tasks",
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

			now := time.Now()
			if dateutil.IsToday(day, now) {
				// Carry over repeating tasks when today is first opened.
				if _, err := svc.PropagateRepeating(ctx, dateutil.DaysAgo(1, now), day); err != nil {
					return err
				}
			}

			tasks, err := svc.ListForDay(ctx, day)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pal := ui.PaletteFor(cfg.Theme)
			fmt.Fprintln(out, ui.Heading(ui.IconLeaf, dateutil.FormatDayLong(day)))
			fmt.Fprintln(out)

			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Noch keine Aufgaben. Fang klein an: zp add <text>"))
			}
			completed := 0
			for _, t := range tasks {
				if t.IsCompleted {
					completed++
				}
				fmt.Fprintln(out, taskLine(t, pal))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.LabelValue("Erledigt", fmt.Sprintf("%d/%d", completed, len(tasks))))

			if dateutil.IsToday(day, now) {
				prompt, err := svc.ShouldPromptReflection(ctx, now, cfg.ReflectionHour)
				if err == nil && prompt {
					fmt.Fprintln(out)
					fmt.Fprintln(out, ui.Panel.Render(ui.IconMoon+" Zeit für deine Abendreflexion: zp reflect"))
				}
			}

			if cfg.QuotesEnabled {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.Muted.Render(plan.QuoteOfTheDay(day).Formatted()))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "today", "Day (YYYY-MM-DD, today, tomorrow, yesterday)")

	return cmd
}

func taskLine(t storage.Task, pal ui.Palette) string {
	line := fmt.Sprintf("%s %s #%d %s", ui.Checkbox(t.IsCompleted), ui.PriorityDot(plan.Priority(t.Priority), pal), t.ID, t.Text)
	if t.IsRepeating {
		line += " " + ui.IconLoop
	}
	if t.Deadline != nil {
		line += " " + ui.Muted.Render(ui.IconBell+" "+t.Deadline.Format("15:04"))
	}
	return line
}

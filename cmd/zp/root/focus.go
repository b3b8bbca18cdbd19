package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/plan"
	"zenplan/internal/ui"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Show the one task to do next",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := svc.NextOpenTask(ctx, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if task == nil {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Alles erledigt. Genieß den Rest des Tages."))
				return nil
			}
			pal := ui.PaletteFor(cfg.Theme)
			fmt.Fprintln(out, ui.Panel.Render(fmt.Sprintf("%s %s #%d %s", ui.IconLeaf, ui.PriorityDot(plan.Priority(task.Priority), pal), task.ID, task.Text)))
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/ui"
)

func newStreakCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show planning and reflection streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			taskStreak := svc.TaskStreak(ctx, now)
			refStreak, err := svc.ReflectionStreak(ctx, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFire, "Streaks"))
			fmt.Fprintln(out, ui.LabelValue("Geplante Tage", fmt.Sprintf("%d in Folge", taskStreak)))
			fmt.Fprintln(out, ui.LabelValue("Reflektierte Tage", fmt.Sprintf("%d in Folge", refStreak)))
			return nil
		},
	}

	return cmd
}

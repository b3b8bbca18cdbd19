package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/dateutil"
	"zenplan/internal/ui"
)

func newRepeatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repeat",
		Short: "Carry yesterday's repeating tasks into today",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			created, err := svc.PropagateRepeating(ctx, dateutil.DaysAgo(1, now), now)
			if err != nil {
				return err
			}
			if created == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nichts zu übernehmen."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d Aufgabe(n) übernommen.\n", ui.IconLoop, created)
			return nil
		},
	}

	return cmd
}

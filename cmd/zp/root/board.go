package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/dateutil"
	"zenplan/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive day board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openBoardService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			if _, err := svc.PropagateRepeating(ctx, dateutil.DaysAgo(1, now), now); err != nil {
				return err
			}

			return tui.RunBoard(ctx, svc, cfg.Theme, cmd.OutOrStdout())
		},
	}

	return cmd
}

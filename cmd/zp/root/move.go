package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/ui"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a task to tomorrow",
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
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := parseID(args[0])
			moved, err := svc.MoveToTomorrow(ctx, id, time.Now())
			if err != nil {
				return err
			}
			if !moved {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Morgen ist schon voll. Die Aufgabe bleibt heute."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Auf morgen verschoben.")
			return nil
		},
	}

	return cmd
}

package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"zenplan/internal/ui"
)

func newReorderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reorder <id> <id>...",
		Short: "Reorder a day's tasks to the given id sequence",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("at least two ids are required")
			}
			for _, a := range args {
				if _, err := parseID(a); err != nil {
					return err
				}
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

			ids := make([]int64, 0, len(args))
			for _, a := range args {
				id, _ := parseID(a)
				ids = append(ids, id)
			}
			if err := svc.Reorder(ctx, ids); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Reihenfolge gespeichert."))
			return nil
		},
	}

	return cmd
}

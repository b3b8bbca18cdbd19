package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"zenplan/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
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
			task, err := svc.ToggleCompletion(ctx, id)
			if err != nil {
				return err
			}
			if task.IsCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" "+task.Text))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.IconOpen+" "+task.Text+" "+ui.Muted.Render("(wieder offen)"))
			}
			return nil
		},
	}

	return cmd
}

package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/plan"
	"zenplan/internal/ui"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show today's quote",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := plan.QuoteOfTheDay(time.Now())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(q.Formatted()))
			return nil
		},
	}

	return cmd
}

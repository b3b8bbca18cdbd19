package root

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"zenplan/internal/ui"
)

func newExportCmd() *cobra.Command {
	var asJSON bool
	var copyToClipboard bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tasks and reflections (Markdown or JSON)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var data string
			if asJSON {
				data = svc.ExportJSON(ctx)
			} else {
				data = svc.ExportMarkdown(ctx)
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(data); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("In die Zwischenablage kopiert."))
				return nil
			}
			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(data), 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Geschrieben nach "+outPath))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), data)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "JSON instead of Markdown")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy to the system clipboard")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")

	return cmd
}

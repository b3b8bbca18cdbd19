package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/dateutil"
	"zenplan/internal/ui"
)

func newMoodCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Show the mood trend of the last days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			samples := svc.MoodHistory(ctx, days, time.Now())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMoon, fmt.Sprintf("Stimmung der letzten %d Tage", days)))
			if len(samples) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Noch keine Reflexionen. Starte mit: zp reflect"))
				return nil
			}
			sum := 0
			for _, s := range samples {
				bar := strings.Repeat("▇", s.Mood.Score())
				fmt.Fprintf(out, "%s  %s %s %s\n", ui.Key.Render(dateutil.FormatDayShort(s.Date)), s.Mood.Emoji(), bar, ui.Muted.Render(s.Mood.DisplayName()))
				sum += s.Mood.Score()
			}
			avg := float64(sum) / float64(len(samples))
			fmt.Fprintln(out)
			fmt.Fprintln(out, ui.LabelValue("Durchschnitt", fmt.Sprintf("%.1f / 5", avg)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 7, "Window in days")

	return cmd
}

package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/plan"
	"zenplan/internal/ui"
)

func newReflectCmd() *cobra.Command {
	var mood string
	var wentWell string
	var shifted string
	var date string

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Close the day with a short reflection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := parseDay(date)
			if err != nil {
				return err
			}
			m, err := plan.ParseMood(mood)
			if err != nil {
				return err
			}

			completed, total, err := svc.DayCounts(ctx, day)
			if err != nil {
				return err
			}

			in := plan.SaveReflectionInput{
				Date:           day,
				CompletedCount: completed,
				TotalCount:     total,
				Mood:           m,
			}
			if wentWell != "" {
				in.WentWell = &wentWell
			}
			if shifted != "" {
				in.ShiftConsciously = &shifted
			}

			ref, err := svc.SaveReflection(ctx, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMoon, "Tagesabschluss"))
			fmt.Fprintln(out, ui.LabelValue("Erledigt", fmt.Sprintf("%d/%d", ref.CompletedCount, ref.TotalCount)))
			fmt.Fprintln(out, ui.LabelValue("Stimmung", ui.MoodText(plan.Mood(ref.Mood))))
			if ref.WentWell != nil {
				fmt.Fprintln(out, ui.LabelValue("Was lief gut", *ref.WentWell))
			}
			if ref.ShiftConsciously != nil {
				fmt.Fprintln(out, ui.LabelValue("Bewusst verschoben", *ref.ShiftConsciously))
			}

			streak, err := svc.ReflectionStreak(ctx, time.Now())
			if err == nil && streak > 1 {
				fmt.Fprintf(out, "%s %d Tage in Folge reflektiert.\n", ui.IconFire, streak)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mood, "mood", "m", "neutral", "Mood (great|good|neutral|bad|terrible)")
	cmd.Flags().StringVar(&wentWell, "well", "", "What went well today")
	cmd.Flags().StringVar(&shifted, "shifted", "", "What you consciously moved to later")
	cmd.Flags().StringVarP(&date, "date", "d", "today", "Day to reflect on")

	return cmd
}

package root

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"zenplan/internal/dateutil"
	"zenplan/internal/plan"
	"zenplan/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var month bool
	var date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the week overview or the month heatmap",
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
			out := cmd.OutOrStdout()

			if month {
				printMonth(out, day, svc.MonthStatistics(ctx, day))
				return nil
			}
			printWeek(out, svc.WeekStatistics(ctx, day))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&month, "month", "m", false, "Month heatmap instead of the week view")
	cmd.Flags().StringVarP(&date, "date", "d", "today", "Any day of the week/month to show")

	return cmd
}

func printWeek(out io.Writer, stats []plan.DayStatistic) {
	fmt.Fprintln(out, ui.Heading(ui.IconChart, "Diese Woche"))
	for _, st := range stats {
		line := fmt.Sprintf("%s  %d/%d", ui.Key.Render(dateutil.WeekdayShort(st.Date)), st.CompletedCount, st.TotalCount)
		if st.Mood != nil {
			line += "  " + st.Mood.Emoji()
		}
		if st.TotalCount > 0 && st.CompletedCount == st.TotalCount {
			line += "  " + ui.Good.Render(ui.IconDone)
		}
		fmt.Fprintln(out, line)
	}
}

func printMonth(out io.Writer, day time.Time, stats []plan.DayStatistic) {
	fmt.Fprintln(out, ui.Heading(ui.IconChart, dateutil.FormatMonthYear(day)))
	fmt.Fprintln(out, ui.Muted.Render("Mo Di Mi Do Fr Sa So"))

	var row strings.Builder
	if len(stats) > 0 {
		// Pad the first week so columns line up Monday-first.
		row.WriteString(strings.Repeat("   ", dateutil.WeekdayIndex(stats[0].Date)-1))
	}
	for _, st := range stats {
		row.WriteString(ui.HeatmapCell(st) + " ")
		if dateutil.WeekdayIndex(st.Date) == 7 {
			fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
			row.Reset()
		}
	}
	if row.Len() > 0 {
		fmt.Fprintln(out, strings.TrimRight(row.String(), " "))
	}
}

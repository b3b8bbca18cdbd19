package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zenplan/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "zp",
	Short:         "Zen Planer — a mindful daily planner for the terminal",
	Long:          "Zen Planer keeps each day to at most five tasks, closes it with a short reflection, and tracks your streaks and mood over time.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newDoneCmd(),
		newEditCmd(),
		newRmCmd(),
		newMoveCmd(),
		newReorderCmd(),
		newFocusCmd(),
		newRepeatCmd(),
		newReflectCmd(),
		newStreakCmd(),
		newStatsCmd(),
		newMoodCmd(),
		newQuoteCmd(),
		newExportCmd(),
		newWipeCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

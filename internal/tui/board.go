// Package tui renders the interactive day board.
package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"zenplan/internal/plan"
	"zenplan/internal/ui"
)

// RunBoard blocks until the user quits the board.
func RunBoard(ctx context.Context, svc *plan.Service, theme string, out io.Writer) error {
	m := newDayModel(ctx, svc, ui.PaletteFor(theme), time.Now())
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zenplan/internal/plan"
)

// Zen Planer theme (CLI + TUI). Small on purpose: reusable styles, a
// few icons and the heatmap scale.

const (
	IconLeaf    = "🌿"
	IconDone    = "✅"
	IconOpen    = "⭕"
	IconMoon    = "🌙"
	IconFire    = "🔥"
	IconChart   = "📊"
	IconBell    = "🔔"
	IconLoop    = "🔁"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSparkle = "✨"
)

// Palette mirrors the app's selectable appearance themes.
type Palette struct {
	Accent    lipgloss.Color
	Secondary lipgloss.Color
	High      lipgloss.Color
	Medium    lipgloss.Color
	Low       lipgloss.Color
}

var palettes = map[string]Palette{
	"forest": {Accent: lipgloss.Color("65"), Secondary: lipgloss.Color("108"), High: lipgloss.Color("174"), Medium: lipgloss.Color("179"), Low: lipgloss.Color("108")},
	"ocean":  {Accent: lipgloss.Color("31"), Secondary: lipgloss.Color("110"), High: lipgloss.Color("167"), Medium: lipgloss.Color("180"), Low: lipgloss.Color("110")},
	"sand":   {Accent: lipgloss.Color("137"), Secondary: lipgloss.Color("144"), High: lipgloss.Color("174"), Medium: lipgloss.Color("180"), Low: lipgloss.Color("144")},
}

// PaletteFor returns the palette for a theme name, falling back to
// forest for unknown names.
func PaletteFor(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["forest"]
}

var (
	cGood  = lipgloss.Color("42")
	cWarn  = lipgloss.Color("214")
	cBad   = lipgloss.Color("196")
	cMuted = lipgloss.Color("244")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("65"))
	H2    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("108"))
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("108"))
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("65"))
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// PriorityDot renders the colored marker in front of a task line.
func PriorityDot(p plan.Priority, pal Palette) string {
	var c lipgloss.Color
	switch p {
	case plan.PriorityHigh:
		c = pal.High
	case plan.PriorityMedium:
		c = pal.Medium
	default:
		c = pal.Low
	}
	return lipgloss.NewStyle().Foreground(c).Render("●")
}

// Checkbox renders the completion marker of a task line.
func Checkbox(done bool) string {
	if done {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}

// MoodText renders a mood as emoji plus German name.
func MoodText(m plan.Mood) string {
	return m.Emoji() + " " + m.DisplayName()
}

// HeatmapCell maps a day's completion rate to a shaded block. Days
// without tasks stay blank.
func HeatmapCell(stat plan.DayStatistic) string {
	if stat.TotalCount == 0 {
		return Muted.Render("··")
	}
	rate := stat.CompletionRate()
	var c lipgloss.Color
	switch {
	case rate >= 1:
		c = lipgloss.Color("46")
	case rate >= 0.5:
		c = lipgloss.Color("40")
	case rate > 0:
		c = lipgloss.Color("28")
	default:
		c = lipgloss.Color("238")
	}
	return lipgloss.NewStyle().Foreground(c).Render("██")
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zenplan/internal/dateutil"
	"zenplan/internal/plan"
	"zenplan/internal/storage"
	"zenplan/internal/ui"
)

type dayModel struct {
	ctx context.Context
	svc *plan.Service
	pal ui.Palette

	day   time.Time
	tasks []storage.Task
	ref   *storage.Reflection

	selected int
	input    textinput.Model
	adding   bool

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	tasks []storage.Task
	ref   *storage.Reflection
	err   error
}

type mutatedMsg struct {
	log string
	err error
}

func newDayModel(ctx context.Context, svc *plan.Service, pal ui.Palette, day time.Time) dayModel {
	input := textinput.New()
	input.Placeholder = "Neue Aufgabe…"
	input.CharLimit = 100

	return dayModel{
		ctx:     ctx,
		svc:     svc,
		pal:     pal,
		day:     dateutil.StartOfDay(day),
		input:   input,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dayModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dayModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.ListForDay(m.ctx, m.day)
		if err != nil {
			return loadedMsg{err: err}
		}
		ref, err := m.svc.Reflection(m.ctx, m.day)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{tasks: tasks, ref: ref}
	}
}

func (m dayModel) toggleCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		task, err := m.svc.ToggleCompletion(m.ctx, id)
		if err != nil {
			return mutatedMsg{err: err}
		}
		if task.IsCompleted {
			return mutatedMsg{log: fmt.Sprintf("Erledigt: %s", task.Text)}
		}
		return mutatedMsg{log: fmt.Sprintf("Wieder offen: %s", task.Text)}
	}
}

func (m dayModel) moveCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		moved, err := m.svc.MoveToTomorrow(m.ctx, id, time.Now())
		if err != nil {
			return mutatedMsg{err: err}
		}
		if !moved {
			return mutatedMsg{log: "Morgen ist schon voll."}
		}
		return mutatedMsg{log: "Auf morgen verschoben."}
	}
}

func (m dayModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.svc.DeleteTask(m.ctx, id); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{log: "Gelöscht."}
	}
}

func (m dayModel) addCmd(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.svc.AddTask(m.ctx, plan.AddTaskInput{
			Text:     text,
			Priority: plan.DefaultPriority,
			Date:     m.day,
		})
		if err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{log: "Hinzugefügt."}
	}
}

func (m dayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.tasks = msg.tasks
		m.ref = msg.ref
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil

	case mutatedMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
			return m, nil
		}
		m.lastLog = msg.log
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.adding {
			switch msg.String() {
			case "enter":
				text := strings.TrimSpace(m.input.Value())
				m.adding = false
				m.input.Reset()
				if text == "" {
					return m, nil
				}
				return m, m.addCmd(text)
			case "esc":
				m.adding = false
				m.input.Reset()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "a":
			if len(m.tasks) >= plan.MaxTasksPerDay {
				m.lastLog = fmt.Sprintf("Maximal %d Aufgaben pro Tag.", plan.MaxTasksPerDay)
				return m, nil
			}
			m.adding = true
			m.input.Focus()
			return m, textinput.Blink
		case "c", " ":
			if t := m.selectedTask(); t != nil {
				return m, m.toggleCmd(t.ID)
			}
			return m, nil
		case "m":
			if t := m.selectedTask(); t != nil {
				return m, m.moveCmd(t.ID)
			}
			return m, nil
		case "d":
			if t := m.selectedTask(); t != nil {
				return m, m.deleteCmd(t.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m dayModel) selectedTask() *storage.Task {
	if m.selected < 0 || m.selected >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.selected]
}

func (m dayModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconLeaf, dateutil.FormatDayLong(m.day)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading…\n")
		return b.String()
	}

	if len(m.tasks) == 0 {
		b.WriteString(ui.Muted.Render("(keine Aufgaben)"))
		b.WriteString("\n")
	}
	completed := 0
	for i, t := range m.tasks {
		if t.IsCompleted {
			completed++
		}
		line := fmt.Sprintf("%s %s %s", ui.Checkbox(t.IsCompleted), ui.PriorityDot(plan.Priority(t.Priority), m.pal), t.Text)
		if t.IsRepeating {
			line += " " + ui.IconLoop
		}
		if t.Deadline != nil {
			line += " " + ui.Muted.Render(t.Deadline.Format("15:04"))
		}
		cursor := "  "
		if i == m.selected && !m.adding {
			cursor = ui.SelectedRow.Render("➤") + " "
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.LabelValue("Erledigt", fmt.Sprintf("%d/%d", completed, len(m.tasks))))
	if m.ref != nil {
		b.WriteString("  " + ui.IconMoon + " " + ui.MoodText(plan.Mood(m.ref.Mood)))
	}
	b.WriteString("\n")

	if m.adding {
		b.WriteString("\n" + m.input.View() + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render("a: neu  c/space: erledigt  m: auf morgen  d: löschen  r: neu laden  q: beenden"))
	b.WriteString("\n" + m.lastLog + "\n")
	return b.String()
}

package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"zenplan/internal/dateutil"
	"zenplan/internal/storage"
)

// Export record shapes. Field names, date format (ISO-8601) and record
// ordering (tasks before reflections, each newest bucket date first)
// are a compatibility contract; do not change them.

type taskExport struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	Priority    string `json:"priority"`
	IsCompleted bool   `json:"isCompleted"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

type reflectionExport struct {
	Type             string  `json:"type"`
	Date             string  `json:"date"`
	CompletedCount   int     `json:"completedCount"`
	TotalCount       int     `json:"totalCount"`
	Mood             string  `json:"mood"`
	WentWell         *string `json:"wentWell,omitempty"`
	ShiftConsciously *string `json:"shiftConsciously,omitempty"`
}

func isoDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ExportJSON serializes every task and reflection as one flat JSON
// array. Degrades to "[]" on storage failure.
func (s *Service) ExportJSON(ctx context.Context) string {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return "[]"
	}
	refs, err := s.reflections.ListAll(ctx)
	if err != nil {
		return "[]"
	}

	records := make([]any, 0, len(tasks)+len(refs))
	for _, t := range tasks {
		records = append(records, taskExport{
			Type:        "task",
			Text:        t.Text,
			Priority:    t.Priority,
			IsCompleted: t.IsCompleted,
			Date:        isoDate(t.Date),
			CreatedAt:   isoDate(t.CreatedAt),
		})
	}
	for _, r := range refs {
		records = append(records, reflectionExport{
			Type:             "reflection",
			Date:             isoDate(r.Date),
			CompletedCount:   r.CompletedCount,
			TotalCount:       r.TotalCount,
			Mood:             r.Mood,
			WentWell:         r.WentWell,
			ShiftConsciously: r.ShiftConsciously,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}

// ExportMarkdown renders one section per distinct task day, newest
// first: a checklist in sort order, then the day's reflection block if
// one exists. Degrades to the bare header on storage failure.
func (s *Service) ExportMarkdown(ctx context.Context) string {
	var md strings.Builder
	md.WriteString("# Zen Planer Export\n\n")

	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return md.String()
	}
	refs, err := s.reflections.ListAll(ctx)
	if err != nil {
		return md.String()
	}

	// ListAll is newest-first with tasks already in sort order inside
	// each day, so grouping by consecutive day keeps both orderings.
	for i := 0; i < len(tasks); {
		day := dateutil.StartOfDay(tasks[i].Date)
		md.WriteString("## " + dateutil.FormatDayLong(day) + "\n\n")

		for ; i < len(tasks) && dateutil.SameDay(tasks[i].Date, day); i++ {
			check := "[ ]"
			if tasks[i].IsCompleted {
				check = "[x]"
			}
			fmt.Fprintf(&md, "- %s %s (%s)\n", check, tasks[i].Text, Priority(tasks[i].Priority).DisplayName())
		}

		if ref := reflectionForDay(refs, day); ref != nil {
			mood := Mood(ref.Mood)
			fmt.Fprintf(&md, "\n**Stimmung:** %s %s\n", mood.Emoji(), mood.DisplayName())
			fmt.Fprintf(&md, "**Erledigt:** %d/%d\n", ref.CompletedCount, ref.TotalCount)
			if ref.WentWell != nil && *ref.WentWell != "" {
				fmt.Fprintf(&md, "**Was lief gut:** %s\n", *ref.WentWell)
			}
			if ref.ShiftConsciously != nil && *ref.ShiftConsciously != "" {
				fmt.Fprintf(&md, "**Bewusst verschoben:** %s\n", *ref.ShiftConsciously)
			}
		}
		md.WriteString("\n---\n\n")
	}

	return md.String()
}

func reflectionForDay(refs []storage.Reflection, day time.Time) *storage.Reflection {
	for i := range refs {
		if dateutil.SameDay(refs[i].Date, day) {
			return &refs[i]
		}
	}
	return nil
}

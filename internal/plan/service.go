// Package plan implements the planner domain: day-bucketed tasks with a
// five-per-day cap, evening reflections, and the statistics derived
// from both.
package plan

import (
	"database/sql"
	"strings"
	"time"

	"zenplan/internal/remind"
	"zenplan/internal/storage"
)

type Service struct {
	db          *sql.DB
	tasks       *storage.TaskRepo
	reflections *storage.ReflectionRepo
	scheduler   remind.Scheduler
	notifier    remind.Notifier
}

// NewService wires the domain service over an open database. scheduler
// and notifier may be nil; no-op implementations are used then.
func NewService(db *sql.DB, scheduler remind.Scheduler, notifier remind.Notifier) *Service {
	if scheduler == nil {
		scheduler = remind.NopScheduler{}
	}
	if notifier == nil {
		notifier = remind.NopNotifier{}
	}
	return &Service{
		db:          db,
		tasks:       storage.NewTaskRepo(db),
		reflections: storage.NewReflectionRepo(db),
		scheduler:   scheduler,
		notifier:    notifier,
	}
}

func (s *Service) TaskRepo() *storage.TaskRepo             { return s.tasks }
func (s *Service) ReflectionRepo() *storage.ReflectionRepo { return s.reflections }

// truncateRunes hard-truncates s to at most max runes. Overlong text is
// never rejected, only shortened.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func normalizeText(text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", errTextRequired
	}
	return truncateRunes(t, maxTaskTextLen), nil
}

const (
	maxTaskTextLen       = 100
	maxReflectionTextLen = 200
)

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalOffsetPtr(a *string, b *ReminderOffset) bool {
	if a == nil || b == nil {
		return (a == nil) == (b == nil)
	}
	return ReminderOffset(*a) == *b
}

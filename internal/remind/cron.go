package remind

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// CronScheduler delivers reminders in-process via a cron runner, one
// one-shot entry per task. It only covers the lifetime of the process;
// pending entries are not persisted across restarts.
type CronScheduler struct {
	cron *cron.Cron
	out  io.Writer
	now  func() time.Time

	mu      sync.Mutex
	entries map[int64]cron.EntryID
}

func NewCronScheduler(loc *time.Location, out io.Writer) *CronScheduler {
	return &CronScheduler{
		cron:    cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		out:     out,
		now:     time.Now,
		entries: make(map[int64]cron.EntryID),
	}
}

func (s *CronScheduler) Start() {
	s.cron.Start()
}

func (s *CronScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Schedule registers a one-shot reminder. A fire time already in the
// past is skipped silently. Re-scheduling a task replaces its entry.
func (s *CronScheduler) Schedule(taskID int64, fireAt time.Time, title, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[taskID]; ok {
		s.cron.Remove(old)
		delete(s.entries, taskID)
	}
	if !fireAt.After(s.now()) {
		return
	}

	id := s.cron.Schedule(oneShot{at: fireAt}, cron.FuncJob(func() {
		fmt.Fprintf(s.out, "🔔 %s: %s\n", title, body)
		s.Cancel(taskID)
	}))
	s.entries[taskID] = id
}

func (s *CronScheduler) Cancel(taskID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.entries[taskID]; ok {
		s.cron.Remove(id)
		delete(s.entries, taskID)
	}
}

func (s *CronScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for taskID, id := range s.entries {
		s.cron.Remove(id)
		delete(s.entries, taskID)
	}
}

// Pending reports how many reminders are currently scheduled.
func (s *CronScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// oneShot fires exactly once at the given time.
type oneShot struct {
	at time.Time
}

func (o oneShot) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}
	return time.Time{}
}

// Package remind holds the reminder-delivery and feedback boundaries.
// The planner core calls these fire-and-forget: a failed or skipped
// reminder never fails the task operation that requested it.
package remind

import "time"

// Scheduler delivers task reminders. Scheduling twice for the same task
// id replaces the pending reminder, never duplicates it.
type Scheduler interface {
	Schedule(taskID int64, fireAt time.Time, title, body string)
	Cancel(taskID int64)
	CancelAll()
}

// Notifier surfaces success/feedback signals (the desktop stand-in for
// haptics). Best-effort only.
type Notifier interface {
	Success(msg string)
	Tap()
}

// FireTime computes when a reminder should fire: the deadline minus the
// offset lead time. Computed once at scheduling time.
func FireTime(deadline time.Time, offset time.Duration) time.Time {
	return deadline.Add(-offset)
}

// NopScheduler ignores every request.
type NopScheduler struct{}

func (NopScheduler) Schedule(int64, time.Time, string, string) {}
func (NopScheduler) Cancel(int64)                              {}
func (NopScheduler) CancelAll()                                {}

// NopNotifier ignores every signal.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Tap()           {}

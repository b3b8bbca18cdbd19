package remind

import "time"

// RecordingScheduler captures scheduling calls for tests.
type RecordingScheduler struct {
	Scheduled map[int64]time.Time
	Cancelled []int64
	AllCalls  int
}

func NewRecordingScheduler() *RecordingScheduler {
	return &RecordingScheduler{Scheduled: make(map[int64]time.Time)}
}

func (r *RecordingScheduler) Schedule(taskID int64, fireAt time.Time, title, body string) {
	r.Scheduled[taskID] = fireAt
}

func (r *RecordingScheduler) Cancel(taskID int64) {
	r.Cancelled = append(r.Cancelled, taskID)
	delete(r.Scheduled, taskID)
}

func (r *RecordingScheduler) CancelAll() {
	r.AllCalls++
	r.Scheduled = make(map[int64]time.Time)
}

// RecordingNotifier counts feedback signals for tests.
type RecordingNotifier struct {
	Successes []string
	Taps      int
}

func (r *RecordingNotifier) Success(msg string) { r.Successes = append(r.Successes, msg) }
func (r *RecordingNotifier) Tap()               { r.Taps++ }

package remind

import (
	"io"
	"testing"
	"time"
)

func TestFireTime(t *testing.T) {
	deadline := time.Date(2025, time.February, 7, 18, 0, 0, 0, time.Local)
	got := FireTime(deadline, 30*time.Minute)
	want := time.Date(2025, time.February, 7, 17, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("FireTime = %v, want %v", got, want)
	}
}

func TestCronSchedulerSkipsPastFireTimes(t *testing.T) {
	s := NewCronScheduler(time.Local, io.Discard)
	s.now = func() time.Time { return time.Date(2025, time.February, 7, 12, 0, 0, 0, time.Local) }

	s.Schedule(1, time.Date(2025, time.February, 7, 11, 0, 0, 0, time.Local), "Zen Planer", "too late")
	if s.Pending() != 0 {
		t.Fatalf("past fire time should be skipped, pending=%d", s.Pending())
	}
}

func TestCronSchedulerReplacesAndCancels(t *testing.T) {
	s := NewCronScheduler(time.Local, io.Discard)
	s.now = func() time.Time { return time.Date(2025, time.February, 7, 12, 0, 0, 0, time.Local) }
	fire := time.Date(2025, time.February, 7, 17, 30, 0, 0, time.Local)

	s.Schedule(1, fire, "Zen Planer", "first")
	s.Schedule(1, fire.Add(time.Hour), "Zen Planer", "replaced")
	if s.Pending() != 1 {
		t.Fatalf("re-scheduling must replace, pending=%d", s.Pending())
	}

	s.Schedule(2, fire, "Zen Planer", "other")
	s.Cancel(1)
	if s.Pending() != 1 {
		t.Fatalf("after cancel pending=%d, want 1", s.Pending())
	}

	s.CancelAll()
	if s.Pending() != 0 {
		t.Fatalf("after cancel all pending=%d, want 0", s.Pending())
	}
}

func TestOneShotNext(t *testing.T) {
	at := time.Date(2025, time.February, 7, 17, 30, 0, 0, time.Local)
	o := oneShot{at: at}
	if got := o.Next(at.Add(-time.Hour)); !got.Equal(at) {
		t.Fatalf("Next before fire = %v, want %v", got, at)
	}
	if got := o.Next(at); !got.IsZero() {
		t.Fatalf("Next at/after fire = %v, want zero", got)
	}
}

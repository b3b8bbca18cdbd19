package plan

import (
	"context"
	"time"

	"zenplan/internal/dateutil"
	"zenplan/internal/storage"
)

// DayStatistic is the per-day aggregate behind the week view and the
// month heatmap. Counts come from the day's reflection when one exists,
// otherwise live from the day's tasks; Mood is set only when a
// reflection exists.
type DayStatistic struct {
	Date           time.Time
	CompletedCount int
	TotalCount     int
	Mood           *Mood
}

// CompletionRate returns the day's completion quota in [0,1].
func (d DayStatistic) CompletionRate() float64 {
	if d.TotalCount <= 0 {
		return 0
	}
	return float64(d.CompletedCount) / float64(d.TotalCount)
}

// Statistics reads degrade to empty results on storage failure: the
// views they feed treat everything here as advisory.

// WeekStatistics returns one DayStatistic per day of the ISO week
// containing date, Monday first.
func (s *Service) WeekStatistics(ctx context.Context, date time.Time) []DayStatistic {
	days := dateutil.DaysOfWeek(date)
	out := make([]DayStatistic, 0, len(days))
	for _, day := range days {
		out = append(out, s.dayStatistic(ctx, day))
	}
	return out
}

// MonthStatistics returns one DayStatistic per calendar day of the
// month containing date.
func (s *Service) MonthStatistics(ctx context.Context, date time.Time) []DayStatistic {
	days := dateutil.DaysOfMonth(date)
	out := make([]DayStatistic, 0, len(days))
	for _, day := range days {
		out = append(out, s.dayStatistic(ctx, day))
	}
	return out
}

func (s *Service) dayStatistic(ctx context.Context, day time.Time) DayStatistic {
	stat := DayStatistic{Date: day}

	ref, err := s.Reflection(ctx, day)
	if err == nil && ref != nil {
		mood := Mood(ref.Mood)
		stat.CompletedCount = ref.CompletedCount
		stat.TotalCount = ref.TotalCount
		stat.Mood = &mood
		return stat
	}

	tasks, err := s.ListForDay(ctx, day)
	if err != nil {
		return stat
	}
	for _, t := range tasks {
		if t.IsCompleted {
			stat.CompletedCount++
		}
	}
	stat.TotalCount = len(tasks)
	return stat
}

// MoodSample is one point of the mood trend.
type MoodSample struct {
	Date time.Time
	Mood Mood
}

// MoodHistory returns the moods of the last n days, oldest first.
func (s *Service) MoodHistory(ctx context.Context, days int, now time.Time) []MoodSample {
	refs, err := s.reflections.ListSince(ctx, dateutil.DaysAgo(days, now))
	if err != nil {
		return nil
	}
	// ListSince is newest-first; the trend reads oldest-first.
	out := make([]MoodSample, 0, len(refs))
	for i := len(refs) - 1; i >= 0; i-- {
		out = append(out, MoodSample{Date: refs[i].Date, Mood: Mood(refs[i].Mood)})
	}
	return out
}

// TaskStreak counts consecutive days with at least one task, walking
// backward from now's day. An empty today does not break the streak;
// the walk then starts from yesterday.
func (s *Service) TaskStreak(ctx context.Context, now time.Time) int {
	check := dateutil.StartOfDay(now)

	tasks, err := s.ListForDay(ctx, check)
	if err != nil {
		return 0
	}
	if len(tasks) == 0 {
		check = dateutil.DaysAgo(1, now)
	}

	streak := 0
	for {
		tasks, err := s.ListForDay(ctx, check)
		if err != nil || len(tasks) == 0 {
			return streak
		}
		streak++
		check = dateutil.DaysAgo(1, check)
	}
}

// DeleteAllData irreversibly removes every task and reflection and
// cancels all pending reminders.
func (s *Service) DeleteAllData(ctx context.Context) error {
	if err := storage.WipeAll(ctx, s.db); err != nil {
		return err
	}
	s.scheduler.CancelAll()
	return nil
}

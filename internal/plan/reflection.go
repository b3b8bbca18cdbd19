package plan

import (
	"context"
	"time"

	"zenplan/internal/dateutil"
	"zenplan/internal/storage"
)

// Reflection returns the reflection bucketed to date's day, or nil.
func (s *Service) Reflection(ctx context.Context, date time.Time) (*storage.Reflection, error) {
	return s.reflections.GetForDay(ctx, dateutil.StartOfDay(date), dateutil.EndOfDay(date))
}

// IsTodayComplete reports whether a reflection exists for now's day.
func (s *Service) IsTodayComplete(ctx context.Context, now time.Time) (bool, error) {
	ref, err := s.Reflection(ctx, now)
	if err != nil {
		return false, err
	}
	return ref != nil, nil
}

// ShouldPromptReflection reports whether the evening reflection prompt
// is due: no reflection for today yet and local time has reached
// reflectionHour:00.
func (s *Service) ShouldPromptReflection(ctx context.Context, now time.Time, reflectionHour int) (bool, error) {
	done, err := s.IsTodayComplete(ctx, now)
	if err != nil {
		return false, err
	}
	if done {
		return false, nil
	}
	return dateutil.IsAfterTime(reflectionHour, 0, now), nil
}

// Reflections returns the reflections of the last n days, newest first.
func (s *Service) Reflections(ctx context.Context, lastDays int, now time.Time) ([]storage.Reflection, error) {
	return s.reflections.ListSince(ctx, dateutil.DaysAgo(lastDays, now))
}

type SaveReflectionInput struct {
	Date             time.Time
	CompletedCount   int
	TotalCount       int
	WentWell         *string
	ShiftConsciously *string
	Mood             Mood
}

// SaveReflection stores the day's reflection, replacing any existing
// one for that day. Free-text fields are truncated to 200 characters.
func (s *Service) SaveReflection(ctx context.Context, in SaveReflectionInput) (*storage.Reflection, error) {
	mood := in.Mood
	if !mood.IsValid() {
		mood = DefaultMood
	}

	day := dateutil.StartOfDay(in.Date)
	end := dateutil.EndOfDay(in.Date)
	if err := s.reflections.DeleteForDay(ctx, day, end); err != nil {
		return nil, err
	}

	if _, err := s.reflections.Insert(ctx, storage.ReflectionInsert{
		Date:             day,
		CompletedCount:   in.CompletedCount,
		TotalCount:       in.TotalCount,
		WentWell:         truncatePtr(in.WentWell, maxReflectionTextLen),
		ShiftConsciously: truncatePtr(in.ShiftConsciously, maxReflectionTextLen),
		Mood:             string(mood),
		CreatedAt:        time.Now(),
	}); err != nil {
		return nil, err
	}

	s.notifier.Success("Reflexion gespeichert")
	return s.reflections.GetForDay(ctx, day, end)
}

// ReflectionStreak counts consecutive days with a reflection, walking
// backward from now's day. A still-unreflected today does not break the
// streak; the walk then starts from yesterday.
func (s *Service) ReflectionStreak(ctx context.Context, now time.Time) (int, error) {
	check := dateutil.StartOfDay(now)

	ref, err := s.Reflection(ctx, check)
	if err != nil {
		return 0, err
	}
	if ref == nil {
		check = dateutil.DaysAgo(1, now)
	}

	streak := 0
	for {
		ref, err := s.Reflection(ctx, check)
		if err != nil {
			return streak, err
		}
		if ref == nil {
			return streak, nil
		}
		streak++
		check = dateutil.DaysAgo(1, check)
	}
}

func truncatePtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	v := truncateRunes(*s, max)
	return &v
}

package plan

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestSaveReflectionReplacesSameDay(t *testing.T) {
	svc, _, notif := newTestService(t)
	ctx := context.Background()

	first, err := svc.SaveReflection(ctx, SaveReflectionInput{
		Date: baseDay, CompletedCount: 2, TotalCount: 4,
		WentWell: strPtr("Morgenroutine"), Mood: MoodGood,
	})
	if err != nil {
		t.Fatalf("SaveReflection: %v", err)
	}

	second, err := svc.SaveReflection(ctx, SaveReflectionInput{
		Date: baseDay.Add(22 * time.Hour), CompletedCount: 3, TotalCount: 4,
		ShiftConsciously: strPtr("Steuererklärung"), Mood: MoodGreat,
	})
	if err != nil {
		t.Fatalf("SaveReflection second: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("replace should insert a fresh record")
	}

	refs, err := svc.Reflections(ctx, 7, baseDay)
	if err != nil {
		t.Fatalf("Reflections: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("day has %d reflections, want 1", len(refs))
	}
	got := refs[0]
	if got.CompletedCount != 3 || got.Mood != string(MoodGreat) {
		t.Fatalf("kept reflection = %+v, want the second call's values", got)
	}
	if got.WentWell != nil {
		t.Fatal("first call's WentWell should be gone")
	}
	if !got.Date.Equal(baseDay) {
		t.Fatalf("bucket date = %v, want normalized %v", got.Date, baseDay)
	}
	if len(notif.Successes) != 2 {
		t.Fatalf("success signals = %d, want 2", len(notif.Successes))
	}
}

func TestSaveReflectionTruncatesFreeText(t *testing.T) {
	svc, _, _ := newTestService(t)

	long := strings.Repeat("a", 250)
	ref, err := svc.SaveReflection(context.Background(), SaveReflectionInput{
		Date: baseDay, CompletedCount: 1, TotalCount: 1,
		WentWell: &long, ShiftConsciously: &long, Mood: MoodNeutral,
	})
	if err != nil {
		t.Fatalf("SaveReflection: %v", err)
	}
	if got := len([]rune(*ref.WentWell)); got != 200 {
		t.Fatalf("WentWell truncated to %d runes, want 200", got)
	}
	if got := len([]rune(*ref.ShiftConsciously)); got != 200 {
		t.Fatalf("ShiftConsciously truncated to %d runes, want 200", got)
	}
}

func TestReflectionStreakSkipsUnreflectedToday(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	now := baseDay.Add(21 * time.Hour)

	// Reflections for yesterday, the day before and the one before
	// that; none for today and none four days back.
	for n := 1; n <= 3; n++ {
		if _, err := svc.SaveReflection(ctx, SaveReflectionInput{
			Date: baseDay.AddDate(0, 0, -n), CompletedCount: 1, TotalCount: 2, Mood: MoodNeutral,
		}); err != nil {
			t.Fatalf("SaveReflection -%dd: %v", n, err)
		}
	}

	streak, err := svc.ReflectionStreak(ctx, now)
	if err != nil {
		t.Fatalf("ReflectionStreak: %v", err)
	}
	if streak != 3 {
		t.Fatalf("streak = %d, want 3", streak)
	}

	// Reflecting today extends the streak to 4.
	if _, err := svc.SaveReflection(ctx, SaveReflectionInput{
		Date: now, CompletedCount: 2, TotalCount: 2, Mood: MoodGood,
	}); err != nil {
		t.Fatalf("SaveReflection today: %v", err)
	}
	streak, err = svc.ReflectionStreak(ctx, now)
	if err != nil {
		t.Fatalf("ReflectionStreak: %v", err)
	}
	if streak != 4 {
		t.Fatalf("streak = %d, want 4", streak)
	}
}

func TestShouldPromptReflection(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	afternoon := baseDay.Add(14 * time.Hour)
	evening := baseDay.Add(20 * time.Hour)

	prompt, err := svc.ShouldPromptReflection(ctx, afternoon, 20)
	if err != nil {
		t.Fatalf("ShouldPromptReflection: %v", err)
	}
	if prompt {
		t.Fatal("no prompt before the reflection hour")
	}

	prompt, err = svc.ShouldPromptReflection(ctx, evening, 20)
	if err != nil {
		t.Fatalf("ShouldPromptReflection: %v", err)
	}
	if !prompt {
		t.Fatal("prompt expected at the reflection hour")
	}

	if _, err := svc.SaveReflection(ctx, SaveReflectionInput{
		Date: evening, CompletedCount: 0, TotalCount: 0, Mood: MoodNeutral,
	}); err != nil {
		t.Fatalf("SaveReflection: %v", err)
	}
	prompt, err = svc.ShouldPromptReflection(ctx, evening, 20)
	if err != nil {
		t.Fatalf("ShouldPromptReflection: %v", err)
	}
	if prompt {
		t.Fatal("no prompt once today's reflection exists")
	}

	done, err := svc.IsTodayComplete(ctx, evening)
	if err != nil {
		t.Fatalf("IsTodayComplete: %v", err)
	}
	if !done {
		t.Fatal("today should be complete after save")
	}
}

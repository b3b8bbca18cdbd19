package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestDayCapEnforced(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < MaxTasksPerDay; i++ {
		mustAdd(t, svc, AddTaskInput{Text: fmt.Sprintf("Task %d", i), Priority: PriorityMedium, Date: baseDay})
	}

	ok, err := svc.CanAdd(ctx, baseDay)
	if err != nil {
		t.Fatalf("CanAdd: %v", err)
	}
	if ok {
		t.Fatal("CanAdd should be false on a full day")
	}

	_, err = svc.AddTask(ctx, AddTaskInput{Text: "One too many", Priority: PriorityLow, Date: baseDay})
	var capErr CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("want CapacityError, got %v", err)
	}
	if capErr.Limit != MaxTasksPerDay {
		t.Fatalf("capacity limit = %d, want %d", capErr.Limit, MaxTasksPerDay)
	}

	tasks, err := svc.ListForDay(ctx, baseDay)
	if err != nil {
		t.Fatalf("ListForDay: %v", err)
	}
	if len(tasks) != MaxTasksPerDay {
		t.Fatalf("day has %d tasks after rejected add, want %d", len(tasks), MaxTasksPerDay)
	}
}

func TestAddAssignsTrailingSortOrderAndTruncates(t *testing.T) {
	svc, _, _ := newTestService(t)

	a := mustAdd(t, svc, AddTaskInput{Text: "First", Priority: PriorityHigh, Date: baseDay})
	b := mustAdd(t, svc, AddTaskInput{Text: "Second", Priority: PriorityLow, Date: baseDay})
	if a.SortOrder != 0 || b.SortOrder != 1 {
		t.Fatalf("sort orders = %d, %d, want 0, 1", a.SortOrder, b.SortOrder)
	}

	long := strings.Repeat("x", 150)
	c := mustAdd(t, svc, AddTaskInput{Text: long, Priority: PriorityMedium, Date: baseDay})
	if len([]rune(c.Text)) != 100 {
		t.Fatalf("text truncated to %d runes, want 100", len([]rune(c.Text)))
	}

	if !c.Date.Equal(baseDay) {
		t.Fatalf("bucket date = %v, want normalized %v", c.Date, baseDay)
	}
}

func TestToggleCompletionRoundTrip(t *testing.T) {
	svc, sched, notif := newTestService(t)
	ctx := context.Background()

	deadline := baseDay.Add(18 * time.Hour)
	offset := OffsetThirtyMin
	task := mustAdd(t, svc, AddTaskInput{
		Text: "Meditate", Priority: PriorityHigh, Date: baseDay,
		Deadline: &deadline, ReminderOffset: &offset,
	})

	if _, ok := sched.Scheduled[task.ID]; !ok {
		t.Fatal("add should schedule a reminder")
	}

	done, err := svc.ToggleCompletion(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleCompletion: %v", err)
	}
	if !done.IsCompleted || done.CompletedAt == nil {
		t.Fatalf("completed task = %+v, want completed with timestamp", done)
	}
	if _, ok := sched.Scheduled[task.ID]; ok {
		t.Fatal("completing should cancel the reminder")
	}
	if len(notif.Successes) != 1 {
		t.Fatalf("success signals = %d, want 1", len(notif.Successes))
	}

	open, err := svc.ToggleCompletion(ctx, task.ID)
	if err != nil {
		t.Fatalf("ToggleCompletion back: %v", err)
	}
	if open.IsCompleted || open.CompletedAt != nil {
		t.Fatalf("reopened task = %+v, want incomplete with nil CompletedAt", open)
	}
	if _, ok := sched.Scheduled[task.ID]; !ok {
		t.Fatal("un-completing should re-schedule from stored deadline/offset")
	}
}

func TestToggleCompletionNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ToggleCompletion(context.Background(), 999)
	var nf NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
}

func TestUpdateTaskReschedulesOnlyOnChange(t *testing.T) {
	svc, sched, _ := newTestService(t)
	ctx := context.Background()

	deadline := baseDay.Add(18 * time.Hour)
	offset := OffsetOneHour
	task := mustAdd(t, svc, AddTaskInput{
		Text: "Call", Priority: PriorityMedium, Date: baseDay,
		Deadline: &deadline, ReminderOffset: &offset,
	})
	firstFire := sched.Scheduled[task.ID]
	cancels := len(sched.Cancelled)

	// Text-only edit: reminder untouched.
	if _, err := svc.UpdateTask(ctx, task.ID, UpdateTaskInput{
		Text: "Call mom", Priority: PriorityMedium,
		Deadline: &deadline, ReminderOffset: &offset,
	}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if len(sched.Cancelled) != cancels {
		t.Fatal("unchanged deadline/offset must not cancel the reminder")
	}

	// Offset change: cancel + re-schedule.
	newOffset := OffsetFiveMin
	if _, err := svc.UpdateTask(ctx, task.ID, UpdateTaskInput{
		Text: "Call mom", Priority: PriorityMedium,
		Deadline: &deadline, ReminderOffset: &newOffset,
	}); err != nil {
		t.Fatalf("UpdateTask offset: %v", err)
	}
	if len(sched.Cancelled) != cancels+1 {
		t.Fatal("changed offset must cancel the old reminder")
	}
	secondFire, ok := sched.Scheduled[task.ID]
	if !ok {
		t.Fatal("changed offset must re-schedule")
	}
	if !secondFire.After(firstFire) {
		t.Fatalf("fire times: first %v, second %v, want later second", firstFire, secondFire)
	}
}

func TestDeleteTaskCancelsReminder(t *testing.T) {
	svc, sched, _ := newTestService(t)
	ctx := context.Background()

	deadline := baseDay.Add(12 * time.Hour)
	offset := OffsetAtTime
	task := mustAdd(t, svc, AddTaskInput{
		Text: "Water plants", Priority: PriorityLow, Date: baseDay,
		Deadline: &deadline, ReminderOffset: &offset,
	})

	if err := svc.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, ok := sched.Scheduled[task.ID]; ok {
		t.Fatal("delete should cancel the reminder")
	}
	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatal("task should be gone")
	}
}

func TestReorder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	t1 := mustAdd(t, svc, AddTaskInput{Text: "t1", Priority: PriorityMedium, Date: baseDay})
	t2 := mustAdd(t, svc, AddTaskInput{Text: "t2", Priority: PriorityMedium, Date: baseDay})
	t3 := mustAdd(t, svc, AddTaskInput{Text: "t3", Priority: PriorityMedium, Date: baseDay})

	if err := svc.Reorder(ctx, []int64{t3.ID, t1.ID, t2.ID}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	tasks, err := svc.ListForDay(ctx, baseDay)
	if err != nil {
		t.Fatalf("ListForDay: %v", err)
	}
	want := []string{"t3", "t1", "t2"}
	for i, w := range want {
		if tasks[i].Text != w {
			t.Fatalf("position %d = %q, want %q", i, tasks[i].Text, w)
		}
	}
}

func TestMoveToTomorrowResetsState(t *testing.T) {
	svc, sched, _ := newTestService(t)
	ctx := context.Background()
	now := baseDay.Add(10 * time.Hour)

	deadline := baseDay.Add(18 * time.Hour)
	offset := OffsetTwoHours
	task := mustAdd(t, svc, AddTaskInput{
		Text: "Write report", Priority: PriorityHigh, Date: baseDay,
		Deadline: &deadline, ReminderOffset: &offset, IsRepeating: true,
	})
	if _, err := svc.ToggleCompletion(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	tomorrow := baseDay.AddDate(0, 0, 1)
	existing := mustAdd(t, svc, AddTaskInput{Text: "Already there", Priority: PriorityLow, Date: tomorrow})

	moved, err := svc.MoveToTomorrow(ctx, task.ID, now)
	if err != nil {
		t.Fatalf("MoveToTomorrow: %v", err)
	}
	if !moved {
		t.Fatal("expected the move to happen")
	}

	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Date.Equal(tomorrow) {
		t.Fatalf("bucket date = %v, want %v", got.Date, tomorrow)
	}
	if got.IsCompleted || got.CompletedAt != nil {
		t.Fatal("moved task must start incomplete")
	}
	if got.Deadline != nil || got.ReminderOffset != nil || got.IsRepeating {
		t.Fatalf("moved task must be clean, got %+v", got)
	}
	if got.SortOrder <= existing.SortOrder {
		t.Fatalf("moved task sort order %d should trail existing %d", got.SortOrder, existing.SortOrder)
	}
	if _, ok := sched.Scheduled[task.ID]; ok {
		t.Fatal("move should cancel the reminder")
	}
}

func TestMoveToTomorrowFullDayIsSilentNoop(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	now := baseDay.Add(10 * time.Hour)
	tomorrow := baseDay.AddDate(0, 0, 1)

	for i := 0; i < MaxTasksPerDay; i++ {
		mustAdd(t, svc, AddTaskInput{Text: fmt.Sprintf("Full %d", i), Priority: PriorityMedium, Date: tomorrow})
	}
	task := mustAdd(t, svc, AddTaskInput{Text: "Stuck today", Priority: PriorityMedium, Date: baseDay})

	moved, err := svc.MoveToTomorrow(ctx, task.ID, now)
	if err != nil {
		t.Fatalf("MoveToTomorrow: %v", err)
	}
	if moved {
		t.Fatal("move into a full day must silently not happen")
	}

	got, err := svc.TaskRepo().Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.Date.Equal(baseDay) {
		t.Fatalf("task moved anyway: %v", got.Date)
	}
}

func TestNextOpenTaskFocusFlow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	a := mustAdd(t, svc, AddTaskInput{Text: "A", Priority: PriorityHigh, Date: baseDay})
	b := mustAdd(t, svc, AddTaskInput{Text: "B", Priority: PriorityLow, Date: baseDay})

	next, err := svc.NextOpenTask(ctx, baseDay)
	if err != nil {
		t.Fatalf("NextOpenTask: %v", err)
	}
	if next == nil || next.ID != a.ID {
		t.Fatalf("next = %+v, want A", next)
	}

	if _, err := svc.ToggleCompletion(ctx, a.ID); err != nil {
		t.Fatalf("complete A: %v", err)
	}
	next, err = svc.NextOpenTask(ctx, baseDay)
	if err != nil {
		t.Fatalf("NextOpenTask: %v", err)
	}
	if next == nil || next.ID != b.ID {
		t.Fatalf("next = %+v, want B", next)
	}

	if _, err := svc.ToggleCompletion(ctx, b.ID); err != nil {
		t.Fatalf("complete B: %v", err)
	}
	next, err = svc.NextOpenTask(ctx, baseDay)
	if err != nil {
		t.Fatalf("NextOpenTask: %v", err)
	}
	if next != nil {
		t.Fatalf("next = %+v, want none", next)
	}
}

func TestPropagateRepeatingIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	yesterday := baseDay.AddDate(0, 0, -1)

	mustAdd(t, svc, AddTaskInput{Text: "Meditate", Priority: PriorityHigh, Date: yesterday, IsRepeating: true})
	mustAdd(t, svc, AddTaskInput{Text: "Journal", Priority: PriorityLow, Date: yesterday, IsRepeating: true})
	mustAdd(t, svc, AddTaskInput{Text: "One-off", Priority: PriorityMedium, Date: yesterday})

	created, err := svc.PropagateRepeating(ctx, yesterday, baseDay)
	if err != nil {
		t.Fatalf("PropagateRepeating: %v", err)
	}
	if created != 2 {
		t.Fatalf("created %d tasks, want 2", created)
	}

	created, err = svc.PropagateRepeating(ctx, yesterday, baseDay)
	if err != nil {
		t.Fatalf("PropagateRepeating again: %v", err)
	}
	if created != 0 {
		t.Fatalf("second run created %d tasks, want 0", created)
	}

	tasks, err := svc.ListForDay(ctx, baseDay)
	if err != nil {
		t.Fatalf("ListForDay: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("today has %d tasks, want 2", len(tasks))
	}
	for _, task := range tasks {
		if !task.IsRepeating {
			t.Fatalf("propagated task %q lost its repeat flag", task.Text)
		}
	}
}

func TestPropagateRepeatingStopsAtCap(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	yesterday := baseDay.AddDate(0, 0, -1)

	for i := 0; i < 3; i++ {
		mustAdd(t, svc, AddTaskInput{Text: fmt.Sprintf("Habit %d", i), Priority: PriorityMedium, Date: yesterday, IsRepeating: true})
	}
	for i := 0; i < MaxTasksPerDay-1; i++ {
		mustAdd(t, svc, AddTaskInput{Text: fmt.Sprintf("Today %d", i), Priority: PriorityMedium, Date: baseDay})
	}

	created, err := svc.PropagateRepeating(ctx, yesterday, baseDay)
	if err != nil {
		t.Fatalf("PropagateRepeating: %v", err)
	}
	if created != 1 {
		t.Fatalf("created %d, want 1 (quota)", created)
	}

	tasks, err := svc.ListForDay(ctx, baseDay)
	if err != nil {
		t.Fatalf("ListForDay: %v", err)
	}
	if len(tasks) != MaxTasksPerDay {
		t.Fatalf("today has %d tasks, want %d", len(tasks), MaxTasksPerDay)
	}
}

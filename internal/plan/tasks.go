package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zenplan/internal/dateutil"
	"zenplan/internal/remind"
	"zenplan/internal/storage"
)

// ListForDay returns the tasks bucketed to date's calendar day,
// ascending by sort order.
func (s *Service) ListForDay(ctx context.Context, date time.Time) ([]storage.Task, error) {
	return s.tasks.ListForDay(ctx, dateutil.StartOfDay(date), dateutil.EndOfDay(date))
}

// CanAdd reports whether date's day is below the task cap.
func (s *Service) CanAdd(ctx context.Context, date time.Time) (bool, error) {
	existing, err := s.ListForDay(ctx, date)
	if err != nil {
		return false, err
	}
	return len(existing) < MaxTasksPerDay, nil
}

// DayCounts returns (completed, total) for date's day.
func (s *Service) DayCounts(ctx context.Context, date time.Time) (int, int, error) {
	tasks, err := s.ListForDay(ctx, date)
	if err != nil {
		return 0, 0, err
	}
	completed := 0
	for _, t := range tasks {
		if t.IsCompleted {
			completed++
		}
	}
	return completed, len(tasks), nil
}

type AddTaskInput struct {
	Text           string
	Priority       Priority
	Date           time.Time
	Deadline       *time.Time
	ReminderOffset *ReminderOffset
	IsRepeating    bool
}

// AddTask creates a task in its day's bucket. It fails with
// CapacityError when the day already holds MaxTasksPerDay tasks, and
// requests reminder scheduling when a deadline and offset are present.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*storage.Task, error) {
	text, err := normalizeText(in.Text)
	if err != nil {
		return nil, err
	}
	prio := in.Priority
	if !prio.IsValid() {
		prio = DefaultPriority
	}

	day := dateutil.StartOfDay(in.Date)
	if in.Deadline != nil && !dateutil.SameDay(*in.Deadline, day) {
		return nil, fmt.Errorf("deadline %s is outside the task's day", in.Deadline.Format("2006-01-02 15:04"))
	}
	if in.ReminderOffset != nil && !in.ReminderOffset.IsValid() {
		return nil, fmt.Errorf("invalid reminder offset: %q", *in.ReminderOffset)
	}

	existing, err := s.ListForDay(ctx, day)
	if err != nil {
		return nil, err
	}
	if len(existing) >= MaxTasksPerDay {
		return nil, CapacityError{Limit: MaxTasksPerDay}
	}

	sortOrder := 0
	for _, t := range existing {
		if t.SortOrder >= sortOrder {
			sortOrder = t.SortOrder + 1
		}
	}

	var offset *string
	if in.ReminderOffset != nil {
		v := string(*in.ReminderOffset)
		offset = &v
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Text:           text,
		Priority:       string(prio),
		Date:           day,
		SortOrder:      sortOrder,
		CreatedAt:      time.Now(),
		Deadline:       in.Deadline,
		ReminderOffset: offset,
		IsRepeating:    in.IsRepeating,
	})
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.scheduleReminder(task)
	return task, nil
}

// ToggleCompletion flips a task's completion state. Completing cancels
// the pending reminder and signals success; un-completing re-requests
// scheduling from the stored deadline and offset.
func (s *Service) ToggleCompletion(ctx context.Context, id int64) (*storage.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}

	if task.IsCompleted {
		if err := s.tasks.UpdateCompletion(ctx, id, false, nil); err != nil {
			return nil, err
		}
		task.IsCompleted = false
		task.CompletedAt = nil
		s.scheduleReminder(task)
	} else {
		now := time.Now()
		if err := s.tasks.UpdateCompletion(ctx, id, true, &now); err != nil {
			return nil, err
		}
		s.scheduler.Cancel(id)
		s.notifier.Success(task.Text)
	}

	return s.tasks.Get(ctx, id)
}

type UpdateTaskInput struct {
	Text           string
	Priority       Priority
	Deadline       *time.Time
	ReminderOffset *ReminderOffset
	IsRepeating    bool
}

// UpdateTask edits text, priority, deadline, reminder offset and repeat
// flag. The reminder is cancelled and re-scheduled only when deadline or
// offset actually changed.
func (s *Service) UpdateTask(ctx context.Context, id int64, in UpdateTaskInput) (*storage.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}

	text, err := normalizeText(in.Text)
	if err != nil {
		return nil, err
	}
	prio := in.Priority
	if !prio.IsValid() {
		prio = DefaultPriority
	}
	if in.Deadline != nil && !dateutil.SameDay(*in.Deadline, task.Date) {
		return nil, fmt.Errorf("deadline %s is outside the task's day", in.Deadline.Format("2006-01-02 15:04"))
	}
	if in.ReminderOffset != nil && !in.ReminderOffset.IsValid() {
		return nil, fmt.Errorf("invalid reminder offset: %q", *in.ReminderOffset)
	}

	reminderChanged := !equalTimePtr(task.Deadline, in.Deadline) || !equalOffsetPtr(task.ReminderOffset, in.ReminderOffset)

	var offset *string
	if in.ReminderOffset != nil {
		v := string(*in.ReminderOffset)
		offset = &v
	}
	if err := s.tasks.UpdateDetails(ctx, id, text, string(prio), in.Deadline, offset, in.IsRepeating); err != nil {
		return nil, err
	}

	updated, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if reminderChanged {
		s.scheduler.Cancel(id)
		s.scheduleReminder(updated)
	}
	return updated, nil
}

// DeleteTask removes a task and cancels any pending reminder.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return NotFoundError{Kind: "task", ID: id}
	}
	s.scheduler.Cancel(id)
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Tap()
	return nil
}

// MoveToTomorrow rebuckets a task to the day after now with a fresh
// trailing sort order. A moved task starts clean: completion, deadline,
// reminder and repeat flag are reset. Returns (false, nil) when
// tomorrow is already full.
func (s *Service) MoveToTomorrow(ctx context.Context, id int64, now time.Time) (bool, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if task == nil {
		return false, NotFoundError{Kind: "task", ID: id}
	}

	tomorrow := dateutil.Tomorrow(now)
	tomorrowTasks, err := s.ListForDay(ctx, tomorrow)
	if err != nil {
		return false, err
	}
	if len(tomorrowTasks) >= MaxTasksPerDay {
		return false, nil
	}

	s.scheduler.Cancel(id)

	sortOrder := 0
	for _, t := range tomorrowTasks {
		if t.SortOrder >= sortOrder {
			sortOrder = t.SortOrder + 1
		}
	}
	if err := s.tasks.MoveToDay(ctx, id, tomorrow, sortOrder); err != nil {
		return false, err
	}
	return true, nil
}

// Reorder reassigns sort order to match the given id sequence. A pure
// permutation; no capacity check.
func (s *Service) Reorder(ctx context.Context, ids []int64) error {
	for i, id := range ids {
		if err := s.tasks.UpdateSortOrder(ctx, id, i); err != nil {
			return err
		}
	}
	return nil
}

// NextOpenTask returns the incomplete task with the highest priority
// for date's day, ties broken by sort order. Nil when none is open.
func (s *Service) NextOpenTask(ctx context.Context, date time.Time) (*storage.Task, error) {
	tasks, err := s.ListForDay(ctx, date)
	if err != nil {
		return nil, err
	}
	var best *storage.Task
	for i := range tasks {
		t := &tasks[i]
		if t.IsCompleted {
			continue
		}
		if best == nil || Priority(t.Priority).SortValue() < Priority(best.Priority).SortValue() {
			best = t
		}
	}
	return best, nil
}

// PropagateRepeating recreates from's repeating tasks in to's day,
// skipping exact-text duplicates and stopping once to's day is full.
// Idempotent: a second run creates nothing new.
func (s *Service) PropagateRepeating(ctx context.Context, from, to time.Time) (int, error) {
	fromTasks, err := s.ListForDay(ctx, from)
	if err != nil {
		return 0, err
	}
	toTasks, err := s.ListForDay(ctx, to)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(toTasks))
	for _, t := range toTasks {
		seen[t.Text] = true
	}

	created := 0
	for _, t := range fromTasks {
		if !t.IsRepeating || seen[t.Text] {
			continue
		}
		_, err := s.AddTask(ctx, AddTaskInput{
			Text:        t.Text,
			Priority:    Priority(t.Priority),
			Date:        to,
			IsRepeating: true,
		})
		if err != nil {
			var capErr CapacityError
			if errors.As(err, &capErr) {
				break
			}
			return created, err
		}
		seen[t.Text] = true
		created++
	}
	return created, nil
}

// scheduleReminder requests scheduling for a task that has both a
// deadline and an offset. Fire-and-forget.
func (s *Service) scheduleReminder(t *storage.Task) {
	if t == nil || t.Deadline == nil || t.ReminderOffset == nil {
		return
	}
	offset := ReminderOffset(*t.ReminderOffset)
	if !offset.IsValid() {
		return
	}
	s.scheduler.Schedule(t.ID, remind.FireTime(*t.Deadline, offset.Duration()), ReminderTitle, t.Text)
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Text           string
	Priority       string
	Date           time.Time
	SortOrder      int
	CreatedAt      time.Time
	Deadline       *time.Time
	ReminderOffset *string
	IsRepeating    bool
}

const taskColumns = `id, text, priority, is_completed, completed_at, date, sort_order, created_at, deadline, reminder_offset, is_repeating`

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (text, priority, is_completed, date, sort_order, created_at, deadline, reminder_offset, is_repeating)
		VALUES (?, ?, 0, ?, ?, ?, ?, ?, ?)
	`, in.Text, in.Priority, in.Date, in.SortOrder, in.CreatedAt, in.Deadline, in.ReminderOffset, boolToInt(in.IsRepeating))
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTaskRow(row)
}

// ListForDay returns the tasks bucketed between start and end
// (inclusive), ascending by sort order.
func (r *TaskRepo) ListForDay(ctx context.Context, start, end time.Time) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE date >= ? AND date <= ?
		ORDER BY sort_order ASC, id ASC
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("task list for day: %w", err)
	}
	return collectTasks(rows)
}

// ListAll returns every task, newest bucket date first. The export
// format depends on this ordering.
func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		ORDER BY date DESC, sort_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	return collectTasks(rows)
}

func (r *TaskRepo) UpdateCompletion(ctx context.Context, id int64, completed bool, completedAt *time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET is_completed = ?, completed_at = ? WHERE id = ?
	`, boolToInt(completed), completedAt, id)
	if err != nil {
		return fmt.Errorf("task update completion: %w", err)
	}
	return nil
}

func (r *TaskRepo) UpdateDetails(ctx context.Context, id int64, text, priority string, deadline *time.Time, reminderOffset *string, isRepeating bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET text = ?, priority = ?, deadline = ?, reminder_offset = ?, is_repeating = ?
		WHERE id = ?
	`, text, priority, deadline, reminderOffset, boolToInt(isRepeating), id)
	if err != nil {
		return fmt.Errorf("task update details: %w", err)
	}
	return nil
}

func (r *TaskRepo) UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET sort_order = ? WHERE id = ?`, sortOrder, id)
	if err != nil {
		return fmt.Errorf("task update sort order: %w", err)
	}
	return nil
}

// MoveToDay rebuckets a task and resets the state that does not travel
// across days: completion, deadline, reminder and the repeat flag.
func (r *TaskRepo) MoveToDay(ctx context.Context, id int64, date time.Time, sortOrder int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET date = ?, sort_order = ?,
			is_completed = 0, completed_at = NULL,
			deadline = NULL, reminder_offset = NULL, is_repeating = 0
		WHERE id = ?
	`, date, sortOrder, id)
	if err != nil {
		return fmt.Errorf("task move to day: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		id             int64
		text           string
		priority       string
		isCompleted    int
		completedAt    sql.NullTime
		date           time.Time
		sortOrder      int
		createdAt      time.Time
		deadline       sql.NullTime
		reminderOffset sql.NullString
		isRepeating    int
	)

	if err := row.Scan(
		&id, &text, &priority, &isCompleted, &completedAt, &date,
		&sortOrder, &createdAt, &deadline, &reminderOffset, &isRepeating,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	var comp *time.Time
	if completedAt.Valid {
		v := completedAt.Time
		comp = &v
	}
	var due *time.Time
	if deadline.Valid {
		v := deadline.Time
		due = &v
	}
	var offset *string
	if reminderOffset.Valid {
		v := reminderOffset.String
		offset = &v
	}

	return &Task{
		ID:             id,
		Text:           text,
		Priority:       priority,
		IsCompleted:    isCompleted != 0,
		CompletedAt:    comp,
		Date:           date,
		SortOrder:      sortOrder,
		CreatedAt:      createdAt,
		Deadline:       due,
		ReminderOffset: offset,
		IsRepeating:    isRepeating != 0,
	}, nil
}

func collectTasks(rows *sql.Rows) ([]Task, error) {
	defer rows.Close()
	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task rows: %w", err)
	}
	return out, nil
}

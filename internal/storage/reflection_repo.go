package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ReflectionRepo struct {
	db *sql.DB
}

func NewReflectionRepo(db *sql.DB) *ReflectionRepo {
	return &ReflectionRepo{db: db}
}

type ReflectionInsert struct {
	Date             time.Time
	CompletedCount   int
	TotalCount       int
	WentWell         *string
	ShiftConsciously *string
	Mood             string
	CreatedAt        time.Time
}

const reflectionColumns = `id, date, completed_count, total_count, went_well, shift_consciously, mood, created_at`

func (r *ReflectionRepo) Insert(ctx context.Context, in ReflectionInsert) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO reflections (date, completed_count, total_count, went_well, shift_consciously, mood, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.Date, in.CompletedCount, in.TotalCount, in.WentWell, in.ShiftConsciously, in.Mood, in.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("reflection insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reflection last insert id: %w", err)
	}
	return id, nil
}

// GetForDay returns the reflection bucketed between start and end
// (inclusive), or nil if the day has none.
func (r *ReflectionRepo) GetForDay(ctx context.Context, start, end time.Time) (*Reflection, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+reflectionColumns+`
		FROM reflections
		WHERE date >= ? AND date <= ?
		LIMIT 1
	`, start, end)
	return scanReflectionRow(row)
}

// ListSince returns reflections with bucket date >= start, newest first.
func (r *ReflectionRepo) ListSince(ctx context.Context, start time.Time) ([]Reflection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reflectionColumns+`
		FROM reflections
		WHERE date >= ?
		ORDER BY date DESC
	`, start)
	if err != nil {
		return nil, fmt.Errorf("reflection list since: %w", err)
	}
	return collectReflections(rows)
}

// ListAll returns every reflection, newest bucket date first. The
// export format depends on this ordering.
func (r *ReflectionRepo) ListAll(ctx context.Context) ([]Reflection, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reflectionColumns+`
		FROM reflections
		ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("reflection list: %w", err)
	}
	return collectReflections(rows)
}

// DeleteForDay removes any reflection bucketed between start and end.
func (r *ReflectionRepo) DeleteForDay(ctx context.Context, start, end time.Time) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reflections WHERE date >= ? AND date <= ?`, start, end)
	if err != nil {
		return fmt.Errorf("reflection delete for day: %w", err)
	}
	return nil
}

func (r *ReflectionRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reflections WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("reflection delete: %w", err)
	}
	return nil
}

func scanReflectionRow(row scanner) (*Reflection, error) {
	var (
		id               int64
		date             time.Time
		completedCount   int
		totalCount       int
		wentWell         sql.NullString
		shiftConsciously sql.NullString
		mood             string
		createdAt        time.Time
	)

	if err := row.Scan(&id, &date, &completedCount, &totalCount, &wentWell, &shiftConsciously, &mood, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("reflection scan: %w", err)
	}

	var well *string
	if wentWell.Valid {
		v := wentWell.String
		well = &v
	}
	var shift *string
	if shiftConsciously.Valid {
		v := shiftConsciously.String
		shift = &v
	}

	return &Reflection{
		ID:               id,
		Date:             date,
		CompletedCount:   completedCount,
		TotalCount:       totalCount,
		WentWell:         well,
		ShiftConsciously: shift,
		Mood:             mood,
		CreatedAt:        createdAt,
	}, nil
}

func collectReflections(rows *sql.Rows) ([]Reflection, error) {
	defer rows.Close()
	var out []Reflection
	for rows.Next() {
		ref, err := scanReflectionRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reflection rows: %w", err)
	}
	return out, nil
}

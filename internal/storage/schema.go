package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT 'medium',
			is_completed INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME,
			date DATETIME NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deadline DATETIME,
			reminder_offset TEXT,
			is_repeating INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS reflections (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date DATETIME NOT NULL,
			completed_count INTEGER NOT NULL,
			total_count INTEGER NOT NULL,
			went_well TEXT,
			shift_consciously TEXT,
			mood TEXT NOT NULL DEFAULT 'neutral',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date_sort_order ON tasks(date, sort_order);`,
		`CREATE INDEX IF NOT EXISTS idx_reflections_date ON reflections(date);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

package storage

import "time"

// Task is a planner entry bucketed to a single calendar day. Date is
// always normalized to the start of that day; SortOrder is unique only
// within the day.
type Task struct {
	ID             int64
	Text           string
	Priority       string
	IsCompleted    bool
	CompletedAt    *time.Time
	Date           time.Time
	SortOrder      int
	CreatedAt      time.Time
	Deadline       *time.Time
	ReminderOffset *string
	IsRepeating    bool
}

// Reflection is the end-of-day record. At most one exists per calendar
// day; the service enforces this by replacing on save.
type Reflection struct {
	ID               int64
	Date             time.Time
	CompletedCount   int
	TotalCount       int
	WentWell         *string
	ShiftConsciously *string
	Mood             string
	CreatedAt        time.Time
}

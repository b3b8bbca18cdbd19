package root

import (
	"fmt"
	"strconv"
	"time"

	"zenplan/internal/dateutil"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be an integer, got %q", arg)
	}
	return id, nil
}

// parseDay accepts "today", "tomorrow", "yesterday" or an ISO date.
func parseDay(arg string) (time.Time, error) {
	now := time.Now()
	switch arg {
	case "", "today":
		return dateutil.StartOfDay(now), nil
	case "tomorrow":
		return dateutil.Tomorrow(now), nil
	case "yesterday":
		return dateutil.DaysAgo(1, now), nil
	}
	t, err := time.ParseInLocation("2006-01-02", arg, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD, today, tomorrow or yesterday, got %q", arg)
	}
	return t, nil
}

// parseClock combines an HH:MM clock time with the given day.
func parseClock(day time.Time, arg string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", arg, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("time must be HH:MM, got %q", arg)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}

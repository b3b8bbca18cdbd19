package dateutil

import (
	"testing"
	"time"
)

// 2025-02-07 was a Friday.
var friday = time.Date(2025, time.February, 7, 14, 30, 0, 0, time.Local)

func TestDayBoundaries(t *testing.T) {
	start := StartOfDay(friday)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("StartOfDay = %v, want midnight", start)
	}
	end := EndOfDay(friday)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("EndOfDay = %v, want 23:59:59", end)
	}
	if !SameDay(start, end) {
		t.Fatal("start and end of day should be the same day")
	}
	if SameDay(end, Tomorrow(friday)) {
		t.Fatal("end of day and tomorrow must differ")
	}
}

func TestDaysAgoAndTomorrow(t *testing.T) {
	if got := DaysAgo(1, friday); got.Day() != 6 {
		t.Fatalf("DaysAgo(1) = %v, want Feb 6", got)
	}
	if got := Tomorrow(friday); got.Day() != 8 || got.Hour() != 0 {
		t.Fatalf("Tomorrow = %v, want Feb 8 midnight", got)
	}
}

func TestWeekdayIndex(t *testing.T) {
	cases := []struct {
		day  int
		want int
	}{
		{3, 1}, // Monday Feb 3
		{7, 5}, // Friday
		{8, 6}, // Saturday
		{9, 7}, // Sunday
	}
	for _, c := range cases {
		d := time.Date(2025, time.February, c.day, 12, 0, 0, 0, time.Local)
		if got := WeekdayIndex(d); got != c.want {
			t.Errorf("WeekdayIndex(Feb %d) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestDaysOfWeek(t *testing.T) {
	days := DaysOfWeek(friday)
	if len(days) != 7 {
		t.Fatalf("got %d days, want 7", len(days))
	}
	if days[0].Day() != 3 {
		t.Fatalf("week starts %v, want Monday Feb 3", days[0])
	}
	if days[6].Day() != 9 {
		t.Fatalf("week ends %v, want Sunday Feb 9", days[6])
	}
	for i, d := range days {
		if WeekdayIndex(d) != i+1 {
			t.Errorf("day %d has weekday index %d", i, WeekdayIndex(d))
		}
	}
}

func TestDaysOfMonth(t *testing.T) {
	days := DaysOfMonth(friday)
	if len(days) != 28 {
		t.Fatalf("February 2025 has %d days, want 28", len(days))
	}
	if days[0].Day() != 1 || days[27].Day() != 28 {
		t.Fatalf("month range wrong: %v .. %v", days[0], days[27])
	}

	january := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local)
	if got := len(DaysOfMonth(january)); got != 31 {
		t.Fatalf("January has %d days, want 31", got)
	}
}

func TestIsAfterTime(t *testing.T) {
	evening := time.Date(2025, time.February, 7, 20, 0, 0, 0, time.Local)
	if !IsAfterTime(20, 0, evening) {
		t.Fatal("20:00 should be after 20:00")
	}
	if IsAfterTime(20, 0, friday) {
		t.Fatal("14:30 should not be after 20:00")
	}
}

func TestGermanLabels(t *testing.T) {
	if got := FormatDayLong(friday); got != "Freitag, 7. Februar" {
		t.Errorf("FormatDayLong = %q", got)
	}
	if got := FormatDayShort(friday); got != "7. Feb" {
		t.Errorf("FormatDayShort = %q", got)
	}
	if got := FormatMonthYear(friday); got != "Februar 2025" {
		t.Errorf("FormatMonthYear = %q", got)
	}
	if got := WeekdayShort(friday); got != "Fr" {
		t.Errorf("WeekdayShort = %q", got)
	}
}

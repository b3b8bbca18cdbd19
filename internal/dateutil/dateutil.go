// Package dateutil provides day-boundary math and calendar enumeration
// for the planner. Weeks start on Monday. All functions are pure and
// operate in the location of the given time.
package dateutil

import (
	"fmt"
	"time"
)

// StartOfDay returns d truncated to 00:00:00 in d's location.
func StartOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

// EndOfDay returns the last second of d's calendar day (23:59:59).
func EndOfDay(d time.Time) time.Time {
	return StartOfDay(d).AddDate(0, 0, 1).Add(-time.Second)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether d falls on the same calendar day as now.
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}

// Tomorrow returns the start of the day after from.
func Tomorrow(from time.Time) time.Time {
	return StartOfDay(from).AddDate(0, 0, 1)
}

// DaysAgo returns the start of the day n days before from.
func DaysAgo(n int, from time.Time) time.Time {
	return StartOfDay(from).AddDate(0, 0, -n)
}

// IsAfterTime reports whether at's local clock time is at or past hour:minute.
func IsAfterTime(hour, minute int, at time.Time) bool {
	cur := at.Hour()*60 + at.Minute()
	return cur >= hour*60+minute
}

// WeekdayIndex returns 1 for Monday through 7 for Sunday.
func WeekdayIndex(d time.Time) int {
	wd := int(d.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DaysOfWeek returns the seven days of the ISO week containing d,
// Monday first.
func DaysOfWeek(containing time.Time) []time.Time {
	monday := StartOfDay(containing).AddDate(0, 0, 1-WeekdayIndex(containing))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// DaysOfMonth returns every calendar day of the month containing d.
func DaysOfMonth(containing time.Time) []time.Time {
	y, m, _ := containing.Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, containing.Location())
	n := first.AddDate(0, 1, -1).Day()
	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// German calendar labels, carried over from the app this planner grew
// out of. Indexed by WeekdayIndex-1 and time.Month-1 respectively.
var (
	weekdayNames = [7]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}
	weekdayShort = [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}
	monthNames   = [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"}
	monthShort   = [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"}
)

// FormatDayLong renders d like "Samstag, 7. Februar".
func FormatDayLong(d time.Time) string {
	return fmt.Sprintf("%s, %d. %s", weekdayNames[WeekdayIndex(d)-1], d.Day(), monthNames[d.Month()-1])
}

// FormatDayShort renders d like "7. Feb".
func FormatDayShort(d time.Time) string {
	return fmt.Sprintf("%d. %s", d.Day(), monthShort[d.Month()-1])
}

// FormatMonthYear renders d like "Februar 2025".
func FormatMonthYear(d time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[d.Month()-1], d.Year())
}

// WeekdayShort returns the two-letter German weekday ("Mo".."So").
func WeekdayShort(d time.Time) string {
	return weekdayShort[WeekdayIndex(d)-1]
}

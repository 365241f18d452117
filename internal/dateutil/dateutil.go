// Package dateutil resolves the reference dates and clock times a picker
// grid is laid out from.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Parsing errors.
var (
	ErrInvalidDateFormat = errors.New("date must be YYYY-MM-DD, today, tomorrow, this-week, next-week or a weekday name")
	ErrInvalidClock      = errors.New("time must be in HH:MM format")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday returns the weekday with the given case-insensitive name.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayMap[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseInitialDay resolves the first day of a grid. Accepted forms:
//   - Empty string or "today": relativeTo's date
//   - "tomorrow"
//   - "this-week" / "next-week": Monday of the current / following week
//   - Weekday names: the next occurrence, today included
//   - Absolute date: "2025-01-15" (YYYY-MM-DD), past dates allowed
//
// All inputs are case-insensitive.
func ParseInitialDay(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "this-week":
		monday, _ := WeekRange(today)
		return monday, nil
	case "next-week":
		monday, _ := WeekRange(today)
		return monday.AddDate(0, 0, 7), nil
	}

	if target, ok := weekdayMap[input]; ok {
		return upcomingWeekday(today, target), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, today.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}

// upcomingWeekday returns today if it is the target weekday, otherwise the
// next occurrence.
func upcomingWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := (int(target) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, daysUntil)
}

// ParseClock parses "HH:MM" into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidClock
	}
	hour, err := strconv.Atoi(s[0:2])
	if err != nil || hour < 0 || hour > 24 {
		return 0, ErrInvalidClock
	}
	minute, err := strconv.Atoi(s[3:5])
	if err != nil || minute < 0 || minute > 59 {
		return 0, ErrInvalidClock
	}
	if hour == 24 && minute != 0 {
		return 0, ErrInvalidClock
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, nil
}

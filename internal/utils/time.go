package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// FormatDate formats a time as the standard date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a standard date string (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := time.Parse(constants.TimeFormat, timeStr)
	return err == nil
}

// WeekdayName returns the full lowercase English weekday name for a date.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// WeekdayNameForDate returns the lowercase weekday name for a standard
// date string.
func WeekdayNameForDate(dateStr string) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return WeekdayName(t), nil
}

// WeekBounds returns the Sunday and Saturday of the calendar week
// containing t, both at midnight in t's location.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	sunday := day.AddDate(0, 0, -int(day.Weekday()))
	saturday := sunday.AddDate(0, 0, 6)
	return sunday, saturday
}

// MonthBounds returns the first and last day of the calendar month
// containing t, both at midnight in t's location.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, last
}

// WeekDates returns the seven date strings of the Sunday-through-Saturday
// week containing t.
func WeekDates(t time.Time) []string {
	sunday, _ := WeekBounds(t)
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = FormatDate(sunday.AddDate(0, 0, i))
	}
	return dates
}

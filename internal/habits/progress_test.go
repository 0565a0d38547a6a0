package habits

import (
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
)

func day(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}

func completed(dates ...string) []models.Completion {
	var out []models.Completion
	for _, d := range dates {
		out = append(out, models.Completion{Date: d, Completed: true})
	}
	return out
}

func TestProgress_DailyIsBinary(t *testing.T) {
	h := models.Habit{
		Frequency:      constants.FrequencyDaily,
		CompletedDates: completed("2024-06-10"),
	}

	if got := Progress(h, day("2024-06-10")); got != 100 {
		t.Errorf("expected 100 on a completed day, got %d", got)
	}
	if got := Progress(h, day("2024-06-11")); got != 0 {
		t.Errorf("expected 0 on an uncompleted day, got %d", got)
	}
}

func TestProgress_DailyIgnoresNegatedEntry(t *testing.T) {
	h := models.Habit{
		Frequency: constants.FrequencyDaily,
		CompletedDates: []models.Completion{
			{Date: "2024-06-10", Completed: false},
		},
	}

	if got := Progress(h, day("2024-06-10")); got != 0 {
		t.Errorf("expected 0 for a negated entry, got %d", got)
	}
}

func TestProgress_WeeklyCountsSundayThroughSaturday(t *testing.T) {
	// 2024-06-12 is a Wednesday; its week runs 2024-06-09 (Sun) through
	// 2024-06-15 (Sat).
	h := models.Habit{
		Frequency:      constants.FrequencyWeekly,
		CompletedDates: completed("2024-06-09", "2024-06-11", "2024-06-15"),
	}

	// round(3/7*100) = 43
	if got := Progress(h, day("2024-06-12")); got != 43 {
		t.Errorf("expected 43, got %d", got)
	}
}

func TestProgress_WeeklyExcludesOtherWeeks(t *testing.T) {
	h := models.Habit{
		Frequency:      constants.FrequencyWeekly,
		CompletedDates: completed("2024-06-08", "2024-06-16"), // Sat before, Sun after
	}

	if got := Progress(h, day("2024-06-12")); got != 0 {
		t.Errorf("expected 0 for completions outside the week, got %d", got)
	}
}

func TestProgress_WeeklyFullWeek(t *testing.T) {
	h := models.Habit{
		Frequency: constants.FrequencyWeekly,
		CompletedDates: completed(
			"2024-06-09", "2024-06-10", "2024-06-11", "2024-06-12",
			"2024-06-13", "2024-06-14", "2024-06-15",
		),
	}

	if got := Progress(h, day("2024-06-12")); got != 100 {
		t.Errorf("expected 100 for a full week, got %d", got)
	}
}

func TestProgress_MonthlyProratesFromCreationDay(t *testing.T) {
	// Created mid-month: accountable days run from the creation day
	// through today inclusive, 2024-03-05..2024-03-15 = 11 days.
	h := models.Habit{
		Frequency:      constants.FrequencyMonthly,
		CreatedAt:      day("2024-03-05"),
		CompletedDates: completed("2024-03-06", "2024-03-10"),
	}

	// round(2/11*100) = 18
	if got := Progress(h, day("2024-03-15")); got != 18 {
		t.Errorf("expected 18, got %d", got)
	}
}

func TestProgress_MonthlyOlderHabitCountsFromFirst(t *testing.T) {
	h := models.Habit{
		Frequency:      constants.FrequencyMonthly,
		CreatedAt:      day("2024-01-20"),
		CompletedDates: completed("2024-03-01", "2024-03-02", "2024-03-03"),
	}

	// Days 1..10 elapsed, 3 completed: round(3/10*100) = 30.
	if got := Progress(h, day("2024-03-10")); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
}

func TestProgress_MonthlyIgnoresOtherMonths(t *testing.T) {
	h := models.Habit{
		Frequency:      constants.FrequencyMonthly,
		CreatedAt:      day("2024-01-01"),
		CompletedDates: completed("2024-02-28", "2024-04-01"),
	}

	if got := Progress(h, day("2024-03-10")); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestProgress_MonthlyCreatedTodayIsBinary(t *testing.T) {
	h := models.Habit{
		Frequency:      constants.FrequencyMonthly,
		CreatedAt:      day("2024-03-15"),
		CompletedDates: completed("2024-03-15"),
	}

	if got := Progress(h, day("2024-03-15")); got != 100 {
		t.Errorf("expected 100 for a one-day window, got %d", got)
	}
}

func TestProgress_UnknownFrequencyScoresZero(t *testing.T) {
	h := models.Habit{
		Frequency:      constants.Frequency("yearly"),
		CompletedDates: completed("2024-06-10"),
	}

	if got := Progress(h, day("2024-06-10")); got != 0 {
		t.Errorf("expected 0 for unknown frequency, got %d", got)
	}
}

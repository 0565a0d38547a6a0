package habits

import (
	"math"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

// Progress returns the habit's adherence percentage in [0,100] as of the
// given day. The reference day is always passed in; nothing here reads the
// wall clock, so results are deterministic for a given (habit, today).
//
// The window depends on the declared frequency:
//   - daily: a single-day binary signal, 100 iff today is completed
//   - weekly: completions within the Sunday-through-Saturday week
//     containing today, out of 7
//   - monthly: completions this month out of the days elapsed, prorated
//     from the creation day when the habit was created this month
//
// An unrecognized frequency scores 0.
func Progress(h models.Habit, today time.Time) int {
	switch h.Frequency {
	case constants.FrequencyDaily:
		if h.CompletedOn(utils.FormatDate(today)) {
			return 100
		}
		return 0
	case constants.FrequencyWeekly:
		return weeklyProgress(h, today)
	case constants.FrequencyMonthly:
		return monthlyProgress(h, today)
	default:
		return 0
	}
}

func weeklyProgress(h models.Habit, today time.Time) int {
	completed := 0
	for _, date := range utils.WeekDates(today) {
		if h.CompletedOn(date) {
			completed++
		}
	}
	return percentage(completed, 7)
}

func monthlyProgress(h models.Habit, today time.Time) int {
	first, last := utils.MonthBounds(today)

	// Habits created this month are only accountable from their creation
	// day; older habits from the 1st.
	start := first
	created := h.CreatedAt
	if created.Year() == today.Year() && created.Month() == today.Month() {
		start = time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, today.Location())
	}

	// Days elapsed in the window, start through today inclusive. Derived
	// from the calendar days directly rather than a separate days-in-month
	// count.
	elapsed := today.Day() - start.Day() + 1
	if elapsed <= 0 {
		return 0
	}

	startDate := utils.FormatDate(start)
	endDate := utils.FormatDate(last)
	completed := 0
	for _, c := range h.CompletedDates {
		if c.Completed && c.Date >= startDate && c.Date <= endDate {
			completed++
		}
	}

	return percentage(completed, elapsed)
}

func percentage(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	p := int(math.Round(float64(numerator) / float64(denominator) * 100))
	if p > 100 {
		return 100
	}
	return p
}

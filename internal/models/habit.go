package models

import (
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// Completion is one day's record in a habit's history. Day holds the full
// lowercase English weekday name for Date and is set once at creation;
// toggling an existing date flips Completed in place and leaves Date/Day
// untouched.
type Completion struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Day       string `json:"day"`
	Completed bool   `json:"completed"`
}

// HabitTask is a checklist item embedded in a habit. Distinct from the
// calendar Task entity.
type HabitTask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Habit is a recurring activity tracked per calendar day. A habit belongs
// to exactly one user; the collection of a user's habits is stored under a
// key derived from the user id.
type Habit struct {
	ID             string              `json:"id"`
	UserID         string              `json:"userId"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	Icon           string              `json:"icon,omitempty"`
	Color          string              `json:"color,omitempty"` // hex, e.g. "#7C3AED"
	Frequency      constants.Frequency `json:"frequency"`
	Tasks          []HabitTask         `json:"tasks,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	CompletedDates []Completion        `json:"completedDates"`
	LastCompleted  string              `json:"lastCompleted,omitempty"` // YYYY-MM-DD
}

// CompletionFor returns the index of the completion entry for the given
// date, or -1. CompletedDates holds at most one entry per distinct date.
func (h *Habit) CompletionFor(date string) int {
	for i, c := range h.CompletedDates {
		if c.Date == date {
			return i
		}
	}
	return -1
}

// CompletedOn reports whether the habit has a completed entry for the date.
func (h *Habit) CompletedOn(date string) bool {
	i := h.CompletionFor(date)
	return i >= 0 && h.CompletedDates[i].Completed
}

package models

import (
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// Task is a dated, possibly timed calendar item. Tasks live in a map keyed
// by "YYYY-MM-DD"; a date key only exists while at least one task is filed
// under it.
type Task struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Type        constants.TaskType       `json:"type"`
	Date        string                   `json:"date"`           // YYYY-MM-DD
	Time        string                   `json:"time,omitempty"` // HH:MM, empty when all-day
	AllDay      bool                     `json:"allDay"`
	Recurrence  constants.TaskRecurrence `json:"recurrence,omitempty"` // omitted when none
	Completed   bool                     `json:"completed"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// TaskMap is the stored shape of the calendar: date key -> ordered tasks.
type TaskMap map[string][]Task

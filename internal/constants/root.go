package constants

import "time"

const (
	AppName            = "habitkit"
	DefaultKeyringUser = "saved-credentials"
	DefaultConfigPath  = "~/.config/habitkit/habitkit.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys. The value under each key is a JSON document owned by
	// exactly one service; HabitsKeyPrefix is completed by a user id.
	CurrentUserKey  = "currentUser"
	UsersKey        = "users"
	HabitsKeyPrefix = "habits_"
	TasksKey        = "habitTrackerTasks"

	// MinPasswordLen is enforced at sign-up only; existing accounts are
	// never re-validated.
	MinPasswordLen = 6

	// Mock API server defaults
	DefaultServePort  = 3001
	DefaultServeDelay = 500 * time.Millisecond
	DefaultServeDB    = "db.json"
)

// Frequency is the period against which habit progress is windowed.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// TaskType categorizes calendar tasks.
type TaskType string

const (
	TaskTypeTask     TaskType = "task"
	TaskTypeMeeting  TaskType = "meeting"
	TaskTypeReminder TaskType = "reminder"
	TaskTypeEvent    TaskType = "event"
)

// TaskRecurrence is the repeat rule for calendar tasks.
type TaskRecurrence string

const (
	TaskRecurrenceNone     TaskRecurrence = "none"
	TaskRecurrenceDaily    TaskRecurrence = "daily"
	TaskRecurrenceWeekdays TaskRecurrence = "weekdays"
	TaskRecurrenceWeekly   TaskRecurrence = "weekly"
	TaskRecurrenceMonthly  TaskRecurrence = "monthly"
)

// ValidFrequencies lists the accepted habit frequencies in display order.
var ValidFrequencies = []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly}

// ValidTaskTypes lists the accepted calendar task types in display order.
var ValidTaskTypes = []TaskType{TaskTypeTask, TaskTypeMeeting, TaskTypeReminder, TaskTypeEvent}

// ValidTaskRecurrences lists the accepted task repeat rules in display order.
var ValidTaskRecurrences = []TaskRecurrence{
	TaskRecurrenceNone,
	TaskRecurrenceDaily,
	TaskRecurrenceWeekdays,
	TaskRecurrenceWeekly,
	TaskRecurrenceMonthly,
}

package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/utils"
)

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// FieldError is a validation failure on a single named field. Validation
// runs before any persistence attempt; a failing operation writes nothing.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Required checks that a field is non-empty after trimming.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: "is required"}
	}
	return nil
}

// Email checks basic address shape. Not RFC-exhaustive; the store is
// local and the address is only a login identifier.
func Email(value string) error {
	if err := Required("email", value); err != nil {
		return err
	}
	if !emailRe.MatchString(value) {
		return &FieldError{Field: "email", Message: "is not a valid email address"}
	}
	return nil
}

// Password enforces the minimum length used at sign-up.
func Password(value string) error {
	if len(value) < constants.MinPasswordLen {
		return &FieldError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", constants.MinPasswordLen),
		}
	}
	return nil
}

// HexColor checks a #RRGGBB color value. Empty is allowed; the UI falls
// back to its default accent.
func HexColor(value string) error {
	if value == "" {
		return nil
	}
	if !hexColorRe.MatchString(value) {
		return &FieldError{Field: "color", Message: "must be a hex color like #7C3AED"}
	}
	return nil
}

// Frequency checks a habit frequency against the accepted set.
func Frequency(value constants.Frequency) error {
	for _, f := range constants.ValidFrequencies {
		if value == f {
			return nil
		}
	}
	return &FieldError{Field: "frequency", Message: fmt.Sprintf("must be one of daily, weekly, monthly (got %q)", value)}
}

// TaskType checks a calendar task type against the accepted set.
func TaskType(value constants.TaskType) error {
	for _, t := range constants.ValidTaskTypes {
		if value == t {
			return nil
		}
	}
	return &FieldError{Field: "type", Message: fmt.Sprintf("must be one of task, meeting, reminder, event (got %q)", value)}
}

// TaskRecurrence checks a task repeat rule. Empty means none.
func TaskRecurrence(value constants.TaskRecurrence) error {
	if value == "" {
		return nil
	}
	for _, r := range constants.ValidTaskRecurrences {
		if value == r {
			return nil
		}
	}
	return &FieldError{Field: "recurrence", Message: fmt.Sprintf("must be one of none, daily, weekdays, weekly, monthly (got %q)", value)}
}

// Date checks a YYYY-MM-DD date string.
func Date(field, value string) error {
	if err := Required(field, value); err != nil {
		return err
	}
	if !utils.ValidateDateFormat(value) {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be a date like 2024-06-01 (got %q)", value)}
	}
	return nil
}

// TimeOfDay checks an HH:MM time string. Empty is allowed for all-day
// tasks; a timed task must carry a valid time.
func TimeOfDay(value string, allDay bool) error {
	if value == "" {
		if allDay {
			return nil
		}
		return &FieldError{Field: "time", Message: "select a time or mark the task all-day"}
	}
	if !utils.ValidateTimeFormat(value) {
		return &FieldError{Field: "time", Message: fmt.Sprintf("must be a time like 09:30 (got %q)", value)}
	}
	return nil
}

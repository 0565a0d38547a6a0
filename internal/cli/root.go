package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitkit/internal/auth"
	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/session"
	"github.com/julianstephens/habitkit/internal/storage"
)

type Context struct {
	Store    storage.Store
	Session  *session.Manager
	Auth     *auth.Service
	Habits   *habits.Service
	Calendar *calendar.Service
}

// requireUser loads storage and returns the signed-in user.
func (ctx *Context) requireUser() (models.User, error) {
	if err := ctx.Store.Load(); err != nil {
		return models.User{}, err
	}
	return ctx.Session.Current()
}

// progressBar renders an n-cell bar for a 0-100 percentage.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func formatHabitLine(h models.Habit, percent int) string {
	icon := h.Icon
	if icon == "" {
		icon = "•"
	}
	return fmt.Sprintf("%s %-24s %-8s %s %3d%%  (%s)", icon, h.Name, h.Frequency, progressBar(percent, 10), percent, h.ID)
}

func formatTaskLine(t models.Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	when := t.Time
	if t.AllDay {
		when = "all-day"
	}
	line := fmt.Sprintf("%s %-7s %-10s %s", mark, when, t.Type, t.Title)
	if t.Recurrence != "" {
		line += fmt.Sprintf(" (repeats %s)", t.Recurrence)
	}
	return line + fmt.Sprintf("  (%s)", t.ID)
}

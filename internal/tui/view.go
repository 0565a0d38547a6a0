package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = m.viewHabits()
	case StateTasks:
		content = m.viewTasks()
	}

	sections := []string{
		m.viewTabs(),
		m.viewWeek(),
		content,
	}
	if m.statusErr != nil {
		sections = append(sections, errStyle.Render("⚠ "+m.statusErr.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Calendar"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewWeek renders the 7-day selector, Sunday through Saturday.
func (m Model) viewWeek() string {
	var days []string
	for i, d := range m.weekDates {
		t, err := utils.ParseDate(d)
		label := d
		if err == nil {
			label = fmt.Sprintf("%s %d", t.Weekday().String()[:3], t.Day())
		}
		if i == m.dayIndex {
			days = append(days, selectedDayStyle.Render(label))
		} else {
			days = append(days, dayStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, days...)
}

func (m Model) viewHabits() string {
	if len(m.habitList) == 0 {
		return faintStyle.Render("No habits yet. Add one with 'habitkit habit add'.")
	}

	asOf := time.Now()
	var b strings.Builder
	for i, h := range m.habitList {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		if h.CompletedOn(m.selectedDate()) {
			mark = doneStyle.Render("[x]")
		}

		percent := habits.Progress(h, asOf)
		bar := renderBar(percent, 10)

		icon := h.Icon
		if icon == "" {
			icon = "•"
		}

		fmt.Fprintf(&b, "%s%s %s %-24s %s %3d%%\n", cursor, mark, icon, h.Name, bar, percent)
	}
	return b.String()
}

func (m Model) viewTasks() string {
	if len(m.taskList) == 0 {
		return faintStyle.Render("No tasks on " + m.selectedDate() + ".")
	}

	var b strings.Builder
	for i, t := range m.taskList {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		title := t.Title
		if t.Completed {
			mark = doneStyle.Render("[x]")
			title = faintStyle.Render(title)
		}

		when := t.Time
		if t.AllDay {
			when = "all-day"
		}

		fmt.Fprintf(&b, "%s%s %-7s %-10s %s\n", cursor, mark, when, t.Type, title)
	}
	return b.String()
}

func renderBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return doneStyle.Render(strings.Repeat("█", filled)) + faintStyle.Render(strings.Repeat("░", width-filled))
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.FocusMsg:
		m.reload()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.clampCursor()
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.clampCursor()
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			m.cursor++
			m.clampCursor()
		case key.Matches(msg, m.keys.Left):
			if m.dayIndex > 0 {
				m.dayIndex--
				m.reload()
			}
		case key.Matches(msg, m.keys.Right):
			if m.dayIndex < len(m.weekDates)-1 {
				m.dayIndex++
				m.reload()
			}
		case key.Matches(msg, m.keys.Today):
			m.jumpToToday()
		case key.Matches(msg, m.keys.Refresh):
			m.reload()
		case key.Matches(msg, m.keys.Toggle):
			m.toggleSelected()
		}
	}

	return m, nil
}

func (m *Model) jumpToToday() {
	today := time.Now()
	m.weekDates = utils.WeekDates(today)
	for i, d := range m.weekDates {
		if d == utils.FormatDate(today) {
			m.dayIndex = i
		}
	}
	m.reload()
}

func (m *Model) toggleSelected() {
	now := time.Now()

	switch m.state {
	case StateHabits:
		if m.cursor >= len(m.habitList) {
			return
		}
		h := m.habitList[m.cursor]
		if _, err := m.habits.ToggleCompletion(m.user.ID, h.ID, m.selectedDate(), now); err != nil {
			m.statusErr = err
			return
		}
	case StateTasks:
		if m.cursor >= len(m.taskList) {
			return
		}
		t := m.taskList[m.cursor]
		if _, err := m.calendar.ToggleComplete(m.selectedDate(), t.ID, now); err != nil {
			m.statusErr = err
			return
		}
	}

	m.reload()
}

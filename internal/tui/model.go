package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/habitkit/internal/calendar"
	"github.com/julianstephens/habitkit/internal/habits"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/utils"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateTasks
)

const tabCount = 2

type Model struct {
	user     models.User
	habits   *habits.Service
	calendar *calendar.Service

	state    SessionState
	keys     KeyMap
	help     help.Model
	quitting bool
	width    int
	height   int

	// weekDates are the 7 days of the current week, Sunday first.
	weekDates []string
	dayIndex  int

	habitList []models.Habit
	taskList  []models.Task
	cursor    int

	statusErr error
}

func NewModel(user models.User, habitSvc *habits.Service, calendarSvc *calendar.Service) Model {
	now := time.Now()
	today := utils.FormatDate(now)

	m := Model{
		user:      user,
		habits:    habitSvc,
		calendar:  calendarSvc,
		state:     StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		weekDates: utils.WeekDates(now),
	}
	for i, d := range m.weekDates {
		if d == today {
			m.dayIndex = i
		}
	}

	m.reload()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// selectedDate is the date under the week selector.
func (m Model) selectedDate() string {
	return m.weekDates[m.dayIndex]
}

// reload re-reads both collections from storage. Called on startup, on
// explicit refresh, and when the terminal regains focus, so edits made
// by another habitkit process show up.
func (m *Model) reload() {
	m.statusErr = nil

	habitList, err := m.habits.List(m.user.ID)
	if err != nil {
		m.statusErr = err
		habitList = nil
	}
	m.habitList = habitList

	taskList, err := m.calendar.ForDate(m.selectedDate())
	if err != nil {
		m.statusErr = err
		taskList = nil
	}
	m.taskList = taskList

	m.clampCursor()
}

func (m *Model) clampCursor() {
	max := len(m.habitList)
	if m.state == StateTasks {
		max = len(m.taskList)
	}
	if m.cursor >= max {
		m.cursor = max - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

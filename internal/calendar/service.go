package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/validation"
)

// ErrTaskNotFound is returned when an id has no match under its date key.
var ErrTaskNotFound = errors.New("task not found")

// CreateInput carries the add-task form fields.
type CreateInput struct {
	Title       string
	Description string
	Type        constants.TaskType
	Date        string // YYYY-MM-DD
	Time        string // HH:MM, empty when all-day
	AllDay      bool
	Recurrence  constants.TaskRecurrence
}

// UpdateInput carries a partial edit; nil fields are left unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	Type        *constants.TaskType
	Time        *string
	AllDay      *bool
	Recurrence  *constants.TaskRecurrence
	Completed   *bool
}

// Service owns the calendar task map: one shared key holding
// date -> ordered tasks. A date key is removed the moment its list
// empties, so the stored map never contains an empty list.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// ForDate returns the tasks filed under a date, in stored order.
func (s *Service) ForDate(date string) ([]models.Task, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	return tasks[date], nil
}

// ForMonth returns all date keys within the month of the given date
// ("YYYY-MM" prefix match), sorted, with their tasks.
func (s *Service) ForMonth(date string) (models.TaskMap, error) {
	if err := validation.Date("date", date); err != nil {
		return nil, err
	}

	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	prefix := date[:len("2006-01")]
	month := make(models.TaskMap)
	for key, list := range tasks {
		if strings.HasPrefix(key, prefix) {
			month[key] = list
		}
	}
	return month, nil
}

// Dates returns every date key in the map, sorted ascending.
func (s *Service) Dates() ([]string, error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(tasks))
	for key := range tasks {
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates, nil
}

// Add validates the input and appends a task under its date key.
func (s *Service) Add(in CreateInput, now time.Time) (models.Task, error) {
	if err := validation.Required("title", in.Title); err != nil {
		return models.Task{}, err
	}
	if err := validation.TaskType(in.Type); err != nil {
		return models.Task{}, err
	}
	if err := validation.Date("date", in.Date); err != nil {
		return models.Task{}, err
	}
	if err := validation.TimeOfDay(in.Time, in.AllDay); err != nil {
		return models.Task{}, err
	}
	if err := validation.TaskRecurrence(in.Recurrence); err != nil {
		return models.Task{}, err
	}

	tasks, err := s.load()
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Date:        in.Date,
		Time:        in.Time,
		AllDay:      in.AllDay,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Recurrence != "" && in.Recurrence != constants.TaskRecurrenceNone {
		task.Recurrence = in.Recurrence
	}
	if task.AllDay {
		task.Time = ""
	}

	tasks[in.Date] = append(tasks[in.Date], task)
	if err := s.save(tasks); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// Update merges the non-nil fields of in into the task under the given
// date key and stamps UpdatedAt.
func (s *Service) Update(date, taskID string, in UpdateInput, now time.Time) (models.Task, error) {
	tasks, err := s.load()
	if err != nil {
		return models.Task{}, err
	}

	list := tasks[date]
	idx := -1
	for i, t := range list {
		if t.ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Task{}, fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, date)
	}

	t := list[idx]
	if in.Title != nil {
		if err := validation.Required("title", *in.Title); err != nil {
			return models.Task{}, err
		}
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Type != nil {
		if err := validation.TaskType(*in.Type); err != nil {
			return models.Task{}, err
		}
		t.Type = *in.Type
	}
	if in.AllDay != nil {
		t.AllDay = *in.AllDay
	}
	if in.Time != nil {
		t.Time = *in.Time
	}
	if err := validation.TimeOfDay(t.Time, t.AllDay); err != nil {
		return models.Task{}, err
	}
	if t.AllDay {
		t.Time = ""
	}
	if in.Recurrence != nil {
		if err := validation.TaskRecurrence(*in.Recurrence); err != nil {
			return models.Task{}, err
		}
		if *in.Recurrence == constants.TaskRecurrenceNone {
			t.Recurrence = ""
		} else {
			t.Recurrence = *in.Recurrence
		}
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	t.UpdatedAt = now

	list[idx] = t
	tasks[date] = list
	if err := s.save(tasks); err != nil {
		return models.Task{}, err
	}

	return t, nil
}

// ToggleComplete flips the task's completed flag and stamps UpdatedAt.
func (s *Service) ToggleComplete(date, taskID string, now time.Time) (models.Task, error) {
	tasks, err := s.load()
	if err != nil {
		return models.Task{}, err
	}

	list := tasks[date]
	for i, t := range list {
		if t.ID == taskID {
			t.Completed = !t.Completed
			t.UpdatedAt = now
			list[i] = t
			tasks[date] = list
			if err := s.save(tasks); err != nil {
				return models.Task{}, err
			}
			return t, nil
		}
	}

	return models.Task{}, fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, date)
}

// Delete removes the task from its date key, dropping the key entirely
// when its list empties.
func (s *Service) Delete(date, taskID string) error {
	tasks, err := s.load()
	if err != nil {
		return err
	}

	list := tasks[date]
	kept := make([]models.Task, 0, len(list))
	found := false
	for _, t := range list {
		if t.ID == taskID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%w: %s on %s", ErrTaskNotFound, taskID, date)
	}

	if len(kept) == 0 {
		delete(tasks, date)
	} else {
		tasks[date] = kept
	}

	return s.save(tasks)
}

func (s *Service) load() (models.TaskMap, error) {
	raw, err := s.store.Get(constants.TasksKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return make(models.TaskMap), nil
		}
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	var tasks models.TaskMap
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}
	if tasks == nil {
		tasks = make(models.TaskMap)
	}

	return tasks, nil
}

func (s *Service) save(tasks models.TaskMap) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}
	if err := s.store.Set(constants.TasksKey, raw); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

package habits

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/models"
	"github.com/julianstephens/habitkit/internal/storage"
	"github.com/julianstephens/habitkit/internal/utils"
	"github.com/julianstephens/habitkit/internal/validation"
)

// ErrHabitNotFound is returned when an id has no match in the user's
// collection.
var ErrHabitNotFound = errors.New("habit not found")

// CreateInput carries the new-habit form fields.
type CreateInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
	Frequency   constants.Frequency
	Tasks       []string
}

// UpdateInput carries a partial edit; nil fields are left unchanged.
type UpdateInput struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
	Frequency   *constants.Frequency
}

// Service owns the per-user habit collections. Every operation is a
// full-collection read-modify-write against the key-value store; the user
// id is always an explicit parameter.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// List returns the user's habits in stored order.
func (s *Service) List(userID string) ([]models.Habit, error) {
	return s.load(userID)
}

// Get returns a single habit by id.
func (s *Service) Get(userID, habitID string) (models.Habit, error) {
	habits, err := s.load(userID)
	if err != nil {
		return models.Habit{}, err
	}
	for _, h := range habits {
		if h.ID == habitID {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
}

// Create validates the input and appends a new habit to the user's
// collection.
func (s *Service) Create(userID string, in CreateInput, now time.Time) (models.Habit, error) {
	if err := validation.Required("name", in.Name); err != nil {
		return models.Habit{}, err
	}
	if err := validation.Frequency(in.Frequency); err != nil {
		return models.Habit{}, err
	}
	if err := validation.HexColor(in.Color); err != nil {
		return models.Habit{}, err
	}

	habits, err := s.load(userID)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		Description:    in.Description,
		Icon:           in.Icon,
		Color:          in.Color,
		Frequency:      in.Frequency,
		CreatedAt:      now,
		UpdatedAt:      now,
		CompletedDates: []models.Completion{},
	}
	for _, text := range in.Tasks {
		habit.Tasks = append(habit.Tasks, models.HabitTask{
			ID:        uuid.New().String(),
			Text:      text,
			Completed: false,
		})
	}

	if err := s.save(userID, append(habits, habit)); err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

// Update merges the non-nil fields of in into the habit and stamps
// UpdatedAt.
func (s *Service) Update(userID, habitID string, in UpdateInput, now time.Time) (models.Habit, error) {
	habits, err := s.load(userID)
	if err != nil {
		return models.Habit{}, err
	}

	idx := -1
	for i, h := range habits {
		if h.ID == habitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}

	h := habits[idx]
	if in.Name != nil {
		if err := validation.Required("name", *in.Name); err != nil {
			return models.Habit{}, err
		}
		h.Name = *in.Name
	}
	if in.Description != nil {
		h.Description = *in.Description
	}
	if in.Icon != nil {
		h.Icon = *in.Icon
	}
	if in.Color != nil {
		if err := validation.HexColor(*in.Color); err != nil {
			return models.Habit{}, err
		}
		h.Color = *in.Color
	}
	if in.Frequency != nil {
		if err := validation.Frequency(*in.Frequency); err != nil {
			return models.Habit{}, err
		}
		h.Frequency = *in.Frequency
	}
	h.UpdatedAt = now

	habits[idx] = h
	if err := s.save(userID, habits); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}

// Delete removes the habit from the user's collection.
func (s *Service) Delete(userID, habitID string) error {
	habits, err := s.load(userID)
	if err != nil {
		return err
	}

	kept := habits[:0]
	found := false
	for _, h := range habits {
		if h.ID == habitID {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}

	return s.save(userID, kept)
}

// ToggleCompletion flips the habit's completion state for the given day.
// A first toggle for a date appends {date, weekday, completed:true}; a
// repeat toggle negates Completed in place, so a toggle pair restores the
// original state without growing the history. LastCompleted and UpdatedAt
// are stamped on every toggle, including un-completing ones; that matches
// the long-standing behavior this tool replaces.
func (s *Service) ToggleCompletion(userID, habitID, date string, now time.Time) (models.Habit, error) {
	if err := validation.Date("date", date); err != nil {
		return models.Habit{}, err
	}

	habits, err := s.load(userID)
	if err != nil {
		return models.Habit{}, err
	}

	idx := -1
	for i, h := range habits {
		if h.ID == habitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}

	h := habits[idx]
	if ci := h.CompletionFor(date); ci >= 0 {
		h.CompletedDates[ci].Completed = !h.CompletedDates[ci].Completed
	} else {
		day, err := utils.WeekdayNameForDate(date)
		if err != nil {
			return models.Habit{}, err
		}
		h.CompletedDates = append(h.CompletedDates, models.Completion{
			Date:      date,
			Day:       day,
			Completed: true,
		})
	}

	h.LastCompleted = date
	h.UpdatedAt = now

	habits[idx] = h
	if err := s.save(userID, habits); err != nil {
		return models.Habit{}, err
	}

	return h, nil
}

func habitsKey(userID string) string {
	return constants.HabitsKeyPrefix + userID
}

func (s *Service) load(userID string) ([]models.Habit, error) {
	raw, err := s.store.Get(habitsKey(userID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	var habits []models.Habit
	if err := json.Unmarshal(raw, &habits); err != nil {
		return nil, fmt.Errorf("failed to parse habits: %w", err)
	}

	return habits, nil
}

func (s *Service) save(userID string, habits []models.Habit) error {
	raw, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to serialize habits: %w", err)
	}
	if err := s.store.Set(habitsKey(userID), raw); err != nil {
		return fmt.Errorf("failed to save habits: %w", err)
	}
	return nil
}

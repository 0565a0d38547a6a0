package calendar

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
	"github.com/julianstephens/habitkit/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return NewService(store)
}

func TestAdd_FilesTaskUnderDate(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	task, err := svc.Add(CreateInput{
		Title:  "Dentist",
		Type:   constants.TaskTypeMeeting,
		Date:   "2024-06-01",
		Time:   "09:30",
		AllDay: false,
	}, now)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.ID == "" {
		t.Error("expected a generated id")
	}
	if task.Completed {
		t.Error("new tasks must start incomplete")
	}

	tasks, err := svc.ForDate("2024-06-01")
	if err != nil {
		t.Fatalf("ForDate failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Dentist" {
		t.Errorf("expected one task on 2024-06-01, got %+v", tasks)
	}

	if tasks, _ := svc.ForDate("2024-06-02"); len(tasks) != 0 {
		t.Errorf("expected no tasks on other dates, got %d", len(tasks))
	}
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	cases := []struct {
		name string
		in   CreateInput
	}{
		{"empty title", CreateInput{Type: constants.TaskTypeTask, Date: "2024-06-01", AllDay: true}},
		{"bad type", CreateInput{Title: "X", Type: "chore", Date: "2024-06-01", AllDay: true}},
		{"bad date", CreateInput{Title: "X", Type: constants.TaskTypeTask, Date: "June 1", AllDay: true}},
		{"timed without time", CreateInput{Title: "X", Type: constants.TaskTypeTask, Date: "2024-06-01"}},
		{"bad recurrence", CreateInput{Title: "X", Type: constants.TaskTypeTask, Date: "2024-06-01", AllDay: true, Recurrence: "fortnightly"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Add(tc.in, now); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestAdd_AllDayClearsTime(t *testing.T) {
	svc := newTestService(t)

	task, err := svc.Add(CreateInput{
		Title:  "Holiday",
		Type:   constants.TaskTypeEvent,
		Date:   "2024-06-01",
		Time:   "09:00",
		AllDay: true,
	}, time.Now())
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if task.Time != "" {
		t.Errorf("expected all-day task to carry no time, got %q", task.Time)
	}
}

func TestUpdate_MergesAndStamps(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	task, err := svc.Add(CreateInput{
		Title: "Dentist",
		Type:  constants.TaskTypeMeeting,
		Date:  "2024-06-01",
		Time:  "09:30",
	}, now)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	newTitle := "Dentist checkup"
	newTime := "10:00"
	later := now.Add(time.Hour)
	updated, err := svc.Update("2024-06-01", task.ID, UpdateInput{Title: &newTitle, Time: &newTime}, later)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Dentist checkup" || updated.Time != "10:00" {
		t.Errorf("unexpected merge result: %+v", updated)
	}
	if updated.Type != constants.TaskTypeMeeting {
		t.Errorf("expected type untouched, got %q", updated.Type)
	}
	if !updated.UpdatedAt.Equal(later) {
		t.Errorf("expected UpdatedAt stamped to %v, got %v", later, updated.UpdatedAt)
	}
}

func TestToggleComplete_FlipsFlag(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	task, err := svc.Add(CreateInput{
		Title: "Dentist", Type: constants.TaskTypeMeeting, Date: "2024-06-01", Time: "09:30",
	}, now)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	toggled, err := svc.ToggleComplete("2024-06-01", task.ID, now)
	if err != nil {
		t.Fatalf("ToggleComplete failed: %v", err)
	}
	if !toggled.Completed {
		t.Error("expected task completed after toggle")
	}

	toggled, err = svc.ToggleComplete("2024-06-01", task.ID, now)
	if err != nil {
		t.Fatalf("second ToggleComplete failed: %v", err)
	}
	if toggled.Completed {
		t.Error("expected task reopened after second toggle")
	}
}

func TestDelete_DropsEmptyDateKey(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	a, _ := svc.Add(CreateInput{Title: "A", Type: constants.TaskTypeTask, Date: "2024-06-01", AllDay: true}, now)
	b, _ := svc.Add(CreateInput{Title: "B", Type: constants.TaskTypeTask, Date: "2024-06-01", AllDay: true}, now)

	if err := svc.Delete("2024-06-01", a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	dates, err := svc.Dates()
	if err != nil {
		t.Fatalf("Dates failed: %v", err)
	}
	if len(dates) != 1 {
		t.Fatalf("expected date key to remain while tasks exist, got %v", dates)
	}

	if err := svc.Delete("2024-06-01", b.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	dates, err = svc.Dates()
	if err != nil {
		t.Fatalf("Dates failed: %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("expected empty date key to be removed, got %v", dates)
	}
}

func TestDelete_UnknownTask(t *testing.T) {
	svc := newTestService(t)

	if err := svc.Delete("2024-06-01", "nope"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestForMonth_FiltersByPrefix(t *testing.T) {
	svc := newTestService(t)
	now := time.Now()

	svc.Add(CreateInput{Title: "June 1", Type: constants.TaskTypeTask, Date: "2024-06-01", AllDay: true}, now)
	svc.Add(CreateInput{Title: "June 15", Type: constants.TaskTypeTask, Date: "2024-06-15", AllDay: true}, now)
	svc.Add(CreateInput{Title: "July", Type: constants.TaskTypeTask, Date: "2024-07-01", AllDay: true}, now)

	month, err := svc.ForMonth("2024-06-10")
	if err != nil {
		t.Fatalf("ForMonth failed: %v", err)
	}
	if len(month) != 2 {
		t.Errorf("expected 2 date keys in June, got %d", len(month))
	}
	if _, ok := month["2024-07-01"]; ok {
		t.Error("July key must not appear in June's listing")
	}
}

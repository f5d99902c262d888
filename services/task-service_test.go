package services

import (
	"errors"
	"reflect"
	"testing"

	"zadaci-service/models"
)

func seedWithTasks(statuses ...models.TaskStatus) models.Document {
	tasks := []models.Task{}
	for i, status := range statuses {
		tasks = append(tasks, models.Task{
			Title:  string(rune('A' + i)),
			Status: status,
		})
	}
	return models.Document{Users: []models.User{
		{Username: "gazda", Password: "lozinka", Role: models.RoleOwner},
		{Username: "pero", Password: "pw", Role: models.RoleWorker, Tasks: tasks, Location: &models.Location{}},
	}}
}

func TestCreate_NewTaskDefaults(t *testing.T) {
	fileStore := newTestStore(t, seedDocument())
	s := NewTaskService(fileStore)

	err := s.Create("pero", "Clean lobby", "detaljno", "2024-06-01", "08:00", "hotel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, _ := fileStore.Load()
	tasks := doc.FindWorker("pero").Tasks
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	created := tasks[1]
	if created.Status != models.StatusNotDone {
		t.Fatalf("new task must start NOT_DONE, got %s", created.Status)
	}
	if created.Rating != 0 || created.HoursWorked != 0 {
		t.Fatalf("new task must start unrated with 0 hours: %+v", created)
	}
	if created.Location != "hotel" {
		t.Fatalf("location must copy place, got %q", created.Location)
	}
	if created.Title != "Clean lobby" || created.Date != "2024-06-01" || created.Time != "08:00" {
		t.Fatalf("supplied fields not stored: %+v", created)
	}
}

func TestCreate_Failures(t *testing.T) {
	s := NewTaskService(newTestStore(t, seedDocument()))

	var validationErr *models.ValidationError
	if err := s.Create("", "Naslov", "", "", "", ""); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := s.Create("pero", "", "", "", "", ""); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	var notFoundErr *models.NotFoundError
	if err := s.Create("niko", "Naslov", "", "", "", ""); !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	// Vlasnik nije validna meta zadatka.
	if err := s.Create("gazda", "Naslov", "", "", "", ""); !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDelete_ShiftsLaterTasksDown(t *testing.T) {
	fileStore := newTestStore(t, seedWithTasks(models.StatusNotDone, models.StatusInProgress, models.StatusDone))
	s := NewTaskService(fileStore)

	title, err := s.Delete("pero", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "B" {
		t.Fatalf("expected removed title B, got %q", title)
	}

	doc, _ := fileStore.Load()
	tasks := doc.FindWorker("pero").Tasks
	if len(tasks) != 2 || tasks[0].Title != "A" || tasks[1].Title != "C" {
		t.Fatalf("tasks after delete: %+v", tasks)
	}
}

func TestDelete_OutOfRangeLeavesTasksUnchanged(t *testing.T) {
	fileStore := newTestStore(t, seedWithTasks(models.StatusNotDone))
	s := NewTaskService(fileStore)
	before, _ := fileStore.Load()

	var indexErr *models.IndexError
	if _, err := s.Delete("pero", 5); !errors.As(err, &indexErr) {
		t.Fatalf("expected IndexError, got %v", err)
	}
	if _, err := s.Delete("pero", -1); !errors.As(err, &indexErr) {
		t.Fatalf("expected IndexError, got %v", err)
	}

	after, _ := fileStore.Load()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("document changed on out-of-range delete")
	}
}

func TestRate_OnlyDoneTasks(t *testing.T) {
	fileStore := newTestStore(t, seedWithTasks(models.StatusNotDone, models.StatusDone))
	s := NewTaskService(fileStore)

	if err := s.Rate("pero", 0, 5, "great job"); !errors.Is(err, models.ErrTaskNotDone) {
		t.Fatalf("expected ErrTaskNotDone, got %v", err)
	}
	doc, _ := fileStore.Load()
	notDone := doc.FindWorker("pero").Tasks[0]
	if notDone.Rating != 0 || notDone.RatingComment != "" {
		t.Fatalf("rejected rating must not mutate task: %+v", notDone)
	}

	if err := s.Rate("pero", 1, 5, "great job"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, _ = fileStore.Load()
	done := doc.FindWorker("pero").Tasks[1]
	if done.Rating != 5 || done.RatingComment != "great job" {
		t.Fatalf("rating not stored: %+v", done)
	}
}

func TestRate_OutOfRange(t *testing.T) {
	s := NewTaskService(newTestStore(t, seedWithTasks(models.StatusDone)))

	var indexErr *models.IndexError
	if err := s.Rate("pero", 3, 5, ""); !errors.As(err, &indexErr) {
		t.Fatalf("expected IndexError, got %v", err)
	}
}

func TestUpdateStatus_NotDoneSetsReasonAndClearsRating(t *testing.T) {
	doc := seedWithTasks(models.StatusDone)
	doc.Users[1].Tasks[0].Rating = 4
	fileStore := newTestStore(t, doc)
	s := NewTaskService(fileStore)

	err := s.UpdateStatus("pero", 0, models.StatusNotDone, "2", "nije bilo materijala")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _ := fileStore.Load()
	task := loaded.FindWorker("pero").Tasks[0]
	if task.Status != models.StatusNotDone {
		t.Fatalf("status not updated: %+v", task)
	}
	if task.Rating != 0 {
		t.Fatalf("NOT_DONE must force rating to 0, got %d", task.Rating)
	}
	if task.NotDoneReason != "nije bilo materijala" {
		t.Fatalf("reason not stored: %q", task.NotDoneReason)
	}
	if task.HoursWorked != 2 {
		t.Fatalf("hours not stored: %v", task.HoursWorked)
	}
}

func TestUpdateStatus_OtherStatusClearsReasonKeepsRating(t *testing.T) {
	doc := seedWithTasks(models.StatusNotDone)
	doc.Users[1].Tasks[0].NotDoneReason = "kiša"
	doc.Users[1].Tasks[0].Rating = 3
	fileStore := newTestStore(t, doc)
	s := NewTaskService(fileStore)

	if err := s.UpdateStatus("pero", 0, models.StatusInProgress, "1.5", "ignorisano"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _ := fileStore.Load()
	task := loaded.FindWorker("pero").Tasks[0]
	if task.NotDoneReason != "" {
		t.Fatalf("reason must be cleared, got %q", task.NotDoneReason)
	}
	if task.Rating != 3 {
		t.Fatalf("rating must stay untouched, got %d", task.Rating)
	}
	if task.HoursWorked != 1.5 {
		t.Fatalf("hours not stored: %v", task.HoursWorked)
	}
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	fileStore := newTestStore(t, seedWithTasks(models.StatusNotDone))
	s := NewTaskService(fileStore)
	before, _ := fileStore.Load()

	var validationErr *models.ValidationError
	if err := s.UpdateStatus("pero", 0, "ZAVRŠENO", "1", ""); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	after, _ := fileStore.Load()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("document changed on invalid status")
	}
}

func TestUpdateStatus_UnparsableHoursCoerceToZero(t *testing.T) {
	doc := seedWithTasks(models.StatusNotDone)
	doc.Users[1].Tasks[0].HoursWorked = 7
	fileStore := newTestStore(t, doc)
	s := NewTaskService(fileStore)

	if err := s.UpdateStatus("pero", 0, models.StatusDone, "puno", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, _ := fileStore.Load()
	if got := loaded.FindWorker("pero").Tasks[0].HoursWorked; got != 0 {
		t.Fatalf("unparsable hours must coerce to 0, got %v", got)
	}
}

func TestUpdateStatus_OutOfRange(t *testing.T) {
	s := NewTaskService(newTestStore(t, seedWithTasks(models.StatusNotDone)))

	var indexErr *models.IndexError
	if err := s.UpdateStatus("pero", 9, models.StatusDone, "1", ""); !errors.As(err, &indexErr) {
		t.Fatalf("expected IndexError, got %v", err)
	}
}

func TestTask_ByPosition(t *testing.T) {
	s := NewTaskService(newTestStore(t, seedWithTasks(models.StatusNotDone, models.StatusDone)))

	task, err := s.Task("pero", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Title != "B" {
		t.Fatalf("wrong task returned: %+v", task)
	}

	var indexErr *models.IndexError
	if _, err := s.Task("pero", 2); !errors.As(err, &indexErr) {
		t.Fatalf("expected IndexError, got %v", err)
	}
	var notFoundErr *models.NotFoundError
	if _, err := s.Task("niko", 0); !errors.As(err, &notFoundErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

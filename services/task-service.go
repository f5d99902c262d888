package services

import (
	"strconv"

	"zadaci-service/logging"
	"zadaci-service/models"
	"zadaci-service/store"
)

// TaskService pokriva životni ciklus zadatka: vlasnik kreira, briše i
// ocenjuje, radnik menja status i radne sate na sopstvenim zadacima.
type TaskService struct {
	Store *store.FileStore
}

func NewTaskService(fileStore *store.FileStore) *TaskService {
	return &TaskService{Store: fileStore}
}

// Create dodaje nov zadatak na kraj liste datog radnika. Novi zadatak
// uvek kreće sa statusom NOT_DONE, ocenom 0 i 0 radnih sati; lokacija
// je kopija mesta.
func (s *TaskService) Create(username, title, description, date, timeOfDay, place string) error {
	if username == "" || title == "" {
		return &models.ValidationError{Message: "Morate odabrati radnika i unijeti naziv zadatka."}
	}

	return s.Store.Update(func(doc *models.Document) error {
		worker := doc.FindWorker(username)
		if worker == nil {
			return &models.NotFoundError{Message: "Odabrani radnik ne postoji."}
		}
		worker.Tasks = append(worker.Tasks, models.Task{
			Title:       title,
			Description: description,
			Date:        date,
			Time:        timeOfDay,
			Place:       place,
			Location:    place,
			Status:      models.StatusNotDone,
		})
		logging.Logger.Infof("Event ID: TASK_CREATED, Description: Task %q assigned to worker %q", title, username)
		return nil
	})
}

// Delete uklanja zadatak na datoj poziciji i vraća njegov naziv.
// Pozicije svih kasnijih zadataka pomeraju se za jedan naniže, pa
// ranije izdati indeksi posle brisanja više ne važe.
func (s *TaskService) Delete(username string, index int) (string, error) {
	var removed string
	err := s.Store.Update(func(doc *models.Document) error {
		worker := doc.FindWorker(username)
		if worker == nil {
			return &models.NotFoundError{Message: "Radnik ne postoji."}
		}
		if index < 0 || index >= len(worker.Tasks) {
			return &models.IndexError{Message: "Neispravan indeks zadatka za brisanje."}
		}
		removed = worker.Tasks[index].Title
		worker.Tasks = append(worker.Tasks[:index], worker.Tasks[index+1:]...)
		logging.Logger.Infof("Event ID: TASK_DELETED, Description: Task %q removed from worker %q", removed, username)
		return nil
	})
	return removed, err
}

// Rate upisuje ocenu i komentar vlasnika. Ocenjuju se samo odrađeni
// zadaci; vrednost ocene se prihvata bez provere opsega.
func (s *TaskService) Rate(username string, index int, rating int, comment string) error {
	return s.Store.Update(func(doc *models.Document) error {
		worker := doc.FindWorker(username)
		if worker == nil {
			return &models.NotFoundError{Message: "Radnik ne postoji."}
		}
		if index < 0 || index >= len(worker.Tasks) {
			return &models.IndexError{Message: "Neispravan indeks zadatka."}
		}
		task := &worker.Tasks[index]
		if task.Status != models.StatusDone {
			return models.ErrTaskNotDone
		}
		task.Rating = rating
		task.RatingComment = comment
		logging.Logger.Infof("Event ID: TASK_RATED, Description: Task %q of worker %q rated %d", task.Title, username, rating)
		return nil
	})
}

// Task vraća zadatak radnika na datoj poziciji.
func (s *TaskService) Task(username string, index int) (models.Task, error) {
	doc, err := s.Store.Load()
	if err != nil {
		return models.Task{}, err
	}
	worker := doc.FindWorker(username)
	if worker == nil {
		return models.Task{}, &models.NotFoundError{Message: "Zadatak ne postoji."}
	}
	if index < 0 || index >= len(worker.Tasks) {
		return models.Task{}, &models.IndexError{Message: "Zadatak ne postoji."}
	}
	return worker.Tasks[index], nil
}

// UpdateStatus menja status i radne sate zadatka. Prelaz u NOT_DONE
// upisuje razlog i poništava ocenu; svaki drugi status briše razlog, a
// ocenu ne dira. Sati koji se ne mogu parsirati postaju 0, bez greške.
func (s *TaskService) UpdateStatus(username string, index int, status models.TaskStatus, hoursRaw string, notDoneReason string) error {
	return s.Store.Update(func(doc *models.Document) error {
		worker := doc.FindWorker(username)
		if worker == nil {
			return &models.NotFoundError{Message: "Zadatak ne postoji."}
		}
		if index < 0 || index >= len(worker.Tasks) {
			return &models.IndexError{Message: "Zadatak ne postoji."}
		}
		if !status.Valid() {
			return &models.ValidationError{Message: "Neispravan status zadatka."}
		}

		task := &worker.Tasks[index]
		task.Status = status

		hours, err := strconv.ParseFloat(hoursRaw, 64)
		if err != nil {
			hours = 0
		}
		task.HoursWorked = hours

		if status == models.StatusNotDone {
			task.NotDoneReason = notDoneReason
			task.Rating = 0
		} else {
			task.NotDoneReason = ""
		}
		logging.Logger.Infof("Event ID: TASK_STATUS_CHANGED, Description: Task %q of worker %q set to %s", task.Title, username, status)
		return nil
	})
}

package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"zadaci-service/logging"
	"zadaci-service/models"
	"zadaci-service/store"
)

// UserService pokriva prijavu i upravljanje radnicima. Radnici se ne
// registruju sami: naloge pravi, menja i briše isključivo vlasnik.
type UserService struct {
	Store *store.FileStore
}

func NewUserService(fileStore *store.FileStore) *UserService {
	return &UserService{Store: fileStore}
}

// Authenticate proverava korisničko ime i lozinku i vraća celog korisnika.
// Lozinke u dokumentu su u otvorenom tekstu (nasleđeni format); vrednost
// u bcrypt formatu se proverava kao hash, pa operater može naknadno da
// hašira datoteku bez izmene koda.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	doc, err := s.Store.Load()
	if err != nil {
		return models.User{}, err
	}

	user := doc.FindUser(username)
	if user == nil || !passwordMatches(user.Password, password) {
		logging.Logger.Warnf("Event ID: LOGIN_FAILED, Description: Failed login attempt for username %q", username)
		return models.User{}, models.ErrAuthFailure
	}
	return *user, nil
}

func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return stored == supplied
}

// Workers vraća sve radnike.
func (s *UserService) Workers() ([]models.User, error) {
	doc, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Workers(), nil
}

// Worker vraća jednog radnika po korisničkom imenu.
func (s *UserService) Worker(username string) (models.User, error) {
	doc, err := s.Store.Load()
	if err != nil {
		return models.User{}, err
	}
	worker := doc.FindWorker(username)
	if worker == nil {
		return models.User{}, &models.NotFoundError{Message: "Radnik ne postoji."}
	}
	return *worker, nil
}

// AddWorker dodaje novog radnika sa praznom listom zadataka i nultom
// lokacijom. Korisničko ime mora biti slobodno među svim korisnicima,
// uključujući vlasnika.
func (s *UserService) AddWorker(username, password string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return &models.ValidationError{Message: "Unesite korisničko ime i lozinku za novog radnika."}
	}

	return s.Store.Update(func(doc *models.Document) error {
		if doc.FindUser(username) != nil {
			return &models.ConflictError{Message: "Korisničko ime već postoji."}
		}
		doc.Users = append(doc.Users, models.User{
			Username: username,
			Password: password,
			Role:     models.RoleWorker,
			Tasks:    []models.Task{},
			Location: &models.Location{},
		})
		logging.Logger.Infof("Event ID: WORKER_ADDED, Description: Worker %q added", username)
		return nil
	})
}

// EditWorker menja korisničko ime i lozinku radnika u mestu; zadaci i
// lokacija ostaju netaknuti.
func (s *UserService) EditWorker(oldUsername, newUsername, newPassword string) error {
	newUsername = strings.TrimSpace(newUsername)
	newPassword = strings.TrimSpace(newPassword)
	if newUsername == "" || newPassword == "" {
		return &models.ValidationError{Message: "Morate unijeti novo korisničko ime i lozinku."}
	}

	return s.Store.Update(func(doc *models.Document) error {
		if newUsername != oldUsername && doc.FindUser(newUsername) != nil {
			return &models.ConflictError{Message: "Novo korisničko ime već postoji."}
		}
		worker := doc.FindWorker(oldUsername)
		if worker == nil {
			return &models.NotFoundError{Message: "Radnik ne postoji."}
		}
		worker.Username = newUsername
		worker.Password = newPassword
		logging.Logger.Infof("Event ID: WORKER_EDITED, Description: Worker %q renamed to %q", oldUsername, newUsername)
		return nil
	})
}

// DeleteWorker uklanja radnika i sve njegove zadatke. Nepostojeće ime
// je tihi no-op: dokument se svejedno ponovo upisuje i operacija
// prolazi bez greške.
func (s *UserService) DeleteWorker(username string) error {
	return s.Store.Update(func(doc *models.Document) error {
		users := []models.User{}
		for _, user := range doc.Users {
			if user.Username != username {
				users = append(users, user)
			}
		}
		doc.Users = users
		logging.Logger.Infof("Event ID: WORKER_DELETED, Description: Worker %q removed", username)
		return nil
	})
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"zadaci-service/middleware"
	"zadaci-service/models"
	"zadaci-service/services"
)

// WorkerHandler pokriva stranice radnika: dashboard sa sopstvenim
// zadacima i pregled/izmenu jednog zadatka po poziciji.
type WorkerHandler struct {
	UserService *services.UserService
	TaskService *services.TaskService
}

func NewWorkerHandler(userService *services.UserService, taskService *services.TaskService) *WorkerHandler {
	return &WorkerHandler{UserService: userService, TaskService: taskService}
}

type WorkerDashboardResponse struct {
	Radnik models.User `json:"radnik"`
	Poruka string      `json:"poruka,omitempty"`
}

type TaskDetailResponse struct {
	Zadatak models.Task `json:"zadatak"`
	Indeks  int         `json:"indeks"`
	Poruka  string      `json:"poruka,omitempty"`
}

// Dashboard prikazuje prijavljenog radnika sa njegovim zadacima.
func (h *WorkerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.SessionFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	radnik, err := h.UserService.Worker(claims.Username)
	if err != nil {
		var storageErr *models.StorageError
		if errors.As(err, &storageErr) {
			internalError(w, err)
			return
		}
		// Nalog je u međuvremenu obrisan.
		middleware.SetFlash(w, "Došlo je do greške.")
		http.Redirect(w, r, "/logout", http.StatusFound)
		return
	}
	writeJSON(w, WorkerDashboardResponse{Radnik: radnik, Poruka: middleware.PopFlash(w, r)})
}

// TaskDetail prikazuje jedan zadatak po poziciji; POST menja status,
// radne sate i razlog zašto zadatak nije odrađen.
func (h *WorkerHandler) TaskDetail(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.SessionFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["indeks"])
	if err != nil {
		redirectWithError(w, r, &models.IndexError{Message: "Zadatak ne postoji."}, "/radnik")
		return
	}

	if r.Method == http.MethodPost {
		h.updateTask(w, r, claims.Username, index)
		return
	}

	zadatak, err := h.TaskService.Task(claims.Username, index)
	if err != nil {
		redirectWithError(w, r, err, "/radnik")
		return
	}
	writeJSON(w, TaskDetailResponse{Zadatak: zadatak, Indeks: index, Poruka: middleware.PopFlash(w, r)})
}

func (h *WorkerHandler) updateTask(w http.ResponseWriter, r *http.Request, username string, index int) {
	target := fmt.Sprintf("/radnik/zadatak/%d", index)

	status := models.TaskStatus(r.PostFormValue("status"))
	hours := r.PostFormValue("radni_sati")
	reason := strings.TrimSpace(r.PostFormValue("opis_zasto_nije"))

	if err := h.TaskService.UpdateStatus(username, index, status, hours, reason); err != nil {
		// Nepostojeći radnik ili pozicija vraćaju na dashboard;
		// ostale greške na istu stranicu.
		var indexErr *models.IndexError
		var notFoundErr *models.NotFoundError
		if errors.As(err, &indexErr) || errors.As(err, &notFoundErr) {
			redirectWithError(w, r, err, "/radnik")
			return
		}
		redirectWithError(w, r, err, target)
		return
	}
	middleware.SetFlash(w, "Podaci uspješno spremljeni.")
	http.Redirect(w, r, target, http.StatusFound)
}

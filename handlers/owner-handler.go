package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"zadaci-service/middleware"
	"zadaci-service/models"
	"zadaci-service/services"
)

// OwnerHandler pokriva vlasničke stranice: dashboard sa kreiranjem
// zadataka, pregled zadataka jednog radnika i upravljanje nalozima.
type OwnerHandler struct {
	UserService *services.UserService
	TaskService *services.TaskService
}

func NewOwnerHandler(userService *services.UserService, taskService *services.TaskService) *OwnerHandler {
	return &OwnerHandler{UserService: userService, TaskService: taskService}
}

type DashboardResponse struct {
	Radnici []models.User `json:"radnici"`
	Poruka  string        `json:"poruka,omitempty"`
}

type WorkerDetailResponse struct {
	Radnik models.User `json:"radnik"`
	Poruka string      `json:"poruka,omitempty"`
}

// Dashboard prikazuje radnike; POST dodaje nov zadatak odabranom radniku.
func (h *OwnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.createTask(w, r)
		return
	}

	radnici, err := h.UserService.Workers()
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, DashboardResponse{Radnici: radnici, Poruka: middleware.PopFlash(w, r)})
}

func (h *OwnerHandler) createTask(w http.ResponseWriter, r *http.Request) {
	err := h.TaskService.Create(
		r.FormValue("korisnik"),
		r.FormValue("naziv"),
		r.FormValue("opis"),
		r.FormValue("datum"),
		r.FormValue("vrijeme"),
		r.FormValue("mjesto"),
	)
	if err != nil {
		redirectWithError(w, r, err, "/vlasnik")
		return
	}

	// Uspeh vraća osvežen prikaz sa porukom, bez redirect-a.
	radnici, err := h.UserService.Workers()
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, DashboardResponse{Radnici: radnici, Poruka: "Zadatak je uspješno dodan."})
}

// WorkerDetail prikazuje zadatke jednog radnika; POST briše ili
// ocenjuje zadatak, u zavisnosti od forme.
func (h *OwnerHandler) WorkerDetail(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["korisnik"]

	if r.Method == http.MethodPost {
		h.updateWorkerTasks(w, r, username)
		return
	}

	radnik, err := h.UserService.Worker(username)
	if err != nil {
		redirectWithError(w, r, err, "/vlasnik")
		return
	}
	writeJSON(w, WorkerDetailResponse{Radnik: radnik, Poruka: middleware.PopFlash(w, r)})
}

func (h *OwnerHandler) updateWorkerTasks(w http.ResponseWriter, r *http.Request, username string) {
	target := "/vlasnik/radnik/" + username
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if r.PostForm.Has("obrisi") {
		index, err := strconv.Atoi(r.PostFormValue("indeks_za_brisanje"))
		if err != nil {
			redirectWithError(w, r, &models.IndexError{Message: "Neispravan indeks zadatka za brisanje."}, target)
			return
		}
		title, err := h.TaskService.Delete(username, index)
		if err != nil {
			redirectWithError(w, r, err, target)
			return
		}
		middleware.SetFlash(w, fmt.Sprintf("Zadatak %q je obrisan.", title))
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	index, err := strconv.Atoi(r.PostFormValue("indeks"))
	if err != nil {
		redirectWithError(w, r, &models.IndexError{Message: "Neispravan indeks zadatka."}, target)
		return
	}
	rating, err := strconv.Atoi(r.PostFormValue("ocjena"))
	if err != nil {
		redirectWithError(w, r, &models.ValidationError{Message: "Neispravna ocjena."}, target)
		return
	}
	comment := strings.TrimSpace(r.PostFormValue("opis_ocjene"))

	if err := h.TaskService.Rate(username, index, rating, comment); err != nil {
		redirectWithError(w, r, err, target)
		return
	}
	middleware.SetFlash(w, "Ocjena i opis uspješno spremljeni.")
	http.Redirect(w, r, target, http.StatusFound)
}

type ManageWorkersResponse struct {
	Radnici []models.User `json:"radnici"`
	Poruka  string        `json:"poruka,omitempty"`
}

// ManageWorkers prikazuje naloge radnika; POST dodaje, briše ili menja
// nalog, u zavisnosti od toga koje dugme je poslato u formi.
func (h *OwnerHandler) ManageWorkers(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		switch {
		case r.PostForm.Has("dodaj"):
			h.addWorker(w, r)
			return
		case r.PostForm.Has("obrisi"):
			h.deleteWorker(w, r)
			return
		case r.PostForm.Has("uredi"):
			h.editWorker(w, r)
			return
		}
	}

	radnici, err := h.UserService.Workers()
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, ManageWorkersResponse{Radnici: radnici, Poruka: middleware.PopFlash(w, r)})
}

func (h *OwnerHandler) addWorker(w http.ResponseWriter, r *http.Request) {
	const target = "/vlasnik/radnici"
	username := strings.TrimSpace(r.PostFormValue("novo_korime"))
	password := r.PostFormValue("nova_lozinka")

	if err := h.UserService.AddWorker(username, password); err != nil {
		redirectWithError(w, r, err, target)
		return
	}
	middleware.SetFlash(w, fmt.Sprintf("Radnik %q uspješno dodan.", username))
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *OwnerHandler) deleteWorker(w http.ResponseWriter, r *http.Request) {
	const target = "/vlasnik/radnici"
	username := r.PostFormValue("korime_za_brisanje")
	if username == "" {
		redirectWithError(w, r, &models.ValidationError{Message: "Neispravan radnik za brisanje."}, target)
		return
	}

	if err := h.UserService.DeleteWorker(username); err != nil {
		redirectWithError(w, r, err, target)
		return
	}
	middleware.SetFlash(w, fmt.Sprintf("Radnik %q je obrisan.", username))
	http.Redirect(w, r, target, http.StatusFound)
}

func (h *OwnerHandler) editWorker(w http.ResponseWriter, r *http.Request) {
	const target = "/vlasnik/radnici"
	newUsername := strings.TrimSpace(r.PostFormValue("novi_korime"))
	newPassword := strings.TrimSpace(r.PostFormValue("nova_lozinka"))

	if newUsername == "" || newPassword == "" {
		redirectWithError(w, r, &models.ValidationError{Message: "Morate unijeti novo korisničko ime i lozinku."}, target)
		return
	}
	if !r.PostForm.Has("stari_korime") {
		redirectWithError(w, r, &models.ValidationError{Message: "Neispravan radnik za uređivanje."}, target)
		return
	}

	if err := h.UserService.EditWorker(r.PostFormValue("stari_korime"), newUsername, newPassword); err != nil {
		redirectWithError(w, r, err, target)
		return
	}
	middleware.SetFlash(w, "Podaci radnika su uspješno ažurirani.")
	http.Redirect(w, r, target, http.StatusFound)
}

package handlers

import (
	"net/http"

	"zadaci-service/logging"
	"zadaci-service/middleware"
	"zadaci-service/models"
	"zadaci-service/services"
	"zadaci-service/utils"
)

type LoginHandler struct {
	UserService *services.UserService
}

// LoginPageResponse je podatak za login stranicu; renderuje je
// spoljašnji view sloj.
type LoginPageResponse struct {
	Poruka string `json:"poruka,omitempty"`
}

// Login obrađuje prijavu. GET vraća podatke za formu, POST proverava
// kredencijale, otvara sesiju i šalje korisnika na njegov dashboard.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.handleLogin(w, r)
		return
	}
	writeJSON(w, LoginPageResponse{Poruka: middleware.PopFlash(w, r)})
}

func (h *LoginHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("korime")
	password := r.FormValue("lozinka")

	user, err := h.UserService.Authenticate(username, password)
	if err != nil {
		redirectWithError(w, r, err, "/login")
		return
	}

	token, err := utils.GenerateToken(user.Username, user.Role)
	if err != nil {
		internalError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	logging.Logger.Infof("Event ID: LOGIN_SUCCESS, Description: User %q logged in with role %s", user.Username, user.Role)

	if user.Role == models.RoleOwner {
		http.Redirect(w, r, "/vlasnik", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/radnik", http.StatusFound)
}

// Logout briše sesiju i vraća na prijavu.
func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}

package middleware

import (
	"context"
	"net/http"
	"net/url"

	"zadaci-service/logging"
	"zadaci-service/models"
	"zadaci-service/utils"
)

const (
	// SessionCookie nosi JWT sesije (korisničko ime i uloga).
	SessionCookie = "session"
	flashCookie   = "poruka"
)

type contextKey string

const sessionKey contextKey = "session"

// RequireRole propušta zahtev samo ako sesija postoji i uloga se poklapa.
// Neprijavljen korisnik i korisnik sa pogrešnom ulogom završavaju na
// istom odredištu, /login; pogrešna uloga uz to dobija i poruku.
func RequireRole(role models.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			logging.Logger.Warnf("Event ID: SESSION_MISSING, Description: No session for request to %s %s", r.Method, r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		claims, err := utils.ValidateToken(cookie.Value)
		if err != nil {
			logging.Logger.Warnf("Event ID: SESSION_INVALID, Description: Invalid session token for request to %s %s: %v", r.Method, r.URL.Path, err)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		if claims.Role != role {
			logging.Logger.Warnf("Event ID: SESSION_ROLE_MISMATCH, Description: User %s with role %s denied access to %s", claims.Username, claims.Role, r.URL.Path)
			SetFlash(w, "Nemate pristup ovoj stranici.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), sessionKey, claims)))
	}
}

// SessionFrom vraća identitet prijavljenog korisnika iz konteksta zahteva.
func SessionFrom(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(sessionKey).(*utils.Claims)
	return claims, ok
}

// SetFlash postavlja jednokratnu poruku za sledeću stranicu.
func SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:  flashCookie,
		Value: url.QueryEscape(message),
		Path:  "/",
	})
}

// PopFlash čita jednokratnu poruku i odmah je briše.
func PopFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"zadaci-service/models"
	"zadaci-service/utils"
)

func TestRequireRole_AllowsMatchingRoleAndInjectsSession(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("pero", models.RoleWorker)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	handler := RequireRole(models.RoleWorker, func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionFrom(r)
		if !ok {
			t.Errorf("session missing from context")
		} else if claims.Username != "pero" || claims.Role != models.RoleWorker {
			t.Errorf("wrong session claims: %+v", claims)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/radnik", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected request to pass the gate, got %d", rec.Code)
	}
}

func TestRequireRole_NoSessionRedirectsToLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := RequireRole(models.RoleOwner, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("handler must not run without a session")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/vlasnik", nil))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRequireRole_WrongRoleRedirectsWithFlash(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := utils.GenerateToken("pero", models.RoleWorker)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	handler := RequireRole(models.RoleOwner, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("handler must not run for wrong role")
	})

	req := httptest.NewRequest(http.MethodGet, "/vlasnik", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	handler(rec, req)

	// Isti redirect kao za neprijavljenog, ali sa porukom.
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	found := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flashCookie && cookie.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected flash cookie on role mismatch")
	}
}

func TestRequireRole_GarbageTokenRedirects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	handler := RequireRole(models.RoleOwner, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("handler must not run with an invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/vlasnik", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "nije-token"})
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestFlash_SetAndPop(t *testing.T) {
	rec := httptest.NewRecorder()
	SetFlash(rec, "Nemate pristup ovoj stranici.")

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	rec2 := httptest.NewRecorder()
	if got := PopFlash(rec2, req); got != "Nemate pristup ovoj stranici." {
		t.Fatalf("wrong flash message: %q", got)
	}

	// Pop mora da poništi kolačić.
	cleared := false
	for _, cookie := range rec2.Result().Cookies() {
		if cookie.Name == flashCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("flash cookie not cleared after pop")
	}
}

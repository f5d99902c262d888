package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"zadaci-service/logging"
	"zadaci-service/middleware"
	"zadaci-service/models"
)

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func internalError(w http.ResponseWriter, err error) {
	logging.Logger.Errorf("Event ID: STORAGE_ERROR, Description: Unrecoverable storage failure: %v", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// redirectWithError pretvara poslovnu grešku u flash poruku i redirect
// na polaznu stranicu. StorageError je jedini fatalni slučaj i postaje
// odgovor 500.
func redirectWithError(w http.ResponseWriter, r *http.Request, err error, target string) {
	var storageErr *models.StorageError
	if errors.As(err, &storageErr) {
		internalError(w, err)
		return
	}
	middleware.SetFlash(w, err.Error())
	http.Redirect(w, r, target, http.StatusFound)
}

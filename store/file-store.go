package store

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	"zadaci-service/models"
)

// FileStore čuva ceo dokument u jednoj JSON datoteci. Nema keširanja:
// svako čitanje ide na disk, svaki upis prepisuje celu datoteku.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load čita i parsira celu datoteku.
func (s *FileStore) Load() (models.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return models.Document{}, &models.StorageError{Op: "load", Err: err}
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Document{}, &models.StorageError{Op: "load", Err: err}
	}
	return doc, nil
}

// Save upisuje ceo dokument preko postojeće datoteke. Upis je običan
// prepis, bez temp datoteke i rename koraka, pa prekid usred upisa
// može ostaviti krnju datoteku.
func (s *FileStore) Save(doc models.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Ne-ASCII i HTML znakovi ostaju doslovni u datoteci.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return &models.StorageError{Op: "save", Err: err}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return &models.StorageError{Op: "save", Err: err}
	}
	return nil
}

// Update izvršava ceo load-mutate-save ciklus pod jednim lock-om:
// u procesu postoji samo jedan pisac. Ako fn vrati grešku, dokument
// se ne snima. Lock ne važi između procesa.
func (s *FileStore) Update(fn func(*models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(&doc); err != nil {
		return err
	}
	return s.Save(doc)
}

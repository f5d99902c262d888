package models

import "errors"

// Greške sa fiksnom porukom.
var (
	ErrAuthFailure = errors.New("Neispravno korisničko ime ili lozinka.")
	ErrTaskNotDone = errors.New("Ocjenu možete dati samo za odrađene zadatke.")
)

// ValidationError znači da obavezan unos nedostaje ili je neispravan.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError znači da traženi korisnik ili zadatak ne postoji.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// IndexError znači da je poziciona referenca van granica liste zadataka.
type IndexError struct {
	Message string
}

func (e *IndexError) Error() string { return e.Message }

// ConflictError znači da je korisničko ime već zauzeto.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// StorageError je otkaz trajnog skladišta. Jedina klasa greške koja se
// ne oporavlja na nivou zahteva: handler je pretvara u 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return "storage " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

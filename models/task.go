package models

type TaskStatus string

const (
	StatusNotDone    TaskStatus = "NOT_DONE"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// Valid javlja da li je status jedna od tri priznate vrednosti.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotDone, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task je zadatak radnika. Nema trajan identifikator: zadatak se
// identifikuje pozicijom u listi zadataka svog radnika, pa brisanje
// pomera pozicije svih kasnijih zadataka.
type Task struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Place         string     `json:"place"`
	Location      string     `json:"location"`
	Status        TaskStatus `json:"status"`
	Rating        int        `json:"rating"`
	RatingComment string     `json:"rating_comment"`
	NotDoneReason string     `json:"not_done_reason"`
	HoursWorked   float64    `json:"hours_worked"`
}

package models

// Role je zatvoren skup uloga; autorizacija poredi samo ove vrednosti.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleWorker Role = "worker"
)

// Location je geografska pozicija radnika.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// User je jedan korisnik u dokumentu. Samo radnici nose listu zadataka
// i lokaciju; vlasnik nikada nema ni jedno ni drugo.
type User struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Role     Role      `json:"role"`
	Tasks    []Task    `json:"tasks,omitempty"`
	Location *Location `json:"location,omitempty"`
}

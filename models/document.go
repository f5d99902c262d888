package models

// Document je koreni agregat: svi korisnici sa ugnježdenim zadacima.
// Skladište ga uvek čita i upisuje u celini.
type Document struct {
	Users []User `json:"users"`
}

// FindUser vraća pokazivač na korisnika sa datim imenom, bilo koje uloge.
func (d *Document) FindUser(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// FindWorker vraća pokazivač na korisnika sa datim imenom i ulogom radnika.
func (d *Document) FindWorker(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username && d.Users[i].Role == RoleWorker {
			return &d.Users[i]
		}
	}
	return nil
}

// Workers vraća kopiju liste svih radnika.
func (d *Document) Workers() []User {
	workers := []User{}
	for _, user := range d.Users {
		if user.Role == RoleWorker {
			workers = append(workers, user)
		}
	}
	return workers
}

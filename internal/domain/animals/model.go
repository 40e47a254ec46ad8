package animals

import "time"

// Status del animal dentro del refugio.
// @Enum Available, Adopted, Medical
type Status string

const (
	StatusAvailable Status = "Available"
	StatusAdopted   Status = "Adopted"
	StatusMedical   Status = "Medical"
)

// Statuses en el orden fijo que usan los gráficos.
var Statuses = []string{string(StatusAvailable), string(StatusAdopted), string(StatusMedical)}

func IsStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Animal es el documento principal del refugio.
// IntakeDate se guarda como texto YYYY-MM-DD: datos viejos pueden venir mal formados
// y eso se detecta al leer, no al decodificar.
type Animal struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Species         string `json:"species"`
	Breed           string `json:"breed"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Status          Status `json:"status"`
	IntakeDate      string `json:"intake_date"`
	BehavioralNotes string `json:"behavioral_notes"`

	// Referencias débiles a voluntarios (conjunto, sin orden).
	AssignedVolunteers []string `json:"assigned_volunteers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasVolunteer indica si el voluntario ya está asignado.
func (a Animal) HasVolunteer(volunteerID string) bool {
	for _, id := range a.AssignedVolunteers {
		if id == volunteerID {
			return true
		}
	}
	return false
}

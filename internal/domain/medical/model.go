package medical

import "time"

type Record struct {
	ID        string `json:"id"`
	AnimalID  string `json:"animal_id"`
	VetName   string `json:"vet_name"`
	VisitDate string `json:"visit_date"` // YYYY-MM-DD
	Diagnosis string `json:"diagnosis"`
	Treatment string `json:"treatment"`
	Notes     string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

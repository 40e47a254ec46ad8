package adoptions

import (
	"time"

	"pet-shelter/internal/domain/animals"
)

type Adoption struct {
	ID           string `json:"id"`
	AnimalID     string `json:"animal_id"`
	AdopterID    string `json:"adopter_id"`
	AdoptionDate string `json:"adoption_date"` // YYYY-MM-DD
	Notes        string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdoptedAnimal es el resultado de la búsqueda por adoptante.
type AdoptedAnimal struct {
	animals.Animal
	AdoptionID   string `json:"adoption_id"`
	AdoptionDate string `json:"adoption_date"`
}

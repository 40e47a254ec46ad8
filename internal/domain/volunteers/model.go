package volunteers

import (
	"time"

	"pet-shelter/internal/domain/animals"
)

type Volunteer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Skills       SkillSet `json:"skills"`
	Availability string   `json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnimalMatch: animal sugerido para un voluntario.
type AnimalMatch struct {
	Animal        animals.Animal `json:"animal"`
	MatchedSkills []string       `json:"matched_skills"`
}

// VolunteerMatch: voluntario sugerido para un animal.
type VolunteerMatch struct {
	Volunteer     Volunteer `json:"volunteer"`
	MatchedSkills []string  `json:"matched_skills"`
}

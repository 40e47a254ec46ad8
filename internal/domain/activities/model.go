package activities

import "time"

// Types: valores aceptados en activity_type.
var Types = []string{
	"Walking",
	"Feeding",
	"Grooming",
	"Training",
	"Socialization",
	"Medical Assistance",
	"Adoption Event",
	"Meet & Greet",
	"Cleaning",
	"Transportation",
	"Other",
}

type Activity struct {
	ID              string `json:"id"`
	VolunteerID     string `json:"volunteer_id"`
	AnimalID        string `json:"animal_id"`
	ActivityType    string `json:"activity_type"`
	ActivityDate    string `json:"activity_date"`
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VolunteerHours struct {
	VolunteerID string  `json:"volunteer_id"`
	Name        string  `json:"name"`
	Hours       float64 `json:"hours"`
}

type Summary struct {
	TotalHours       float64          `json:"total_hours"`
	TotalActivities  int              `json:"total_activities"`
	ActivitiesByType map[string]int   `json:"activities_by_type"`
	TopVolunteers    []VolunteerHours `json:"top_volunteers"`
}

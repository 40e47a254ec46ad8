package predictions

import (
	"strings"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/dates"
)

// Nombres de factor: columnas de entrada, claves de importancia y de score_factors.
const (
	FactorSpecies         = "species"
	FactorBreed           = "breed"
	FactorAge             = "age"
	FactorGender          = "gender"
	FactorStatus          = "status"
	FactorDaysInShelter   = "days_in_shelter"
	FactorMedicalCount    = "medical_count"
	FactorBehavioralNotes = "behavioral_notes"
)

const unknown = "Unknown"

// Features es el vector derivado de un animal; no se persiste.
type Features struct {
	Species            string
	Breed              string
	Gender             string
	Status             string
	Age                int
	DaysInShelter      int
	MedicalCount       int
	HasBehavioralNotes bool
}

// DaysInShelter: ingreso ausente o mal formado cuenta como 0; nunca negativo.
func DaysInShelter(intake string, ref time.Time) int {
	res := dates.Parse(intake)
	if !res.OK() {
		return 0
	}
	if d := dates.DaysBetween(res.Day, ref); d > 0 {
		return d
	}
	return 0
}

func category(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return unknown
	}
	return v
}

func FeaturesFor(a animals.Animal, medicalCount int, ref time.Time) Features {
	return Features{
		Species:            category(a.Species),
		Breed:              category(a.Breed),
		Gender:             category(a.Gender),
		Status:             category(string(a.Status)),
		Age:                a.Age,
		DaysInShelter:      DaysInShelter(a.IntakeDate, ref),
		MedicalCount:       medicalCount,
		HasBehavioralNotes: strings.TrimSpace(a.BehavioralNotes) != "",
	}
}

func (f Features) categorical(factor string) string {
	switch factor {
	case FactorSpecies:
		return f.Species
	case FactorBreed:
		return f.Breed
	case FactorGender:
		return f.Gender
	case FactorStatus:
		return f.Status
	}
	return ""
}

func (f Features) numeric(factor string) float64 {
	switch factor {
	case FactorAge:
		return float64(f.Age)
	case FactorDaysInShelter:
		return float64(f.DaysInShelter)
	case FactorMedicalCount:
		return float64(f.MedicalCount)
	}
	return 0
}

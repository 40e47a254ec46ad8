package predictions

import "math"

// Pesos del score heurístico; suman 1.
const (
	weightAge       = 0.3
	weightDays      = 0.4
	weightMedical   = 0.2
	weightBehavior  = 0.1
	ageCap          = 10.0
	daysCap         = 180.0
	medicalCap      = 5.0
	levelHighFrom   = 0.7
	levelMediumFrom = 0.4
)

type Level string

const (
	LevelHigh    Level = "High"
	LevelMedium  Level = "Medium"
	LevelLow     Level = "Low"
	LevelUnknown Level = "Unknown"
)

// HeuristicScore da prioridad a animales mayores, con más tiempo en el refugio,
// más historial médico o notas de comportamiento. Determinista: la fecha de
// referencia ya está en f.DaysInShelter.
func HeuristicScore(f Features) (float64, map[string]float64) {
	age := weightAge * capped(float64(f.Age), ageCap)
	days := weightDays * capped(float64(f.DaysInShelter), daysCap)
	med := weightMedical * capped(float64(f.MedicalCount), medicalCap)
	notes := 0.0
	if f.HasBehavioralNotes {
		notes = weightBehavior
	}

	score := math.Min(1, math.Max(0, age+days+med+notes))
	return score, map[string]float64{
		FactorAge:             round(age, 4),
		FactorDaysInShelter:   round(days, 4),
		FactorMedicalCount:    round(med, 4),
		FactorBehavioralNotes: round(notes, 4),
	}
}

func capped(v, limit float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Min(v/limit, 1)
}

func LevelFor(score float64) Level {
	switch {
	case score >= levelHighFrom:
		return LevelHigh
	case score >= levelMediumFrom:
		return LevelMedium
	default:
		return LevelLow
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

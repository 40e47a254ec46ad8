package predictions

import (
	"time"

	"pet-shelter/internal/domain/adoptions"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/medical"
	"pet-shelter/internal/platform/dates"
)

// Dataset es la foto de las tres colecciones usada para entrenar.
type Dataset struct {
	Animals   []animals.Animal
	Adoptions []adoptions.Adoption
	Records   []medical.Record
}

var (
	classifierCategorical = []string{FactorSpecies, FactorBreed, FactorGender, FactorStatus}
	classifierNumeric     = []string{FactorAge, FactorDaysInShelter, FactorMedicalCount}
	regressorCategorical  = []string{FactorSpecies, FactorBreed, FactorGender}
	regressorNumeric      = []string{FactorAge, FactorMedicalCount}
)

// referenceDate es la adopción válida más reciente; sin adopciones, now.
func (d Dataset) referenceDate(now time.Time) time.Time {
	var ref time.Time
	for _, a := range d.Adoptions {
		if res := dates.Parse(a.AdoptionDate); res.OK() && res.Day.After(ref) {
			ref = res.Day
		}
	}
	if ref.IsZero() {
		return dates.Day(now)
	}
	return ref
}

func (d Dataset) medicalCounts() map[string]int {
	out := map[string]int{}
	for _, r := range d.Records {
		out[r.AnimalID]++
	}
	return out
}

// Population son los features de todos los animales a la fecha de referencia;
// de acá salen las categorías de ambas codificaciones.
func (d Dataset) Population(now time.Time) []Features {
	rows, _ := d.ClassifierRows(now)
	return rows
}

// ClassifierRows: una fila por animal; etiqueta 1 si tiene alguna adopción.
func (d Dataset) ClassifierRows(now time.Time) ([]Features, []float64) {
	adopted := map[string]bool{}
	for _, a := range d.Adoptions {
		adopted[a.AnimalID] = true
	}
	ref := d.referenceDate(now)
	counts := d.medicalCounts()

	rows := make([]Features, 0, len(d.Animals))
	labels := make([]float64, 0, len(d.Animals))
	for _, a := range d.Animals {
		rows = append(rows, FeaturesFor(a, counts[a.ID], ref))
		if adopted[a.ID] {
			labels = append(labels, 1)
		} else {
			labels = append(labels, 0)
		}
	}
	return rows, labels
}

// RegressorRows: animales con ingreso y adopción válidos; etiqueta = días entre ambos.
// Se usa la primera adopción del animal (descartada si es anterior al ingreso) y solo cuentan
// las visitas médicas hasta esa fecha.
func (d Dataset) RegressorRows() ([]Features, []float64) {
	byAnimal := map[string]time.Time{}
	for _, ad := range d.Adoptions {
		res := dates.Parse(ad.AdoptionDate)
		if !res.OK() {
			continue
		}
		if cur, ok := byAnimal[ad.AnimalID]; !ok || res.Day.Before(cur) {
			byAnimal[ad.AnimalID] = res.Day
		}
	}

	rows := make([]Features, 0)
	labels := make([]float64, 0)
	for _, a := range d.Animals {
		adoptedAt, ok := byAnimal[a.ID]
		if !ok {
			continue
		}
		intake := dates.Parse(a.IntakeDate)
		if !intake.OK() || adoptedAt.Before(intake.Day) {
			continue
		}

		visits := 0
		for _, r := range d.Records {
			if r.AnimalID != a.ID {
				continue
			}
			if v := dates.Parse(r.VisitDate); v.OK() && !v.Day.After(adoptedAt) {
				visits++
			}
		}
		rows = append(rows, FeaturesFor(a, visits, adoptedAt))
		labels = append(labels, float64(dates.DaysBetween(intake.Day, adoptedAt)))
	}
	return rows, labels
}

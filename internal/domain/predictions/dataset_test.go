package predictions

import (
	"testing"
	"time"

	"pet-shelter/internal/domain/adoptions"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/medical"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dogFixture(id, intake string) animals.Animal {
	return animals.Animal{ID: id, Name: id, Species: "Dog", Breed: "Beagle", Gender: "Male", Age: 3, IntakeDate: intake}
}

func TestDataset_RegressorRows(t *testing.T) {
	tests := []struct {
		name      string
		animals   []animals.Animal
		adoptions []adoptions.Adoption
		records   []medical.Record
		wantDays  []float64
		wantMed   []int
	}{
		{
			name:      "earliest adoption wins",
			animals:   []animals.Animal{dogFixture("a", "2024-01-01")},
			adoptions: []adoptions.Adoption{{AnimalID: "a", AdoptionDate: "2024-03-01"}, {AnimalID: "a", AdoptionDate: "2024-02-01"}},
			wantDays:  []float64{31},
			wantMed:   []int{0},
		},
		{
			name:      "visits after adoption are excluded",
			animals:   []animals.Animal{dogFixture("a", "2024-01-01")},
			adoptions: []adoptions.Adoption{{AnimalID: "a", AdoptionDate: "2024-02-01"}},
			records: []medical.Record{
				{AnimalID: "a", VisitDate: "2024-01-10"},
				{AnimalID: "a", VisitDate: "2024-02-01"},
				{AnimalID: "a", VisitDate: "2024-02-20"},
				{AnimalID: "a", VisitDate: "not-a-date"},
				{AnimalID: "b", VisitDate: "2024-01-15"},
			},
			wantDays: []float64{31},
			wantMed:  []int{2},
		},
		{
			name:      "adoption before intake is discarded",
			animals:   []animals.Animal{dogFixture("a", "2024-03-10")},
			adoptions: []adoptions.Adoption{{AnimalID: "a", AdoptionDate: "2024-03-01"}},
		},
		{
			name:      "missing intake or unparseable adoption date",
			animals:   []animals.Animal{dogFixture("a", ""), dogFixture("b", "2024-01-01")},
			adoptions: []adoptions.Adoption{{AnimalID: "a", AdoptionDate: "2024-02-01"}, {AnimalID: "b", AdoptionDate: "02/01/2024"}},
		},
		{
			name:      "never adopted",
			animals:   []animals.Animal{dogFixture("a", "2024-01-01"), dogFixture("b", "2024-01-01")},
			adoptions: []adoptions.Adoption{{AnimalID: "b", AdoptionDate: "2024-01-11"}},
			wantDays:  []float64{10},
			wantMed:   []int{0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Dataset{Animals: tt.animals, Adoptions: tt.adoptions, Records: tt.records}
			rows, labels := ds.RegressorRows()
			require.Len(t, rows, len(tt.wantDays))
			assert.Equal(t, len(tt.wantDays), len(labels))
			for i := range rows {
				assert.Equal(t, tt.wantDays[i], labels[i])
				assert.Equal(t, tt.wantMed[i], rows[i].MedicalCount)
				// días en refugio medidos a la fecha de adopción
				assert.Equal(t, int(tt.wantDays[i]), rows[i].DaysInShelter)
			}
		})
	}
}

func TestDataset_ClassifierRows(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		adoptions []adoptions.Adoption
		wantDays  []int
		wantLabel []float64
	}{
		{
			name: "reference is the latest adoption",
			adoptions: []adoptions.Adoption{
				{AnimalID: "a", AdoptionDate: "2024-02-01"},
				{AnimalID: "a", AdoptionDate: "2024-03-01"},
				{AnimalID: "x", AdoptionDate: "garbage"},
			},
			// 2024 es bisiesto
			wantDays:  []int{60, 29},
			wantLabel: []float64{1, 0},
		},
		{
			name:      "no adoptions falls back to now",
			wantDays:  []int{517, 486},
			wantLabel: []float64{0, 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := Dataset{
				Animals:   []animals.Animal{dogFixture("a", "2024-01-01"), dogFixture("b", "2024-02-01")},
				Adoptions: tt.adoptions,
				Records: []medical.Record{
					{AnimalID: "a", VisitDate: "2024-01-05"},
					{AnimalID: "a", VisitDate: "2025-01-05"},
				},
			}
			rows, labels := ds.ClassifierRows(now)
			require.Len(t, rows, 2)
			assert.Equal(t, tt.wantLabel, labels)
			for i, r := range rows {
				assert.Equal(t, tt.wantDays[i], r.DaysInShelter, "animal %d", i)
			}
			assert.Equal(t, 2, rows[0].MedicalCount)
			assert.Equal(t, 0, rows[1].MedicalCount)
		})
	}
}

func TestDataset_PopulationCoversUnadoptedCategories(t *testing.T) {
	ds := Dataset{
		Animals: []animals.Animal{
			dogFixture("a", "2024-01-01"),
			{ID: "b", Species: "Cat", Breed: "Siamese", Gender: "Female", Age: 2, IntakeDate: "2024-01-01"},
		},
		Adoptions: []adoptions.Adoption{{AnimalID: "a", AdoptionDate: "2024-02-01"}},
	}
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	enc := FitEncoding(ds.Population(now), regressorCategorical, regressorNumeric)
	assert.Equal(t, []string{"Beagle", "Siamese"}, enc.Categories[FactorBreed])

	cat, _ := ds.ClassifierRows(now)
	_, err := enc.Transform(cat[1])
	require.NoError(t, err)
}

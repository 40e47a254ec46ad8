package charts

import (
	"testing"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/medical"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []animals.Animal {
	return []animals.Animal{
		{ID: "a1", Species: "Dog", Breed: "Beagle", Age: 2, Gender: "Male", Status: animals.StatusAvailable},
		{ID: "a2", Species: "Cat", Breed: "Siamese", Age: 1, Gender: "Female", Status: animals.StatusAdopted},
		{ID: "a3", Species: "Dog", Breed: "Poodle", Age: 5, Gender: "Female", Status: animals.StatusMedical},
	}
}

func TestDistribution_SpeciesByCount(t *testing.T) {
	got := Distribution(sample(), FieldSpecies, animals.Filter{})
	assert.Equal(t, []string{"Dog", "Cat"}, got.Labels)
	assert.Equal(t, []int{2, 1}, got.Data)
}

func TestDistribution_TiesKeepFirstSeen(t *testing.T) {
	got := Distribution(sample(), FieldBreed, animals.Filter{})
	assert.Equal(t, []string{"Beagle", "Siamese", "Poodle"}, got.Labels)
}

func TestDistribution_CrossFilterIgnoresGroupedField(t *testing.T) {
	got := Distribution(sample(), FieldSpecies, animals.Filter{Species: "Cat", Gender: "Female"})
	assert.Equal(t, []string{"Cat", "Dog"}, got.Labels)
	assert.Equal(t, []int{1, 1}, got.Data)
}

func TestDistribution_StatusFixedOrder(t *testing.T) {
	items := append(sample(),
		animals.Animal{ID: "a4", Status: "Foster"},
		animals.Animal{ID: "a5", Status: animals.StatusMedical},
	)
	got := Distribution(items, FieldStatus, animals.Filter{})
	assert.Equal(t, []string{"Available", "Adopted", "Medical", "Foster"}, got.Labels)
	assert.Equal(t, []int{1, 1, 2, 1}, got.Data)
}

func TestAgeDistribution_ZeroFilled(t *testing.T) {
	items := append(sample(), animals.Animal{ID: "a6", Species: "Dog", Age: 12})
	got := AgeDistribution(items, animals.Filter{Species: "Dog"})
	assert.Equal(t, AgeBuckets, got.Labels)
	assert.Equal(t, []int{0, 1, 1, 0, 1}, got.Data)
}

func TestMonthly(t *testing.T) {
	raw := []string{"2024-01-15", "2024-02-10", "bad", ""}

	cases := []struct {
		name        string
		start, end  string
		labels      []string
		data        []int
		outOfRange  int
		invalidDays int
	}{
		{"full range", "2024-01-01", "2024-03-01", []string{"2024-01", "2024-02", "2024-03"}, []int{1, 1, 0}, 0, 2},
		{"no range", "", "", []string{"2024-01", "2024-02"}, []int{1, 1}, 0, 2},
		{"only start", "2023-11-01", "", []string{"2023-11", "2023-12", "2024-01", "2024-02"}, []int{0, 0, 1, 1}, 0, 2},
		{"only start after data", "2024-05-01", "", []string{"2024-05"}, []int{0}, 2, 2},
		{"only end", "", "2024-03-31", []string{"2024-01", "2024-02", "2024-03"}, []int{1, 1, 0}, 0, 2},
		{"narrow", "2024-02-01", "2024-02-28", []string{"2024-02"}, []int{1}, 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ParseRange(tc.start, tc.end)
			require.NoError(t, err)

			got := Monthly(raw, r)
			assert.Equal(t, tc.labels, got.Labels)
			assert.Equal(t, tc.data, got.Data)
			assert.Equal(t, tc.outOfRange, got.Metadata.OutOfRange)
			assert.Equal(t, tc.invalidDays, got.Metadata.InvalidDates)
			assert.Equal(t, len(raw), got.Metadata.Total)
		})
	}
}

func TestParseRange_Errors(t *testing.T) {
	_, err := ParseRange("2024-13-01", "")
	require.Error(t, err)

	_, err = ParseRange("2024-03-01", "2024-01-01")
	require.Error(t, err)
}

func TestVisitsBy_SkipsUnresolved(t *testing.T) {
	records := []medical.Record{
		{AnimalID: "a1", VisitDate: "2024-01-02"},
		{AnimalID: "a3", VisitDate: "2024-01-05"},
		{AnimalID: "a2", VisitDate: "2024-02-01"},
		{AnimalID: "ghost", VisitDate: "2024-02-03"},
		{AnimalID: "a1", VisitDate: "yesterday"},
	}

	got := VisitsBy(sample(), records, FieldSpecies, Range{})
	assert.Equal(t, []string{"Dog", "Cat"}, got.Labels)
	assert.Equal(t, []int{2, 1}, got.Data)
	assert.Equal(t, 1, got.Metadata.Unresolved)
	assert.Equal(t, 1, got.Metadata.InvalidDates)
	assert.Equal(t, 5, got.Metadata.Total)
}

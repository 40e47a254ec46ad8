package predictions

import (
	"testing"
	"time"

	"pet-shelter/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInShelter(t *testing.T) {
	ref := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysInShelter("", ref))
	assert.Equal(t, 0, DaysInShelter("01/02/2024", ref))
	assert.Equal(t, 0, DaysInShelter("2024-04-01", ref), "future intake clamps to zero")
	assert.Equal(t, 60, DaysInShelter("2024-01-01", ref))
}

func TestHeuristicScore(t *testing.T) {
	cases := []struct {
		name  string
		in    Features
		score float64
		level Level
	}{
		{"empty", Features{}, 0, LevelLow},
		{"young recent", Features{Age: 2, DaysInShelter: 18}, 0.1, LevelLow},
		{"capped everything", Features{Age: 15, DaysInShelter: 400, MedicalCount: 9, HasBehavioralNotes: true}, 1, LevelHigh},
		{"medium", Features{Age: 10, DaysInShelter: 45}, 0.4, LevelMedium},
		{"negative age ignored", Features{Age: -3, DaysInShelter: 180}, 0.4, LevelMedium},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, factors := HeuristicScore(tc.in)
			assert.InDelta(t, tc.score, got, 1e-9)
			assert.Equal(t, tc.level, LevelFor(got))
			assert.Len(t, factors, 4)
		})
	}
}

func TestHeuristicScore_Deterministic(t *testing.T) {
	a := animals.Animal{Species: "Dog", Age: 7, IntakeDate: "2023-12-01", BehavioralNotes: "reactive"}
	ref := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	s1, f1 := HeuristicScore(FeaturesFor(a, 2, ref))
	s2, f2 := HeuristicScore(FeaturesFor(a, 2, ref))
	require.Equal(t, s1, s2)
	require.Equal(t, f1, f2)
	assert.Equal(t, 0.1, f1[FactorBehavioralNotes])
}

func TestLevelFor_Boundaries(t *testing.T) {
	assert.Equal(t, LevelHigh, LevelFor(0.7))
	assert.Equal(t, LevelMedium, LevelFor(0.69999))
	assert.Equal(t, LevelMedium, LevelFor(0.4))
	assert.Equal(t, LevelLow, LevelFor(0.39999))
}

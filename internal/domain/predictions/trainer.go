package predictions

import (
	"fmt"
	"time"
)

// ModelResult es el resultado de entrenamiento por modelo.
// InsufficientData no es error: Trained=false con Message.
type ModelResult struct {
	Trained           bool               `json:"trained"`
	Accuracy          *float64           `json:"accuracy,omitempty"`
	R2Score           *float64           `json:"r2_score,omitempty"`
	Samples           int                `json:"samples,omitempty"`
	FeatureImportance map[string]float64 `json:"feature_importance,omitempty"`
	Message           string             `json:"message,omitempty"`
	Error             string             `json:"error,omitempty"`
}

type TrainResult struct {
	AdoptionLikelihood ModelResult `json:"adoption_likelihood"`
	TimeToAdoption     ModelResult `json:"time_to_adoption"`
}

type trainer struct {
	minAnimals   int
	minAdoptions int
	testFraction float64
	seed         uint64
}

// classifier entrena el modelo adoptado / no adoptado. ok=false si faltan datos.
func (t trainer) classifier(ds Dataset, now time.Time) (Artifact, bool, error) {
	rows, labels := ds.ClassifierRows(now)
	if len(rows) < t.minAnimals {
		return Artifact{}, false, nil
	}

	enc := FitEncoding(ds.Population(now), classifierCategorical, classifierNumeric)
	X, err := enc.TransformAll(rows)
	if err != nil {
		return Artifact{}, false, err
	}
	trainIdx, testIdx := split(len(X), t.testFraction, t.seed)

	model, err := fitLogistic(pick(X, trainIdx), pick(labels, trainIdx))
	if err != nil {
		return Artifact{}, false, fmt.Errorf("fit classifier: %w", err)
	}
	acc, err := accuracy(model, pick(X, testIdx), pick(labels, testIdx))
	if err != nil {
		return Artifact{}, false, err
	}

	return Artifact{
		Model:             ModelAdoptionLikelihood,
		TrainedAt:         now.UTC(),
		Samples:           len(rows),
		Metric:            "accuracy",
		Score:             round(acc, 2),
		Encoding:          enc,
		Linear:            model,
		FeatureImportance: importance(model, enc.Columns()),
	}, true, nil
}

// regressor entrena días hasta la adopción. ok=false si faltan datos.
func (t trainer) regressor(ds Dataset, now time.Time) (Artifact, bool, error) {
	rows, labels := ds.RegressorRows()
	if len(rows) < t.minAdoptions {
		return Artifact{}, false, nil
	}

	// Categorías de toda la población, no solo de los adoptados: un disponible con
	// una raza nunca adoptada queda en columnas en cero en vez de fallar.
	enc := FitEncoding(ds.Population(now), regressorCategorical, regressorNumeric)
	X, err := enc.TransformAll(rows)
	if err != nil {
		return Artifact{}, false, err
	}
	trainIdx, testIdx := split(len(X), t.testFraction, t.seed)

	model, err := fitRidge(pick(X, trainIdx), pick(labels, trainIdx))
	if err != nil {
		return Artifact{}, false, fmt.Errorf("fit regressor: %w", err)
	}
	score, err := r2(model, pick(X, testIdx), pick(labels, testIdx))
	if err != nil {
		return Artifact{}, false, err
	}

	return Artifact{
		Model:             ModelTimeToAdoption,
		TrainedAt:         now.UTC(),
		Samples:           len(rows),
		Metric:            "r2_score",
		Score:             round(score, 2),
		Encoding:          enc,
		Linear:            model,
		FeatureImportance: importance(model, enc.Columns()),
	}, true, nil
}

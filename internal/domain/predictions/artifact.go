package predictions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/ports/artifacts"
)

const (
	ModelAdoptionLikelihood = "adoption_likelihood"
	ModelTimeToAdoption     = "time_to_adoption"
)

// Artifact es lo que se persiste por modelo: pesos y codificación juntos,
// así la inferencia siempre usa las categorías con las que se entrenó.
type Artifact struct {
	Model             string             `json:"model"`
	TrainedAt         time.Time          `json:"trained_at"`
	Samples           int                `json:"samples"`
	Metric            string             `json:"metric"`
	Score             float64            `json:"score"`
	Encoding          Encoding           `json:"encoding"`
	Linear            Linear             `json:"linear"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

type ArtifactRepo struct {
	store  artifacts.Store
	prefix string
}

func NewArtifactRepo(store artifacts.Store, prefix string) *ArtifactRepo {
	return &ArtifactRepo{store: store, prefix: prefix}
}

func (r *ArtifactRepo) Key(model string) string { return r.prefix + model + ".json" }

func (r *ArtifactRepo) Driver() artifacts.Driver { return r.store.Driver() }

func (r *ArtifactRepo) Save(ctx context.Context, a Artifact) (artifacts.Info, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return artifacts.Info{}, fmt.Errorf("encode artifact: %w", err)
	}
	info, err := r.store.Put(ctx, r.Key(a.Model), bytes.NewReader(b), artifacts.PutOptions{
		ContentType: "application/json",
		Metadata: map[string]string{
			"model":            a.Model,
			"encoding_version": strconv.Itoa(a.Encoding.Version),
		},
	})
	if err != nil {
		return artifacts.Info{}, fmt.Errorf("%w: save artifact %s: %v", apperr.ErrUnavailable, a.Model, err)
	}
	return info, nil
}

// Load devuelve ok=false si el modelo no fue entrenado.
func (r *ArtifactRepo) Load(ctx context.Context, model string) (Artifact, bool, error) {
	_, rc, err := r.store.Get(ctx, r.Key(model))
	if errors.Is(err, artifacts.ErrNotFound) {
		return Artifact{}, false, nil
	}
	if err != nil {
		return Artifact{}, false, fmt.Errorf("%w: load artifact %s: %v", apperr.ErrUnavailable, model, err)
	}
	defer rc.Close()

	var a Artifact
	if err := json.NewDecoder(rc).Decode(&a); err != nil {
		return Artifact{}, false, fmt.Errorf("decode artifact %s: %w", model, err)
	}
	return a, true, nil
}

func (r *ArtifactRepo) Head(ctx context.Context, model string) (artifacts.Info, bool, error) {
	info, err := r.store.Head(ctx, r.Key(model))
	if errors.Is(err, artifacts.ErrNotFound) {
		return artifacts.Info{}, false, nil
	}
	if err != nil {
		return artifacts.Info{}, false, fmt.Errorf("%w: head artifact %s: %v", apperr.ErrUnavailable, model, err)
	}
	return info, true, nil
}

package predictions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"pet-shelter/internal/domain/adoptions"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/medical"
	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/metrics"

	"golang.org/x/sync/errgroup"
)

type AnimalService interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
	List(ctx context.Context, f animals.Filter) ([]animals.Animal, error)
}

type AdoptionLister interface {
	List(ctx context.Context, f adoptions.Filter) ([]adoptions.Adoption, error)
}

type MedicalLister interface {
	List(ctx context.Context, f medical.Filter) ([]medical.Record, error)
}

type Options struct {
	HeuristicEnabled bool
	MinAnimals       int
	MinAdoptions     int
	TestFraction     float64
	Seed             uint64
}

type Service struct {
	animals   AnimalService
	adoptions AdoptionLister
	medical   MedicalLister
	repo      *ArtifactRepo
	opts      Options
	trainer   trainer
	log       logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

func NewService(an AnimalService, ad AdoptionLister, md MedicalLister, repo *ArtifactRepo, opts Options, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		animals:   an,
		adoptions: ad,
		medical:   md,
		repo:      repo,
		opts:      opts,
		trainer: trainer{
			minAnimals:   opts.MinAnimals,
			minAdoptions: opts.MinAdoptions,
			testFraction: opts.TestFraction,
			seed:         opts.Seed,
		},
		log:     log.With(map[string]any{"module": "predictions"}),
		metrics: m,
		now:     time.Now,
	}
}

// Prediction es un ítem de GET /predictions. Los campos de modelo son null
// cuando no hay artefacto; Error reporta fallos de ese animal solamente.
type Prediction struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Species            string             `json:"species"`
	Breed              string             `json:"breed"`
	Age                int                `json:"age"`
	Gender             string             `json:"gender"`
	MedicalCount       int                `json:"medical_count"`
	BehavioralNotes    string             `json:"behavioral_notes"`
	DaysInShelter      int                `json:"days_in_shelter"`
	PriorityScore      *float64           `json:"priority_score"`
	AdoptionLikelihood *float64           `json:"adoption_likelihood"`
	TimeToAdoptionDays *float64           `json:"time_to_adoption_days"`
	Priority           Level              `json:"priority"`
	ScoreFactors       map[string]float64 `json:"score_factors"`
	Error              string             `json:"error,omitempty"`
}

// models: artefactos cargados para una request.
type models struct {
	classifier *Artifact
	regressor  *Artifact
}

func (s *Service) loadModels(ctx context.Context) (models, error) {
	var out models
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, ok, err := s.repo.Load(gctx, ModelAdoptionLikelihood)
		if ok {
			out.classifier = &a
		}
		return err
	})
	g.Go(func() error {
		a, ok, err := s.repo.Load(gctx, ModelTimeToAdoption)
		if ok {
			out.regressor = &a
		}
		return err
	})
	return out, g.Wait()
}

func (s *Service) loadDataset(ctx context.Context) (Dataset, error) {
	var ds Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds.Animals, err = s.animals.List(gctx, animals.Filter{})
		return err
	})
	g.Go(func() (err error) {
		ds.Adoptions, err = s.adoptions.List(gctx, adoptions.Filter{})
		return err
	})
	g.Go(func() (err error) {
		ds.Records, err = s.medical.List(gctx, medical.Filter{})
		return err
	})
	return ds, g.Wait()
}

// Train entrena ambos modelos de forma síncrona. Cada modelo reporta su propio
// resultado; solo falla la request si no se pudo leer el dataset.
func (s *Service) Train(ctx context.Context) (TrainResult, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return TrainResult{}, err
	}
	now := s.now()

	var out TrainResult
	a, ok, err := s.trainer.classifier(ds, now)
	out.AdoptionLikelihood = s.finish(ctx, ModelAdoptionLikelihood, a, ok, err,
		fmt.Sprintf("Insufficient data (need at least %d animals)", s.opts.MinAnimals))

	a, ok, err = s.trainer.regressor(ds, now)
	out.TimeToAdoption = s.finish(ctx, ModelTimeToAdoption, a, ok, err,
		fmt.Sprintf("Insufficient adoption data (need at least %d adoptions)", s.opts.MinAdoptions))
	return out, nil
}

func (s *Service) finish(ctx context.Context, model string, a Artifact, ok bool, err error, insufficient string) ModelResult {
	fields := map[string]any{"model": model}
	if err == nil && ok {
		if _, err = s.repo.Save(ctx, a); err == nil {
			s.metrics.Training(model, "trained")
			fields["samples"], fields[a.Metric] = a.Samples, a.Score
			s.log.Info("model trained", fields)

			res := ModelResult{Trained: true, Samples: a.Samples, FeatureImportance: a.FeatureImportance}
			score := a.Score
			if model == ModelAdoptionLikelihood {
				res.Accuracy = &score
			} else {
				res.R2Score = &score
			}
			return res
		}
	}
	if err != nil {
		s.metrics.Training(model, "error")
		fields["error"] = err
		s.log.Error("model training failed", fields)
		return ModelResult{Trained: false, Error: err.Error()}
	}

	s.metrics.Training(model, "insufficient_data")
	s.log.Info("model not trained: insufficient data", fields)
	return ModelResult{Trained: false, Message: insufficient}
}

// List predice para todos los animales Available.
func (s *Service) List(ctx context.Context) ([]Prediction, error) {
	var (
		items   []animals.Animal
		records []medical.Record
		ms      models
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		items, err = s.animals.List(gctx, animals.Filter{Status: string(animals.StatusAvailable)})
		return err
	})
	g.Go(func() (err error) {
		records, err = s.medical.List(gctx, medical.Filter{})
		return err
	})
	g.Go(func() (err error) {
		ms, err = s.loadModels(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, r := range records {
		counts[r.AnimalID]++
	}

	now := s.now()
	out := make([]Prediction, 0, len(items))
	for _, a := range items {
		p, err := s.predict(a, counts[a.ID], ms, now)
		if err != nil {
			p.Error = err.Error()
		}
		out = append(out, p)
	}
	return out, nil
}

// ForAnimal predice para un animal. Si algún modelo no reconoce una categoría
// devuelve ErrUnseenCategory.
func (s *Service) ForAnimal(ctx context.Context, animalID string) (Prediction, error) {
	a, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return Prediction{}, err
	}

	var (
		records []medical.Record
		ms      models
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = s.medical.List(gctx, medical.Filter{AnimalID: a.ID})
		return err
	})
	g.Go(func() (err error) {
		ms, err = s.loadModels(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Prediction{}, err
	}

	return s.predict(a, len(records), ms, s.now())
}

func (s *Service) predict(a animals.Animal, medicalCount int, ms models, now time.Time) (Prediction, error) {
	f := FeaturesFor(a, medicalCount, now)
	p := Prediction{
		ID:              a.ID,
		Name:            a.Name,
		Species:         a.Species,
		Breed:           f.Breed,
		Age:             a.Age,
		Gender:          f.Gender,
		MedicalCount:    medicalCount,
		BehavioralNotes: a.BehavioralNotes,
		DaysInShelter:   f.DaysInShelter,
		Priority:        LevelLow,
		ScoreFactors:    map[string]float64{},
	}
	if p.BehavioralNotes == "" {
		p.BehavioralNotes = "N/A"
	}

	// Un fallo de un modelo deja null solo su campo; la heurística no depende
	// de la codificación y se calcula igual.
	var errs []error

	var likelihood *float64
	if ms.classifier != nil {
		prob, err := infer(ms.classifier, f, ms.classifier.Linear.Probability)
		if err != nil {
			errs = append(errs, err)
		} else {
			likelihood = &prob
			v := round(prob*100, 2)
			p.AdoptionLikelihood = &v
		}
	}
	if ms.regressor != nil {
		days, err := infer(ms.regressor, f, ms.regressor.Linear.Predict)
		if err != nil {
			errs = append(errs, err)
		} else {
			v := round(math.Max(0, days-float64(f.DaysInShelter)), 1)
			p.TimeToAdoptionDays = &v
		}
	}

	switch {
	case s.opts.HeuristicEnabled:
		score, factors := HeuristicScore(f)
		v := round(score*100, 2)
		p.PriorityScore, p.Priority, p.ScoreFactors = &v, LevelFor(score), factors
	case likelihood != nil:
		score := 1 - *likelihood
		v := round(score*100, 2)
		p.PriorityScore, p.Priority = &v, LevelFor(score)
		for k, w := range ms.classifier.FeatureImportance {
			p.ScoreFactors[k] = w
		}
	case ms.classifier != nil:
		// el score dependía del clasificador y falló
		p.Priority = LevelUnknown
	}

	if err := joinErrors(errs); err != nil {
		s.metrics.Prediction("error")
		return p, err
	}
	if p.PriorityScore == nil && p.TimeToAdoptionDays == nil {
		s.metrics.Prediction("not_trained")
	} else {
		s.metrics.Prediction("ok")
	}
	return p, nil
}

// joinErrors une en una línea; errors.Is sigue viendo cada causa.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return fmt.Errorf("%w; %w", errs[0], joinErrors(errs[1:]))
}

func infer(a *Artifact, f Features, fn func([]float64) (float64, error)) (float64, error) {
	x, err := a.Encoding.Transform(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", a.Model, err)
	}
	return fn(x)
}

type ModelInfo struct {
	Trained     bool       `json:"trained"`
	TrainedDate *time.Time `json:"trained_date"`
	Key         string     `json:"key"`
	SizeBytes   int64      `json:"size_bytes,omitempty"`
}

type ModelStatus struct {
	Driver             string    `json:"driver"`
	AdoptionLikelihood ModelInfo `json:"adoption_likelihood"`
	TimeToAdoption     ModelInfo `json:"time_to_adoption"`
}

func (s *Service) Status(ctx context.Context) (ModelStatus, error) {
	out := ModelStatus{Driver: string(s.repo.Driver())}
	for _, m := range []struct {
		name string
		dst  *ModelInfo
	}{
		{ModelAdoptionLikelihood, &out.AdoptionLikelihood},
		{ModelTimeToAdoption, &out.TimeToAdoption},
	} {
		info, ok, err := s.repo.Head(ctx, m.name)
		if err != nil {
			return ModelStatus{}, err
		}
		*m.dst = ModelInfo{Trained: ok, Key: s.repo.Key(m.name)}
		if ok {
			at := info.LastModified.UTC()
			m.dst.TrainedDate, m.dst.SizeBytes = &at, info.Size
		}
	}
	return out, nil
}

var errNotTrained = errors.New("models not trained yet, train models first")

// FeatureImportance devuelve la importancia por factor de cada modelo entrenado.
func (s *Service) FeatureImportance(ctx context.Context) (map[string]map[string]float64, error) {
	ms, err := s.loadModels(ctx)
	if err != nil {
		return nil, err
	}
	out := map[string]map[string]float64{}
	if ms.classifier != nil {
		out[ModelAdoptionLikelihood] = ms.classifier.FeatureImportance
	}
	if ms.regressor != nil {
		out[ModelTimeToAdoption] = ms.regressor.FeatureImportance
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %v", apperr.ErrNotFound, errNotTrained)
	}
	return out, nil
}

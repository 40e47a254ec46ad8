package router

import (
	"context"
	"net/http"
	"time"

	_ "pet-shelter/docs"

	artmem "pet-shelter/internal/adapters/artifacts/memory"
	"pet-shelter/internal/adapters/storage/docrepo"
	mem "pet-shelter/internal/adapters/storage/memory"
	"pet-shelter/internal/config"
	"pet-shelter/internal/domain/activities"
	"pet-shelter/internal/domain/adopters"
	"pet-shelter/internal/domain/adoptions"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/charts"
	"pet-shelter/internal/domain/dashboard"
	"pet-shelter/internal/domain/medical"
	"pet-shelter/internal/domain/predictions"
	"pet-shelter/internal/domain/volunteers"
	"pet-shelter/internal/middleware"
	"pet-shelter/internal/platform/httpx"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/metrics"
	"pet-shelter/internal/ports/artifacts"
	"pet-shelter/internal/ports/docstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene nil se usa el store in-memory.
	Store docstore.Store

	// Opcional: si viene nil los modelos viven en memoria.
	Artifacts      artifacts.Store
	ArtifactPrefix string

	Predictions predictions.Options

	Logger  logger.Logger
	Metrics *metrics.Metrics
}

func PredictionOptions(c config.PredictionsConfig) predictions.Options {
	return predictions.Options{
		HeuristicEnabled: c.HeuristicEnabled,
		MinAnimals:       c.MinAnimals,
		MinAdoptions:     c.MinAdoptions,
		TestFraction:     c.TestFraction,
		Seed:             c.Seed,
	}
}

// DefaultPredictions son los umbrales de config.Defaults().
func DefaultPredictions() predictions.Options {
	return PredictionOptions(config.Defaults().Predictions)
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}
	arts := opts.Artifacts
	if arts == nil {
		arts = artmem.New()
	}
	prefix := opts.ArtifactPrefix
	if prefix == "" {
		prefix = "models/"
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics(opts.Metrics))

	r.Get("/health", healthHandler(store))
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repos := docrepo.New(store)

	// Services por módulo
	animalsSvc := animals.NewService(repos.Animals, repos.Volunteers, log)
	adoptersSvc := adopters.NewService(repos.Adopters)
	adoptionsSvc := adoptions.NewService(repos.Adoptions, animalsSvc, adoptersSvc, log)
	medicalSvc := medical.NewService(repos.Medical, animalsSvc)
	volunteersSvc := volunteers.NewService(repos.Volunteers, animalsSvc, log, opts.Metrics)
	activitiesSvc := activities.NewService(repos.Activities, volunteersSvc, animalsSvc, log)
	chartsSvc := charts.NewService(animalsSvc, adoptionsSvc, medicalSvc)
	predictionsSvc := predictions.NewService(
		animalsSvc, adoptionsSvc, medicalSvc,
		predictions.NewArtifactRepo(arts, prefix),
		opts.Predictions, log, opts.Metrics,
	)
	dashboardSvc := dashboard.NewService(store)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc, volunteers.AnimalRoutes(volunteersSvc))
	adopters.RegisterRoutes(r, adoptersSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc)
	medical.RegisterRoutes(r, medicalSvc)
	volunteers.RegisterRoutes(r, volunteersSvc)
	activities.RegisterRoutes(r, activitiesSvc)
	charts.RegisterRoutes(r, chartsSvc)
	predictions.RegisterRoutes(r, predictionsSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}

// healthHandler godoc
// @Summary Health check
// @Description Responde ok si el store contesta al ping.
// @Tags ops
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {object} map[string]any "store no disponible"
// @Router /health [get]
func healthHandler(store docstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			httpx.WriteError(w, docstore.Unavailable("ping", err))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

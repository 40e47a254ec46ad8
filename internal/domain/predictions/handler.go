package predictions

import (
	"net/http"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/predictions", func(pr chi.Router) {
		pr.Get("/", listPredictionsHandler(svc))
		pr.Post("/train", trainHandler(svc))
		pr.Get("/animal/{animalID}", animalPredictionHandler(svc))
		pr.Get("/model-status", modelStatusHandler(svc))
		pr.Get("/feature-importance", featureImportanceHandler(svc))
	})
}

// trainHandler godoc
// @Summary Entrenar modelos
// @Description Entrena clasificador y regresor. Datos insuficientes no es error: trained=false con message.
// @Tags predictions
// @Produce json
// @Success 200 {object} TrainResult
// @Failure 503 {object} map[string]any "store no disponible"
// @Router /predictions/train [post]
func trainHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Train(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// listPredictionsHandler godoc
// @Summary Predicciones de animales disponibles
// @Description Un error en un animal (p. ej. categoría no vista) se informa en su ítem.
// @Tags predictions
// @Produce json
// @Success 200 {array} Prediction
// @Router /predictions [get]
func listPredictionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// animalPredictionHandler godoc
// @Summary Predicción de un animal
// @Tags predictions
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} Prediction
// @Failure 404 {object} map[string]any "animal no encontrado"
// @Failure 422 {object} map[string]any "categoría no vista al entrenar"
// @Router /predictions/animal/{animalID} [get]
func animalPredictionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ForAnimal(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func modelStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Status(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func featureImportanceHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.FeatureImportance(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

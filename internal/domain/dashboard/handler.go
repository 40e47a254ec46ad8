package dashboard

import (
	"net/http"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/dashboard/stats", statsHandler(svc))
}

// statsHandler godoc
// @Summary Estadísticas del tablero
// @Tags dashboard
// @Produce json
// @Success 200 {object} Stats
// @Failure 503 {object} map[string]any "store no disponible"
// @Router /api/dashboard/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Stats(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

package adopters

import (
	"net/http"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/adopters", func(ar chi.Router) {
		ar.Post("/", createAdopterHandler(svc))
		ar.Get("/", listAdoptersHandler(svc))
		ar.Get("/{adopterID}", getAdopterHandler(svc))
		ar.Put("/{adopterID}", updateAdopterHandler(svc))
		ar.Delete("/{adopterID}", deleteAdopterHandler(svc))
	})
}

// createAdopterHandler godoc
// @Summary Registrar adoptante
// @Tags adopters
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos del adoptante (email válido)"
// @Success 201 {object} Adopter
// @Failure 400 {object} map[string]any "validación"
// @Router /api/adopters [post]
func createAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		a, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, a)
	}
}

func listAdoptersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adopterID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func updateAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		a, err := svc.Update(r.Context(), chi.URLParam(r, "adopterID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func deleteAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "adopterID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

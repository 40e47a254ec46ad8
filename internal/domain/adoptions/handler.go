package adoptions

import (
	"net/http"
	"strings"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/adoptions", func(ar chi.Router) {
		ar.Post("/", createAdoptionHandler(svc))
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Get("/{adoptionID}", getAdoptionHandler(svc))
		ar.Put("/{adoptionID}", updateAdoptionHandler(svc))
		ar.Delete("/{adoptionID}", deleteAdoptionHandler(svc))
	})

	// Búsqueda: animales adoptados por un adoptante
	r.Get("/api/search/adopter/{adopterID}", searchByAdopterHandler(svc))
}

// createAdoptionHandler godoc
// @Summary Registrar adopción
// @Description Crea la adopción y marca el animal como Adopted. adoption_date por defecto es hoy (YYYY-MM-DD).
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body CreateInput true "animal_id y adopter_id son UUID"
// @Success 201 {object} Adoption
// @Failure 400 {object} map[string]any "id mal formado / validación"
// @Failure 404 {object} map[string]any "animal o adoptante no encontrado"
// @Router /api/adoptions [post]
func createAdoptionHandler(svc *Service) http.HandlerFunc {
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

func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), Filter{
			AnimalID:  strings.TrimSpace(q.Get("animal_id")),
			AdopterID: strings.TrimSpace(q.Get("adopter_id")),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adoptionID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

// updateAdoptionHandler godoc
// @Summary Actualizar adopción
// @Description Parcial. Si cambia animal_id, el animal anterior vuelve a Available y el nuevo pasa a Adopted.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param adoptionID path string true "ID de la adopción"
// @Param payload body UpdateInput true "Campos a modificar"
// @Success 200 {object} Adoption
// @Router /api/adoptions/{adoptionID} [put]
func updateAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		a, err := svc.Update(r.Context(), chi.URLParam(r, "adoptionID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

// deleteAdoptionHandler godoc
// @Summary Borrar adopción
// @Description Borra la adopción y devuelve el animal a Available.
// @Tags adoptions
// @Param adoptionID path string true "ID de la adopción"
// @Success 204
// @Failure 404 {object} map[string]any "adopción no encontrada"
// @Router /api/adoptions/{adoptionID} [delete]
func deleteAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "adoptionID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func searchByAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.SearchByAdopter(r.Context(), chi.URLParam(r, "adopterID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

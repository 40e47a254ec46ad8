package volunteers

import (
	"net/http"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/volunteers", func(vr chi.Router) {
		vr.Post("/", createVolunteerHandler(svc))
		vr.Get("/", listVolunteersHandler(svc))
		vr.Get("/skills", skillsHandler())
		vr.Get("/{volunteerID}", getVolunteerHandler(svc))
		vr.Put("/{volunteerID}", updateVolunteerHandler(svc))
		vr.Delete("/{volunteerID}", deleteVolunteerHandler(svc))
		vr.Get("/{volunteerID}/matches", volunteerMatchesHandler(svc))
	})
}

// AnimalRoutes se pasa a animals.RegisterRoutes: /api/animals/{animalID}/matching-volunteers.
func AnimalRoutes(svc *Service) func(chi.Router) {
	return func(ar chi.Router) {
		ar.Get("/{animalID}/matching-volunteers", animalMatchesHandler(svc))
	}
}

// createVolunteerHandler godoc
// @Summary Registrar voluntario
// @Description skills acepta lista o string separado por comas; cada valor debe estar en el vocabulario.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos del voluntario"
// @Success 201 {object} Volunteer
// @Failure 400 {object} map[string]any "validación"
// @Router /api/volunteers [post]
func createVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		v, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, v)
	}
}

func listVolunteersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func skillsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string][]string{"skills": Vocabulary})
	}
}

func getVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "volunteerID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, v)
	}
}

func updateVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		v, err := svc.Update(r.Context(), chi.URLParam(r, "volunteerID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, v)
	}
}

// deleteVolunteerHandler godoc
// @Summary Borrar voluntario
// @Description Borra el voluntario y lo quita de assigned_volunteers de todos los animales.
// @Tags volunteers
// @Param volunteerID path string true "ID del voluntario"
// @Success 204
// @Failure 404 {object} map[string]any "voluntario no encontrado"
// @Router /api/volunteers/{volunteerID} [delete]
func deleteVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "volunteerID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func volunteerMatchesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.MatchAnimals(r.Context(), chi.URLParam(r, "volunteerID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func animalMatchesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.MatchVolunteers(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

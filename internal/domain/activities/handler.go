package activities

import (
	"net/http"
	"strings"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/volunteer-activities", func(ar chi.Router) {
		ar.Post("/", createActivityHandler(svc))
		ar.Get("/", listActivitiesHandler(svc))
		ar.Get("/types", typesHandler())
		ar.Get("/stats/summary", summaryHandler(svc))
		ar.Get("/{activityID}", getActivityHandler(svc))
		ar.Put("/{activityID}", updateActivityHandler(svc))
		ar.Delete("/{activityID}", deleteActivityHandler(svc))
	})
}

// createActivityHandler godoc
// @Summary Registrar actividad de voluntario
// @Description Voluntario y animal deben existir. activity_date por defecto hoy.
// @Tags activities
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Actividad"
// @Success 201 {object} Activity
// @Failure 400 {object} map[string]any "validación / id inválido"
// @Failure 404 {object} map[string]any "voluntario o animal no encontrado"
// @Router /api/volunteer-activities [post]
func createActivityHandler(svc *Service) http.HandlerFunc {
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

func listActivitiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), Filter{
			VolunteerID: strings.TrimSpace(q.Get("volunteer_id")),
			AnimalID:    strings.TrimSpace(q.Get("animal_id")),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func typesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string][]string{"activity_types": Types})
	}
}

// summaryHandler godoc
// @Summary Resumen de horas de voluntariado
// @Tags activities
// @Produce json
// @Success 200 {object} Summary
// @Router /api/volunteer-activities/stats/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Summary(r.Context())
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "activityID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func updateActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		a, err := svc.Update(r.Context(), chi.URLParam(r, "activityID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func deleteActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "activityID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

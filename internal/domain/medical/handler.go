package medical

import (
	"net/http"
	"strings"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/medical-records", func(mr chi.Router) {
		mr.Post("/", createRecordHandler(svc))
		mr.Get("/", listRecordsHandler(svc))
		mr.Get("/{recordID}", getRecordHandler(svc))
		mr.Put("/{recordID}", updateRecordHandler(svc))
		mr.Delete("/{recordID}", deleteRecordHandler(svc))
	})

	// Historial clínico de un animal
	r.Get("/api/search/medical/{animalID}", historyHandler(svc))
}

// createRecordHandler godoc
// @Summary Registrar visita médica
// @Description El animal debe existir; si no existe responde 404 y no se guarda nada.
// @Tags medical
// @Accept json
// @Produce json
// @Param payload body CreateInput true "visit_date en formato YYYY-MM-DD"
// @Success 201 {object} Record
// @Failure 400 {object} map[string]any "validación"
// @Failure 404 {object} map[string]any "animal no encontrado"
// @Router /api/medical-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in CreateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		rec, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, rec)
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), Filter{AnimalID: strings.TrimSpace(r.URL.Query().Get("animal_id"))})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rec)
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}
		rec, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, rec)
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// historyHandler godoc
// @Summary Historial médico de un animal
// @Description Registros del animal ordenados por visit_date descendente.
// @Tags medical
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} Record
// @Router /api/search/medical/{animalID} [get]
func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.History(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

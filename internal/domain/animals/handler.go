package animals

import (
	"net/http"
	"strings"

	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /api/animals. extra permite a otros módulos colgar
// subrutas de un animal sin chocar con el subrouter.
func RegisterRoutes(r chi.Router, svc *Service, extra ...func(chi.Router)) {
	r.Route("/api/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		// Catálogo estático (antes de /{animalID})
		ar.Get("/species-breeds", speciesBreedsHandler())

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))

		// Asignación de voluntarios (conjunto)
		ar.Post("/{animalID}/volunteers/{volunteerID}", assignVolunteerHandler(svc))
		ar.Delete("/{animalID}/volunteers/{volunteerID}", unassignVolunteerHandler(svc))

		for _, fn := range extra {
			fn(ar)
		}
	})
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Crea un animal. status por defecto Available; intake_date opcional en formato YYYY-MM-DD.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos del animal"
// @Success 201 {object} Animal
// @Failure 400 {object} map[string]any "validación"
// @Router /api/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
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

// listAnimalsHandler godoc
// @Summary Listar animales
// @Tags animals
// @Produce json
// @Param species query string false "Especie"
// @Param status query string false "Estado"
// @Param gender query string false "Sexo"
// @Param breed query string false "Raza"
// @Success 200 {array} Animal
// @Router /api/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), Filter{
			Species: strings.TrimSpace(q.Get("species")),
			Status:  strings.TrimSpace(q.Get("status")),
			Gender:  strings.TrimSpace(q.Get("gender")),
			Breed:   strings.TrimSpace(q.Get("breed")),
		})
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, items)
	}
}

func speciesBreedsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, Catalog())
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} Animal
// @Failure 400 {object} map[string]any "id inválido"
// @Failure 404 {object} map[string]any "animal no encontrado"
// @Router /api/animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Actualización parcial: solo se modifican los campos enviados.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param payload body UpdateInput true "Campos a modificar"
// @Success 200 {object} Animal
// @Failure 400 {object} map[string]any "sin campos / validación"
// @Failure 404 {object} map[string]any "animal no encontrado"
// @Router /api/animals/{animalID} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in UpdateInput
		if err := httpx.DecodeJSON(r, &in); err != nil {
			httpx.WriteError(w, err)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "animalID"), in)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			httpx.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func assignVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.AssignVolunteer(r.Context(), chi.URLParam(r, "animalID"), chi.URLParam(r, "volunteerID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

func unassignVolunteerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.UnassignVolunteer(r.Context(), chi.URLParam(r, "animalID"), chi.URLParam(r, "volunteerID"))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, a)
	}
}

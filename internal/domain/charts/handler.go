package charts

import (
	"context"
	"net/http"
	"strings"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/charts", func(cr chi.Router) {
		cr.Get("/species", distributionHandler(svc, FieldSpecies))
		cr.Get("/status", distributionHandler(svc, FieldStatus))
		cr.Get("/breed", distributionHandler(svc, FieldBreed))
		cr.Get("/gender-distribution", distributionHandler(svc, FieldGender))
		cr.Get("/age-distribution", ageDistributionHandler(svc))

		cr.Get("/adoptions", monthlyHandler(svc.MonthlyAdoptions))
		cr.Get("/medical-visits", monthlyHandler(svc.MonthlyVisits))
		cr.Get("/medical-visits-by-species", visitsByHandler(svc, FieldSpecies))
		cr.Get("/medical-visits-by-breed", visitsByHandler(svc, FieldBreed))
	})
}

func filterFrom(r *http.Request) animals.Filter {
	q := r.URL.Query()
	return animals.Filter{
		Species: strings.TrimSpace(q.Get("species")),
		Status:  strings.TrimSpace(q.Get("status")),
		Gender:  strings.TrimSpace(q.Get("gender")),
		Breed:   strings.TrimSpace(q.Get("breed")),
	}
}

// distributionHandler godoc
// @Summary Distribución de animales
// @Description Agrupa por un campo; los filtros de los otros campos se aplican (filtro cruzado).
// @Tags charts
// @Produce json
// @Param species query string false "Especie"
// @Param status query string false "Estado"
// @Param gender query string false "Sexo"
// @Param breed query string false "Raza"
// @Success 200 {object} Series
// @Router /charts/species [get]
func distributionHandler(svc *Service, field Field) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Distribution(r.Context(), field, filterFrom(r))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func ageDistributionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.AgeDistribution(r.Context(), filterFrom(r))
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func rangeFrom(r *http.Request) (Range, error) {
	q := r.URL.Query()
	return ParseRange(q.Get("start_date"), q.Get("end_date"))
}

// monthlyHandler godoc
// @Summary Serie mensual
// @Description Con rango se devuelven todos los meses, con ceros donde no hay eventos.
// @Tags charts
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} TimeSeries
// @Failure 400 {object} map[string]any "fecha inválida"
// @Router /charts/adoptions [get]
func monthlyHandler(fn func(ctx context.Context, r Range) (TimeSeries, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := rangeFrom(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out, err := fn(r.Context(), rng)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func visitsByHandler(svc *Service, field Field) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := rangeFrom(r)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		out, err := svc.VisitsBy(r.Context(), field, rng)
		if err != nil {
			httpx.WriteError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

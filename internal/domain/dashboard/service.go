package dashboard

import (
	"context"
	"fmt"
	"math"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/ports/docstore"

	"golang.org/x/sync/errgroup"
)

type Stats struct {
	TotalAnimals             int     `json:"total_animals"`
	TotalAdopters            int     `json:"total_adopters"`
	TotalAdoptions           int     `json:"total_adoptions"`
	TotalVolunteers          int     `json:"total_volunteers"`
	AvailableAnimals         int     `json:"available_animals"`
	AdoptedAnimals           int     `json:"adopted_animals"`
	TotalVolunteerHours      float64 `json:"total_volunteer_hours"`
	TotalVolunteerActivities int     `json:"total_volunteer_activities"`
	AnimalsNeedingVolunteers int     `json:"animals_needing_volunteers"`
}

// Service lee contadores directo del store: es un modelo de lectura,
// no pasa por los repositorios de cada módulo.
type Service struct {
	store docstore.Store
}

func NewService(store docstore.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int, collection string, f docstore.Filter) {
		g.Go(func() error {
			n, err := s.store.Collection(collection).Count(gctx, f)
			if err != nil {
				return fmt.Errorf("count %s: %w", collection, err)
			}
			*dst = n
			return nil
		})
	}
	count(&out.TotalAnimals, docstore.Animals, nil)
	count(&out.TotalAdopters, docstore.Adopters, nil)
	count(&out.TotalAdoptions, docstore.Adoptions, nil)
	count(&out.TotalVolunteers, docstore.Volunteers, nil)
	count(&out.AdoptedAnimals, docstore.Animals, docstore.Filter{"status": string(animals.StatusAdopted)})

	g.Go(func() error {
		docs, err := s.store.Collection(docstore.Animals).Find(gctx, docstore.Filter{"status": string(animals.StatusAvailable)})
		if err != nil {
			return fmt.Errorf("find available animals: %w", err)
		}
		out.AvailableAnimals = len(docs)
		for _, d := range docs {
			if list, _ := d["assigned_volunteers"].([]any); len(list) == 0 {
				out.AnimalsNeedingVolunteers++
			}
		}
		return nil
	})

	g.Go(func() error {
		docs, err := s.store.Collection(docstore.VolunteerActivities).Find(gctx, nil)
		if err != nil {
			return fmt.Errorf("find activities: %w", err)
		}
		minutes := 0.0
		for _, d := range docs {
			if v, ok := d["duration_minutes"].(float64); ok {
				minutes += v
			}
		}
		out.TotalVolunteerActivities = len(docs)
		out.TotalVolunteerHours = math.Round(minutes/60*10) / 10
		return nil
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return out, nil
}

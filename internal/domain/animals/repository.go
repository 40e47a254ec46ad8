package animals

import (
	"context"
	"time"
)

// Filter: igualdad por campo; vacío = sin filtro.
type Filter struct {
	Species string
	Status  string
	Gender  string
	Breed   string
}

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, f Filter) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error

	// Escrituras puntuales ($set de un campo) para no pisar ediciones concurrentes.
	SetStatus(ctx context.Context, id string, status Status, at time.Time) error
	SetVolunteers(ctx context.Context, id string, volunteerIDs []string, at time.Time) error
}

// VolunteerLookup resuelve si un voluntario existe (lo implementa el repo de voluntarios).
type VolunteerLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

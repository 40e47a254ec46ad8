package adoptions

import (
	"context"

	"pet-shelter/internal/domain/adopters"
	"pet-shelter/internal/domain/animals"
)

type Filter struct {
	AnimalID  string
	AdopterID string
}

type Repository interface {
	Create(ctx context.Context, a Adoption) error
	GetByID(ctx context.Context, id string) (Adoption, error)
	List(ctx context.Context, f Filter) ([]Adoption, error)
	Update(ctx context.Context, a Adoption) error
	Delete(ctx context.Context, id string) error
}

// AnimalService es lo que adopciones necesita de animales.
type AnimalService interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
	SetStatus(ctx context.Context, id string, status animals.Status) error
}

type AdopterLookup interface {
	GetByID(ctx context.Context, id string) (adopters.Adopter, error)
}

package medical

import (
	"context"

	"pet-shelter/internal/domain/animals"
)

type Filter struct {
	AnimalID string
}

type Repository interface {
	Create(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, f Filter) ([]Record, error)
	Update(ctx context.Context, r Record) error
	Delete(ctx context.Context, id string) error
}

type AnimalLookup interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
}

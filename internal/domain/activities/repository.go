package activities

import (
	"context"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/volunteers"
)

type Filter struct {
	VolunteerID string
	AnimalID    string
}

type Repository interface {
	Create(ctx context.Context, a Activity) error
	GetByID(ctx context.Context, id string) (Activity, error)
	List(ctx context.Context, f Filter) ([]Activity, error)
	Update(ctx context.Context, a Activity) error
	Delete(ctx context.Context, id string) error
}

type VolunteerLookup interface {
	GetByID(ctx context.Context, id string) (volunteers.Volunteer, error)
}

type AnimalLookup interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
}

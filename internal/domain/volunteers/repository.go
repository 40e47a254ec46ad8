package volunteers

import (
	"context"

	"pet-shelter/internal/domain/animals"
)

type Repository interface {
	Create(ctx context.Context, v Volunteer) error
	GetByID(ctx context.Context, id string) (Volunteer, error)
	List(ctx context.Context) ([]Volunteer, error)
	Update(ctx context.Context, v Volunteer) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// AnimalService cubre matching y la limpieza de referencias.
type AnimalService interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
	List(ctx context.Context, f animals.Filter) ([]animals.Animal, error)
	RemoveVolunteerReferences(ctx context.Context, volunteerID string) (int, error)
}

package adopters

import (
	"context"
	"strings"
	"time"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/ids"
	"pet-shelter/internal/platform/validation"
)

type Service struct {
	repo     Repository
	validate *validation.Validator
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validation.New(),
		now:      time.Now,
	}
}

type CreateInput struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Adopter, error) {
	in = CreateInput{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
	}
	if err := s.validate.Struct(in); err != nil {
		return Adopter{}, err
	}

	now := s.now().UTC()
	a := Adopter{
		ID:        ids.New(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adopter{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Adopter, error) {
	id, err := ids.Check("adopter_id", id)
	if err != nil {
		return Adopter{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Adopter, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Address *string `json:"address"`
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Adopter, error) {
	if in.Name == nil && in.Phone == nil && in.Email == nil && in.Address == nil {
		return Adopter{}, apperr.Invalid("body", "no fields to update")
	}
	if err := s.validate.Struct(in); err != nil {
		return Adopter{}, err
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Adopter{}, err
	}

	set := func(field string, src *string, dst *string) error {
		if src == nil {
			return nil
		}
		v := strings.TrimSpace(*src)
		if v == "" {
			return apperr.Invalid(field, "is required")
		}
		*dst = v
		return nil
	}
	for _, f := range []struct {
		name string
		src  *string
		dst  *string
	}{
		{"name", in.Name, &a.Name},
		{"phone", in.Phone, &a.Phone},
		{"email", in.Email, &a.Email},
		{"address", in.Address, &a.Address},
	} {
		if err := set(f.name, f.src, f.dst); err != nil {
			return Adopter{}, err
		}
	}
	a.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		return Adopter{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := ids.Check("adopter_id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

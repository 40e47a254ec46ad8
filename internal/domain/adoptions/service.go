package adoptions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/dates"
	"pet-shelter/internal/platform/ids"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/validation"
)

type Service struct {
	repo     Repository
	animals  AnimalService
	adopters AdopterLookup
	validate *validation.Validator
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, animalsSvc AnimalService, adoptersSvc AdopterLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		animals:  animalsSvc,
		adopters: adoptersSvc,
		validate: validation.New(),
		log:      log.With(map[string]any{"module": "adoptions"}),
		now:      time.Now,
	}
}

type CreateInput struct {
	AnimalID     string `json:"animal_id" validate:"required"`
	AdopterID    string `json:"adopter_id" validate:"required"`
	AdoptionDate string `json:"adoption_date" validate:"omitempty,calendar_date"`
	Notes        string `json:"notes"`
}

// Create registra la adopción y marca el animal como Adopted.
// No hay transacción entre documentos: si el cambio de estado falla se borra la adopción.
func (s *Service) Create(ctx context.Context, in CreateInput) (Adoption, error) {
	if err := s.validate.Struct(in); err != nil {
		return Adoption{}, err
	}
	animalID, err := ids.Check("animal_id", in.AnimalID)
	if err != nil {
		return Adoption{}, err
	}
	adopterID, err := ids.Check("adopter_id", in.AdopterID)
	if err != nil {
		return Adoption{}, err
	}
	if _, err := s.animals.GetByID(ctx, animalID); err != nil {
		return Adoption{}, fmt.Errorf("animal %s: %w", animalID, err)
	}
	if _, err := s.adopters.GetByID(ctx, adopterID); err != nil {
		return Adoption{}, fmt.Errorf("adopter %s: %w", adopterID, err)
	}

	now := s.now().UTC()
	day := strings.TrimSpace(in.AdoptionDate)
	if day == "" {
		day = dates.Format(now)
	}

	a := Adoption{
		ID:           ids.New(),
		AnimalID:     animalID,
		AdopterID:    adopterID,
		AdoptionDate: day,
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, err
	}

	if err := s.animals.SetStatus(ctx, animalID, animals.StatusAdopted); err != nil {
		if derr := s.repo.Delete(ctx, a.ID); derr != nil {
			s.log.Error("adoption compensation failed", map[string]any{"adoption_id": a.ID, "error": derr})
		}
		return Adoption{}, fmt.Errorf("mark animal adopted: %w", err)
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	id, err := ids.Check("adoption_id", id)
	if err != nil {
		return Adoption{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Adoption, error) {
	return s.repo.List(ctx, f)
}

type UpdateInput struct {
	AnimalID     *string `json:"animal_id"`
	AdopterID    *string `json:"adopter_id"`
	AdoptionDate *string `json:"adoption_date" validate:"omitempty,calendar_date"`
	Notes        *string `json:"notes"`
}

// Update es parcial. Si cambia animal_id, el estado Adopted se mueve al animal nuevo.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Adoption, error) {
	if in.AnimalID == nil && in.AdopterID == nil && in.AdoptionDate == nil && in.Notes == nil {
		return Adoption{}, apperr.Invalid("body", "no fields to update")
	}
	if err := s.validate.Struct(in); err != nil {
		return Adoption{}, err
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Adoption{}, err
	}
	prevAnimal := a.AnimalID

	if in.AnimalID != nil {
		animalID, err := ids.Check("animal_id", *in.AnimalID)
		if err != nil {
			return Adoption{}, err
		}
		if _, err := s.animals.GetByID(ctx, animalID); err != nil {
			return Adoption{}, fmt.Errorf("animal %s: %w", animalID, err)
		}
		a.AnimalID = animalID
	}
	if in.AdopterID != nil {
		adopterID, err := ids.Check("adopter_id", *in.AdopterID)
		if err != nil {
			return Adoption{}, err
		}
		if _, err := s.adopters.GetByID(ctx, adopterID); err != nil {
			return Adoption{}, fmt.Errorf("adopter %s: %w", adopterID, err)
		}
		a.AdopterID = adopterID
	}
	if in.AdoptionDate != nil && strings.TrimSpace(*in.AdoptionDate) != "" {
		a.AdoptionDate = strings.TrimSpace(*in.AdoptionDate)
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}
	a.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		return Adoption{}, err
	}

	if a.AnimalID != prevAnimal {
		if err := s.animals.SetStatus(ctx, a.AnimalID, animals.StatusAdopted); err != nil {
			return Adoption{}, fmt.Errorf("mark animal adopted: %w", err)
		}
		s.releaseAnimal(ctx, prevAnimal)
	}
	return a, nil
}

// Delete borra la adopción y devuelve el animal a Available.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return err
	}
	s.releaseAnimal(ctx, a.AnimalID)
	return nil
}

// releaseAnimal: el animal pudo haber sido borrado; eso no es error para la adopción.
func (s *Service) releaseAnimal(ctx context.Context, animalID string) {
	err := s.animals.SetStatus(ctx, animalID, animals.StatusAvailable)
	if err == nil {
		return
	}
	fields := map[string]any{"animal_id": animalID, "error": err}
	if errors.Is(err, apperr.ErrNotFound) {
		s.log.Warn("adopted animal no longer exists", fields)
		return
	}
	s.log.Error("failed to release animal", fields)
}

// SearchByAdopter devuelve los animales adoptados por el adoptante con su fecha.
// Adopciones cuyo animal ya no existe se omiten.
func (s *Service) SearchByAdopter(ctx context.Context, adopterID string) ([]AdoptedAnimal, error) {
	adopterID, err := ids.Check("adopter_id", adopterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.adopters.GetByID(ctx, adopterID); err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, Filter{AdopterID: adopterID})
	if err != nil {
		return nil, err
	}

	out := make([]AdoptedAnimal, 0, len(items))
	for _, ad := range items {
		an, err := s.animals.GetByID(ctx, ad.AnimalID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrInvalidID) {
				continue
			}
			return nil, err
		}
		out = append(out, AdoptedAnimal{Animal: an, AdoptionID: ad.ID, AdoptionDate: ad.AdoptionDate})
	}
	return out, nil
}

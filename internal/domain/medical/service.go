package medical

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/dates"
	"pet-shelter/internal/platform/ids"
	"pet-shelter/internal/platform/validation"
)

type Service struct {
	repo     Repository
	animals  AnimalLookup
	validate *validation.Validator
	now      func() time.Time
}

func NewService(repo Repository, animalsSvc AnimalLookup) *Service {
	return &Service{
		repo:     repo,
		animals:  animalsSvc,
		validate: validation.New(),
		now:      time.Now,
	}
}

type CreateInput struct {
	AnimalID  string `json:"animal_id" validate:"required"`
	VetName   string `json:"vet_name" validate:"required"`
	VisitDate string `json:"visit_date" validate:"required,calendar_date"`
	Diagnosis string `json:"diagnosis" validate:"required"`
	Treatment string `json:"treatment" validate:"required"`
	Notes     string `json:"notes"`
}

// Create verifica que el animal exista; si no existe no se escribe nada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	in.VetName = strings.TrimSpace(in.VetName)
	in.Diagnosis = strings.TrimSpace(in.Diagnosis)
	in.Treatment = strings.TrimSpace(in.Treatment)
	if err := s.validate.Struct(in); err != nil {
		return Record{}, err
	}
	animalID, err := ids.Check("animal_id", in.AnimalID)
	if err != nil {
		return Record{}, err
	}
	if _, err := s.animals.GetByID(ctx, animalID); err != nil {
		return Record{}, fmt.Errorf("animal %s: %w", animalID, err)
	}

	now := s.now().UTC()
	rec := Record{
		ID:        ids.New(),
		AnimalID:  animalID,
		VetName:   in.VetName,
		VisitDate: strings.TrimSpace(in.VisitDate),
		Diagnosis: in.Diagnosis,
		Treatment: in.Treatment,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id, err := ids.Check("record_id", id)
	if err != nil {
		return Record{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Record, error) {
	return s.repo.List(ctx, f)
}

type UpdateInput struct {
	AnimalID  *string `json:"animal_id"`
	VetName   *string `json:"vet_name"`
	VisitDate *string `json:"visit_date" validate:"omitempty,calendar_date"`
	Diagnosis *string `json:"diagnosis"`
	Treatment *string `json:"treatment"`
	Notes     *string `json:"notes"`
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Record, error) {
	if in.AnimalID == nil && in.VetName == nil && in.VisitDate == nil &&
		in.Diagnosis == nil && in.Treatment == nil && in.Notes == nil {
		return Record{}, apperr.Invalid("body", "no fields to update")
	}
	if err := s.validate.Struct(in); err != nil {
		return Record{}, err
	}

	rec, err := s.GetByID(ctx, id)
	if err != nil {
		return Record{}, err
	}

	// Al mover el registro a otro animal se vuelve a chequear la referencia.
	if in.AnimalID != nil {
		animalID, err := ids.Check("animal_id", *in.AnimalID)
		if err != nil {
			return Record{}, err
		}
		if _, err := s.animals.GetByID(ctx, animalID); err != nil {
			return Record{}, fmt.Errorf("animal %s: %w", animalID, err)
		}
		rec.AnimalID = animalID
	}
	if in.VetName != nil {
		rec.VetName = strings.TrimSpace(*in.VetName)
	}
	if in.VisitDate != nil && strings.TrimSpace(*in.VisitDate) != "" {
		rec.VisitDate = strings.TrimSpace(*in.VisitDate)
	}
	if in.Diagnosis != nil {
		rec.Diagnosis = strings.TrimSpace(*in.Diagnosis)
	}
	if in.Treatment != nil {
		rec.Treatment = strings.TrimSpace(*in.Treatment)
	}
	if in.Notes != nil {
		rec.Notes = strings.TrimSpace(*in.Notes)
	}
	rec.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := ids.Check("record_id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// History devuelve los registros del animal, visita más reciente primero.
// Fechas mal formadas van al final, en orden de inserción.
func (s *Service) History(ctx context.Context, animalID string) ([]Record, error) {
	animalID, err := ids.Check("animal_id", animalID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, Filter{AnimalID: animalID})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := dates.Parse(items[i].VisitDate), dates.Parse(items[j].VisitDate)
		if a.OK() != b.OK() {
			return a.OK()
		}
		if !a.OK() {
			return false
		}
		return a.Day.After(b.Day)
	})
	return items, nil
}

package volunteers

import (
	"context"
	"strings"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/ids"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/metrics"
	"pet-shelter/internal/platform/validation"
)

type Service struct {
	repo     Repository
	animals  AnimalService
	validate *validation.Validator
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewService(repo Repository, animalsSvc AnimalService, log logger.Logger, m *metrics.Metrics) *Service {
	if log == nil {
		log = logger.Nop()
	}
	v := validation.New()
	v.RegisterSet("skill", Vocabulary)

	return &Service{
		repo:     repo,
		animals:  animalsSvc,
		validate: v,
		log:      log.With(map[string]any{"module": "volunteers"}),
		metrics:  m,
		now:      time.Now,
	}
}

type CreateInput struct {
	Name         string   `json:"name" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Skills       SkillSet `json:"skills" validate:"dive,skill"`
	Availability string   `json:"availability" validate:"required"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Volunteer, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Availability = strings.TrimSpace(in.Availability)
	if err := s.validate.Struct(in); err != nil {
		return Volunteer{}, err
	}

	skills := in.Skills
	if skills == nil {
		skills = SkillSet{}
	}
	now := s.now().UTC()
	v := Volunteer{
		ID:           ids.New(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Skills:       skills,
		Availability: in.Availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return Volunteer{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Volunteer, error) {
	id, err := ids.Check("volunteer_id", id)
	if err != nil {
		return Volunteer{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Volunteer, error) {
	return s.repo.List(ctx)
}

type UpdateInput struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Skills       *SkillSet `json:"skills" validate:"omitempty,dive,skill"`
	Availability *string   `json:"availability"`
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Volunteer, error) {
	if in.Name == nil && in.Phone == nil && in.Email == nil && in.Skills == nil && in.Availability == nil {
		return Volunteer{}, apperr.Invalid("body", "no fields to update")
	}
	if err := s.validate.Struct(in); err != nil {
		return Volunteer{}, err
	}

	v, err := s.GetByID(ctx, id)
	if err != nil {
		return Volunteer{}, err
	}
	if in.Name != nil {
		v.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		v.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		v.Email = strings.TrimSpace(*in.Email)
	}
	if in.Skills != nil {
		v.Skills = normalize(*in.Skills)
	}
	if in.Availability != nil {
		v.Availability = strings.TrimSpace(*in.Availability)
	}
	v.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, v); err != nil {
		return Volunteer{}, err
	}
	return v, nil
}

// Delete borra el voluntario y limpia sus referencias en animales.
// Si la limpieza falla el borrado se mantiene; reconcile la completa después.
func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := ids.Check("volunteer_id", id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	n, err := s.animals.RemoveVolunteerReferences(ctx, id)
	if err != nil {
		s.log.Error("volunteer reference cleanup failed", map[string]any{"volunteer_id": id, "error": err})
		return nil
	}
	s.metrics.ReferencesCleaned(n)
	return nil
}

// MatchAnimals sugiere animales no adoptados para los que el voluntario tiene alguna habilidad útil.
func (s *Service) MatchAnimals(ctx context.Context, volunteerID string) ([]AnimalMatch, error) {
	v, err := s.GetByID(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	all, err := s.animals.List(ctx, animals.Filter{})
	if err != nil {
		return nil, err
	}

	out := make([]AnimalMatch, 0)
	for _, a := range all {
		if a.Status == animals.StatusAdopted {
			continue
		}
		if matched := v.Skills.Intersect(SkillsFor(a.Species, a.Age)); len(matched) > 0 {
			out = append(out, AnimalMatch{Animal: a, MatchedSkills: matched})
		}
	}
	return out, nil
}

// MatchVolunteers sugiere voluntarios con al menos una habilidad útil para el animal.
func (s *Service) MatchVolunteers(ctx context.Context, animalID string) ([]VolunteerMatch, error) {
	a, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return nil, err
	}
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	wanted := SkillsFor(a.Species, a.Age)
	out := make([]VolunteerMatch, 0)
	for _, v := range all {
		if matched := v.Skills.Intersect(wanted); len(matched) > 0 {
			out = append(out, VolunteerMatch{Volunteer: v, MatchedSkills: matched})
		}
	}
	return out, nil
}

package animals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/ids"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/validation"
)

type Service struct {
	repo       Repository
	volunteers VolunteerLookup
	validate   *validation.Validator
	log        logger.Logger
	now        func() time.Time
}

func NewService(repo Repository, volunteers VolunteerLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	v := validation.New()
	v.RegisterSet("animal_status", Statuses)

	return &Service{
		repo:       repo,
		volunteers: volunteers,
		validate:   v,
		log:        log.With(map[string]any{"module": "animals"}),
		now:        time.Now,
	}
}

type CreateInput struct {
	Name            string `json:"name" validate:"required"`
	Species         string `json:"species" validate:"required"`
	Breed           string `json:"breed"`
	Age             int    `json:"age" validate:"gt=0"`
	Gender          string `json:"gender" validate:"required"`
	Status          string `json:"status" validate:"omitempty,animal_status"`
	IntakeDate      string `json:"intake_date" validate:"omitempty,calendar_date"`
	BehavioralNotes string `json:"behavioral_notes"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	in.Gender = strings.TrimSpace(in.Gender)
	if err := s.validate.Struct(in); err != nil {
		return Animal{}, err
	}

	status := StatusAvailable
	if in.Status != "" {
		status = Status(in.Status)
	}

	now := s.now().UTC()
	a := Animal{
		ID:                 ids.New(),
		Name:               in.Name,
		Species:            in.Species,
		Breed:              strings.TrimSpace(in.Breed),
		Age:                in.Age,
		Gender:             in.Gender,
		Status:             status,
		IntakeDate:         strings.TrimSpace(in.IntakeDate),
		BehavioralNotes:    strings.TrimSpace(in.BehavioralNotes),
		AssignedVolunteers: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id, err := ids.Check("animal_id", id)
	if err != nil {
		return Animal{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Animal, error) {
	return s.repo.List(ctx, f)
}

// UpdateInput: punteros para PUT parcial, nil = no tocar.
type UpdateInput struct {
	Name            *string `json:"name"`
	Species         *string `json:"species"`
	Breed           *string `json:"breed"`
	Age             *int    `json:"age" validate:"omitempty,gt=0"`
	Gender          *string `json:"gender"`
	Status          *string `json:"status" validate:"omitempty,animal_status"`
	IntakeDate      *string `json:"intake_date" validate:"omitempty,calendar_date"`
	BehavioralNotes *string `json:"behavioral_notes"`
}

func (in UpdateInput) empty() bool {
	return in.Name == nil && in.Species == nil && in.Breed == nil && in.Age == nil &&
		in.Gender == nil && in.Status == nil && in.IntakeDate == nil && in.BehavioralNotes == nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	if in.empty() {
		return Animal{}, apperr.Invalid("body", "no fields to update")
	}
	if err := s.validate.Struct(in); err != nil {
		return Animal{}, err
	}
	for field, v := range map[string]*string{"name": in.Name, "species": in.Species, "gender": in.Gender} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return Animal{}, apperr.Invalid(field, "is required")
		}
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		a.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		a.Age = *in.Age
	}
	if in.Gender != nil {
		a.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.Status != nil {
		a.Status = Status(*in.Status)
	}
	if in.IntakeDate != nil {
		a.IntakeDate = strings.TrimSpace(*in.IntakeDate)
	}
	if in.BehavioralNotes != nil {
		a.BehavioralNotes = strings.TrimSpace(*in.BehavioralNotes)
	}
	a.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := ids.Check("animal_id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SetStatus lo usan adopciones para el flip Available <-> Adopted.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) error {
	if err := s.repo.SetStatus(ctx, id, status, s.now().UTC()); err != nil {
		return err
	}
	s.log.Info("animal status changed", map[string]any{"animal_id": id, "status": string(status)})
	return nil
}

// AssignVolunteer agrega el voluntario al conjunto (idempotente).
func (s *Service) AssignVolunteer(ctx context.Context, animalID, volunteerID string) (Animal, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return Animal{}, err
	}
	volunteerID, err = ids.Check("volunteer_id", volunteerID)
	if err != nil {
		return Animal{}, err
	}

	ok, err := s.volunteers.Exists(ctx, volunteerID)
	if err != nil {
		return Animal{}, err
	}
	if !ok {
		return Animal{}, fmt.Errorf("volunteer %s: %w", volunteerID, apperr.ErrNotFound)
	}

	if a.HasVolunteer(volunteerID) {
		return a, nil
	}
	a.AssignedVolunteers = append(a.AssignedVolunteers, volunteerID)
	a.UpdatedAt = s.now().UTC()
	if err := s.repo.SetVolunteers(ctx, a.ID, a.AssignedVolunteers, a.UpdatedAt); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) UnassignVolunteer(ctx context.Context, animalID, volunteerID string) (Animal, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return Animal{}, err
	}
	if !a.HasVolunteer(volunteerID) {
		return a, nil
	}
	a.AssignedVolunteers = without(a.AssignedVolunteers, func(id string) bool { return id == volunteerID })
	a.UpdatedAt = s.now().UTC()
	if err := s.repo.SetVolunteers(ctx, a.ID, a.AssignedVolunteers, a.UpdatedAt); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// RemoveVolunteerReferences limpia el id de todos los animales (cascada al borrar voluntario).
// Devuelve cuántos animales cambiaron.
func (s *Service) RemoveVolunteerReferences(ctx context.Context, volunteerID string) (int, error) {
	all, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, a := range all {
		if !a.HasVolunteer(volunteerID) {
			continue
		}
		kept := without(a.AssignedVolunteers, func(id string) bool { return id == volunteerID })
		if err := s.repo.SetVolunteers(ctx, a.ID, kept, s.now().UTC()); err != nil {
			return changed, err
		}
		changed++
	}
	if changed > 0 {
		s.log.Info("volunteer references removed", map[string]any{"volunteer_id": volunteerID, "animals": changed})
	}
	return changed, nil
}

// Reconcile quita de assigned_volunteers todo id que ya no resuelve.
func (s *Service) Reconcile(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return 0, err
	}

	known := map[string]bool{}
	changed := 0
	for _, a := range all {
		var dangling []string
		for _, vid := range a.AssignedVolunteers {
			ok, seen := known[vid]
			if !seen {
				ok, err = s.volunteers.Exists(ctx, vid)
				if err != nil {
					return changed, err
				}
				known[vid] = ok
			}
			if !ok {
				dangling = append(dangling, vid)
			}
		}
		if len(dangling) == 0 {
			continue
		}

		kept := without(a.AssignedVolunteers, func(id string) bool { return !known[id] })
		if err := s.repo.SetVolunteers(ctx, a.ID, kept, s.now().UTC()); err != nil {
			return changed, err
		}
		changed++
		s.log.Warn("dangling volunteer references removed", map[string]any{"animal_id": a.ID, "volunteer_ids": dangling})
	}
	return changed, nil
}

func without(in []string, drop func(string) bool) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}

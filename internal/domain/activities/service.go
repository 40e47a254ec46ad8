package activities

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/platform/dates"
	"pet-shelter/internal/platform/ids"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/validation"
)

const topVolunteers = 5

type Service struct {
	repo       Repository
	volunteers VolunteerLookup
	animals    AnimalLookup
	validate   *validation.Validator
	log        logger.Logger
	now        func() time.Time
}

func NewService(repo Repository, volunteersSvc VolunteerLookup, animalsSvc AnimalLookup, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	v := validation.New()
	v.RegisterSet("activity_type", Types)

	return &Service{
		repo:       repo,
		volunteers: volunteersSvc,
		animals:    animalsSvc,
		validate:   v,
		log:        log.With(map[string]any{"module": "activities"}),
		now:        time.Now,
	}
}

type CreateInput struct {
	VolunteerID     string `json:"volunteer_id" validate:"required"`
	AnimalID        string `json:"animal_id" validate:"required"`
	ActivityType    string `json:"activity_type" validate:"required,activity_type"`
	ActivityDate    string `json:"activity_date" validate:"omitempty,calendar_date"`
	DurationMinutes int    `json:"duration_minutes" validate:"gt=0"`
	Notes           string `json:"notes"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Activity, error) {
	if err := s.validate.Struct(in); err != nil {
		return Activity{}, err
	}
	volunteerID, animalID, err := s.checkRefs(ctx, in.VolunteerID, in.AnimalID)
	if err != nil {
		return Activity{}, err
	}

	now := s.now().UTC()
	day := strings.TrimSpace(in.ActivityDate)
	if day == "" {
		day = dates.Format(now)
	}
	a := Activity{
		ID:              ids.New(),
		VolunteerID:     volunteerID,
		AnimalID:        animalID,
		ActivityType:    in.ActivityType,
		ActivityDate:    day,
		DurationMinutes: in.DurationMinutes,
		Notes:           strings.TrimSpace(in.Notes),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Activity{}, err
	}
	return a, nil
}

func (s *Service) checkRefs(ctx context.Context, rawVolunteer, rawAnimal string) (string, string, error) {
	volunteerID, err := ids.Check("volunteer_id", rawVolunteer)
	if err != nil {
		return "", "", err
	}
	animalID, err := ids.Check("animal_id", rawAnimal)
	if err != nil {
		return "", "", err
	}
	if _, err := s.volunteers.GetByID(ctx, volunteerID); err != nil {
		return "", "", fmt.Errorf("volunteer %s: %w", volunteerID, err)
	}
	if _, err := s.animals.GetByID(ctx, animalID); err != nil {
		return "", "", fmt.Errorf("animal %s: %w", animalID, err)
	}
	return volunteerID, animalID, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Activity, error) {
	id, err := ids.Check("activity_id", id)
	if err != nil {
		return Activity{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// List ordena por activity_date descendente; fechas inválidas al final.
func (s *Service) List(ctx context.Context, f Filter) ([]Activity, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := dates.Parse(items[i].ActivityDate), dates.Parse(items[j].ActivityDate)
		if a.OK() != b.OK() {
			return a.OK()
		}
		return a.Day.After(b.Day)
	})
	return items, nil
}

type UpdateInput struct {
	VolunteerID     *string `json:"volunteer_id"`
	AnimalID        *string `json:"animal_id"`
	ActivityType    *string `json:"activity_type" validate:"omitempty,activity_type"`
	ActivityDate    *string `json:"activity_date" validate:"omitempty,calendar_date"`
	DurationMinutes *int    `json:"duration_minutes" validate:"omitempty,gt=0"`
	Notes           *string `json:"notes"`
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Activity, error) {
	if in.VolunteerID == nil && in.AnimalID == nil && in.ActivityType == nil &&
		in.ActivityDate == nil && in.DurationMinutes == nil && in.Notes == nil {
		return Activity{}, apperr.Invalid("body", "no fields to update")
	}
	if err := s.validate.Struct(in); err != nil {
		return Activity{}, err
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Activity{}, err
	}
	if in.VolunteerID != nil || in.AnimalID != nil {
		vid, aid := a.VolunteerID, a.AnimalID
		if in.VolunteerID != nil {
			vid = *in.VolunteerID
		}
		if in.AnimalID != nil {
			aid = *in.AnimalID
		}
		if a.VolunteerID, a.AnimalID, err = s.checkRefs(ctx, vid, aid); err != nil {
			return Activity{}, err
		}
	}
	if in.ActivityType != nil {
		a.ActivityType = *in.ActivityType
	}
	if in.ActivityDate != nil && strings.TrimSpace(*in.ActivityDate) != "" {
		a.ActivityDate = strings.TrimSpace(*in.ActivityDate)
	}
	if in.DurationMinutes != nil {
		a.DurationMinutes = *in.DurationMinutes
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}
	a.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		return Activity{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := ids.Check("activity_id", id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Summary calcula horas totales, conteo por tipo y los 5 voluntarios con más horas.
// Voluntarios que ya no existen no aparecen en el ranking.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	items, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return Summary{}, err
	}

	out := Summary{ActivitiesByType: map[string]int{}, TopVolunteers: make([]VolunteerHours, 0)}
	minutes := 0
	perVolunteer := map[string]int{}
	var order []string
	for _, a := range items {
		minutes += a.DurationMinutes
		typ := a.ActivityType
		if typ == "" {
			typ = "Other"
		}
		out.ActivitiesByType[typ]++
		if a.VolunteerID == "" {
			continue
		}
		if _, seen := perVolunteer[a.VolunteerID]; !seen {
			order = append(order, a.VolunteerID)
		}
		perVolunteer[a.VolunteerID] += a.DurationMinutes
	}
	out.TotalActivities = len(items)
	out.TotalHours = hours(minutes)

	sort.SliceStable(order, func(i, j int) bool { return perVolunteer[order[i]] > perVolunteer[order[j]] })
	if len(order) > topVolunteers {
		order = order[:topVolunteers]
	}
	for _, vid := range order {
		v, err := s.volunteers.GetByID(ctx, vid)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrInvalidID) {
				continue
			}
			return Summary{}, err
		}
		out.TopVolunteers = append(out.TopVolunteers, VolunteerHours{VolunteerID: vid, Name: v.Name, Hours: hours(perVolunteer[vid])})
	}
	return out, nil
}

// TotalMinutes suma duration_minutes de todas las actividades (dashboard).
func (s *Service) TotalMinutes(ctx context.Context) (int, int, error) {
	items, err := s.repo.List(ctx, Filter{})
	if err != nil {
		return 0, 0, err
	}
	total := 0
	for _, a := range items {
		total += a.DurationMinutes
	}
	return total, len(items), nil
}

func hours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

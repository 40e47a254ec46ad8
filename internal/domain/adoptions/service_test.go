package adoptions

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-shelter/internal/domain/adopters"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/apperr"
)

type testRepo struct {
	byID  map[string]Adoption
	order []string
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Adoption{}} }

func (r *testRepo) Create(ctx context.Context, a Adoption) error {
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Adoption, error) {
	a, ok := r.byID[id]
	if !ok {
		return Adoption{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Adoption, error) {
	out := make([]Adoption, 0)
	for _, id := range r.order {
		a, ok := r.byID[id]
		if !ok {
			continue
		}
		if f.AdopterID != "" && a.AdopterID != f.AdopterID {
			continue
		}
		if f.AnimalID != "" && a.AnimalID != f.AnimalID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Adoption) error {
	if _, ok := r.byID[a.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// fakeAnimals guarda solo el estado de cada animal.
type fakeAnimals struct {
	status    map[string]animals.Status
	failWrite bool
}

func (f *fakeAnimals) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	st, ok := f.status[id]
	if !ok {
		return animals.Animal{}, apperr.ErrNotFound
	}
	return animals.Animal{ID: id, Name: "a-" + id[:4], Status: st}, nil
}

func (f *fakeAnimals) SetStatus(ctx context.Context, id string, status animals.Status) error {
	if f.failWrite {
		return errors.New("store down")
	}
	if _, ok := f.status[id]; !ok {
		return apperr.ErrNotFound
	}
	f.status[id] = status
	return nil
}

type fakeAdopters map[string]bool

func (f fakeAdopters) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	if !f[id] {
		return adopters.Adopter{}, apperr.ErrNotFound
	}
	return adopters.Adopter{ID: id}, nil
}

const (
	animal1 = "11111111-1111-4111-8111-111111111111"
	animal2 = "22222222-2222-4222-8222-222222222222"
	adopter = "33333333-3333-4333-8333-333333333333"
	ghost   = "44444444-4444-4444-8444-444444444444"
)

func newFixture() (*Service, *testRepo, *fakeAnimals) {
	repo := newTestRepo()
	an := &fakeAnimals{status: map[string]animals.Status{
		animal1: animals.StatusAvailable,
		animal2: animals.StatusAvailable,
	}}
	svc := NewService(repo, an, fakeAdopters{adopter: true}, nil)
	svc.now = func() time.Time { return time.Date(2024, 2, 10, 15, 0, 0, 0, time.UTC) }
	return svc, repo, an
}

func TestService_CreateFlipsStatusAndDeleteRestores(t *testing.T) {
	svc, _, an := newFixture()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{AnimalID: animal1, AdopterID: adopter})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.AdoptionDate != "2024-02-10" {
		t.Fatalf("expected default date from clock, got %q", a.AdoptionDate)
	}
	if an.status[animal1] != animals.StatusAdopted {
		t.Fatalf("expected Adopted, got %s", an.status[animal1])
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if an.status[animal1] != animals.StatusAvailable {
		t.Fatalf("expected Available after delete, got %s", an.status[animal1])
	}
}

func TestService_CreateErrors(t *testing.T) {
	svc, repo, _ := newFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"malformed animal", CreateInput{AnimalID: "abc", AdopterID: adopter}, apperr.ErrInvalidID},
		{"missing animal", CreateInput{AnimalID: ghost, AdopterID: adopter}, apperr.ErrNotFound},
		{"missing adopter", CreateInput{AnimalID: animal1, AdopterID: ghost}, apperr.ErrNotFound},
		{"bad date", CreateInput{AnimalID: animal1, AdopterID: adopter, AdoptionDate: "15/01/2024"}, apperr.ErrValidation},
		{"required", CreateInput{}, apperr.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no writes, got %d", len(repo.byID))
	}
}

func TestService_CreateCompensatesWhenStatusFlipFails(t *testing.T) {
	svc, repo, an := newFixture()
	an.failWrite = true

	if _, err := svc.Create(context.Background(), CreateInput{AnimalID: animal1, AdopterID: adopter}); err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected adoption to be removed, got %d", len(repo.byID))
	}
}

func TestService_UpdateMovesAdoptedStatus(t *testing.T) {
	svc, _, an := newFixture()
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateInput{AnimalID: animal1, AdopterID: adopter, AdoptionDate: "2024-01-15"})

	newAnimal := animal2
	got, err := svc.Update(ctx, a.ID, UpdateInput{AnimalID: &newAnimal})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.AnimalID != animal2 || got.AdoptionDate != "2024-01-15" {
		t.Fatalf("unexpected %+v", got)
	}
	if an.status[animal1] != animals.StatusAvailable || an.status[animal2] != animals.StatusAdopted {
		t.Fatalf("expected status to move, got %v", an.status)
	}
}

func TestService_SearchByAdopterSkipsMissingAnimals(t *testing.T) {
	svc, repo, an := newFixture()
	ctx := context.Background()

	_, _ = svc.Create(ctx, CreateInput{AnimalID: animal1, AdopterID: adopter, AdoptionDate: "2024-01-15"})
	_, _ = svc.Create(ctx, CreateInput{AnimalID: animal2, AdopterID: adopter, AdoptionDate: "2024-02-10"})
	delete(an.status, animal2)

	got, err := svc.SearchByAdopter(ctx, adopter)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != animal1 || got[0].AdoptionDate != "2024-01-15" {
		t.Fatalf("unexpected result %+v (repo=%d)", got, len(repo.byID))
	}

	if _, err := svc.SearchByAdopter(ctx, ghost); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound for unknown adopter, got %v", err)
	}
}

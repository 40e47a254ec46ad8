package animals

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-shelter/internal/platform/apperr"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Animal
	order []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, id := range r.order {
		a, ok := r.byID[id]
		if !ok {
			continue
		}
		if f.Species != "" && a.Species != f.Species {
			continue
		}
		if f.Status != "" && string(a.Status) != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
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

func (r *testRepo) SetStatus(ctx context.Context, id string, status Status, at time.Time) error {
	a, ok := r.byID[id]
	if !ok {
		return apperr.ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = at
	r.byID[id] = a
	return nil
}

func (r *testRepo) SetVolunteers(ctx context.Context, id string, volunteerIDs []string, at time.Time) error {
	a, ok := r.byID[id]
	if !ok {
		return apperr.ErrNotFound
	}
	a.AssignedVolunteers = append([]string(nil), volunteerIDs...)
	a.UpdatedAt = at
	r.byID[id] = a
	return nil
}

type knownVolunteers map[string]bool

func (k knownVolunteers) Exists(_ context.Context, id string) (bool, error) { return k[id], nil }

const (
	volA = "6f1c7a52-0a43-4c55-9d0c-6a1d1f0d4a11"
	volB = "0b3b0a55-5b8e-4c3f-8d4f-1c2e3d4f5a66"
)

func newTestService(vols knownVolunteers) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, vols, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_CreateDefaultsAndValidation(t *testing.T) {
	svc, _ := newTestService(knownVolunteers{})
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{Name: " Buddy ", Species: "Dog", Age: 2, Gender: "Male"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Name != "Buddy" || a.Status != StatusAvailable || a.AssignedVolunteers == nil {
		t.Fatalf("unexpected animal %+v", a)
	}

	_, err = svc.Create(ctx, CreateInput{Name: "X", Species: "Dog", Age: 0, Gender: "Male", IntakeDate: "2024-13-40"})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := ve.Fields["age"]; !ok {
		t.Fatalf("expected age error, got %+v", ve.Fields)
	}
	if _, ok := ve.Fields["intake_date"]; !ok {
		t.Fatalf("expected intake_date error, got %+v", ve.Fields)
	}

	if _, err := svc.Create(ctx, CreateInput{Name: "X", Species: "Dog", Age: 1, Gender: "F", Status: "Lost"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected status validation error, got %v", err)
	}
}

func TestService_GetRejectsMalformedID(t *testing.T) {
	svc, _ := newTestService(knownVolunteers{})
	if _, err := svc.GetByID(context.Background(), "not-a-uuid"); !errors.Is(err, apperr.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_UpdatePartial(t *testing.T) {
	svc, _ := newTestService(knownVolunteers{})
	ctx := context.Background()
	a, _ := svc.Create(ctx, CreateInput{Name: "Luna", Species: "Cat", Age: 1, Gender: "Female"})

	if _, err := svc.Update(ctx, a.ID, UpdateInput{}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected empty update to fail, got %v", err)
	}

	age := 3
	notes := "shy"
	got, err := svc.Update(ctx, a.ID, UpdateInput{Age: &age, BehavioralNotes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Age != 3 || got.BehavioralNotes != "shy" || got.Name != "Luna" {
		t.Fatalf("unexpected update result %+v", got)
	}

	blank := " "
	if _, err := svc.Update(ctx, a.ID, UpdateInput{Name: &blank}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected blank name to fail, got %v", err)
	}
}

func TestService_AssignVolunteerIsIdempotent(t *testing.T) {
	svc, repo := newTestService(knownVolunteers{volA: true})
	ctx := context.Background()
	a, _ := svc.Create(ctx, CreateInput{Name: "Max", Species: "Dog", Age: 3, Gender: "Male"})

	for i := 0; i < 2; i++ {
		if _, err := svc.AssignVolunteer(ctx, a.ID, volA); err != nil {
			t.Fatalf("assign #%d: %v", i, err)
		}
	}
	if got := repo.byID[a.ID].AssignedVolunteers; len(got) != 1 || got[0] != volA {
		t.Fatalf("expected single membership, got %v", got)
	}

	if _, err := svc.AssignVolunteer(ctx, a.ID, volB); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected unknown volunteer to be NotFound, got %v", err)
	}

	if _, err := svc.UnassignVolunteer(ctx, a.ID, volA); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if got := repo.byID[a.ID].AssignedVolunteers; len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestService_RemoveReferencesAndReconcile(t *testing.T) {
	vols := knownVolunteers{volA: true, volB: true}
	svc, repo := newTestService(vols)
	ctx := context.Background()

	a1, _ := svc.Create(ctx, CreateInput{Name: "A", Species: "Dog", Age: 3, Gender: "Male"})
	a2, _ := svc.Create(ctx, CreateInput{Name: "B", Species: "Cat", Age: 2, Gender: "Female"})
	_, _ = svc.AssignVolunteer(ctx, a1.ID, volA)
	_, _ = svc.AssignVolunteer(ctx, a1.ID, volB)
	_, _ = svc.AssignVolunteer(ctx, a2.ID, volB)

	n, err := svc.RemoveVolunteerReferences(ctx, volB)
	if err != nil || n != 2 {
		t.Fatalf("expected 2 animals cleaned, got %d err=%v", n, err)
	}
	if got := repo.byID[a1.ID].AssignedVolunteers; len(got) != 1 || got[0] != volA {
		t.Fatalf("expected only volA left, got %v", got)
	}

	// volA desaparece sin cascada: reconcile lo limpia.
	delete(vols, volA)
	n, err = svc.Reconcile(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expected 1 animal reconciled, got %d err=%v", n, err)
	}
	if got := repo.byID[a1.ID].AssignedVolunteers; len(got) != 0 {
		t.Fatalf("expected no dangling ids, got %v", got)
	}
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	if len(c.SpeciesList) != 10 || c.SpeciesList[0] != "Bird" {
		t.Fatalf("unexpected species list %v", c.SpeciesList)
	}
	if got := BreedsFor("Dragon"); len(got) != 1 || got[0] != "Other" {
		t.Fatalf("expected fallback breeds, got %v", got)
	}
}

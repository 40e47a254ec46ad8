package adopters

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-shelter/internal/platform/apperr"
)

type testRepo struct {
	byID map[string]Adopter
}

func (r *testRepo) Create(ctx context.Context, a Adopter) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Adopter, error) {
	a, ok := r.byID[id]
	if !ok {
		return Adopter{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Adopter, error) {
	out := make([]Adopter, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Adopter) error {
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

func TestService_CreateValidatesEmail(t *testing.T) {
	svc := NewService(&testRepo{byID: map[string]Adopter{}})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "John Doe", Phone: "555-0101", Email: "not-an-email", Address: "1 Main St"})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Fields["email"] == "" {
		t.Fatalf("expected email validation error, got %v", err)
	}

	a, err := svc.Create(ctx, CreateInput{Name: "John Doe", Phone: "555-0101", Email: "john@example.com", Address: "1 Main St"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == "" || a.Email != "john@example.com" {
		t.Fatalf("unexpected adopter %+v", a)
	}
}

func TestService_Update(t *testing.T) {
	repo := &testRepo{byID: map[string]Adopter{}}
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	a, _ := svc.Create(ctx, CreateInput{Name: "Jane Smith", Phone: "555-0102", Email: "jane@example.com", Address: "2 Oak Ave"})

	phone := "555-0199"
	got, err := svc.Update(ctx, a.ID, UpdateInput{Phone: &phone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Phone != "555-0199" || got.Name != "Jane Smith" {
		t.Fatalf("unexpected %+v", got)
	}

	bad := "nope"
	if _, err := svc.Update(ctx, a.ID, UpdateInput{Email: &bad}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.Update(ctx, a.ID, UpdateInput{}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected no-fields error, got %v", err)
	}
	missing := "9b2d8a36-0f57-4b0e-9d0e-3c1f5b8c2e11"
	if _, err := svc.Update(ctx, missing, UpdateInput{Phone: &phone}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

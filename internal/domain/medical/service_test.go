package medical

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/apperr"
)

type testRepo struct {
	byID  map[string]Record
	order []string
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	r.byID[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, apperr.ErrNotFound
	}
	return rec, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Record, error) {
	out := make([]Record, 0)
	for _, id := range r.order {
		rec, ok := r.byID[id]
		if ok && (f.AnimalID == "" || rec.AnimalID == f.AnimalID) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type knownAnimals map[string]bool

func (k knownAnimals) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	if !k[id] {
		return animals.Animal{}, apperr.ErrNotFound
	}
	return animals.Animal{ID: id}, nil
}

const (
	dogID   = "5d1f6c1e-3a61-4b8e-9a43-2f6d0c8b7e01"
	ghostID = "5d1f6c1e-3a61-4b8e-9a43-2f6d0c8b7e99"
)

func newFixture() (*Service, *testRepo) {
	repo := &testRepo{byID: map[string]Record{}}
	svc := NewService(repo, knownAnimals{dogID: true})
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_CreateRequiresExistingAnimal(t *testing.T) {
	svc, repo := newFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{AnimalID: ghostID, VetName: "Dr. Vega", VisitDate: "2024-01-10", Diagnosis: "checkup", Treatment: "none"})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no write, got %d records", len(repo.byID))
	}

	rec, err := svc.Create(ctx, CreateInput{AnimalID: dogID, VetName: "Dr. Vega", VisitDate: "2024-01-10", Diagnosis: "checkup", Treatment: "none"})
	if err != nil || rec.ID == "" {
		t.Fatalf("create: %+v %v", rec, err)
	}
}

func TestService_CreateValidatesVisitDate(t *testing.T) {
	svc, _ := newFixture()
	_, err := svc.Create(context.Background(), CreateInput{AnimalID: dogID, VetName: "Dr", VisitDate: "2024-02-30", Diagnosis: "d", Treatment: "t"})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Fields["visit_date"] == "" {
		t.Fatalf("expected visit_date error, got %v", err)
	}
}

func TestService_HistoryNewestFirst(t *testing.T) {
	svc, repo := newFixture()
	ctx := context.Background()

	for _, d := range []string{"2024-01-10", "2024-03-05", "2023-12-24"} {
		if _, err := svc.Create(ctx, CreateInput{AnimalID: dogID, VetName: "Dr", VisitDate: d, Diagnosis: "d", Treatment: "t"}); err != nil {
			t.Fatalf("create %s: %v", d, err)
		}
	}
	// Dato legado mal formado: va al final.
	_ = repo.Create(ctx, Record{ID: "legacy", AnimalID: dogID, VisitDate: "March 3"})

	got, err := svc.History(ctx, dogID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	want := []string{"2024-03-05", "2024-01-10", "2023-12-24", "March 3"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].VisitDate != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, got[i].VisitDate)
		}
	}
}

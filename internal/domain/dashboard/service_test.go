package dashboard

import (
	"context"
	"errors"
	"testing"

	"pet-shelter/internal/adapters/storage/memory"
	"pet-shelter/internal/ports/docstore"
)

func TestService_Stats(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	seed := func(collection, id string, doc docstore.Document) {
		if err := store.Collection(collection).Insert(ctx, id, doc); err != nil {
			t.Fatalf("seed %s/%s: %v", collection, id, err)
		}
	}
	seed(docstore.Animals, "a1", docstore.Document{"status": "Available", "assigned_volunteers": []any{}})
	seed(docstore.Animals, "a2", docstore.Document{"status": "Available", "assigned_volunteers": []any{"v1"}})
	seed(docstore.Animals, "a3", docstore.Document{"status": "Adopted"})
	seed(docstore.Animals, "a4", docstore.Document{"status": "Available"})
	seed(docstore.Adopters, "p1", docstore.Document{"name": "John Doe"})
	seed(docstore.Adoptions, "ad1", docstore.Document{"animal_id": "a3"})
	seed(docstore.Volunteers, "v1", docstore.Document{"name": "Alice Brown"})
	seed(docstore.VolunteerActivities, "x1", docstore.Document{"duration_minutes": 90})
	seed(docstore.VolunteerActivities, "x2", docstore.Document{"duration_minutes": 45})

	got, err := NewService(store).Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := Stats{
		TotalAnimals:             4,
		TotalAdopters:            1,
		TotalAdoptions:           1,
		TotalVolunteers:          1,
		AvailableAnimals:         3,
		AdoptedAnimals:           1,
		TotalVolunteerHours:      2.3,
		TotalVolunteerActivities: 2,
		AnimalsNeedingVolunteers: 2,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

type downStore struct{ docstore.Store }

func (downStore) Collection(string) docstore.Collection { return downCollection{} }

type downCollection struct{ docstore.Collection }

func (downCollection) Count(context.Context, docstore.Filter) (int, error) {
	return 0, docstore.Unavailable("count", errors.New("connection refused"))
}

func (downCollection) Find(context.Context, docstore.Filter) ([]docstore.Document, error) {
	return nil, docstore.Unavailable("find", errors.New("connection refused"))
}

func TestService_StatsUnavailable(t *testing.T) {
	_, err := NewService(downStore{}).Stats(context.Background())
	if !errors.Is(err, docstore.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

package activities

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/volunteers"
	"pet-shelter/internal/platform/apperr"
)

type testRepo struct {
	byID  map[string]Activity
	order []string
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Activity{}} }

func (r *testRepo) Create(ctx context.Context, a Activity) error {
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Activity, error) {
	a, ok := r.byID[id]
	if !ok {
		return Activity{}, apperr.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context, f Filter) ([]Activity, error) {
	out := make([]Activity, 0)
	for _, id := range r.order {
		a, ok := r.byID[id]
		if !ok {
			continue
		}
		if f.VolunteerID != "" && a.VolunteerID != f.VolunteerID {
			continue
		}
		if f.AnimalID != "" && a.AnimalID != f.AnimalID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Activity) error {
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

type fakeVolunteers map[string]string

func (f fakeVolunteers) GetByID(ctx context.Context, id string) (volunteers.Volunteer, error) {
	name, ok := f[id]
	if !ok {
		return volunteers.Volunteer{}, apperr.ErrNotFound
	}
	return volunteers.Volunteer{ID: id, Name: name}, nil
}

type fakeAnimals map[string]bool

func (f fakeAnimals) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	if !f[id] {
		return animals.Animal{}, apperr.ErrNotFound
	}
	return animals.Animal{ID: id}, nil
}

const (
	alice  = "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	bob    = "bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb"
	gone   = "cccccccc-cccc-4ccc-8ccc-cccccccccccc"
	buddy  = "dddddddd-dddd-4ddd-8ddd-dddddddddddd"
	nobody = "eeeeeeee-eeee-4eee-8eee-eeeeeeeeeeee"
)

func newTestService() (*Service, *testRepo, fakeVolunteers) {
	repo := newTestRepo()
	vols := fakeVolunteers{alice: "Alice Brown", bob: "Bob", gone: "Gone"}
	svc := NewService(repo, vols, fakeAnimals{buddy: true}, nil)
	svc.now = func() time.Time { return time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC) }
	return svc, repo, vols
}

func TestService_CreateChecksReferences(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	a, err := svc.Create(ctx, CreateInput{VolunteerID: alice, AnimalID: buddy, ActivityType: "Walking", DurationMinutes: 30})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ActivityDate != "2024-04-02" {
		t.Fatalf("expected default date, got %q", a.ActivityDate)
	}

	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"bad type", CreateInput{VolunteerID: alice, AnimalID: buddy, ActivityType: "Napping", DurationMinutes: 10}, apperr.ErrValidation},
		{"zero duration", CreateInput{VolunteerID: alice, AnimalID: buddy, ActivityType: "Walking"}, apperr.ErrValidation},
		{"malformed id", CreateInput{VolunteerID: "v1", AnimalID: buddy, ActivityType: "Walking", DurationMinutes: 10}, apperr.ErrInvalidID},
		{"missing volunteer", CreateInput{VolunteerID: nobody, AnimalID: buddy, ActivityType: "Walking", DurationMinutes: 10}, apperr.ErrNotFound},
		{"missing animal", CreateInput{VolunteerID: alice, AnimalID: nobody, ActivityType: "Walking", DurationMinutes: 10}, apperr.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected a single stored activity, got %d", len(repo.byID))
	}
}

func TestService_ListSortsByDateDesc(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	for _, d := range []string{"2024-01-05", "2024-03-01", "2024-02-10"} {
		_, _ = svc.Create(ctx, CreateInput{VolunteerID: alice, AnimalID: buddy, ActivityType: "Feeding", ActivityDate: d, DurationMinutes: 15})
	}
	// registro legado con fecha inválida
	_ = repo.Create(ctx, Activity{ID: "legacy", VolunteerID: alice, AnimalID: buddy, ActivityDate: "soon", DurationMinutes: 5})

	got, err := svc.List(ctx, Filter{VolunteerID: alice})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"2024-03-01", "2024-02-10", "2024-01-05", "soon"}
	for i, w := range want {
		if got[i].ActivityDate != w {
			t.Fatalf("position %d: expected %s, got %s", i, w, got[i].ActivityDate)
		}
	}
}

func TestService_Summary(t *testing.T) {
	svc, _, vols := newTestService()
	ctx := context.Background()

	add := func(vid, typ string, minutes int) {
		if _, err := svc.Create(ctx, CreateInput{VolunteerID: vid, AnimalID: buddy, ActivityType: typ, DurationMinutes: minutes}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	add(alice, "Walking", 60)
	add(alice, "Walking", 30)
	add(bob, "Grooming", 45)
	add(gone, "Cleaning", 120)
	delete(vols, gone)

	sum, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalActivities != 4 || sum.TotalHours != 4.3 {
		t.Fatalf("unexpected totals %+v", sum)
	}
	if sum.ActivitiesByType["Walking"] != 2 || sum.ActivitiesByType["Grooming"] != 1 {
		t.Fatalf("unexpected by-type %v", sum.ActivitiesByType)
	}
	if len(sum.TopVolunteers) != 2 || sum.TopVolunteers[0].Name != "Alice Brown" || sum.TopVolunteers[0].Hours != 1.5 {
		t.Fatalf("unexpected top volunteers %+v", sum.TopVolunteers)
	}
}

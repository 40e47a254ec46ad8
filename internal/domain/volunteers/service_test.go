package volunteers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/platform/apperr"
)

type testRepo struct {
	byID  map[string]Volunteer
	order []string
}

func newTestRepo() *testRepo { return &testRepo{byID: map[string]Volunteer{}} }

func (r *testRepo) Create(ctx context.Context, v Volunteer) error {
	r.byID[v.ID] = v
	r.order = append(r.order, v.ID)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Volunteer, error) {
	v, ok := r.byID[id]
	if !ok {
		return Volunteer{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *testRepo) List(ctx context.Context) ([]Volunteer, error) {
	out := make([]Volunteer, 0)
	for _, id := range r.order {
		if v, ok := r.byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, v Volunteer) error {
	if _, ok := r.byID[v.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

type fakeAnimals struct {
	items   []animals.Animal
	removed []string
	fail    bool
}

func (f *fakeAnimals) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	for _, a := range f.items {
		if a.ID == id {
			return a, nil
		}
	}
	return animals.Animal{}, apperr.ErrNotFound
}

func (f *fakeAnimals) List(ctx context.Context, _ animals.Filter) ([]animals.Animal, error) {
	return f.items, nil
}

func (f *fakeAnimals) RemoveVolunteerReferences(ctx context.Context, volunteerID string) (int, error) {
	if f.fail {
		return 0, errors.New("store down")
	}
	f.removed = append(f.removed, volunteerID)
	return 1, nil
}

func newTestService(an *fakeAnimals) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, an, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestSkillSet_AcceptsLegacyString(t *testing.T) {
	var in struct {
		Skills SkillSet `json:"skills"`
	}
	if err := json.Unmarshal([]byte(`{"skills":"Dog Walking, Feeding,,Dog Walking"}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(in.Skills) != 2 || in.Skills[0] != "Dog Walking" || in.Skills[1] != "Feeding" {
		t.Fatalf("unexpected skills %v", in.Skills)
	}

	if err := json.Unmarshal([]byte(`{"skills":null}`), &in); err != nil || in.Skills == nil || len(in.Skills) != 0 {
		t.Fatalf("expected empty set for null, got %v err=%v", in.Skills, err)
	}
	if err := json.Unmarshal([]byte(`{"skills":42}`), &in); err == nil {
		t.Fatalf("expected error for number")
	}

	out, _ := json.Marshal(Volunteer{})
	var back map[string]any
	_ = json.Unmarshal(out, &back)
	if _, ok := back["skills"].([]any); !ok {
		t.Fatalf("expected skills to marshal as list, got %s", out)
	}
}

func TestSkillsFor(t *testing.T) {
	cases := []struct {
		species string
		age     int
		has     []string
		hasNot  []string
	}{
		{"Dog", 1, []string{"Dog Walking", "Dog Training", SkillPuppyKitten, "Feeding"}, []string{SkillSeniorCare, "Cat Socialization"}},
		{"Dog", 5, []string{"Dog Walking"}, []string{SkillPuppyKitten, SkillSeniorCare}},
		{"Cat", 9, []string{"Cat Socialization", SkillSeniorCare}, []string{SkillPuppyKitten}},
		{"Rabbit", 1, []string{"Small Animal Care"}, []string{SkillPuppyKitten}},
		{"Fish", 3, []string{"Grooming"}, []string{"Bird Care"}},
	}
	for _, tc := range cases {
		got := SkillSet(SkillsFor(tc.species, tc.age))
		for _, s := range tc.has {
			if !got.Has(s) {
				t.Fatalf("%s/%d: expected %q in %v", tc.species, tc.age, s, got)
			}
		}
		for _, s := range tc.hasNot {
			if got.Has(s) {
				t.Fatalf("%s/%d: did not expect %q in %v", tc.species, tc.age, s, got)
			}
		}
	}
}

func TestService_CreateValidatesVocabulary(t *testing.T) {
	svc, repo := newTestService(&fakeAnimals{})
	ctx := context.Background()

	v, err := svc.Create(ctx, CreateInput{Name: "Alice Brown", Phone: "555-0201", Email: "alice@example.com", Availability: "Weekends"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.Skills == nil {
		t.Fatalf("expected empty skill set, got nil")
	}

	_, err = svc.Create(ctx, CreateInput{Name: "X", Phone: "1", Email: "x@example.com", Availability: "Any", Skills: SkillSet{"Juggling"}})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected one volunteer stored, got %d", len(repo.byID))
	}
}

func TestService_DeleteCascades(t *testing.T) {
	an := &fakeAnimals{}
	svc, repo := newTestService(an)
	ctx := context.Background()
	v, _ := svc.Create(ctx, CreateInput{Name: "Charlie", Phone: "1", Email: "c@example.com", Availability: "Weekdays"})

	if err := svc.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(an.removed) != 1 || an.removed[0] != v.ID {
		t.Fatalf("expected cascade for %s, got %v", v.ID, an.removed)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected volunteer removed")
	}

	if err := svc.Delete(ctx, v.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound on second delete, got %v", err)
	}
}

func TestService_DeleteSucceedsWhenCleanupFails(t *testing.T) {
	an := &fakeAnimals{fail: true}
	svc, repo := newTestService(an)
	ctx := context.Background()
	v, _ := svc.Create(ctx, CreateInput{Name: "Charlie", Phone: "1", Email: "c@example.com", Availability: "Weekdays"})

	if err := svc.Delete(ctx, v.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected volunteer removed")
	}
}

func TestService_Matching(t *testing.T) {
	an := &fakeAnimals{items: []animals.Animal{
		{ID: "11111111-1111-4111-8111-111111111111", Species: "Dog", Age: 1, Status: animals.StatusAvailable},
		{ID: "22222222-2222-4222-8222-222222222222", Species: "Cat", Age: 2, Status: animals.StatusAvailable},
		{ID: "33333333-3333-4333-8333-333333333333", Species: "Dog", Age: 4, Status: animals.StatusAdopted},
	}}
	svc, _ := newTestService(an)
	ctx := context.Background()

	walker, _ := svc.Create(ctx, CreateInput{Name: "W", Phone: "1", Email: "w@example.com", Availability: "Any", Skills: SkillSet{"Dog Walking"}})
	_, _ = svc.Create(ctx, CreateInput{Name: "P", Phone: "2", Email: "p@example.com", Availability: "Any", Skills: SkillSet{"Photography"}})

	got, err := svc.MatchAnimals(ctx, walker.ID)
	if err != nil {
		t.Fatalf("match animals: %v", err)
	}
	if len(got) != 1 || got[0].Animal.ID != an.items[0].ID || got[0].MatchedSkills[0] != "Dog Walking" {
		t.Fatalf("unexpected matches %+v", got)
	}

	vols, err := svc.MatchVolunteers(ctx, an.items[0].ID)
	if err != nil {
		t.Fatalf("match volunteers: %v", err)
	}
	if len(vols) != 1 || vols[0].Volunteer.ID != walker.ID {
		t.Fatalf("expected only the walker, got %+v", vols)
	}
}

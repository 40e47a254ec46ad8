package docrepo

import (
	"context"
	"time"

	"pet-shelter/internal/domain/activities"
	"pet-shelter/internal/domain/adopters"
	"pet-shelter/internal/domain/adoptions"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/medical"
	"pet-shelter/internal/domain/volunteers"
	"pet-shelter/internal/ports/docstore"
)

// Repos agrupa los repositorios de todos los módulos sobre un mismo store.
type Repos struct {
	Animals    *AnimalsRepo
	Adopters   *AdoptersRepo
	Adoptions  *AdoptionsRepo
	Medical    *MedicalRepo
	Volunteers *VolunteersRepo
	Activities *ActivitiesRepo
}

func New(store docstore.Store) Repos {
	return Repos{
		Animals:    &AnimalsRepo{typed[animals.Animal]{store.Collection(docstore.Animals)}},
		Adopters:   &AdoptersRepo{typed[adopters.Adopter]{store.Collection(docstore.Adopters)}},
		Adoptions:  &AdoptionsRepo{typed[adoptions.Adoption]{store.Collection(docstore.Adoptions)}},
		Medical:    &MedicalRepo{typed[medical.Record]{store.Collection(docstore.MedicalRecords)}},
		Volunteers: &VolunteersRepo{typed[volunteers.Volunteer]{store.Collection(docstore.Volunteers)}},
		Activities: &ActivitiesRepo{typed[activities.Activity]{store.Collection(docstore.VolunteerActivities)}},
	}
}

// -------------------------
// animals
// -------------------------

type AnimalsRepo struct{ t typed[animals.Animal] }

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	return r.t.insert(ctx, a.ID, a)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	return r.t.get(ctx, id)
}

func (r *AnimalsRepo) List(ctx context.Context, f animals.Filter) ([]animals.Animal, error) {
	return r.t.find(ctx, filter(
		"species", f.Species,
		"status", f.Status,
		"gender", f.Gender,
		"breed", f.Breed,
	))
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	return r.t.replace(ctx, a.ID, a)
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *AnimalsRepo) SetStatus(ctx context.Context, id string, status animals.Status, at time.Time) error {
	return r.t.set(ctx, id, docstore.Document{"status": string(status), "updated_at": stamp(at)})
}

func (r *AnimalsRepo) SetVolunteers(ctx context.Context, id string, volunteerIDs []string, at time.Time) error {
	list := make([]any, 0, len(volunteerIDs))
	for _, v := range volunteerIDs {
		list = append(list, v)
	}
	return r.t.set(ctx, id, docstore.Document{"assigned_volunteers": list, "updated_at": stamp(at)})
}

// -------------------------
// adopters
// -------------------------

type AdoptersRepo struct{ t typed[adopters.Adopter] }

func (r *AdoptersRepo) Create(ctx context.Context, a adopters.Adopter) error {
	return r.t.insert(ctx, a.ID, a)
}

func (r *AdoptersRepo) GetByID(ctx context.Context, id string) (adopters.Adopter, error) {
	return r.t.get(ctx, id)
}

func (r *AdoptersRepo) List(ctx context.Context) ([]adopters.Adopter, error) {
	return r.t.find(ctx, nil)
}

func (r *AdoptersRepo) Update(ctx context.Context, a adopters.Adopter) error {
	return r.t.replace(ctx, a.ID, a)
}

func (r *AdoptersRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

// -------------------------
// adoptions
// -------------------------

type AdoptionsRepo struct{ t typed[adoptions.Adoption] }

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	return r.t.insert(ctx, a.ID, a)
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	return r.t.get(ctx, id)
}

func (r *AdoptionsRepo) List(ctx context.Context, f adoptions.Filter) ([]adoptions.Adoption, error) {
	return r.t.find(ctx, filter("animal_id", f.AnimalID, "adopter_id", f.AdopterID))
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	return r.t.replace(ctx, a.ID, a)
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

// -------------------------
// medical records
// -------------------------

type MedicalRepo struct{ t typed[medical.Record] }

func (r *MedicalRepo) Create(ctx context.Context, rec medical.Record) error {
	return r.t.insert(ctx, rec.ID, rec)
}

func (r *MedicalRepo) GetByID(ctx context.Context, id string) (medical.Record, error) {
	return r.t.get(ctx, id)
}

func (r *MedicalRepo) List(ctx context.Context, f medical.Filter) ([]medical.Record, error) {
	return r.t.find(ctx, filter("animal_id", f.AnimalID))
}

func (r *MedicalRepo) Update(ctx context.Context, rec medical.Record) error {
	return r.t.replace(ctx, rec.ID, rec)
}

func (r *MedicalRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

// -------------------------
// volunteers
// -------------------------

type VolunteersRepo struct{ t typed[volunteers.Volunteer] }

func (r *VolunteersRepo) Create(ctx context.Context, v volunteers.Volunteer) error {
	return r.t.insert(ctx, v.ID, v)
}

func (r *VolunteersRepo) GetByID(ctx context.Context, id string) (volunteers.Volunteer, error) {
	return r.t.get(ctx, id)
}

func (r *VolunteersRepo) List(ctx context.Context) ([]volunteers.Volunteer, error) {
	return r.t.find(ctx, nil)
}

func (r *VolunteersRepo) Update(ctx context.Context, v volunteers.Volunteer) error {
	return r.t.replace(ctx, v.ID, v)
}

func (r *VolunteersRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

func (r *VolunteersRepo) Exists(ctx context.Context, id string) (bool, error) {
	return r.t.exists(ctx, id)
}

// -------------------------
// volunteer activities
// -------------------------

type ActivitiesRepo struct{ t typed[activities.Activity] }

func (r *ActivitiesRepo) Create(ctx context.Context, a activities.Activity) error {
	return r.t.insert(ctx, a.ID, a)
}

func (r *ActivitiesRepo) GetByID(ctx context.Context, id string) (activities.Activity, error) {
	return r.t.get(ctx, id)
}

func (r *ActivitiesRepo) List(ctx context.Context, f activities.Filter) ([]activities.Activity, error) {
	return r.t.find(ctx, filter("volunteer_id", f.VolunteerID, "animal_id", f.AnimalID))
}

func (r *ActivitiesRepo) Update(ctx context.Context, a activities.Activity) error {
	return r.t.replace(ctx, a.ID, a)
}

func (r *ActivitiesRepo) Delete(ctx context.Context, id string) error {
	return r.t.delete(ctx, id)
}

var (
	_ animals.Repository      = (*AnimalsRepo)(nil)
	_ adopters.Repository     = (*AdoptersRepo)(nil)
	_ adoptions.Repository    = (*AdoptionsRepo)(nil)
	_ medical.Repository      = (*MedicalRepo)(nil)
	_ volunteers.Repository   = (*VolunteersRepo)(nil)
	_ activities.Repository   = (*ActivitiesRepo)(nil)
	_ animals.VolunteerLookup = (*VolunteersRepo)(nil)
)

// stamp usa el mismo formato que encoding/json para time.Time.
func stamp(at time.Time) string { return at.UTC().Format(time.RFC3339Nano) }

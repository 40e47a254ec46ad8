package main

import (
	"context"
	"fmt"

	"pet-shelter/internal/domain/activities"
	"pet-shelter/internal/domain/adopters"
	"pet-shelter/internal/domain/adoptions"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/medical"
	"pet-shelter/internal/domain/volunteers"
	"pet-shelter/internal/platform/httpclient"
)

// Datos de ejemplo: alcanzan los umbrales por defecto de entrenamiento
// (10 animales, 5 adopciones).
var sampleAnimals = []animals.CreateInput{
	{Name: "Buddy", Species: "Dog", Breed: "Labrador Retriever", Age: 2, Gender: "Male", IntakeDate: "2024-01-05"},
	{Name: "Luna", Species: "Cat", Breed: "Siamese", Age: 1, Gender: "Female", IntakeDate: "2024-01-12"},
	{Name: "Max", Species: "Dog", Breed: "Beagle", Age: 3, Gender: "Male", IntakeDate: "2024-01-20"},
	{Name: "Whiskers", Species: "Cat", Breed: "Siamese", Age: 2, Gender: "Male", IntakeDate: "2024-02-02", BehavioralNotes: "Shy with strangers"},
	{Name: "Bella", Species: "Dog", Breed: "Golden Retriever", Age: 4, Gender: "Female", IntakeDate: "2024-02-10"},
	{Name: "Thumper", Species: "Rabbit", Breed: "Holland Lop", Age: 1, Gender: "Male", IntakeDate: "2024-02-18"},
	{Name: "Rocky", Species: "Dog", Breed: "Labrador Retriever", Age: 9, Gender: "Male", IntakeDate: "2024-03-01", BehavioralNotes: "Needs experienced owner"},
	{Name: "Mittens", Species: "Cat", Breed: "Persian", Age: 10, Gender: "Female", IntakeDate: "2024-03-08"},
	{Name: "Daisy", Species: "Dog", Breed: "Poodle", Age: 5, Gender: "Female", IntakeDate: "2024-03-15"},
	{Name: "Oliver", Species: "Cat", Breed: "Persian", Age: 3, Gender: "Male", IntakeDate: "2024-03-22"},
	{Name: "Clover", Species: "Rabbit", Breed: "Holland Lop", Age: 2, Gender: "Female", IntakeDate: "2024-04-01"},
	{Name: "Charlie", Species: "Dog", Breed: "Beagle", Age: 6, Gender: "Male", IntakeDate: "2024-04-09"},
}

var sampleAdopters = []adopters.CreateInput{
	{Name: "John Doe", Phone: "555-0101", Email: "john@example.com", Address: "123 Main St"},
	{Name: "Jane Smith", Phone: "555-0102", Email: "jane@example.com", Address: "456 Oak Ave"},
	{Name: "Bob Johnson", Phone: "555-0103", Email: "bob@example.com", Address: "789 Pine Rd"},
}

var sampleVolunteers = []volunteers.CreateInput{
	{Name: "Alice Brown", Phone: "555-0201", Email: "alice@example.com", Skills: volunteers.SkillSet{"Dog Walking", "Feeding"}, Availability: "Weekends"},
	{Name: "Charlie Wilson", Phone: "555-0202", Email: "charlie@example.com", Skills: volunteers.SkillSet{"Dog Training", "Cat Socialization"}, Availability: "Weekdays"},
	{Name: "Dana Lee", Phone: "555-0203", Email: "dana@example.com", Skills: volunteers.SkillSet{"Senior Animal Care", "Medical Assistance"}, Availability: "Evenings"},
}

// adopción: índice de animal, índice de adoptante, fecha
var sampleAdoptions = []struct {
	animal, adopter int
	date            string
}{
	{0, 0, "2024-02-14"},
	{1, 1, "2024-02-20"},
	{2, 2, "2024-03-30"},
	{4, 0, "2024-03-12"},
	{5, 1, "2024-03-05"},
	{8, 2, "2024-05-02"},
	{9, 1, "2024-04-20"},
}

type seedSummary struct {
	Animals, Adopters, Volunteers, Adoptions, Records, Activities int
}

func (s seedSummary) String() string {
	return fmt.Sprintf("%d animals, %d adopters, %d volunteers, %d adoptions, %d medical records, %d activities",
		s.Animals, s.Adopters, s.Volunteers, s.Adoptions, s.Records, s.Activities)
}

type created struct {
	ID string `json:"id"`
}

func runSeed(ctx context.Context, c *httpclient.Client) (seedSummary, error) {
	var sum seedSummary

	post := func(path string, in any) (string, error) {
		var out created
		if err := c.Post(ctx, path, in, &out); err != nil {
			return "", fmt.Errorf("POST %s: %w", path, err)
		}
		return out.ID, nil
	}

	animalIDs := make([]string, 0, len(sampleAnimals))
	for _, in := range sampleAnimals {
		id, err := post("/api/animals", in)
		if err != nil {
			return sum, err
		}
		animalIDs = append(animalIDs, id)
		sum.Animals++
	}

	adopterIDs := make([]string, 0, len(sampleAdopters))
	for _, in := range sampleAdopters {
		id, err := post("/api/adopters", in)
		if err != nil {
			return sum, err
		}
		adopterIDs = append(adopterIDs, id)
		sum.Adopters++
	}

	volunteerIDs := make([]string, 0, len(sampleVolunteers))
	for _, in := range sampleVolunteers {
		id, err := post("/api/volunteers", in)
		if err != nil {
			return sum, err
		}
		volunteerIDs = append(volunteerIDs, id)
		sum.Volunteers++
	}

	for _, a := range sampleAdoptions {
		_, err := post("/api/adoptions", adoptions.CreateInput{
			AnimalID:     animalIDs[a.animal],
			AdopterID:    adopterIDs[a.adopter],
			AdoptionDate: a.date,
		})
		if err != nil {
			return sum, err
		}
		sum.Adoptions++
	}

	records := []medical.CreateInput{
		{AnimalID: animalIDs[0], VetName: "Dr. Vega", VisitDate: "2024-01-10", Diagnosis: "Checkup", Treatment: "Vaccines"},
		{AnimalID: animalIDs[3], VetName: "Dr. Vega", VisitDate: "2024-02-15", Diagnosis: "Dental tartar", Treatment: "Cleaning"},
		{AnimalID: animalIDs[6], VetName: "Dr. Ruiz", VisitDate: "2024-03-05", Diagnosis: "Arthritis", Treatment: "Anti-inflammatory"},
		{AnimalID: animalIDs[6], VetName: "Dr. Ruiz", VisitDate: "2024-04-05", Diagnosis: "Arthritis follow-up", Treatment: "Physiotherapy"},
		{AnimalID: animalIDs[7], VetName: "Dr. Ruiz", VisitDate: "2024-03-20", Diagnosis: "Checkup", Treatment: "None"},
	}
	for _, in := range records {
		if _, err := post("/api/medical-records", in); err != nil {
			return sum, err
		}
		sum.Records++
	}

	acts := []activities.CreateInput{
		{VolunteerID: volunteerIDs[0], AnimalID: animalIDs[6], ActivityType: "Walking", ActivityDate: "2024-04-02", DurationMinutes: 45},
		{VolunteerID: volunteerIDs[1], AnimalID: animalIDs[9], ActivityType: "Socialization", ActivityDate: "2024-04-03", DurationMinutes: 30},
		{VolunteerID: volunteerIDs[2], AnimalID: animalIDs[7], ActivityType: "Medical Assistance", ActivityDate: "2024-04-04", DurationMinutes: 60},
	}
	for _, in := range acts {
		if _, err := post("/api/volunteer-activities", in); err != nil {
			return sum, err
		}
		sum.Activities++
	}

	// Rocky con su voluntaria de cuidado senior
	if err := c.Post(ctx, "/api/animals/"+animalIDs[6]+"/volunteers/"+volunteerIDs[2], nil, nil); err != nil {
		return sum, fmt.Errorf("assign volunteer: %w", err)
	}
	return sum, nil
}

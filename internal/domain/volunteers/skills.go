package volunteers

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Vocabulary es la lista cerrada de habilidades aceptadas al escribir.
var Vocabulary = []string{
	"Dog Walking",
	"Dog Training",
	"Cat Socialization",
	"Small Animal Care",
	"Bird Care",
	"Grooming",
	"Feeding",
	"Medical Assistance",
	"Adoption Events",
	"Meet & Greets",
	"Photography",
	"Social Media",
	"Administrative",
	"Cleaning",
	"Transportation",
	"Behavioral Assessment",
	"Senior Animal Care",
	"Puppy/Kitten Care",
}

const (
	SkillSeniorCare     = "Senior Animal Care"
	SkillPuppyKitten    = "Puppy/Kitten Care"
	seniorAgeFrom       = 8
	puppyKittenAgeUntil = 1
)

// speciesSkills: habilidades ligadas a especies concretas.
var speciesSkills = map[string][]string{
	"Dog Walking":       {"Dog"},
	"Dog Training":      {"Dog"},
	"Cat Socialization": {"Cat"},
	"Small Animal Care": {"Rabbit", "Hamster", "Guinea Pig", "Ferret"},
	"Bird Care":         {"Bird"},
}

var generalSkills = []string{"Grooming", "Feeding", "Medical Assistance", "Adoption Events", "Meet & Greets"}

// SkillsFor devuelve las habilidades útiles para un animal, ordenadas.
func SkillsFor(species string, age int) []string {
	set := map[string]struct{}{}
	for skill, list := range speciesSkills {
		for _, sp := range list {
			if sp == species {
				set[skill] = struct{}{}
			}
		}
	}
	if age >= seniorAgeFrom {
		set[SkillSeniorCare] = struct{}{}
	}
	if (species == "Dog" || species == "Cat") && age <= puppyKittenAgeUntil {
		set[SkillPuppyKitten] = struct{}{}
	}
	for _, s := range generalSkills {
		set[s] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// SkillSet es el conjunto de habilidades de un voluntario.
// Acepta la forma legada (string separado por comas) y la normaliza a lista.
type SkillSet []string

func (s *SkillSet) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = normalize(list)
		return nil
	}
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("skills must be a list or a comma-separated string")
	}
	if raw == nil {
		*s = SkillSet{}
		return nil
	}
	*s = normalize(strings.Split(*raw, ","))
	return nil
}

func (s SkillSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s SkillSet) Has(skill string) bool {
	for _, v := range s {
		if v == skill {
			return true
		}
	}
	return false
}

// Intersect devuelve las habilidades de s presentes en wanted, en el orden de wanted.
func (s SkillSet) Intersect(wanted []string) []string {
	out := make([]string, 0)
	for _, w := range wanted {
		if s.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// normalize recorta, descarta vacíos y duplicados, conservando el orden.
func normalize(in []string) SkillSet {
	seen := map[string]bool{}
	out := make(SkillSet, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

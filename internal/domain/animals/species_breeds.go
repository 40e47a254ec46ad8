package animals

import "sort"

// speciesBreeds es el catálogo que ofrece la API para formularios.
var speciesBreeds = map[string][]string{
	"Dog": {
		"Labrador Retriever", "Golden Retriever", "German Shepherd", "Bulldog", "Beagle",
		"French Bulldog", "Poodle", "Rottweiler", "Yorkshire Terrier", "Dachshund",
		"Siberian Husky", "Boxer", "Great Dane", "Doberman Pinscher", "Shih Tzu",
		"Australian Shepherd", "Border Collie", "Chihuahua", "Pomeranian", "Maltese",
		"Cocker Spaniel", "Boston Terrier", "Havanese", "Shetland Sheepdog", "Bichon Frise",
		"Pug", "Mastiff", "Saint Bernard", "Bernese Mountain Dog", "Basset Hound",
		"Mixed Breed", "Other",
	},
	"Cat": {
		"Persian", "Maine Coon", "British Shorthair", "Ragdoll", "Bengal",
		"Siamese", "American Shorthair", "Abyssinian", "Russian Blue", "Scottish Fold",
		"Sphynx", "Norwegian Forest Cat", "Oriental Shorthair", "Exotic Shorthair", "Birman",
		"Turkish Angora", "Himalayan", "Devon Rex", "Cornish Rex", "Manx",
		"American Curl", "Japanese Bobtail", "Tonkinese", "Burmese", "Chartreux",
		"Mixed Breed", "Other",
	},
	"Rabbit": {
		"Holland Lop", "Mini Rex", "Netherland Dwarf", "Lionhead", "Flemish Giant",
		"Angora", "Californian", "New Zealand", "English Spot", "French Lop",
		"Mixed Breed", "Other",
	},
	"Bird": {
		"Parrot", "Cockatiel", "Budgerigar", "Canary", "Finch",
		"Lovebird", "Conure", "Macaw", "Cockatoo", "African Grey",
		"Other",
	},
	"Hamster":    {"Syrian", "Dwarf Campbell", "Dwarf Winter White", "Roborovski", "Chinese", "Other"},
	"Guinea Pig": {"American", "Abyssinian", "Peruvian", "Silkie", "Teddy", "Texel", "Other"},
	"Ferret":     {"Standard", "Angora", "Other"},
	"Reptile":    {"Bearded Dragon", "Leopard Gecko", "Ball Python", "Corn Snake", "Tortoise", "Iguana", "Chameleon", "Other"},
	"Fish":       {"Goldfish", "Betta", "Guppy", "Tetra", "Cichlid", "Other"},
	"Other":      {"Other"},
}

type SpeciesCatalog struct {
	SpeciesBreeds map[string][]string `json:"species_breeds"`
	SpeciesList   []string            `json:"species_list"`
}

// Catalog devuelve una copia del catálogo con la lista de especies ordenada.
func Catalog() SpeciesCatalog {
	out := SpeciesCatalog{SpeciesBreeds: make(map[string][]string, len(speciesBreeds))}
	for sp, breeds := range speciesBreeds {
		out.SpeciesBreeds[sp] = append([]string(nil), breeds...)
		out.SpeciesList = append(out.SpeciesList, sp)
	}
	sort.Strings(out.SpeciesList)
	return out
}

// BreedsFor devuelve las razas de la especie; especies desconocidas => ["Other"].
func BreedsFor(species string) []string {
	if b, ok := speciesBreeds[species]; ok {
		return append([]string(nil), b...)
	}
	return []string{"Other"}
}

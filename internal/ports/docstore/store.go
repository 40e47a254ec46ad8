package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrDuplicate   = errors.New("document already exists")
	ErrUnavailable = errors.New("document store unavailable")
	ErrEmptyID     = errors.New("document id is required")
)

// Nombres de colecciones.
const (
	Animals             = "animals"
	Adopters            = "adopters"
	Adoptions           = "adoptions"
	MedicalRecords      = "medical_records"
	Volunteers          = "volunteers"
	VolunteerActivities = "volunteer_activities"
)

// Document es un registro JSON-like. Al leer, "id" siempre viene poblado.
type Document map[string]any

// In expresa un filtro tipo $in.
type In []any

// Filter: campo -> valor (igualdad textual) o In.
// La clave "id" filtra por identificador.
type Filter map[string]any

type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type Collection interface {
	Insert(ctx context.Context, id string, doc Document) error
	Get(ctx context.Context, id string) (Document, error)
	// Find devuelve en orden de inserción.
	Find(ctx context.Context, f Filter) ([]Document, error)
	// Update aplica semántica $set campo a campo.
	Update(ctx context.Context, id string, set Document) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, f Filter) (int, error)
}

var fieldRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateFilter rechaza nombres de campo que no sean snake_case simple.
func ValidateFilter(f Filter) error {
	for k := range f {
		if !fieldRe.MatchString(k) {
			return fmt.Errorf("docstore: invalid filter field %q", k)
		}
	}
	return nil
}

// Keys devuelve los campos del filtro ordenados (para SQL estable).
func (f Filter) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text es la forma textual usada para igualdad entre backends.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	case float32:
		return Text(float64(t))
	default:
		return fmt.Sprint(t)
	}
}

// Matches evalúa el filtro en memoria (backend memory y tests).
func Matches(id string, doc Document, f Filter) bool {
	for k, want := range f {
		var got string
		if k == "id" {
			got = id
		} else {
			v, ok := doc[k]
			if !ok {
				return false
			}
			got = Text(v)
		}

		if in, ok := want.(In); ok {
			hit := false
			for _, w := range in {
				if Text(w) == got {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
			continue
		}
		if Text(want) != got {
			return false
		}
	}
	return true
}

// Unavailable envuelve un error del driver como ErrUnavailable.
// CheckID rechaza ids vacíos antes de escribir.
func CheckID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyID
	}
	return nil
}

func Unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
}

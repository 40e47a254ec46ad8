package predictions

import (
	"fmt"
	"sort"

	"pet-shelter/internal/platform/apperr"
)

// EncodingVersion se guarda en cada artefacto; Transform rechaza otras versiones.
const EncodingVersion = 1

// Encoding es la sección de codificación persistida junto al modelo:
// categorías vistas al entrenar (one-hot, ordenadas) y columnas numéricas.
type Encoding struct {
	Version     int                 `json:"version"`
	Categorical []string            `json:"categorical"`
	Categories  map[string][]string `json:"categories"`
	Numeric     []string            `json:"numeric"`
}

// Column identifica una columna de entrada y el factor al que pertenece.
type Column struct {
	Factor string
	Value  string
}

func FitEncoding(rows []Features, categorical, numeric []string) Encoding {
	enc := Encoding{
		Version:     EncodingVersion,
		Categorical: append([]string(nil), categorical...),
		Categories:  make(map[string][]string, len(categorical)),
		Numeric:     append([]string(nil), numeric...),
	}
	for _, field := range categorical {
		seen := map[string]bool{}
		values := make([]string, 0)
		for _, r := range rows {
			v := r.categorical(field)
			if !seen[v] {
				seen[v] = true
				values = append(values, v)
			}
		}
		sort.Strings(values)
		enc.Categories[field] = values
	}
	return enc
}

func (e Encoding) Columns() []Column {
	out := make([]Column, 0)
	for _, field := range e.Categorical {
		for _, v := range e.Categories[field] {
			out = append(out, Column{Factor: field, Value: v})
		}
	}
	for _, field := range e.Numeric {
		out = append(out, Column{Factor: field})
	}
	return out
}

// Transform codifica f. Un valor no visto al entrenar devuelve ErrUnseenCategory.
func (e Encoding) Transform(f Features) ([]float64, error) {
	if e.Version != EncodingVersion {
		return nil, fmt.Errorf("unsupported encoding version %d", e.Version)
	}
	out := make([]float64, 0, len(e.Categorical)+len(e.Numeric))
	for _, field := range e.Categorical {
		v := f.categorical(field)
		found := false
		for _, c := range e.Categories[field] {
			hit := 0.0
			if c == v {
				hit, found = 1, true
			}
			out = append(out, hit)
		}
		if !found {
			return nil, fmt.Errorf("%w: %s %q", apperr.ErrUnseenCategory, field, v)
		}
	}
	for _, field := range e.Numeric {
		out = append(out, f.numeric(field))
	}
	return out, nil
}

func (e Encoding) TransformAll(rows []Features) ([][]float64, error) {
	out := make([][]float64, 0, len(rows))
	for _, r := range rows {
		x, err := e.Transform(r)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

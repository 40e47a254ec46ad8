package docrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pet-shelter/internal/platform/apperr"
	"pet-shelter/internal/ports/docstore"
)

// encode pasa el struct por JSON: los tags json definen los campos del documento.
// El id va aparte, como clave del documento.
func encode(v any) (docstore.Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docrepo: encode: %w", err)
	}
	doc := docstore.Document{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("docrepo: encode: %w", err)
	}
	delete(doc, "id")
	return doc, nil
}

func decode[T any](doc docstore.Document) (T, error) {
	var out T
	b, err := json.Marshal(doc)
	if err != nil {
		return out, fmt.Errorf("docrepo: decode: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("docrepo: decode: %w", err)
	}
	return out, nil
}

// mapErr traduce errores del store a la taxonomía de la app.
// ErrUnavailable se deja pasar: httpx lo mapea a 503.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, docstore.ErrNotFound):
		return fmt.Errorf("%w: %w", apperr.ErrNotFound, err)
	case errors.Is(err, docstore.ErrDuplicate):
		return fmt.Errorf("%w: %w", apperr.ErrConflict, err)
	case errors.Is(err, docstore.ErrEmptyID):
		return fmt.Errorf("%w: %w", apperr.ErrInvalidID, err)
	}
	return err
}

// typed es el repositorio genérico sobre una colección.
type typed[T any] struct {
	col docstore.Collection
}

func (t typed[T]) insert(ctx context.Context, id string, v T) error {
	doc, err := encode(v)
	if err != nil {
		return err
	}
	return mapErr(t.col.Insert(ctx, id, doc))
}

func (t typed[T]) get(ctx context.Context, id string) (T, error) {
	doc, err := t.col.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, mapErr(err)
	}
	return decode[T](doc)
}

func (t typed[T]) find(ctx context.Context, f docstore.Filter) ([]T, error) {
	docs, err := t.col.Find(ctx, f)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := decode[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// replace escribe todos los campos del struct ($set campo a campo). Las entidades
// no usan omitempty: un campo vaciado tiene que viajar en el $set.
func (t typed[T]) replace(ctx context.Context, id string, v T) error {
	doc, err := encode(v)
	if err != nil {
		return err
	}
	return mapErr(t.col.Update(ctx, id, doc))
}

func (t typed[T]) set(ctx context.Context, id string, fields docstore.Document) error {
	return mapErr(t.col.Update(ctx, id, fields))
}

func (t typed[T]) delete(ctx context.Context, id string) error {
	return mapErr(t.col.Delete(ctx, id))
}

func (t typed[T]) exists(ctx context.Context, id string) (bool, error) {
	n, err := t.col.Count(ctx, docstore.Filter{"id": id})
	if err != nil {
		return false, mapErr(err)
	}
	return n > 0, nil
}

// filter arma un docstore.Filter ignorando valores vacíos.
func filter(pairs ...string) docstore.Filter {
	f := docstore.Filter{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			f[pairs[i]] = pairs[i+1]
		}
	}
	return f
}

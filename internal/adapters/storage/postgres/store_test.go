package postgres

import (
	"context"
	"os"
	"reflect"
	"testing"

	"pet-shelter/internal/ports/docstore"
)

func TestWhere_BuildsPlaceholders(t *testing.T) {
	c := &collection{name: docstore.Animals}

	where, args, err := c.where(docstore.Filter{
		"status":  docstore.In{"Available", "Medical"},
		"species": "Dog",
		"id":      docstore.In{},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	wantWhere := "collection = $1 AND FALSE AND body->>'species' = $2 AND body->>'status' IN ($3,$4)"
	if where != wantWhere {
		t.Fatalf("expected %q, got %q", wantWhere, where)
	}
	wantArgs := []any{"animals", "Dog", "Available", "Medical"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Fatalf("expected args %v, got %v", wantArgs, args)
	}
}

func TestWhere_RejectsUnsafeField(t *testing.T) {
	c := &collection{name: docstore.Animals}
	if _, _, err := c.where(docstore.Filter{"x' OR '1'='1": "y"}); err == nil {
		t.Fatalf("expected error for unsafe field")
	}
}

// Integración opcional: requiere TEST_DB_DSN apuntando a un Postgres desechable.
func TestStore_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	ctx := context.Background()
	s, err := OpenStore(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close(ctx)

	c := s.Collection("it_" + t.Name())
	if err := c.Insert(ctx, "a1", docstore.Document{"species": "Dog", "age": 3}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	defer c.Delete(ctx, "a1")

	n, err := c.Count(ctx, docstore.Filter{"age": 3})
	if err != nil || n != 1 {
		t.Fatalf("expected count 1, got %d err=%v", n, err)
	}
	if err := c.Update(ctx, "a1", docstore.Document{"status": "Adopted"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	d, err := c.Get(ctx, "a1")
	if err != nil || d["status"] != "Adopted" || d["species"] != "Dog" {
		t.Fatalf("expected merged doc, got %v err=%v", d, err)
	}
}

package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"pet-shelter/internal/ports/artifacts"
)

func TestStore_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, _ = s.Put(ctx, "models/a.json", strings.NewReader("one"), artifacts.PutOptions{})
	first, _ := s.Head(ctx, "models/a.json")
	_, _ = s.Put(ctx, "models/a.json", strings.NewReader("two"), artifacts.PutOptions{Metadata: map[string]string{"version": "1"}})

	info, rc, err := s.Get(ctx, "models/a.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	if string(body) != "two" || info.Metadata["version"] != "1" {
		t.Fatalf("expected second write, got %q %+v", body, info)
	}
	if info.ETag == first.ETag {
		t.Fatalf("expected etag to change on overwrite")
	}
}

func TestStore_MissingKeys(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, err := s.Head(ctx, "nope"); !errors.Is(err, artifacts.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if ok, err := s.Delete(ctx, "nope"); err != nil || ok {
		t.Fatalf("expected delete false, got %v %v", ok, err)
	}
	if list, err := s.List(ctx, ""); err != nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %+v %v", list, err)
	}
}

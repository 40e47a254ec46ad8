package fs

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"pet-shelter/internal/ports/artifacts"
)

func TestStore_PutOverwritesAndLists(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := s.Put(ctx, "models/a.json", strings.NewReader(`{"v":1}`), artifacts.PutOptions{ContentType: "application/json"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	info, err := s.Put(ctx, "models/a.json", strings.NewReader(`{"v":2}`), artifacts.PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if info.Size != 7 || info.ETag == "" {
		t.Fatalf("unexpected info %+v", info)
	}

	got, rc, err := s.Get(ctx, "models/a.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	rc.Close()
	if string(body) != `{"v":2}` || got.ContentType != "application/json" {
		t.Fatalf("expected last writer content, got %s (%+v)", body, got)
	}

	_, _ = s.Put(ctx, "other/b.bin", strings.NewReader("x"), artifacts.PutOptions{})
	list, err := s.List(ctx, "models/")
	if err != nil || len(list) != 1 || list[0].Key != "models/a.json" {
		t.Fatalf("expected only models/a.json, got %+v err=%v", list, err)
	}

	ok, err := s.Delete(ctx, "models/a.json")
	if err != nil || !ok {
		t.Fatalf("expected delete ok, got %v %v", ok, err)
	}
	if _, err := s.Head(ctx, "models/a.json"); !errors.Is(err, artifacts.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_RejectsTraversal(t *testing.T) {
	s, _ := New(t.TempDir())
	if _, err := s.Put(context.Background(), "../escape", strings.NewReader("x"), artifacts.PutOptions{}); err == nil {
		t.Fatalf("expected traversal key to fail")
	}
}

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"pet-shelter/internal/adapters/storage/memory"
	"pet-shelter/internal/adapters/storage/sqlite"
	"pet-shelter/internal/config"
)

func TestOpen_SelectsDriver(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.StorageConfig{Driver: config.DriverMemory})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := s.(*memory.Store); !ok {
		t.Fatalf("expected *memory.Store, got %T", s)
	}

	s, err = Open(ctx, config.StorageConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "s.db")})
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	defer s.Close(ctx)
	if _, ok := s.(*sqlite.Store); !ok {
		t.Fatalf("expected *sqlite.Store, got %T", s)
	}

	if _, err := Open(ctx, config.StorageConfig{Driver: "cassandra"}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

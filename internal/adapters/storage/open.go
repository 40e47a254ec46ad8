package storage

import (
	"context"
	"fmt"

	"pet-shelter/internal/adapters/storage/memory"
	"pet-shelter/internal/adapters/storage/mongodb"
	"pet-shelter/internal/adapters/storage/postgres"
	"pet-shelter/internal/adapters/storage/sqlite"
	"pet-shelter/internal/config"
	"pet-shelter/internal/ports/docstore"
)

// Open elige el backend del document store según config.
func Open(ctx context.Context, cfg config.StorageConfig) (docstore.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.NewStore(), nil
	case config.DriverPostgres:
		return postgres.OpenStore(ctx, cfg.PostgresDSN)
	case config.DriverMongo:
		return mongodb.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

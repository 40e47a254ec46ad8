package artifacts

import (
	"context"
	"fmt"

	"pet-shelter/internal/adapters/artifacts/fs"
	"pet-shelter/internal/adapters/artifacts/gcs"
	"pet-shelter/internal/adapters/artifacts/memory"
	"pet-shelter/internal/adapters/artifacts/s3"
	"pet-shelter/internal/config"
	"pet-shelter/internal/ports/artifacts"
)

// Open construye el store de artefactos de modelos según config.
func Open(ctx context.Context, cfg config.ArtifactsConfig) (artifacts.Store, error) {
	switch artifacts.Driver(cfg.Driver) {
	case artifacts.DriverFilesystem, "":
		return fs.New(cfg.FSRoot)
	case artifacts.DriverMemory:
		return memory.New(), nil
	case artifacts.DriverS3:
		return s3.New(ctx, s3.Config{
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			PathStyle:       cfg.S3.PathStyle,
		})
	case artifacts.DriverGCS:
		return gcs.New(ctx, gcs.Config{
			Bucket:          cfg.GCS.Bucket,
			CredentialsFile: cfg.GCS.CredentialsFile,
		})
	default:
		return nil, fmt.Errorf("unknown artifacts driver %q", cfg.Driver)
	}
}

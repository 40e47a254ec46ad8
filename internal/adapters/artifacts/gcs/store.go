package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"pet-shelter/internal/ports/artifacts"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type Store struct {
	client *storage.Client
	bucket string
}

type Config struct {
	Bucket          string
	CredentialsFile string // vacío => Application Default Credentials
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs bucket required")
	}
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			return nil, fmt.Errorf("gcs credentials file %s: %w", cfg.CredentialsFile, err)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS storage client: %w", err)
	}
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

func (s *Store) Driver() artifacts.Driver { return artifacts.DriverGCS }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) Put(ctx context.Context, key string, r io.Reader, opts artifacts.PutOptions) (artifacts.Info, error) {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = opts.ContentType
	w.CacheControl = "no-cache"
	if len(opts.Metadata) > 0 {
		w.Metadata = opts.Metadata
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return artifacts.Info{}, fmt.Errorf("copy to gs://%s/%s: %w", s.bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return artifacts.Info{}, fmt.Errorf("close writer for gs://%s/%s: %w", s.bucket, key, err)
	}
	return toInfo(w.Attrs()), nil
}

func (s *Store) Get(ctx context.Context, key string) (artifacts.Info, io.ReadCloser, error) {
	info, err := s.Head(ctx, key)
	if err != nil {
		return artifacts.Info{}, nil, err
	}
	rc, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return artifacts.Info{}, nil, mapErr(err)
	}
	return info, rc, nil
}

func (s *Store) Head(ctx context.Context, key string) (artifacts.Info, error) {
	attrs, err := s.client.Bucket(s.bucket).Object(key).Attrs(ctx)
	if err != nil {
		return artifacts.Info{}, mapErr(err)
	}
	return toInfo(attrs), nil
}

func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) List(ctx context.Context, prefix string) ([]artifacts.Info, error) {
	it := s.client.Bucket(s.bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	out := make([]artifacts.Info, 0)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, toInfo(attrs))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func mapErr(err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return artifacts.ErrNotFound
	}
	return err
}

func toInfo(a *storage.ObjectAttrs) artifacts.Info {
	if a == nil {
		return artifacts.Info{}
	}
	return artifacts.Info{
		Key:          a.Name,
		Size:         a.Size,
		ContentType:  a.ContentType,
		ETag:         a.Etag,
		Metadata:     a.Metadata,
		LastModified: a.Updated,
	}
}

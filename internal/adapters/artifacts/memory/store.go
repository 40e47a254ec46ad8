package memory

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-shelter/internal/ports/artifacts"
)

type object struct {
	data []byte
	info artifacts.Info
}

// Store mantiene artefactos en memoria (tests y modo dev).
type Store struct {
	mu    sync.RWMutex
	items map[string]object
}

func New() *Store {
	return &Store{items: map[string]object{}}
}

func (s *Store) Driver() artifacts.Driver { return artifacts.DriverMemory }

func (s *Store) Put(_ context.Context, key string, r io.Reader, opts artifacts.PutOptions) (artifacts.Info, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return artifacts.Info{}, err
	}
	sum := sha256.Sum256(data)

	info := artifacts.Info{
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  opts.ContentType,
		ETag:         hex.EncodeToString(sum[:]),
		Metadata:     copyMeta(opts.Metadata),
		LastModified: time.Now().UTC(),
	}

	s.mu.Lock()
	s.items[key] = object{data: data, info: info}
	s.mu.Unlock()
	return info, nil
}

func (s *Store) Get(_ context.Context, key string) (artifacts.Info, io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.items[key]
	if !ok {
		return artifacts.Info{}, nil, artifacts.ErrNotFound
	}
	return o.info, io.NopCloser(bytes.NewReader(o.data)), nil
}

func (s *Store) Head(_ context.Context, key string) (artifacts.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.items[key]
	if !ok {
		return artifacts.Info{}, artifacts.ErrNotFound
	}
	return o.info, nil
}

func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[key]; !ok {
		return false, nil
	}
	delete(s.items, key)
	return true, nil
}

func (s *Store) List(_ context.Context, prefix string) ([]artifacts.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]artifacts.Info, 0)
	for k, o := range s.items {
		if strings.HasPrefix(k, prefix) {
			out = append(out, o.info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func copyMeta(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

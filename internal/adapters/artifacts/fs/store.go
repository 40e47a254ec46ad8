package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pet-shelter/internal/ports/artifacts"
)

// Store guarda artefactos bajo root. Un sidecar (archivo + ".meta")
// conserva content type, metadata y etag.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if root == "" {
		root = "./data/models"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Store{root: root}, nil
}

func (s *Store) Driver() artifacts.Driver { return artifacts.DriverFilesystem }

func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key contains '..'")
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("invalid absolute key")
	}
	return filepath.ToSlash(filepath.Clean(key)), nil
}

func (s *Store) pathFor(key string) (dataPath, metaPath string, err error) {
	k, err := sanitizeKey(key)
	if err != nil {
		return "", "", err
	}
	dataPath = filepath.Join(s.root, filepath.FromSlash(k))
	return dataPath, dataPath + ".meta", nil
}

type metaFile struct {
	ContentType string            `json:"content_type,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	ETag        string            `json:"etag"`
	Size        int64             `json:"size"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Put escribe a un temporal y renombra: los lectores nunca ven un archivo a medias.
func (s *Store) Put(_ context.Context, key string, r io.Reader, opts artifacts.PutOptions) (artifacts.Info, error) {
	dataPath, metaPath, err := s.pathFor(key)
	if err != nil {
		return artifacts.Info{}, err
	}
	if err := os.MkdirAll(filepath.Dir(dataPath), 0o755); err != nil {
		return artifacts.Info{}, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(dataPath), ".tmp-*")
	if err != nil {
		return artifacts.Info{}, err
	}
	defer os.Remove(tmp.Name())

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(tmp, h), r)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return artifacts.Info{}, err
	}

	meta := metaFile{
		ContentType: opts.ContentType,
		Metadata:    opts.Metadata,
		ETag:        hex.EncodeToString(h.Sum(nil)),
		Size:        n,
		UpdatedAt:   time.Now().UTC(),
	}
	mb, err := json.Marshal(meta)
	if err != nil {
		return artifacts.Info{}, err
	}
	if err := os.WriteFile(metaPath, mb, 0o644); err != nil {
		return artifacts.Info{}, err
	}
	if err := os.Rename(tmp.Name(), dataPath); err != nil {
		return artifacts.Info{}, err
	}
	return toInfo(key, meta), nil
}

func (s *Store) Get(ctx context.Context, key string) (artifacts.Info, io.ReadCloser, error) {
	info, err := s.Head(ctx, key)
	if err != nil {
		return artifacts.Info{}, nil, err
	}
	dataPath, _, _ := s.pathFor(key)
	f, err := os.Open(dataPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return artifacts.Info{}, nil, artifacts.ErrNotFound
		}
		return artifacts.Info{}, nil, err
	}
	return info, f, nil
}

func (s *Store) Head(_ context.Context, key string) (artifacts.Info, error) {
	dataPath, metaPath, err := s.pathFor(key)
	if err != nil {
		return artifacts.Info{}, err
	}
	st, err := os.Stat(dataPath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return artifacts.Info{}, artifacts.ErrNotFound
		}
		return artifacts.Info{}, err
	}

	meta := metaFile{Size: st.Size(), UpdatedAt: st.ModTime().UTC()}
	if b, err := os.ReadFile(metaPath); err == nil {
		_ = json.Unmarshal(b, &meta)
	}
	return toInfo(key, meta), nil
}

func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	dataPath, metaPath, err := s.pathFor(key)
	if err != nil {
		return false, err
	}
	if err := os.Remove(dataPath); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	_ = os.Remove(metaPath)
	return true, nil
}

func (s *Store) List(ctx context.Context, prefix string) ([]artifacts.Info, error) {
	out := make([]artifacts.Info, 0)
	err := filepath.WalkDir(s.root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(path, ".meta") || strings.HasPrefix(d.Name(), ".tmp-") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := s.Head(ctx, key)
		if err != nil {
			return err
		}
		out = append(out, info)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func toInfo(key string, m metaFile) artifacts.Info {
	return artifacts.Info{
		Key:          key,
		Size:         m.Size,
		ContentType:  m.ContentType,
		ETag:         m.ETag,
		Metadata:     m.Metadata,
		LastModified: m.UpdatedAt,
	}
}

package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"pet-shelter/internal/ports/docstore"
)

// Store es el backend in-memory (dev y tests).
type Store struct {
	mu          sync.Mutex
	collections map[string]*Collection
}

func NewStore() *Store {
	return &Store{collections: map[string]*Collection{}}
}

func (s *Store) Collection(name string) docstore.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &Collection{byID: map[string]docstore.Document{}}
		s.collections[name] = c
	}
	return c
}

func (s *Store) Ping(context.Context) error  { return nil }
func (s *Store) Close(context.Context) error { return nil }

type Collection struct {
	mu    sync.RWMutex
	byID  map[string]docstore.Document
	order []string
}

func (c *Collection) Insert(_ context.Context, id string, doc docstore.Document) error {
	id = strings.TrimSpace(id)
	if err := docstore.CheckID(id); err != nil {
		return err
	}
	cp, err := clone(doc)
	if err != nil {
		return err
	}
	delete(cp, "id")

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[id]; exists {
		return docstore.ErrDuplicate
	}
	c.byID[id] = cp
	c.order = append(c.order, id)
	return nil
}

func (c *Collection) Get(_ context.Context, id string) (docstore.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.byID[id]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return withID(id, d)
}

func (c *Collection) Find(_ context.Context, f docstore.Filter) ([]docstore.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]docstore.Document, 0)
	for _, id := range c.order {
		d := c.byID[id]
		if !docstore.Matches(id, d, f) {
			continue
		}
		cp, err := withID(id, d)
		if err != nil {
			return nil, err
		}
		out = append(out, cp)
	}
	return out, nil
}

func (c *Collection) Update(_ context.Context, id string, set docstore.Document) error {
	patch, err := clone(set)
	if err != nil {
		return err
	}
	delete(patch, "id")

	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.byID[id]
	if !ok {
		return docstore.ErrNotFound
	}
	for k, v := range patch {
		d[k] = v
	}
	return nil
}

func (c *Collection) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(c.byID, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Collection) Count(_ context.Context, f docstore.Filter) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for id, d := range c.byID {
		if docstore.Matches(id, d, f) {
			n++
		}
	}
	return n, nil
}

// clone copia vía JSON: aísla al llamador y normaliza números a float64
// igual que los backends reales.
func clone(d docstore.Document) (docstore.Document, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	out := docstore.Document{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func withID(id string, d docstore.Document) (docstore.Document, error) {
	cp, err := clone(d)
	if err != nil {
		return nil, err
	}
	cp["id"] = id
	return cp, nil
}

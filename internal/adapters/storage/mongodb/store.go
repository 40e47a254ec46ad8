package mongodb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"pet-shelter/internal/ports/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ordField conserva el orden de inserción; el orden natural de Mongo no está garantizado.
const ordField = "_ord"

// Store usa una colección Mongo por colección lógica.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	seq    atomic.Int64
}

// Open conecta y hace ping (timeout corto, igual que el pool de Postgres).
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5*time.Second))
	if err != nil {
		return nil, docstore.Unavailable("connect", err)
	}

	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, docstore.Unavailable("ping", err)
	}

	s := &Store{client: client, db: client.Database(database)}
	s.seq.Store(time.Now().UnixNano())
	return s, nil
}

func (s *Store) Collection(name string) docstore.Collection {
	return &collection{c: s.db.Collection(name), seq: &s.seq}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return docstore.Unavailable("ping", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

type collection struct {
	c   *mongo.Collection
	seq *atomic.Int64
}

func (c *collection) Insert(ctx context.Context, id string, doc docstore.Document) error {
	if err := docstore.CheckID(id); err != nil {
		return err
	}
	m := bson.M{}
	for k, v := range doc {
		if k == "id" {
			continue
		}
		m[k] = v
	}
	m["_id"] = id
	m[ordField] = c.seq.Add(1)

	if _, err := c.c.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return docstore.ErrDuplicate
		}
		return docstore.Unavailable("insert", err)
	}
	return nil
}

func (c *collection) Get(ctx context.Context, id string) (docstore.Document, error) {
	var m bson.M
	if err := c.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, docstore.ErrNotFound
		}
		return nil, docstore.Unavailable("get", err)
	}
	return toDocument(m)
}

func (c *collection) Find(ctx context.Context, f docstore.Filter) ([]docstore.Document, error) {
	filter, err := toFilter(f)
	if err != nil {
		return nil, err
	}
	cur, err := c.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: ordField, Value: 1}}))
	if err != nil {
		return nil, docstore.Unavailable("find", err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, docstore.Unavailable("find", err)
	}

	out := make([]docstore.Document, 0, len(raw))
	for _, m := range raw {
		d, err := toDocument(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (c *collection) Update(ctx context.Context, id string, set docstore.Document) error {
	m := bson.M{}
	for k, v := range set {
		if k == "id" || k == "_id" {
			continue
		}
		m[k] = v
	}
	if len(m) == 0 {
		return nil
	}
	res, err := c.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": m})
	if err != nil {
		return docstore.Unavailable("update", err)
	}
	if res.MatchedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (c *collection) Delete(ctx context.Context, id string) error {
	res, err := c.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return docstore.Unavailable("delete", err)
	}
	if res.DeletedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (c *collection) Count(ctx context.Context, f docstore.Filter) (int, error) {
	filter, err := toFilter(f)
	if err != nil {
		return 0, err
	}
	n, err := c.c.CountDocuments(ctx, filter)
	if err != nil {
		return 0, docstore.Unavailable("count", err)
	}
	return int(n), nil
}

func toFilter(f docstore.Filter) (bson.M, error) {
	if err := docstore.ValidateFilter(f); err != nil {
		return nil, err
	}
	out := bson.M{}
	for k, v := range f {
		key := k
		if k == "id" {
			key = "_id"
		}
		if in, ok := v.(docstore.In); ok {
			out[key] = bson.M{"$in": bson.A(in)}
			continue
		}
		out[key] = v
	}
	return out, nil
}

// toDocument normaliza tipos BSON (int32, primitive.A, ...) pasando por JSON.
func toDocument(m bson.M) (docstore.Document, error) {
	id := fmt.Sprint(m["_id"])
	delete(m, "_id")
	delete(m, ordField)

	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode document %s: %w", id, err)
	}
	d := docstore.Document{}
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	d["id"] = id
	return d, nil
}

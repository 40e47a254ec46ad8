package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-shelter/internal/ports/docstore"

	"github.com/jackc/pgx/v5/pgconn"
)

// Store guarda todas las colecciones en una tabla jsonb (collection, id, body).
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// OpenStore abre el pool y asegura el schema.
func OpenStore(ctx context.Context, dsn string) (*Store, error) {
	db, err := Open(ctx, dsn)
	if err != nil {
		return nil, docstore.Unavailable("open", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres schema: %w", err)
	}
	return NewStore(db), nil
}

func (s *Store) Collection(name string) docstore.Collection {
	return &collection{db: s.db, name: name}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return docstore.Unavailable("ping", err)
	}
	return nil
}

func (s *Store) Close(context.Context) error { return s.db.Close() }

type collection struct {
	db   *sql.DB
	name string
}

func (c *collection) Insert(ctx context.Context, id string, doc docstore.Document) error {
	if err := docstore.CheckID(id); err != nil {
		return err
	}
	body, err := encode(doc)
	if err != nil {
		return err
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, body)
		VALUES ($1, $2, $3::jsonb)
	`, c.name, id, body)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return docstore.ErrDuplicate
		}
		return docstore.Unavailable("insert", err)
	}
	return nil
}

func (c *collection) Get(ctx context.Context, id string) (docstore.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, docstore.ErrNotFound
	}

	var raw []byte
	err := c.db.QueryRowContext(ctx, `
		SELECT body FROM documents
		WHERE collection = $1 AND id = $2
	`, c.name, id).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, docstore.ErrNotFound
		}
		return nil, docstore.Unavailable("get", err)
	}
	return decode(id, raw)
}

func (c *collection) Find(ctx context.Context, f docstore.Filter) ([]docstore.Document, error) {
	where, args, err := c.where(f)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx, `SELECT id, body FROM documents WHERE `+where+` ORDER BY seq ASC`, args...)
	if err != nil {
		return nil, docstore.Unavailable("find", err)
	}
	defer rows.Close()

	out := make([]docstore.Document, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, docstore.Unavailable("find", err)
		}
		d, err := decode(id, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, docstore.Unavailable("find", err)
	}
	return out, nil
}

func (c *collection) Update(ctx context.Context, id string, set docstore.Document) error {
	patch, err := encode(set)
	if err != nil {
		return err
	}
	res, err := c.db.ExecContext(ctx, `
		UPDATE documents
		SET body = body || $3::jsonb, updated_at = now()
		WHERE collection = $1 AND id = $2
	`, c.name, id, patch)
	if err != nil {
		return docstore.Unavailable("update", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (c *collection) Delete(ctx context.Context, id string) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM documents WHERE collection = $1 AND id = $2
	`, c.name, id)
	if err != nil {
		return docstore.Unavailable("delete", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (c *collection) Count(ctx context.Context, f docstore.Filter) (int, error) {
	where, args, err := c.where(f)
	if err != nil {
		return 0, err
	}
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents WHERE `+where, args...).Scan(&n); err != nil {
		return 0, docstore.Unavailable("count", err)
	}
	return n, nil
}

// where arma el WHERE con placeholders $n; los nombres de campo ya
// pasaron por ValidateFilter, por eso se interpolan como literal.
func (c *collection) where(f docstore.Filter) (string, []any, error) {
	if err := docstore.ValidateFilter(f); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	args := []any{c.name}
	b.WriteString("collection = $1")

	for _, k := range f.Keys() {
		col := "body->>'" + k + "'"
		if k == "id" {
			col = "id"
		}

		if in, ok := f[k].(docstore.In); ok {
			if len(in) == 0 {
				b.WriteString(" AND FALSE")
				continue
			}
			ph := make([]string, 0, len(in))
			for _, v := range in {
				args = append(args, docstore.Text(v))
				ph = append(ph, fmt.Sprintf("$%d", len(args)))
			}
			b.WriteString(" AND " + col + " IN (" + strings.Join(ph, ",") + ")")
			continue
		}

		args = append(args, docstore.Text(f[k]))
		b.WriteString(fmt.Sprintf(" AND %s = $%d", col, len(args)))
	}
	return b.String(), args, nil
}

func encode(doc docstore.Document) ([]byte, error) {
	cp := make(docstore.Document, len(doc))
	for k, v := range doc {
		if k == "id" {
			continue
		}
		cp[k] = v
	}
	return json.Marshal(cp)
}

func decode(id string, raw []byte) (docstore.Document, error) {
	d := docstore.Document{}
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	d["id"] = id
	return d, nil
}

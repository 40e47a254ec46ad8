package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pet-shelter/internal/ports/docstore"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store guarda documentos como JSON en un archivo SQLite (modo embebido, sin servidor).
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y aplica migraciones pendientes.
// ":memory:" sirve para tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Una sola conexión: evita "database is locked" y mantiene viva la base :memory:.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, docstore.Unavailable("ping", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		var version int
		if _, err := fmt.Sscanf(entry.Name(), "%d_", &version); err != nil {
			return fmt.Errorf("parsing migration version from %q: %w", entry.Name(), err)
		}

		var applied int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&applied); err != nil {
			return fmt.Errorf("checking migration %d: %w", version, err)
		}
		if applied > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}

		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("beginning transaction for migration %d: %w", version, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", version, err)
		}
	}
	return nil
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
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)`,
		c.name, id, string(body))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return docstore.ErrDuplicate
		}
		return docstore.Unavailable("insert", err)
	}
	return nil
}

func (c *collection) Get(ctx context.Context, id string) (docstore.Document, error) {
	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		c.name, id).Scan(&raw)
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
	rows, err := c.db.QueryContext(ctx, `SELECT id, body FROM documents WHERE `+where+` ORDER BY rowid ASC`, args...)
	if err != nil {
		return nil, docstore.Unavailable("find", err)
	}
	defer rows.Close()

	out := make([]docstore.Document, 0)
	for rows.Next() {
		var id, raw string
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
		SET body = json_patch(body, ?), updated_at = CURRENT_TIMESTAMP
		WHERE collection = ? AND id = ?
	`, string(patch), c.name, id)
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
	res, err := c.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, c.name, id)
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

func (c *collection) where(f docstore.Filter) (string, []any, error) {
	if err := docstore.ValidateFilter(f); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	args := []any{c.name}
	b.WriteString("collection = ?")

	for _, k := range f.Keys() {
		col := "CAST(json_extract(body, '$." + k + "') AS TEXT)"
		if k == "id" {
			col = "id"
		}

		if in, ok := f[k].(docstore.In); ok {
			if len(in) == 0 {
				b.WriteString(" AND 0")
				continue
			}
			ph := make([]string, 0, len(in))
			for _, v := range in {
				args = append(args, docstore.Text(v))
				ph = append(ph, "?")
			}
			b.WriteString(" AND " + col + " IN (" + strings.Join(ph, ",") + ")")
			continue
		}

		args = append(args, docstore.Text(f[k]))
		b.WriteString(" AND " + col + " = ?")
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

func decode(id, raw string) (docstore.Document, error) {
	d := docstore.Document{}
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	d["id"] = id
	return d, nil
}

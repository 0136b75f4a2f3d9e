// internal/outbox/sqlite.go
//
// SQLite-backed outbox Store.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Persisting deliveries across runs so failed sends can be retried.

package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/outbox/migrations"
)

// timeLayout has fixed-width fractions so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type sqliteStore struct {
	db *sql.DB
}

/**
 * OpenSQLite opens (and creates if missing) the outbox database at path
 * and applies any pending migrations.
 *
 * - Ensures the parent directory exists for relative paths (e.g. ./data/outbox.db).
 * - Configures busy timeout and WAL journaling mode.
 */
func OpenSQLite(path string) (Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("outbox: database path is required")
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

/**
 * migrate applies embedded *.sql files in lexical order.
 *
 * - Uses a _migrations table to track applied files.
 * - Each file runs inside its own transaction.
 */
func migrate(db *sql.DB, files fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, name).Scan(&done)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(body)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", name, err)
		}
		log.Debug().Str("migration", name).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) Save(ctx context.Context, d Delivery) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO deliveries
            (id, player, subject, body, status, attempts, last_error, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            status=excluded.status,
            attempts=excluded.attempts,
            last_error=excluded.last_error,
            updated_at=excluded.updated_at`,
		d.ID, d.Player, d.Subject, d.Body, string(d.Status), d.Attempts, d.LastError,
		d.CreatedAt.UTC().Format(timeLayout), d.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save delivery %s: %w", d.ID, err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, id string) (Delivery, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, player, subject, body, status, attempts, last_error, created_at, updated_at
        FROM deliveries WHERE id=?`, id)
	d, err := scanDelivery(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Delivery{}, ErrNotFound
	}
	return d, err
}

func (s *sqliteStore) Failed(ctx context.Context) ([]Delivery, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, player, subject, body, status, attempts, last_error, created_at, updated_at
        FROM deliveries
        WHERE status=?
        ORDER BY created_at ASC`, string(StatusFailed))
	if err != nil {
		return nil, fmt.Errorf("query failed deliveries: %w", err)
	}
	defer rows.Close()

	var out []Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanDelivery(row scanner) (Delivery, error) {
	var (
		d                Delivery
		status           string
		created, updated string
	)
	if err := row.Scan(&d.ID, &d.Player, &d.Subject, &d.Body, &status, &d.Attempts, &d.LastError, &created, &updated); err != nil {
		return Delivery{}, err
	}
	d.Status = Status(status)
	var err error
	if d.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
		return Delivery{}, fmt.Errorf("delivery %s: parse created_at %q: %w", d.ID, created, err)
	}
	if d.UpdatedAt, err = time.Parse(timeLayout, updated); err != nil {
		return Delivery{}, fmt.Errorf("delivery %s: parse updated_at %q: %w", d.ID, updated, err)
	}
	return d, nil
}

package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers driver "pgx"
	_ "github.com/lib/pq"              // registers driver "postgres"
	_ "github.com/mattn/go-sqlite3"    // registers driver "sqlite3"

	"eventr/internal/domain"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverSQLite   = "sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)
`

type collectionBackend struct {
	DB     *sql.DB
	driver string
}

// Open opens and pings a database for the given driver.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverPostgres, DriverPgx, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NewBackend returns a Backend storing one row per collection in the
// collections table. driver selects the placeholder style.
func NewBackend(db *sql.DB, driver string) domain.Backend {
	return &collectionBackend{DB: db, driver: driver}
}

// EnsureSchema creates the collections table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create collections table: %w", err)
	}
	return nil
}

// bind rewrites $n placeholders for drivers that expect "?".
func (r *collectionBackend) bind(query string) string {
	if r.driver != DriverSQLite {
		return query
	}
	for i := 9; i >= 1; i-- {
		query = strings.ReplaceAll(query, "$"+strconv.Itoa(i), "?")
	}
	return query
}

func (r *collectionBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query := r.bind(`
		SELECT data
		FROM collections
		WHERE name = $1
	`)
	var data string
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(data), true, nil
}

func (r *collectionBackend) Put(ctx context.Context, key string, data []byte) error {
	query := r.bind(`
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`)
	_, err := r.DB.ExecContext(ctx, query, key, string(data), time.Now().UTC())
	return err
}

package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	// Import the PostgreSQL driver.
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/store"
)

//go:embed schema.sql
var schemaSQL string

// PostgreSQL is the production database. It carries the full feature set,
// including persistent chunk embeddings and vector search via pgvector.
type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	db, err := sql.Open("postgres", profile.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", profile.DSN)
	}

	// Small pool; the app serves a handful of users, not a fleet.
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Hour)
	db.SetConnMaxIdleTime(15 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return &DB{
		db:      db,
		profile: profile,
	}, nil
}

func (d *DB) GetDB() *sql.DB {
	return d.db
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Migrate applies the latest schema. All statements are IF NOT EXISTS so the
// call is idempotent.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, schemaSQL); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	return nil
}

// placeholder returns the n-th PostgreSQL placeholder ($1, $2, ...).
func placeholder(n int) string {
	return fmt.Sprintf("$%d", n)
}

func placeholders(n int) string {
	result := ""
	for i := 1; i <= n; i++ {
		if i > 1 {
			result += ", "
		}
		result += placeholder(i)
	}
	return result
}

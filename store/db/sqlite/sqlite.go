package sqlite

import (
	"context"
	"database/sql"
	_ "embed"

	"github.com/pkg/errors"

	// Import the pure-Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/store"
)

//go:embed schema.sql
var schemaSQL string

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens a SQLite database for development and testing use.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	// WAL journaling and busy_timeout keep concurrent request handlers from
	// tripping over SQLITE_BUSY.
	db, err := sql.Open("sqlite", profile.DSN+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database: %s", profile.DSN)
	}

	// SQLite allows a single writer; keep the pool small.
	db.SetMaxOpenConns(1)

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

package db

import (
	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/store"
	"github.com/burnout-fit/burnout/store/db/postgres"
	"github.com/burnout-fit/burnout/store/db/sqlite"
)

// NewDBDriver creates a new db driver based on profile.
//
// PostgreSQL is the production database with full support including chunk
// vector search (pgvector). SQLite covers development and testing; the chatbot
// falls back to the in-memory similarity index on SQLite.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	default:
		return nil, errors.Errorf("unknown db driver %q: only 'postgres' and 'sqlite' are supported", profile.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}

package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that a store database driver should implement.
type Driver interface {
	GetDB() *sql.DB
	Close() error

	// Migrate brings the schema up to date. Idempotent.
	Migrate(ctx context.Context) error

	// Calorie entry related methods.
	CreateCalorieEntry(ctx context.Context, create *CalorieEntry) (*CalorieEntry, error)
	ListCalorieEntries(ctx context.Context, find *FindCalorieEntry) ([]*CalorieEntry, error)
	// ListCalorieDayTotals sums one metric per calendar day with optional
	// day-range filter, ordering and limit. Ties on total break toward the
	// earliest day.
	ListCalorieDayTotals(ctx context.Context, find *FindDayTotals) ([]*DayTotal, error)

	// Water entry related methods.
	CreateWaterEntry(ctx context.Context, create *WaterEntry) (*WaterEntry, error)
	ListWaterEntries(ctx context.Context, find *FindWaterEntry) ([]*WaterEntry, error)

	// Activity status related methods.
	CreateActivityStatus(ctx context.Context, create *ActivityStatus) (*ActivityStatus, error)
	CountActivityStatuses(ctx context.Context, find *FindActivityStatus) (int64, error)

	// Review event related methods.
	CreateReviewEvent(ctx context.Context, create *ReviewEvent) (*ReviewEvent, error)
	CountReviewEvents(ctx context.Context, find *FindReviewEvent) (int64, error)

	// Food calorie table related methods.
	UpsertFoodCalorie(ctx context.Context, upsert *FoodCalorie) (*FoodCalorie, error)
	ListFoodCalories(ctx context.Context, find *FindFoodCalorie) ([]*FoodCalorie, error)

	// Chunk embedding related methods. Vector search requires PostgreSQL with
	// the pgvector extension; the SQLite driver rejects these operations.
	UpsertChunkEmbedding(ctx context.Context, upsert *ChunkEmbedding) (*ChunkEmbedding, error)
	ListChunkEmbeddings(ctx context.Context, find *FindChunkEmbedding) ([]*ChunkEmbedding, error)
	DeleteChunkEmbeddings(ctx context.Context, model string) error
	SearchChunkEmbeddings(ctx context.Context, opts *SearchChunksOptions) ([]*ChunkWithDistance, error)
}

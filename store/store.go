package store

import (
	"context"

	"github.com/burnout-fit/burnout/internal/profile"
)

// Store provides database access to all raw objects.
type Store struct {
	profile *profile.Profile
	driver  Driver
}

// New creates a new instance of Store.
func New(driver Driver, profile *profile.Profile) *Store {
	return &Store{
		driver:  driver,
		profile: profile,
	}
}

func (s *Store) GetDriver() Driver {
	return s.driver
}

func (s *Store) Close() error {
	return s.driver.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	return s.driver.Migrate(ctx)
}

func (s *Store) CreateCalorieEntry(ctx context.Context, create *CalorieEntry) (*CalorieEntry, error) {
	return s.driver.CreateCalorieEntry(ctx, create)
}

func (s *Store) ListCalorieEntries(ctx context.Context, find *FindCalorieEntry) ([]*CalorieEntry, error) {
	return s.driver.ListCalorieEntries(ctx, find)
}

func (s *Store) ListCalorieDayTotals(ctx context.Context, find *FindDayTotals) ([]*DayTotal, error) {
	return s.driver.ListCalorieDayTotals(ctx, find)
}

func (s *Store) CreateWaterEntry(ctx context.Context, create *WaterEntry) (*WaterEntry, error) {
	return s.driver.CreateWaterEntry(ctx, create)
}

func (s *Store) ListWaterEntries(ctx context.Context, find *FindWaterEntry) ([]*WaterEntry, error) {
	return s.driver.ListWaterEntries(ctx, find)
}

func (s *Store) CreateActivityStatus(ctx context.Context, create *ActivityStatus) (*ActivityStatus, error) {
	return s.driver.CreateActivityStatus(ctx, create)
}

func (s *Store) CountActivityStatuses(ctx context.Context, find *FindActivityStatus) (int64, error) {
	return s.driver.CountActivityStatuses(ctx, find)
}

func (s *Store) CreateReviewEvent(ctx context.Context, create *ReviewEvent) (*ReviewEvent, error) {
	return s.driver.CreateReviewEvent(ctx, create)
}

func (s *Store) CountReviewEvents(ctx context.Context, find *FindReviewEvent) (int64, error) {
	return s.driver.CountReviewEvents(ctx, find)
}

func (s *Store) UpsertFoodCalorie(ctx context.Context, upsert *FoodCalorie) (*FoodCalorie, error) {
	return s.driver.UpsertFoodCalorie(ctx, upsert)
}

func (s *Store) ListFoodCalories(ctx context.Context, find *FindFoodCalorie) ([]*FoodCalorie, error) {
	return s.driver.ListFoodCalories(ctx, find)
}

func (s *Store) UpsertChunkEmbedding(ctx context.Context, upsert *ChunkEmbedding) (*ChunkEmbedding, error) {
	return s.driver.UpsertChunkEmbedding(ctx, upsert)
}

func (s *Store) ListChunkEmbeddings(ctx context.Context, find *FindChunkEmbedding) ([]*ChunkEmbedding, error) {
	return s.driver.ListChunkEmbeddings(ctx, find)
}

func (s *Store) DeleteChunkEmbeddings(ctx context.Context, model string) error {
	return s.driver.DeleteChunkEmbeddings(ctx, model)
}

func (s *Store) SearchChunkEmbeddings(ctx context.Context, opts *SearchChunksOptions) ([]*ChunkWithDistance, error) {
	return s.driver.SearchChunkEmbeddings(ctx, opts)
}

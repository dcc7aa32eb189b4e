package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/burnout-fit/burnout/internal/errors"
	"github.com/burnout-fit/burnout/internal/profile"
	"github.com/burnout-fit/burnout/store"
)

func newTestDriver(t *testing.T) store.Driver {
	t.Helper()

	driver, err := NewDB(&profile.Profile{
		Mode:   "dev",
		Driver: "sqlite",
		DSN:    filepath.Join(t.TempDir(), "burnout_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close() })

	require.NoError(t, driver.Migrate(context.Background()))
	return driver
}

func TestMigrateIsIdempotent(t *testing.T) {
	driver := newTestDriver(t)
	require.NoError(t, driver.Migrate(context.Background()))
}

func TestCalorieDayTotals(t *testing.T) {
	ctx := context.Background()
	driver := newTestDriver(t)

	entries := []*store.CalorieEntry{
		{OwnerID: 1, Day: "2025-03-01", Calories: 900, Burnout: 300},
		{OwnerID: 1, Day: "2025-03-01", Calories: 1070, Burnout: 200},
		{OwnerID: 1, Day: "2025-03-02", Calories: 500, Burnout: 2000},
		// Another owner, must not leak into owner 1's totals.
		{OwnerID: 2, Day: "2025-03-01", Calories: 9999, Burnout: 9999},
	}
	for _, entry := range entries {
		_, err := driver.CreateCalorieEntry(ctx, entry)
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
		assert.NotZero(t, entry.CreatedTs)
	}

	totals, err := driver.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: 1,
		Metric:  store.MetricCalories,
	})
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, &store.DayTotal{Day: "2025-03-01", Total: 1970}, totals[0])
	assert.Equal(t, &store.DayTotal{Day: "2025-03-02", Total: 500}, totals[1])

	one := 1
	top, err := driver.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: 1,
		Metric:  store.MetricBurnout,
		Order:   store.SortByTotalDesc,
		Limit:   &one,
	})
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, &store.DayTotal{Day: "2025-03-02", Total: 2000}, top[0])
}

func TestCalorieDayTotalsTieBreaksToEarliestDay(t *testing.T) {
	ctx := context.Background()
	driver := newTestDriver(t)

	for _, day := range []string{"2025-03-09", "2025-03-03", "2025-03-06"} {
		_, err := driver.CreateCalorieEntry(ctx, &store.CalorieEntry{OwnerID: 1, Day: day, Calories: 1500})
		require.NoError(t, err)
	}

	one := 1
	top, err := driver.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: 1,
		Metric:  store.MetricCalories,
		Order:   store.SortByTotalDesc,
		Limit:   &one,
	})
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "2025-03-03", top[0].Day)
}

func TestCalorieDayTotalsDayRange(t *testing.T) {
	ctx := context.Background()
	driver := newTestDriver(t)

	for day, calories := range map[string]int32{
		"2025-03-01": 100,
		"2025-03-05": 200,
		"2025-03-09": 300,
	} {
		_, err := driver.CreateCalorieEntry(ctx, &store.CalorieEntry{OwnerID: 1, Day: day, Calories: calories})
		require.NoError(t, err)
	}

	gte, lte := "2025-03-02", "2025-03-08"
	totals, err := driver.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: 1,
		Metric:  store.MetricCalories,
		DayGTE:  &gte,
		DayLTE:  &lte,
	})
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, "2025-03-05", totals[0].Day)
}

func TestWaterEntriesKeepRawIntake(t *testing.T) {
	ctx := context.Background()
	driver := newTestDriver(t)

	_, err := driver.CreateWaterEntry(ctx, &store.WaterEntry{OwnerID: 1, Intake: "1200", CreatedTs: 1000})
	require.NoError(t, err)
	_, err = driver.CreateWaterEntry(ctx, &store.WaterEntry{OwnerID: 1, Intake: "not numeric", CreatedTs: 2000})
	require.NoError(t, err)

	ownerID := int32(1)
	entries, err := driver.ListWaterEntries(ctx, &store.FindWaterEntry{OwnerID: &ownerID})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Coercion is the engine's job; the driver stores text verbatim.
	assert.Equal(t, "1200", entries[0].Intake)
	assert.Equal(t, "not numeric", entries[1].Intake)

	gte := int64(1500)
	entries, err = driver.ListWaterEntries(ctx, &store.FindWaterEntry{OwnerID: &ownerID, CreatedTsGTE: &gte})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestActivityAndReviewCounts(t *testing.T) {
	ctx := context.Background()
	driver := newTestDriver(t)

	for _, status := range []string{
		store.ActivityStatusEnrolled,
		store.ActivityStatusEnrolled,
		store.ActivityStatusCompleted,
	} {
		_, err := driver.CreateActivityStatus(ctx, &store.ActivityStatus{
			OwnerID:  1,
			Activity: "yoga",
			Status:   status,
			Day:      "2025-03-01",
		})
		require.NoError(t, err)
	}
	_, err := driver.CreateReviewEvent(ctx, &store.ReviewEvent{OwnerID: 1, Comment: "great course"})
	require.NoError(t, err)

	ownerID := int32(1)
	enrolled := store.ActivityStatusEnrolled
	count, err := driver.CountActivityStatuses(ctx, &store.FindActivityStatus{OwnerID: &ownerID, Status: &enrolled})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	completed := store.ActivityStatusCompleted
	count, err = driver.CountActivityStatuses(ctx, &store.FindActivityStatus{OwnerID: &ownerID, Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = driver.CountReviewEvents(ctx, &store.FindReviewEvent{OwnerID: &ownerID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFoodCalorieUpsert(t *testing.T) {
	ctx := context.Background()
	driver := newTestDriver(t)

	_, err := driver.UpsertFoodCalorie(ctx, &store.FoodCalorie{Food: "apple", Calories: "52"})
	require.NoError(t, err)
	_, err = driver.UpsertFoodCalorie(ctx, &store.FoodCalorie{Food: "apple", Calories: "55"})
	require.NoError(t, err)

	foods, err := driver.ListFoodCalories(ctx, &store.FindFoodCalorie{})
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "55", foods[0].Calories)
}

func TestChunkEmbeddingsUnsupported(t *testing.T) {
	ctx := context.Background()
	driver := newTestDriver(t)

	_, err := driver.UpsertChunkEmbedding(ctx, &store.ChunkEmbedding{Content: "x"})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnsupported))

	_, err = driver.SearchChunkEmbeddings(ctx, &store.SearchChunksOptions{})
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeUnsupported))

	// Delete is a no-op so re-ingestion works on any driver.
	assert.NoError(t, driver.DeleteChunkEmbeddings(ctx, "any-model"))
}

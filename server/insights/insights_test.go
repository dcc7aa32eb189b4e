package insights

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/burnout-fit/burnout/internal/errors"
	"github.com/burnout-fit/burnout/store"
)

// fakeStore serves the engine's query surface from in-memory fixtures.
type fakeStore struct {
	enrolled  int64
	completed int64
	reviews   int64

	calorieTotals []*store.DayTotal
	burnoutTotals []*store.DayTotal
	waterEntries  []*store.WaterEntry
}

func (f *fakeStore) CountActivityStatuses(_ context.Context, find *store.FindActivityStatus) (int64, error) {
	if find.Status != nil && *find.Status == store.ActivityStatusCompleted {
		return f.completed, nil
	}
	return f.enrolled, nil
}

func (f *fakeStore) CountReviewEvents(_ context.Context, _ *store.FindReviewEvent) (int64, error) {
	return f.reviews, nil
}

func (f *fakeStore) ListCalorieDayTotals(_ context.Context, find *store.FindDayTotals) ([]*store.DayTotal, error) {
	source := f.calorieTotals
	if find.Metric == store.MetricBurnout {
		source = f.burnoutTotals
	}

	totals := []*store.DayTotal{}
	for _, total := range source {
		if find.DayGTE != nil && total.Day < *find.DayGTE {
			continue
		}
		if find.DayLTE != nil && total.Day > *find.DayLTE {
			continue
		}
		totals = append(totals, total)
	}

	sort.SliceStable(totals, func(a, b int) bool {
		switch find.Order {
		case store.SortByTotalAsc:
			if totals[a].Total != totals[b].Total {
				return totals[a].Total < totals[b].Total
			}
		case store.SortByTotalDesc:
			if totals[a].Total != totals[b].Total {
				return totals[a].Total > totals[b].Total
			}
		}
		return totals[a].Day < totals[b].Day
	})

	if find.Limit != nil && *find.Limit < len(totals) {
		totals = totals[:*find.Limit]
	}
	return totals, nil
}

func (f *fakeStore) ListWaterEntries(_ context.Context, find *store.FindWaterEntry) ([]*store.WaterEntry, error) {
	entries := []*store.WaterEntry{}
	for _, entry := range f.waterEntries {
		if find.CreatedTsGTE != nil && entry.CreatedTs < *find.CreatedTsGTE {
			continue
		}
		if find.CreatedTsLT != nil && entry.CreatedTs >= *find.CreatedTsLT {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func newTestEngine(f *fakeStore) *Engine {
	engine := NewEngine(f)
	// Frozen clock: window is 2025-03-25 .. 2025-03-31.
	engine.now = func() time.Time {
		return time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	}
	return engine
}

func cardByName(t *testing.T, cards []*Card, name string) *Card {
	t.Helper()
	for _, card := range cards {
		if card.Name == name {
			return card
		}
	}
	t.Fatalf("card %q not found", name)
	return nil
}

func TestComputeInsightsCardOrder(t *testing.T) {
	engine := newTestEngine(&fakeStore{})

	cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cards, 12)

	wantOrder := []string{
		CardCoursesEnrolled, CardCoursesCompleted, CardReviewsSubmitted,
		CardMaxCalorie, CardMinCalorie, CardAvgCalorie,
		CardMaxWater, CardMinWater, CardAvgWater,
		CardMaxBurnout, CardMinBurnout, CardAvgBurnout,
	}
	for i, name := range wantOrder {
		assert.Equal(t, name, cards[i].Name)
	}
}

func TestComputeInsightsEmptyOwner(t *testing.T) {
	engine := newTestEngine(&fakeStore{})

	cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "No worries. Let's get enrolled in your favorite course !", cardByName(t, cards, CardCoursesEnrolled).Description)
	assert.Empty(t, cardByName(t, cards, CardCoursesCompleted).Description)
	assert.Equal(t, "It's never late to submit your review", cardByName(t, cards, CardReviewsSubmitted).Description)

	for _, name := range []string{CardMaxCalorie, CardMinCalorie, CardAvgCalorie} {
		card := cardByName(t, cards, name)
		assert.Zero(t, card.Data)
		assert.Equal(t, "No records on Calorie Intake", card.Description)
	}
	for _, name := range []string{CardMaxWater, CardMinWater, CardAvgWater} {
		card := cardByName(t, cards, name)
		assert.Zero(t, card.Data)
		assert.Equal(t, "No records on Water Intake", card.Description)
	}
	for _, name := range []string{CardMaxBurnout, CardMinBurnout, CardAvgBurnout} {
		card := cardByName(t, cards, name)
		assert.Zero(t, card.Data)
		assert.Equal(t, "No records on Burnout", card.Description)
	}
}

func TestCompletionRateMessages(t *testing.T) {
	tests := []struct {
		name      string
		enrolled  int64
		completed int64
		want      string
	}{
		{"no enrollments", 0, 0, ""},
		{"nothing completed", 1, 0, "No worries. Let's get your first course completed"},
		{"all completed", 1, 1, "Completed 100.0% of the courses enrolled in"},
		{"half completed", 2, 1, "Completed 50.0% of the courses enrolled in"},
		{"third completed", 3, 1, "Completed 33.33333333333333% of the courses enrolled in"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(&fakeStore{enrolled: tt.enrolled, completed: tt.completed})
			cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cardByName(t, cards, CardCoursesCompleted).Description)
		})
	}
}

func TestCalorieExtremumCards(t *testing.T) {
	engine := newTestEngine(&fakeStore{
		calorieTotals: []*store.DayTotal{
			{Day: "2025-03-01", Total: 1970},
			{Day: "2025-03-02", Total: 500},
		},
	})

	cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)

	maxCard := cardByName(t, cards, CardMaxCalorie)
	assert.Equal(t, int64(1970), maxCard.Data)
	assert.Equal(t, "On March 01, 2025", maxCard.Description)

	minCard := cardByName(t, cards, CardMinCalorie)
	assert.Equal(t, int64(500), minCard.Data)
	assert.Equal(t, "On March 02, 2025", minCard.Description)
}

func TestAverageCardBands(t *testing.T) {
	tests := []struct {
		name   string
		totals []int64
		want   string
		mean   int64
	}{
		{"in band", []int64{2000, 2027}, "It is always good to maintain around 2000 calories per day", 2013},
		{"below band", []int64{1101}, "Recommended 2000 calories in a day", 1101},
		{"above band", []int64{5000}, "Recommended 2000 calories in a day", 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := make([]*store.DayTotal, len(tt.totals))
			for i, total := range tt.totals {
				totals[i] = &store.DayTotal{Day: time.Date(2025, 3, i+1, 0, 0, 0, 0, time.UTC).Format(dayLayout), Total: total}
			}
			engine := newTestEngine(&fakeStore{calorieTotals: totals})

			cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
			require.NoError(t, err)

			avgCard := cardByName(t, cards, CardAvgCalorie)
			assert.Equal(t, tt.mean, avgCard.Data)
			assert.Equal(t, tt.want, avgCard.Description)
		})
	}
}

func TestBurnoutAverageBand(t *testing.T) {
	engine := newTestEngine(&fakeStore{
		burnoutTotals: []*store.DayTotal{{Day: "2025-03-01", Total: 2000}},
	})

	cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "You are doing great !", cardByName(t, cards, CardAvgBurnout).Description)
}

func TestWaterCardsSumPerDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	engine := newTestEngine(&fakeStore{
		waterEntries: []*store.WaterEntry{
			{OwnerID: 1, Intake: "1000", CreatedTs: day.Unix()},
			{OwnerID: 1, Intake: "1500", CreatedTs: day.Add(6 * time.Hour).Unix()},
			{OwnerID: 1, Intake: "700", CreatedTs: day.AddDate(0, 0, 1).Unix()},
		},
	})

	cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)

	maxCard := cardByName(t, cards, CardMaxWater)
	assert.Equal(t, int64(2500), maxCard.Data)
	assert.Equal(t, "On March 10, 2025", maxCard.Description)

	minCard := cardByName(t, cards, CardMinWater)
	assert.Equal(t, int64(700), minCard.Data)
	assert.Equal(t, "On March 11, 2025", minCard.Description)

	// mean of 2500 and 700 is 1600, below the water band.
	avgCard := cardByName(t, cards, CardAvgWater)
	assert.Equal(t, int64(1600), avgCard.Data)
	assert.Equal(t, "Recommended 2-3 litres of water in a day", avgCard.Description)
}

func TestWaterCardsPropagateDataError(t *testing.T) {
	engine := newTestEngine(&fakeStore{
		waterEntries: []*store.WaterEntry{
			{OwnerID: 1, Intake: "two litres", CreatedTs: time.Now().Unix()},
		},
	})

	_, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeDataError))
}

func TestExtremumTieBreaksToEarliestDay(t *testing.T) {
	engine := newTestEngine(&fakeStore{
		calorieTotals: []*store.DayTotal{
			{Day: "2025-03-05", Total: 1200},
			{Day: "2025-03-02", Total: 1200},
		},
	})

	cards, _, _, _, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "On March 02, 2025", cardByName(t, cards, CardMaxCalorie).Description)
}

func TestComputeInsightsIsIdempotent(t *testing.T) {
	engine := newTestEngine(&fakeStore{
		enrolled: 2, completed: 1, reviews: 3,
		calorieTotals: []*store.DayTotal{{Day: "2025-03-01", Total: 1970}},
	})

	first, w1, c1, b1, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)
	second, w2, c2, b2, err := engine.ComputeInsights(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, w1, w2)
	assert.Equal(t, c1, c2)
	assert.Equal(t, b1, b2)
}

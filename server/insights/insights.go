package insights

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/burnout-fit/burnout/internal/errors"
	"github.com/burnout-fit/burnout/store"
)

// Card is one labeled scalar metric on the insights dashboard.
type Card struct {
	Name        string `json:"name"`
	Data        int64  `json:"data"`
	Description string `json:"description"`
}

// Store is the narrow query surface the engine needs.
type Store interface {
	CountActivityStatuses(ctx context.Context, find *store.FindActivityStatus) (int64, error)
	CountReviewEvents(ctx context.Context, find *store.FindReviewEvent) (int64, error)
	ListCalorieDayTotals(ctx context.Context, find *store.FindDayTotals) ([]*store.DayTotal, error)
	ListWaterEntries(ctx context.Context, find *store.FindWaterEntry) ([]*store.WaterEntry, error)
}

// Engine computes insight cards and chart series for one owner at a
// time. It holds no per-owner state and is safe for concurrent use.
type Engine struct {
	store Store
	now   func() time.Time
}

func NewEngine(s Store) *Engine {
	return &Engine{store: s, now: time.Now}
}

// ComputeInsights returns the 12 cards in their fixed dashboard order
// plus the water, calorie and burnout 7-day chart series.
func (e *Engine) ComputeInsights(ctx context.Context, ownerID int32) ([]*Card, *ChartData, *ChartData, *ChartData, error) {
	cards := make([]*Card, 0, 12)

	courseCards, err := e.courseCards(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cards = append(cards, courseCards...)

	calorieCards, err := e.metricCards(ctx, ownerID, store.MetricCalories, CardMaxCalorie, CardMinCalorie, CardAvgCalorie, calorieBand)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cards = append(cards, calorieCards...)

	waterCards, err := e.waterCards(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cards = append(cards, waterCards...)

	burnoutCards, err := e.metricCards(ctx, ownerID, store.MetricBurnout, CardMaxBurnout, CardMinBurnout, CardAvgBurnout, burnoutBand)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	cards = append(cards, burnoutCards...)

	waterChart := e.waterChart(ctx, ownerID)
	calorieChart := e.metricChart(ctx, ownerID, store.MetricCalories)
	burnoutChart := e.metricChart(ctx, ownerID, store.MetricBurnout)

	return cards, waterChart, calorieChart, burnoutChart, nil
}

func (e *Engine) courseCards(ctx context.Context, ownerID int32) ([]*Card, error) {
	enrolled, err := e.countStatuses(ctx, ownerID, store.ActivityStatusEnrolled)
	if err != nil {
		return nil, err
	}
	completed, err := e.countStatuses(ctx, ownerID, store.ActivityStatusCompleted)
	if err != nil {
		return nil, err
	}
	reviews, err := e.store.CountReviewEvents(ctx, &store.FindReviewEvent{OwnerID: &ownerID})
	if err != nil {
		return nil, err
	}

	enrolledCard := &Card{Name: CardCoursesEnrolled, Data: enrolled}
	if enrolled == 0 {
		enrolledCard.Description = msgEnrollNudge
	}

	completedCard := &Card{Name: CardCoursesCompleted, Data: completed}
	switch {
	case enrolled == 0:
		// Covered by the enrolled card's zero-state message.
	case completed == 0:
		completedCard.Description = msgCompleteNudge
	default:
		rate := float64(completed) / float64(enrolled) * 100
		completedCard.Description = "Completed " + formatRate(rate) + "% of the courses enrolled in"
	}

	reviewsCard := &Card{Name: CardReviewsSubmitted, Data: reviews}
	if reviews == 0 {
		reviewsCard.Description = msgReviewNudge
	}

	return []*Card{enrolledCard, completedCard, reviewsCard}, nil
}

func (e *Engine) countStatuses(ctx context.Context, ownerID int32, status string) (int64, error) {
	return e.store.CountActivityStatuses(ctx, &store.FindActivityStatus{
		OwnerID: &ownerID,
		Status:  &status,
	})
}

// metricCards builds the max/min/avg cards for calories or burnout.
// Day totals come pre-summed from the store.
func (e *Engine) metricCards(ctx context.Context, ownerID int32, metric store.Metric, maxName, minName, avgName string, b band) ([]*Card, error) {
	one := 1

	maxTotals, err := e.store.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: ownerID,
		Metric:  metric,
		Order:   store.SortByTotalDesc,
		Limit:   &one,
	})
	if err != nil {
		return nil, err
	}
	maxCard, err := extremumCard(maxName, maxTotals, b.noRecord)
	if err != nil {
		return nil, err
	}

	minTotals, err := e.store.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: ownerID,
		Metric:  metric,
		Order:   store.SortByTotalAsc,
		Limit:   &one,
	})
	if err != nil {
		return nil, err
	}
	minCard, err := extremumCard(minName, minTotals, b.noRecord)
	if err != nil {
		return nil, err
	}

	allTotals, err := e.store.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: ownerID,
		Metric:  metric,
	})
	if err != nil {
		return nil, err
	}
	avgCard := averageCard(avgName, allTotals, b)

	return []*Card{maxCard, minCard, avgCard}, nil
}

// waterCards sums intake per day in Go because stored intake values
// are strings and coercion failures must surface as data errors.
func (e *Engine) waterCards(ctx context.Context, ownerID int32) ([]*Card, error) {
	totals, err := e.waterDayTotals(ctx, ownerID, nil, nil)
	if err != nil {
		return nil, err
	}

	maxCard, err := extremumCard(CardMaxWater, pickExtremum(totals, true), msgNoWaterRecords)
	if err != nil {
		return nil, err
	}
	minCard, err := extremumCard(CardMinWater, pickExtremum(totals, false), msgNoWaterRecords)
	if err != nil {
		return nil, err
	}
	avgCard := averageCard(CardAvgWater, totals, waterBand)

	return []*Card{maxCard, minCard, avgCard}, nil
}

// waterDayTotals groups the owner's water entries by UTC calendar day.
// Results are sorted by day ascending.
func (e *Engine) waterDayTotals(ctx context.Context, ownerID int32, createdTsGTE, createdTsLT *int64) ([]*store.DayTotal, error) {
	entries, err := e.store.ListWaterEntries(ctx, &store.FindWaterEntry{
		OwnerID:      &ownerID,
		CreatedTsGTE: createdTsGTE,
		CreatedTsLT:  createdTsLT,
	})
	if err != nil {
		return nil, err
	}

	byDay := map[string]int64{}
	for _, entry := range entries {
		intake, err := parseIntake(entry.Intake)
		if err != nil {
			return nil, err
		}
		day := time.Unix(entry.CreatedTs, 0).UTC().Format(dayLayout)
		byDay[day] += intake
	}

	totals := make([]*store.DayTotal, 0, len(byDay))
	for day, total := range byDay {
		totals = append(totals, &store.DayTotal{Day: day, Total: total})
	}
	sort.Slice(totals, func(a, b int) bool { return totals[a].Day < totals[b].Day })
	return totals, nil
}

// parseIntake coerces a stored water intake to an integer. Intake is
// persisted as text, so a non-numeric value is a data error.
func parseIntake(raw string) (int64, error) {
	intake, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperrors.DataError("non-numeric water intake "+strconv.Quote(raw), err)
	}
	return intake, nil
}

// pickExtremum selects the day with the largest (or smallest) total,
// breaking ties toward the earliest day. Input must be day-ascending.
func pickExtremum(totals []*store.DayTotal, max bool) []*store.DayTotal {
	if len(totals) == 0 {
		return nil
	}
	best := totals[0]
	for _, total := range totals[1:] {
		if max && total.Total > best.Total {
			best = total
		}
		if !max && total.Total < best.Total {
			best = total
		}
	}
	return []*store.DayTotal{best}
}

// extremumCard builds a max/min card from the store's top-1 result.
// A missing or non-positive total reports zero with a no-records note.
func extremumCard(name string, totals []*store.DayTotal, noRecordMsg string) (*Card, error) {
	if len(totals) == 0 || totals[0].Total <= 0 {
		return &Card{Name: name, Data: 0, Description: noRecordMsg}, nil
	}

	formatted, err := FormatLongDate(totals[0].Day)
	if err != nil {
		return nil, err
	}
	return &Card{
		Name:        name,
		Data:        totals[0].Total,
		Description: "On " + formatted,
	}, nil
}

// averageCard reports floor(mean of the per-day totals). The floored
// mean is used for both the displayed value and the band test.
func averageCard(name string, totals []*store.DayTotal, b band) *Card {
	if len(totals) == 0 {
		return &Card{Name: name, Data: 0, Description: b.noRecord}
	}

	var sum int64
	for _, total := range totals {
		sum += total.Total
	}
	mean := int64(math.Floor(float64(sum) / float64(len(totals))))
	if mean <= 0 {
		return &Card{Name: name, Data: 0, Description: b.noRecord}
	}

	return &Card{Name: name, Data: mean, Description: b.classify(mean)}
}

// formatRate renders a completion percentage the way the dashboard has
// always shown it: integral values keep one decimal place ("100.0"),
// fractional values print in full.
func formatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

package insights

import (
	"context"
	"time"

	"github.com/burnout-fit/burnout/store"
)

// ChartData is a dense 7-point daily series. A computation failure is
// reported through Error instead of failing the whole insights page.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
	Error  string   `json:"error,omitempty"`
}

const chartDays = 7

// chartWindow returns the trailing 7-day window ending yesterday. The
// reference clock is UTC minus 4 hours so a day rolls over only once
// it has fully elapsed in the dashboard's home timezone.
func (e *Engine) chartWindow() (start, end time.Time) {
	end = e.now().UTC().Add(-4 * time.Hour).AddDate(0, 0, -1)
	start = end.AddDate(0, 0, -(chartDays - 1))
	return start, end
}

func windowLabels(start time.Time) []string {
	labels := make([]string, 0, chartDays)
	for i := 0; i < chartDays; i++ {
		labels = append(labels, start.AddDate(0, 0, i).Format(dayLayout))
	}
	return labels
}

// fillSeries aligns per-day totals to the window labels, zero-filling
// days with no records.
func fillSeries(labels []string, totals []*store.DayTotal) []int64 {
	byDay := make(map[string]int64, len(totals))
	for _, total := range totals {
		byDay[total.Day] += total.Total
	}

	values := make([]int64, len(labels))
	for i, label := range labels {
		values[i] = byDay[label]
	}
	return values
}

// metricChart builds the calorie or burnout series. Day totals are
// summed in the store over the stored calendar-day field.
func (e *Engine) metricChart(ctx context.Context, ownerID int32, metric store.Metric) *ChartData {
	start, end := e.chartWindow()
	labels := windowLabels(start)

	dayGTE, dayLTE := start.Format(dayLayout), end.Format(dayLayout)
	totals, err := e.store.ListCalorieDayTotals(ctx, &store.FindDayTotals{
		OwnerID: ownerID,
		Metric:  metric,
		DayGTE:  &dayGTE,
		DayLTE:  &dayLTE,
	})
	if err != nil {
		return &ChartData{Error: err.Error()}
	}

	return &ChartData{Labels: labels, Values: fillSeries(labels, totals)}
}

// waterChart builds the water series. Entries are grouped by the UTC
// calendar day of their timestamp; a malformed intake surfaces through
// the Error field rather than failing the page.
func (e *Engine) waterChart(ctx context.Context, ownerID int32) *ChartData {
	start, end := e.chartWindow()
	labels := windowLabels(start)

	windowStart := startOfDay(start).Unix()
	windowEnd := startOfDay(end).AddDate(0, 0, 1).Unix()
	totals, err := e.waterDayTotals(ctx, ownerID, &windowStart, &windowEnd)
	if err != nil {
		return &ChartData{Error: err.Error()}
	}

	return &ChartData{Labels: labels, Values: fillSeries(labels, totals)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

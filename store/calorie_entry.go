package store

// Metric selects which column of a calorie entry a day-total query sums.
type Metric string

const (
	MetricCalories Metric = "calories"
	MetricBurnout  Metric = "burnout"
)

// SortOrder controls ordering of day-total query results.
type SortOrder string

const (
	// SortByDayAsc orders by calendar day ascending. The default.
	SortByDayAsc SortOrder = "day_asc"
	// SortByTotalAsc orders by daily total ascending, earliest day first on ties.
	SortByTotalAsc SortOrder = "total_asc"
	// SortByTotalDesc orders by daily total descending, earliest day first on ties.
	SortByTotalDesc SortOrder = "total_desc"
)

// CalorieEntry is one logged calorie/burnout record. Entries are append-only;
// multiple entries on the same day are summed per day before aggregation.
type CalorieEntry struct {
	ID      int32
	OwnerID int32
	// Day is the calendar day of the record, "YYYY-MM-DD", no time component.
	Day       string
	Calories  int32
	Burnout   int32
	CreatedTs int64
}

type FindCalorieEntry struct {
	OwnerID *int32
	Day     *string
}

// DayTotal is the sum of one metric across all entries of a calendar day.
type DayTotal struct {
	Day   string
	Total int64
}

// FindDayTotals describes a group-by-day sum query over calorie entries.
// Day bounds are compared as strings; ISO dates sort chronologically.
type FindDayTotals struct {
	OwnerID int32
	Metric  Metric
	DayGTE  *string
	DayLTE  *string
	Order   SortOrder
	Limit   *int
}

package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/store"
)

func (d *DB) CreateCalorieEntry(ctx context.Context, create *store.CalorieEntry) (*store.CalorieEntry, error) {
	fields := []string{"owner_id", "day", "calories", "burnout"}
	args := []any{create.OwnerID, create.Day, create.Calories, create.Burnout}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO calorie_entry (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to create calorie entry")
	}

	return create, nil
}

func (d *DB) ListCalorieEntries(ctx context.Context, find *store.FindCalorieEntry) ([]*store.CalorieEntry, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.OwnerID; v != nil {
		where, args = append(where, "owner_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Day; v != nil {
		where, args = append(where, "day = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, owner_id, day, calories, burnout, created_ts
		FROM calorie_entry
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY day ASC, id ASC
	`
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calorie entries")
	}
	defer rows.Close()

	list := []*store.CalorieEntry{}
	for rows.Next() {
		var entry store.CalorieEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.OwnerID,
			&entry.Day,
			&entry.Calories,
			&entry.Burnout,
			&entry.CreatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan calorie entry")
		}
		list = append(list, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) ListCalorieDayTotals(ctx context.Context, find *store.FindDayTotals) ([]*store.DayTotal, error) {
	var sumColumn string
	switch find.Metric {
	case store.MetricCalories:
		sumColumn = "calories"
	case store.MetricBurnout:
		sumColumn = "burnout"
	default:
		return nil, errors.Errorf("unknown day totals metric: %q", find.Metric)
	}

	where, args := []string{"owner_id = $1"}, []any{find.OwnerID}
	if v := find.DayGTE; v != nil {
		where, args = append(where, "day >= "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.DayLTE; v != nil {
		where, args = append(where, "day <= "+placeholder(len(args)+1)), append(args, *v)
	}

	// Ties on total always break toward the earliest day.
	orderBy := "day ASC"
	switch find.Order {
	case store.SortByTotalAsc:
		orderBy = "total ASC, day ASC"
	case store.SortByTotalDesc:
		orderBy = "total DESC, day ASC"
	}

	query := `
		SELECT day, SUM(` + sumColumn + `) AS total
		FROM calorie_entry
		WHERE ` + strings.Join(where, " AND ") + `
		GROUP BY day
		ORDER BY ` + orderBy
	if v := find.Limit; v != nil {
		args = append(args, *v)
		query += "\n\t\tLIMIT " + placeholder(len(args))
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list calorie day totals")
	}
	defer rows.Close()

	list := []*store.DayTotal{}
	for rows.Next() {
		var total store.DayTotal
		if err := rows.Scan(&total.Day, &total.Total); err != nil {
			return nil, errors.Wrap(err, "failed to scan day total")
		}
		list = append(list, &total)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

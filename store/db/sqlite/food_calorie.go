package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/store"
)

func (d *DB) UpsertFoodCalorie(ctx context.Context, upsert *store.FoodCalorie) (*store.FoodCalorie, error) {
	stmt := `
		INSERT INTO food_calorie (food, calories)
		VALUES (` + placeholders(2) + `)
		ON CONFLICT (food)
		DO UPDATE SET calories = EXCLUDED.calories
		RETURNING id
	`
	if err := d.db.QueryRowContext(ctx, stmt, upsert.Food, upsert.Calories).Scan(&upsert.ID); err != nil {
		return nil, errors.Wrap(err, "failed to upsert food calorie")
	}
	return upsert, nil
}

func (d *DB) ListFoodCalories(ctx context.Context, find *store.FindFoodCalorie) ([]*store.FoodCalorie, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.Food; v != nil {
		where, args = append(where, "food = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, food, calories
		FROM food_calorie
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY food ASC
	`
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food calories")
	}
	defer rows.Close()

	list := []*store.FoodCalorie{}
	for rows.Next() {
		var food store.FoodCalorie
		if err := rows.Scan(&food.ID, &food.Food, &food.Calories); err != nil {
			return nil, errors.Wrap(err, "failed to scan food calorie")
		}
		list = append(list, &food)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

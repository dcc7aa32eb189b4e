package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/store"
)

func (d *DB) CreateWaterEntry(ctx context.Context, create *store.WaterEntry) (*store.WaterEntry, error) {
	fields := []string{"owner_id", "intake"}
	args := []any{create.OwnerID, create.Intake}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO water_entry (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to create water entry")
	}

	return create, nil
}

func (d *DB) ListWaterEntries(ctx context.Context, find *store.FindWaterEntry) ([]*store.WaterEntry, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.OwnerID; v != nil {
		where, args = append(where, "owner_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CreatedTsGTE; v != nil {
		where, args = append(where, "created_ts >= "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CreatedTsLT; v != nil {
		where, args = append(where, "created_ts < "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, owner_id, intake, created_ts
		FROM water_entry
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_ts ASC, id ASC
	`
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list water entries")
	}
	defer rows.Close()

	list := []*store.WaterEntry{}
	for rows.Next() {
		var entry store.WaterEntry
		if err := rows.Scan(&entry.ID, &entry.OwnerID, &entry.Intake, &entry.CreatedTs); err != nil {
			return nil, errors.Wrap(err, "failed to scan water entry")
		}
		list = append(list, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

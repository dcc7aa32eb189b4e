package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/store"
)

func (d *DB) CreateActivityStatus(ctx context.Context, create *store.ActivityStatus) (*store.ActivityStatus, error) {
	fields := []string{"owner_id", "activity", "status", "day"}
	args := []any{create.OwnerID, create.Activity, create.Status, create.Day}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO activity_status (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to create activity status")
	}

	return create, nil
}

func (d *DB) CountActivityStatuses(ctx context.Context, find *store.FindActivityStatus) (int64, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.OwnerID; v != nil {
		where, args = append(where, "owner_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Activity; v != nil {
		where, args = append(where, "activity = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Status; v != nil {
		where, args = append(where, "status = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT COUNT(*) FROM activity_status WHERE ` + strings.Join(where, " AND ")

	var count int64
	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count activity statuses")
	}
	return count, nil
}

func (d *DB) CreateReviewEvent(ctx context.Context, create *store.ReviewEvent) (*store.ReviewEvent, error) {
	fields := []string{"owner_id", "comment"}
	args := []any{create.OwnerID, create.Comment}

	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO review_event (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`
	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(&create.ID, &create.CreatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to create review event")
	}

	return create, nil
}

func (d *DB) CountReviewEvents(ctx context.Context, find *store.FindReviewEvent) (int64, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.OwnerID; v != nil {
		where, args = append(where, "owner_id = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT COUNT(*) FROM review_event WHERE ` + strings.Join(where, " AND ")

	var count int64
	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count review events")
	}
	return count, nil
}

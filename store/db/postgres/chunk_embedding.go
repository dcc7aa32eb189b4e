package postgres

import (
	"context"
	"strings"

	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/store"
)

// UpsertChunkEmbedding inserts or updates one corpus chunk embedding.
func (d *DB) UpsertChunkEmbedding(ctx context.Context, upsert *store.ChunkEmbedding) (*store.ChunkEmbedding, error) {
	stmt := `
		INSERT INTO chunk_embedding (chunk_index, content, model, embedding, created_ts)
		VALUES (` + placeholders(5) + `)
		ON CONFLICT (chunk_index, model)
		DO UPDATE SET
			content = EXCLUDED.content,
			embedding = EXCLUDED.embedding,
			created_ts = EXCLUDED.created_ts
		RETURNING id, created_ts
	`

	vector := pgvector.NewVector(upsert.Embedding)
	if err := d.db.QueryRowContext(ctx, stmt,
		upsert.Position,
		upsert.Content,
		upsert.Model,
		vector,
		upsert.CreatedTs,
	).Scan(&upsert.ID, &upsert.CreatedTs); err != nil {
		return nil, errors.Wrap(err, "failed to upsert chunk embedding")
	}

	return upsert, nil
}

func (d *DB) ListChunkEmbeddings(ctx context.Context, find *store.FindChunkEmbedding) ([]*store.ChunkEmbedding, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.Position; v != nil {
		where, args = append(where, "chunk_index = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Model; v != nil {
		where, args = append(where, "model = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `
		SELECT id, chunk_index, content, model, embedding, created_ts
		FROM chunk_embedding
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY chunk_index ASC
	`
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chunk embeddings")
	}
	defer rows.Close()

	list := []*store.ChunkEmbedding{}
	for rows.Next() {
		var chunk store.ChunkEmbedding
		var vector pgvector.Vector
		if err := rows.Scan(
			&chunk.ID,
			&chunk.Position,
			&chunk.Content,
			&chunk.Model,
			&vector,
			&chunk.CreatedTs,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan chunk embedding")
		}
		chunk.Embedding = vector.Slice()
		list = append(list, &chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) DeleteChunkEmbeddings(ctx context.Context, model string) error {
	stmt := `DELETE FROM chunk_embedding WHERE model = ` + placeholder(1)
	if _, err := d.db.ExecContext(ctx, stmt, model); err != nil {
		return errors.Wrap(err, "failed to delete chunk embeddings")
	}
	return nil
}

// SearchChunkEmbeddings performs nearest-neighbor search over the corpus.
// The <-> operator computes Euclidean (L2) distance.
func (d *DB) SearchChunkEmbeddings(ctx context.Context, opts *store.SearchChunksOptions) ([]*store.ChunkWithDistance, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	vector := pgvector.NewVector(opts.Embedding)
	query := `
		SELECT id, chunk_index, content, model, embedding <-> $1 AS distance
		FROM chunk_embedding
		WHERE model = $2
		ORDER BY distance ASC, chunk_index ASC
		LIMIT $3
	`
	rows, err := d.db.QueryContext(ctx, query, vector, opts.Model, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search chunk embeddings")
	}
	defer rows.Close()

	results := []*store.ChunkWithDistance{}
	for rows.Next() {
		var chunk store.ChunkEmbedding
		var result store.ChunkWithDistance
		if err := rows.Scan(
			&chunk.ID,
			&chunk.Position,
			&chunk.Content,
			&chunk.Model,
			&result.Distance,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan chunk search result")
		}
		result.Chunk = &chunk
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

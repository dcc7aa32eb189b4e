package sqlite

import (
	"context"

	apperrors "github.com/burnout-fit/burnout/internal/errors"
	"github.com/burnout-fit/burnout/store"
)

// SQLite does not support vector search. The chatbot keeps its similarity
// index in memory when running on SQLite; persistent chunk embeddings require
// PostgreSQL with the pgvector extension.

func (d *DB) UpsertChunkEmbedding(ctx context.Context, upsert *store.ChunkEmbedding) (*store.ChunkEmbedding, error) {
	return nil, apperrors.Unsupported("chunk embedding storage requires PostgreSQL with pgvector extension")
}

func (d *DB) ListChunkEmbeddings(ctx context.Context, find *store.FindChunkEmbedding) ([]*store.ChunkEmbedding, error) {
	return nil, apperrors.Unsupported("chunk embedding storage requires PostgreSQL with pgvector extension")
}

// DeleteChunkEmbeddings returns nil so startup re-ingestion works on SQLite.
func (d *DB) DeleteChunkEmbeddings(ctx context.Context, model string) error {
	return nil
}

func (d *DB) SearchChunkEmbeddings(ctx context.Context, opts *store.SearchChunksOptions) ([]*store.ChunkWithDistance, error) {
	return nil, apperrors.Unsupported("vector search requires PostgreSQL with pgvector extension")
}

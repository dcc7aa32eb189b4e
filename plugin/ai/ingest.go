package ai

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/burnout-fit/burnout/store"
)

const (
	// embedBatchSize is the number of chunks sent per embedding request.
	embedBatchSize = 16
	// embedConcurrency caps in-flight embedding requests during ingestion.
	embedConcurrency = 3
)

// embedAll embeds every chunk, preserving order. Batches run
// concurrently up to embedConcurrency.
func embedAll(ctx context.Context, embedder EmbeddingService, chunks []string) ([][]float32, error) {
	vectors := make([][]float32, len(chunks))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(embedConcurrency)

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		start, end := start, end

		eg.Go(func() error {
			batch, err := embedder.EmbedBatch(ctx, chunks[start:end])
			if err != nil {
				return errors.Wrapf(err, "failed to embed chunks %d..%d", start, end)
			}
			copy(vectors[start:], batch)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// BuildFlatIndex embeds the corpus chunks and loads them into an
// in-memory index.
func BuildFlatIndex(ctx context.Context, embedder EmbeddingService, chunks []string) (*FlatIndex, error) {
	index := NewFlatIndex()
	if len(chunks) == 0 {
		return index, nil
	}

	vectors, err := embedAll(ctx, embedder, chunks)
	if err != nil {
		return nil, err
	}
	for i, vector := range vectors {
		if err := index.Add(chunks[i], vector); err != nil {
			return nil, err
		}
	}
	return index, nil
}

// PersistChunks embeds the corpus chunks and replaces the persisted
// embeddings for the embedder's model. Used with pgvector-backed
// deployments so the corpus survives restarts.
func PersistChunks(ctx context.Context, s *store.Store, embedder EmbeddingService, chunks []string) error {
	vectors, err := embedAll(ctx, embedder, chunks)
	if err != nil {
		return err
	}

	if err := s.DeleteChunkEmbeddings(ctx, embedder.Model()); err != nil {
		return errors.Wrap(err, "failed to clear previous chunk embeddings")
	}

	now := time.Now().Unix()
	for i, vector := range vectors {
		if _, err := s.UpsertChunkEmbedding(ctx, &store.ChunkEmbedding{
			Position:  int32(i),
			Content:   chunks[i],
			Model:     embedder.Model(),
			Embedding: vector,
			CreatedTs: now,
		}); err != nil {
			return errors.Wrapf(err, "failed to persist chunk %d", i)
		}
	}
	return nil
}

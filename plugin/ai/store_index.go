package ai

import (
	"context"

	"github.com/pkg/errors"

	"github.com/burnout-fit/burnout/store"
)

// StoreIndex answers nearest-neighbor queries through the pgvector
// backed chunk_embedding table.
type StoreIndex struct {
	store *store.Store
	model string
}

// NewStoreIndex creates a Searcher over persisted chunk embeddings.
func NewStoreIndex(s *store.Store, model string) *StoreIndex {
	return &StoreIndex{store: s, model: model}
}

func (idx *StoreIndex) Search(ctx context.Context, query []float32, k int) ([]SearchResult, error) {
	matches, err := idx.store.SearchChunkEmbeddings(ctx, &store.SearchChunksOptions{
		Embedding: query,
		Model:     idx.model,
		Limit:     k,
	})
	if err != nil {
		return nil, errors.Wrap(err, "store chunk search failed")
	}

	results := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		results = append(results, SearchResult{
			Position: int(match.Chunk.Position),
			Content:  match.Chunk.Content,
			Distance: match.Distance,
		})
	}
	return results, nil
}

package ai

import (
	"context"
	"math"
	"sort"
	"sync"

	apperrors "github.com/burnout-fit/burnout/internal/errors"
)

// SearchResult is one retrieved corpus chunk with its distance to the
// query vector. Smaller distance means closer.
type SearchResult struct {
	Position int
	Content  string
	Distance float64
}

// Searcher answers nearest-neighbor queries over the ingested corpus.
type Searcher interface {
	Search(ctx context.Context, query []float32, k int) ([]SearchResult, error)
}

// FlatIndex is an exact in-memory nearest-neighbor index using
// Euclidean distance. It serves deployments without pgvector.
type FlatIndex struct {
	mu         sync.RWMutex
	dimensions int
	contents   []string
	vectors    [][]float32
}

// NewFlatIndex creates an empty index. The first added vector fixes
// the dimensionality.
func NewFlatIndex() *FlatIndex {
	return &FlatIndex{}
}

// Add appends one chunk and its vector to the index.
func (idx *FlatIndex) Add(content string, vector []float32) error {
	if len(vector) == 0 {
		return apperrors.ShapeMismatch("cannot index an empty vector")
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.dimensions == 0 {
		idx.dimensions = len(vector)
	} else if len(vector) != idx.dimensions {
		return apperrors.ShapeMismatch("vector dimension %d does not match index dimension %d", len(vector), idx.dimensions)
	}

	idx.contents = append(idx.contents, content)
	idx.vectors = append(idx.vectors, vector)
	return nil
}

// Len returns the number of indexed chunks.
func (idx *FlatIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.vectors)
}

// Search returns the k nearest chunks to the query vector. When k
// exceeds the index size, every chunk is returned.
func (idx *FlatIndex) Search(_ context.Context, query []float32, k int) ([]SearchResult, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(idx.vectors) == 0 {
		return nil, nil
	}
	if len(query) != idx.dimensions {
		return nil, apperrors.ShapeMismatch("query dimension %d does not match index dimension %d", len(query), idx.dimensions)
	}
	if k <= 0 {
		return nil, apperrors.InvalidArgument("k must be positive")
	}

	results := make([]SearchResult, 0, len(idx.vectors))
	for i, vector := range idx.vectors {
		results = append(results, SearchResult{
			Position: i,
			Content:  idx.contents[i],
			Distance: euclideanDistance(query, vector),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Distance != results[b].Distance {
			return results[a].Distance < results[b].Distance
		}
		return results[a].Position < results[b].Position
	})

	if k < len(results) {
		results = results[:k]
	}
	return results, nil
}

func euclideanDistance(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

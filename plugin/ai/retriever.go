package ai

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// DefaultRetrievalK is the number of corpus chunks pulled into the
// prompt for each question.
const DefaultRetrievalK = 3

// Retriever turns a question into grounding context for the generator.
type Retriever struct {
	embedder EmbeddingService
	searcher Searcher
	topK     int
}

// NewRetriever creates a Retriever. A non-positive topK falls back to
// DefaultRetrievalK.
func NewRetriever(embedder EmbeddingService, searcher Searcher, topK int) *Retriever {
	if topK <= 0 {
		topK = DefaultRetrievalK
	}
	return &Retriever{
		embedder: embedder,
		searcher: searcher,
		topK:     topK,
	}
}

// RetrieveContext returns the nearest corpus chunks to the question,
// joined into a single context block for the prompt.
func (r *Retriever) RetrieveContext(ctx context.Context, question string) (string, error) {
	query, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return "", errors.Wrap(err, "failed to embed question")
	}

	results, err := r.searcher.Search(ctx, query, r.topK)
	if err != nil {
		return "", errors.Wrap(err, "failed to search corpus")
	}

	contents := make([]string, 0, len(results))
	for _, result := range results {
		contents = append(contents, result.Content)
	}
	return strings.Join(contents, "\n"), nil
}

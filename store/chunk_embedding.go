package store

// ChunkEmbedding is one embedded passage of the chatbot reference corpus.
// Chunks are immutable once built and keep a stable position 0..N-1.
type ChunkEmbedding struct {
	ID        int32
	Position  int32
	Content   string
	Model     string
	Embedding []float32
	CreatedTs int64
}

type FindChunkEmbedding struct {
	Position *int32
	Model    *string
}

// SearchChunksOptions describes a nearest-neighbor query over chunk embeddings.
type SearchChunksOptions struct {
	Embedding []float32
	Model     string
	// Limit may exceed the number of stored chunks; the driver returns all
	// stored chunks in that case.
	Limit int
}

// ChunkWithDistance pairs a chunk with its Euclidean distance to the query.
type ChunkWithDistance struct {
	Chunk    *ChunkEmbedding
	Distance float64
}

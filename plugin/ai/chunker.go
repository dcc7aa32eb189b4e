package ai

import (
	"strings"
	"unicode"
)

const (
	// DefaultChunkSize is the maximum character count per chunk.
	DefaultChunkSize = 500
	// DefaultChunkOverlap is the character count shared between
	// consecutive chunks.
	DefaultChunkOverlap = 50
)

// ChunkText splits text into overlapping chunks for embedding. Each
// chunk is at most size characters; consecutive chunks share roughly
// overlap characters so sentences near a boundary are retrievable from
// either side.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= size {
		return []string{text}
	}

	var chunks []string
	pos := 0
	for pos < len(text) {
		end := pos + size
		if end >= len(text) {
			chunk := strings.TrimSpace(text[pos:])
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
			break
		}

		breakPoint := pos + findBreakPoint(text[pos:end])
		chunk := strings.TrimSpace(text[pos:breakPoint])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := breakPoint - overlap
		// The window must always advance.
		if next <= pos {
			next = breakPoint
		}
		pos = next
	}

	return chunks
}

// ChunkParagraphs chunks each paragraph independently so a chunk never
// spans two unrelated sections of the corpus.
func ChunkParagraphs(paragraphs []string, size, overlap int) []string {
	var chunks []string
	for _, para := range paragraphs {
		chunks = append(chunks, ChunkText(para, size, overlap)...)
	}
	return chunks
}

// findBreakPoint finds a good position to split text, preferring a
// sentence end, then a word boundary, then a hard cut.
func findBreakPoint(text string) int {
	for i := len(text) - 1; i >= len(text)/2; i-- {
		if text[i] == '.' || text[i] == '!' || text[i] == '?' {
			if i == len(text)-1 || unicode.IsSpace(rune(text[i+1])) {
				return i + 1
			}
		}
	}

	for i := len(text) - 1; i >= len(text)/2; i-- {
		if unicode.IsSpace(rune(text[i])) {
			return i
		}
	}

	return len(text)
}

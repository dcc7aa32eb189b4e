package chatbot

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burnout-fit/burnout/plugin/ai"
)

type fakeEmbedder struct{}

func (fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 0}, nil
}

func (fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{1, 0}
	}
	return vectors, nil
}

func (fakeEmbedder) Model() string { return "fake-embedder" }

type fakeSearcher struct {
	results []ai.SearchResult
}

func (f fakeSearcher) Search(_ context.Context, _ []float32, _ int) ([]ai.SearchResult, error) {
	return f.results, nil
}

type fakeGenerator struct {
	answer     string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newTestResponder(gen *fakeGenerator) *Responder {
	retriever := ai.NewRetriever(fakeEmbedder{}, fakeSearcher{
		results: []ai.SearchResult{
			{Position: 0, Content: "Apples contain 52 calories."},
			{Position: 1, Content: "Drink 2-3 litres of water daily."},
		},
	}, 3)
	return NewResponder(retriever, gen)
}

func TestResetTokensReturnMenu(t *testing.T) {
	responder := newTestResponder(&fakeGenerator{answer: "unused"})
	registry := NewRegistry()

	for _, token := range []string{"0", "menu", "start", "reset", "restart", "  MENU  ", "Restart", "\tSTART\n"} {
		session := registry.GetOrCreate("")
		session.SetState(StateQuery)

		reply := responder.Respond(context.Background(), session, token)
		assert.Contains(t, reply, "BurnBot", "token %q", token)
		assert.Equal(t, StateMenu, session.State(), "token %q", token)
	}
}

func TestQueryComposesPromptFromRetrievedContext(t *testing.T) {
	gen := &fakeGenerator{answer: "Apples have about 52 calories."}
	responder := newTestResponder(gen)
	session := NewRegistry().GetOrCreate("")

	reply := responder.Respond(context.Background(), session, "How many calories in an apple?")

	assert.Equal(t, "Apples have about 52 calories.", reply)
	assert.Equal(t, StateQuery, session.State())
	assert.Contains(t, gen.lastPrompt, "Apples contain 52 calories.")
	assert.Contains(t, gen.lastPrompt, "Query: how many calories in an apple?")
	assert.Contains(t, gen.lastPrompt, "fitness assistant")
}

func TestQueryStripsMarkdownEmphasis(t *testing.T) {
	gen := &fakeGenerator{answer: "  **Apples** are *healthy* and ***cheap***.  "}
	responder := newTestResponder(gen)
	session := NewRegistry().GetOrCreate("")

	reply := responder.Respond(context.Background(), session, "tell me about apples")
	assert.Equal(t, "Apples are healthy and cheap.", reply)
}

func TestGeneratorFailureBecomesFriendlyText(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream timeout")}
	responder := newTestResponder(gen)
	session := NewRegistry().GetOrCreate("")

	reply := responder.Respond(context.Background(), session, "any advice?")
	assert.Contains(t, reply, "BurnBot error:")
	assert.Contains(t, reply, "upstream timeout")
}

func TestSessionsAreIsolated(t *testing.T) {
	responder := newTestResponder(&fakeGenerator{answer: "ok"})
	registry := NewRegistry()

	a := registry.GetOrCreate("")
	b := registry.GetOrCreate("")
	require.NotEqual(t, a.ID(), b.ID())

	responder.Respond(context.Background(), a, "a question")
	assert.Equal(t, StateQuery, a.State())
	assert.Equal(t, StateMenu, b.State())

	// A known ID returns the same session.
	assert.Same(t, a, registry.GetOrCreate(a.ID()))
}

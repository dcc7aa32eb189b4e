package chatbot

import (
	"context"
	"regexp"
	"strings"

	"github.com/burnout-fit/burnout/plugin/ai"
)

const menuText = "Hello there! I am BurnBot, and I am here to help you achieve your fitness goals.\n\n" +
	"Select an option below.\n\n" +
	"0. View the menu again.\n" +
	"1. Tell me the food item, and I'll fetch its calorie count for you!\n" +
	"2. Ask a fitness-related question from the document!\n"

// Reset tokens return the menu from any state.
var resetTokens = map[string]struct{}{
	"0":       {},
	"menu":    {},
	"start":   {},
	"reset":   {},
	"restart": {},
}

// Markdown emphasis markers are stripped from generated answers since
// the chat surface renders plain text.
var emphasisRE = regexp.MustCompile(`\*+`)

// Responder routes chat messages: reset tokens show the menu, anything
// else becomes a retrieval-augmented question to the generator. It
// never returns an error; failures become user-visible text so the
// conversation survives.
type Responder struct {
	retriever *ai.Retriever
	generator ai.Generator
}

func NewResponder(retriever *ai.Retriever, generator ai.Generator) *Responder {
	return &Responder{
		retriever: retriever,
		generator: generator,
	}
}

// Respond handles one message within a session.
func (r *Responder) Respond(ctx context.Context, session *Session, query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if _, ok := resetTokens[normalized]; ok {
		session.SetState(StateMenu)
		return menuText
	}

	session.SetState(StateQuery)

	retrieved, err := r.retriever.RetrieveContext(ctx, normalized)
	if err != nil {
		return friendlyError(err)
	}

	answer, err := r.generator.Complete(ctx, composePrompt(retrieved, normalized))
	if err != nil {
		return friendlyError(err)
	}

	return emphasisRE.ReplaceAllString(strings.TrimSpace(answer), "")
}

func composePrompt(retrieved, query string) string {
	var b strings.Builder
	b.WriteString("You are a fitness assistant and your task is to answer user query in polite and concise manner.")
	b.WriteString("Generate a human response for all the queries.\n\n")
	b.WriteString("Use the following context to answer the query asked by the user.\n\n")
	b.WriteString("Context: ")
	b.WriteString(retrieved)
	b.WriteString("\n\nQuery: ")
	b.WriteString(query)
	b.WriteString("\n\nStick to the context and generate response accordingly.")
	b.WriteString("If you don't know the answer, convey that you don't know the answer.")
	return b.String()
}

func friendlyError(err error) string {
	return "BurnBot error: " + err.Error()
}

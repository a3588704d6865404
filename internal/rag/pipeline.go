package rag

import (
	"context"
	"fmt"

	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/session"
)

// Pipeline composes retrieval and generation into one answer operation.
// It is the second layer of defense: whatever either stage does, the caller
// always receives speakable text.
type Pipeline struct {
	retriever Retriever
	generator *Generator
	logger    *observability.Logger
}

// NewPipeline creates a RAG pipeline
func NewPipeline(retriever Retriever, generator *Generator, logger *observability.Logger) *Pipeline {
	return &Pipeline{
		retriever: retriever,
		generator: generator,
		logger:    logger,
	}
}

// Answer retrieves the top-k passages for the query and generates a reply in
// the given language.
func (p *Pipeline) Answer(ctx context.Context, query string, history []session.Turn, lang session.Language, k int) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error(ctx, "Recovered from panic in RAG pipeline", fmt.Errorf("reason: %+v", r))
			reply = FallbackResponse(lang)
		}
	}()

	passages := p.retriever.Retrieve(ctx, query, k)
	p.logger.Debug(ctx, fmt.Sprintf("answering with %d passages", len(passages)))

	return p.generator.Generate(ctx, query, passages, history, lang)
}

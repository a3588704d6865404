package rag

import (
	"context"
	"fmt"
	"strings"

	"voice-assist-server/internal/observability"
	"voice-assist-server/internal/session"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=generator.go -destination=mocks_test.go -package=rag

// TextModel is the generation backend behind the Generator.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// historyWindow is how many trailing turns are included in the prompt.
const historyWindow = 5

// Generator produces one conversational reply from a query, retrieved
// passages, and recent history. Failures never propagate: any backend error
// resolves to a fixed language-appropriate apology.
type Generator struct {
	model  TextModel
	logger *observability.Logger
}

// NewGenerator creates a response generator
func NewGenerator(model TextModel, logger *observability.Logger) *Generator {
	return &Generator{
		model:  model,
		logger: logger,
	}
}

// Generate builds the RAG prompt and invokes the backend.
func (g *Generator) Generate(ctx context.Context, query string, passages []Passage, history []session.Turn, lang session.Language) string {
	prompt := createPrompt(query, buildContext(passages), formatHistory(history), lang)

	text, err := g.model.GenerateText(ctx, prompt)
	if err != nil {
		g.logger.Error(ctx, "generation failed", err)
		return FallbackResponse(lang)
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Warn(ctx, "empty response from generation model", nil)
		return FallbackResponse(lang)
	}

	return text
}

// buildContext numbers the passages in retrieval order. Empty retrieval
// renders an explicit marker so the model does not assume hidden context.
func buildContext(passages []Passage) string {
	if len(passages) == 0 {
		return "No relevant context found."
	}

	parts := make([]string, 0, len(passages))
	for i, p := range passages {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, p.Content))
	}
	return strings.Join(parts, "\n")
}

// formatHistory renders the last turns as "Role: content" lines.
func formatHistory(history []session.Turn) string {
	if len(history) == 0 {
		return "No previous conversation."
	}

	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}

	lines := make([]string, 0, historyWindow)
	for _, turn := range history[start:] {
		role := "User"
		if turn.Role == session.RoleAssistant {
			role = "Assistant"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, turn.Content))
	}
	return strings.Join(lines, "\n")
}

func languageDirective(lang session.Language) string {
	if lang == session.LanguageHindi {
		return "Respond in Hindi (Devanagari script)"
	}
	return "Respond in English"
}

func createPrompt(query, contextBlock, historyBlock string, lang session.Language) string {
	return fmt.Sprintf(`You are a helpful AI assistant for a company's voice support system.

Context from knowledge base:
%s

Conversation history:
%s

User query: %s

Instructions:
1. Answer based on the context provided above
2. If the answer is not in the context, politely say you don't know
3. Be concise and helpful (2-3 sentences maximum for voice)
4. %s
5. Do not mention that you're reading from a knowledge base
6. Sound natural and conversational

Response:`, contextBlock, historyBlock, query, languageDirective(lang))
}

// FallbackResponse is the fixed apology spoken when generation fails.
func FallbackResponse(lang session.Language) string {
	if lang == session.LanguageHindi {
		return "क्षमा करें, मुझे आपका अनुरोध संसाधित करने में समस्या हो रही है। कृपया कुछ समय बाद पुनः प्रयास करें।"
	}
	return "I apologize, I'm having trouble processing your request right now. Please try again in a moment."
}

package rag

import (
	"context"
	"fmt"

	"voice-assist-server/internal/config"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

// OpenAIModel is the alternate generation backend, selected with
// GENERATION_PROVIDER=openai.
type OpenAIModel struct {
	client openai.Client
	model  string
}

// NewOpenAIModel creates an OpenAI-backed text model
func NewOpenAIModel(cfg config.OpenAIConfig) *OpenAIModel {
	client := openai.NewClient(openaiOption.WithAPIKey(cfg.APIKey))
	return &OpenAIModel{
		client: client,
		model:  cfg.Model,
	}
}

// GenerateText sends the prompt as a single user message.
func (m *OpenAIModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(m.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete chat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

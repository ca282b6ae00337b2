package chatgpt

import (
	"context"
	"strings"

	"github.com/yanqian/legal-assistant/internal/domain/gateway"
	"github.com/yanqian/legal-assistant/pkg/metrics"
)

// Backend adapts the ChatGPT client to the model gateway.
type Backend struct {
	client      *Client
	model       string
	temperature float32
}

// NewBackend constructs the adapter.
func NewBackend(client *Client, model string, temperature float32) *Backend {
	return &Backend{client: client, model: model, temperature: temperature}
}

// Name identifies the backend in logs.
func (b *Backend) Name() string {
	return "openai:" + b.model
}

// Chat sends one chat completion request and returns the first choice.
func (b *Backend) Chat(ctx context.Context, messages []gateway.Message) (gateway.Reply, error) {
	req := ChatCompletionRequest{
		Model:       b.model,
		Temperature: b.temperature,
		Messages:    make([]Message, 0, len(messages)),
	}
	for _, msg := range messages {
		req.Messages = append(req.Messages, Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return gateway.Reply{}, err
	}
	if len(resp.Choices) == 0 {
		return gateway.Reply{}, gateway.ErrNoChoices
	}
	return gateway.Reply{
		Text: strings.TrimSpace(resp.Choices[0].Message.Content),
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

var _ gateway.Backend = (*Backend)(nil)

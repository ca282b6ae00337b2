package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/yanqian/legal-assistant/internal/domain/gateway"
	"github.com/yanqian/legal-assistant/pkg/metrics"
)

const defaultModel = "gemini-2.0-flash"

// Backend calls Google Gemini through the GenAI SDK.
type Backend struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewBackend builds the GenAI client once; construction errors leave the
// gateway disabled. An empty baseURL uses the public Gemini endpoint.
func NewBackend(ctx context.Context, apiKey, baseURL, model string, temperature float32) (*Backend, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini api key cannot be empty")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: strings.TrimSpace(baseURL)},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Backend{client: client, model: model, temperature: temperature}, nil
}

// Name identifies the backend in logs.
func (b *Backend) Name() string {
	return "gemini:" + b.model
}

// Chat maps the system message to a system instruction and sends the user
// turns as content.
func (b *Backend) Chat(ctx context.Context, messages []gateway.Message) (gateway.Reply, error) {
	system, user := splitMessages(messages)
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(b.temperature),
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}

	result, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(user), config)
	if err != nil {
		return gateway.Reply{}, fmt.Errorf("gemini generation failed: %w", err)
	}
	if len(result.Candidates) == 0 {
		return gateway.Reply{}, gateway.ErrNoChoices
	}

	reply := gateway.Reply{Text: strings.TrimSpace(result.Text())}
	if meta := result.UsageMetadata; meta != nil {
		reply.Usage = metrics.TokenUsage{
			PromptTokens:     int(meta.PromptTokenCount),
			CompletionTokens: int(meta.CandidatesTokenCount),
			TotalTokens:      int(meta.TotalTokenCount),
		}
	}
	return reply, nil
}

func splitMessages(messages []gateway.Message) (string, string) {
	var system, user []string
	for _, msg := range messages {
		if msg.Role == "system" {
			system = append(system, msg.Content)
			continue
		}
		user = append(user, msg.Content)
	}
	return strings.Join(system, "\n"), strings.Join(user, "\n\n")
}

var _ gateway.Backend = (*Backend)(nil)

package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yanqian/legal-assistant/internal/domain/prompt"
	"github.com/yanqian/legal-assistant/pkg/metrics"
)

// Message is one chat turn sent to a backend.
type Message struct {
	Role    string
	Content string
}

// Reply is what a backend returns for a chat call.
type Reply struct {
	Text  string
	Usage metrics.TokenUsage
}

// Backend performs a single synchronous chat call against a model provider.
type Backend interface {
	Chat(ctx context.Context, messages []Message) (Reply, error)
	Name() string
}

// TokenCounter estimates token counts when a backend reports no usage.
type TokenCounter interface {
	Count(text string) int
}

// Gateway sends rendered prompts to the model. Complete never returns an
// error; failures are carried in the Result.
type Gateway interface {
	Complete(ctx context.Context, prompt string) Result
	Enabled() bool
}

// ErrNoChoices is reported when the provider answers without any message.
var ErrNoChoices = errors.New("model returned no choices")

type disabled struct {
	logger *slog.Logger
}

// Disabled returns a gateway that answers DisabledMessage without network I/O.
func Disabled(logger *slog.Logger) Gateway {
	return &disabled{logger: logger.With("component", "gateway.disabled")}
}

func (d *disabled) Complete(context.Context, string) Result {
	d.logger.Debug("model call skipped, gateway disabled")
	return Result{Outcome: OutcomeDisabled}
}

func (d *disabled) Enabled() bool { return false }

type gateway struct {
	backend Backend
	counter TokenCounter
	logger  *slog.Logger
}

// New returns an enabled gateway bound to backend. counter may be nil.
func New(backend Backend, counter TokenCounter, logger *slog.Logger) Gateway {
	return &gateway{
		backend: backend,
		counter: counter,
		logger:  logger.With("component", "gateway", "backend", backend.Name()),
	}
}

func (g *gateway) Enabled() bool { return true }

func (g *gateway) Complete(ctx context.Context, userPrompt string) Result {
	start := time.Now()
	messages := []Message{
		{Role: "system", Content: prompt.SystemRole},
		{Role: "user", Content: userPrompt},
	}

	reply, err := g.call(ctx, messages)
	latency := time.Since(start)
	if err != nil {
		g.logger.Warn("model call failed", "error", err, "latency_ms", latency.Milliseconds())
		return failedResult(err)
	}

	usage := reply.Usage
	if usage.IsZero() && g.counter != nil {
		usage = g.estimateUsage(messages, reply.Text)
	}
	g.logger.Info("model call completed",
		"latency_ms", latency.Milliseconds(),
		"prompt_tokens", usage.PromptTokens,
		"completion_tokens", usage.CompletionTokens,
		"total_tokens", usage.TotalTokens,
	)
	return textResult(reply.Text)
}

// call converts backend panics into failures.
func (g *gateway) call(ctx context.Context, messages []Message) (reply Reply, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()
	return g.backend.Chat(ctx, messages)
}

func (g *gateway) estimateUsage(messages []Message, completion string) metrics.TokenUsage {
	var usage metrics.TokenUsage
	for _, msg := range messages {
		n := g.counter.Count(msg.Content)
		usage = usage.Add(metrics.TokenUsage{PromptTokens: n, TotalTokens: n})
	}
	n := g.counter.Count(completion)
	return usage.Add(metrics.TokenUsage{CompletionTokens: n, TotalTokens: n})
}

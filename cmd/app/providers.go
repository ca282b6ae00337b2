package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/legal-assistant/internal/domain/gateway"
	"github.com/yanqian/legal-assistant/internal/domain/knowledge"
	"github.com/yanqian/legal-assistant/internal/domain/legal"
	"github.com/yanqian/legal-assistant/internal/infra/config"
	"github.com/yanqian/legal-assistant/internal/infra/knowledgesource"
	"github.com/yanqian/legal-assistant/internal/infra/llm/chatgpt"
	"github.com/yanqian/legal-assistant/internal/infra/llm/gemini"
	"github.com/yanqian/legal-assistant/internal/infra/llm/tokenizer"
	"github.com/yanqian/legal-assistant/internal/infra/markdown"
)

const knowledgeLoadTimeout = 15 * time.Second

// provideKnowledgeStore never fails: any load problem is logged and the
// service starts with empty tables.
func provideKnowledgeStore(cfg *config.Config, logger *slog.Logger) *knowledge.Store {
	storeLogger := logger.With("component", "knowledge")

	source, err := buildKnowledgeSource(cfg, logger)
	if err != nil {
		storeLogger.Error("knowledge source misconfigured, notary and quick answers disabled", "error", err)
		return knowledge.Empty()
	}
	format, err := knowledge.ParseFormat(cfg.Knowledge.Format, source.Name())
	if err != nil {
		storeLogger.Error("knowledge format unsupported, notary and quick answers disabled", "error", err)
		return knowledge.Empty()
	}

	ctx, cancel := context.WithTimeout(context.Background(), knowledgeLoadTimeout)
	defer cancel()
	store, err := knowledge.Load(ctx, source, format)
	if err != nil {
		storeLogger.Error("knowledge load failed, notary and quick answers disabled", "source", source.Name(), "error", err)
		return knowledge.Empty()
	}
	stats := store.Stats()
	storeLogger.Info("knowledge loaded", "source", source.Name(), "format", format, "notary_entries", stats.NotaryEntries, "quick_answers", stats.QuickAnswers)
	return store
}

func buildKnowledgeSource(cfg *config.Config, logger *slog.Logger) (knowledge.Source, error) {
	if !cfg.Knowledge.R2.Enabled {
		return knowledgesource.NewFileSource(cfg.Knowledge.Path), nil
	}
	source, err := knowledgesource.NewR2Source(cfg.Knowledge.R2, logger)
	if err != nil {
		return nil, err
	}
	return source, nil
}

// provideGateway decides once whether model calls are possible.
func provideGateway(cfg *config.Config, logger *slog.Logger) gateway.Gateway {
	initLogger := logger.With("component", "gateway.init", "provider", cfg.LLM.Provider)

	apiKey := strings.TrimSpace(cfg.LLM.APIKey)
	if apiKey == "" {
		initLogger.Warn("llm api key not set, ai features disabled")
		return gateway.Disabled(logger)
	}
	initLogger.Info("llm api key found", "length", len(apiKey))

	backend, err := buildBackend(cfg, apiKey)
	if err != nil {
		initLogger.Error("llm client init failed, ai features disabled", "error", err)
		return gateway.Disabled(logger)
	}
	initLogger.Info("llm client ready", "backend", backend.Name())
	return gateway.New(backend, provideTokenCounter(cfg, logger), logger)
}

func buildBackend(cfg *config.Config, apiKey string) (gateway.Backend, error) {
	switch cfg.LLM.Provider {
	case config.ProviderGemini:
		backend, err := gemini.NewBackend(context.Background(), apiKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Temperature)
		if err != nil {
			return nil, err
		}
		return backend, nil
	default:
		client, err := chatgpt.NewClient(apiKey, cfg.LLM.BaseURL)
		if err != nil {
			return nil, err
		}
		return chatgpt.NewBackend(client, cfg.LLM.Model, cfg.LLM.Temperature), nil
	}
}

// provideTokenCounter returns nil when the BPE tables cannot be loaded;
// usage estimates are then skipped.
func provideTokenCounter(cfg *config.Config, logger *slog.Logger) gateway.TokenCounter {
	counter, err := tokenizer.NewCounter(cfg.LLM.Model)
	if err != nil {
		logger.Warn("token counter unavailable", "error", err)
		return nil
	}
	return counter
}

func provideRenderer() legal.Renderer {
	return markdown.NewRenderer()
}

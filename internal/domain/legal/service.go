package legal

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yanqian/legal-assistant/internal/domain/gateway"
	"github.com/yanqian/legal-assistant/internal/domain/knowledge"
	"github.com/yanqian/legal-assistant/internal/domain/prompt"
	apperrors "github.com/yanqian/legal-assistant/pkg/errors"
)

// Service exposes the legal assistant features.
type Service interface {
	GenerateDocument(ctx context.Context, req DocumentRequest) (DocumentResponse, error)
	AnalyzeRisk(fileName string) RiskResponse
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	QuickChat(req QuickChatRequest) (QuickChatResponse, error)
	FindNotary(req NotaryRequest) NotaryResponse
	Health() Health
}

// Renderer turns generated Markdown into HTML.
type Renderer interface {
	Render(source string) (string, error)
}

type service struct {
	store    *knowledge.Store
	gateway  gateway.Gateway
	renderer Renderer
	logger   *slog.Logger
}

// NewService wires up the legal domain. renderer may be nil.
func NewService(store *knowledge.Store, gw gateway.Gateway, renderer Renderer, logger *slog.Logger) Service {
	return &service{
		store:    store,
		gateway:  gw,
		renderer: renderer,
		logger:   logger.With("component", "legal.service"),
	}
}

func (s *service) GenerateDocument(ctx context.Context, req DocumentRequest) (DocumentResponse, error) {
	if req.Type == nil || req.Client == nil {
		return DocumentResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "document type and client details are required", nil)
	}

	result := s.gateway.Complete(ctx, prompt.DocumentPrompt(*req.Type, *req.Client))
	resp := DocumentResponse{Status: StatusSuccess, Document: result.String()}
	if result.Succeeded() && s.renderer != nil {
		html, err := s.renderer.Render(result.Text)
		if err != nil {
			s.logger.Warn("document render failed", "error", err)
		} else {
			resp.DocumentHTML = html
		}
	}
	return resp, nil
}

func (s *service) AnalyzeRisk(fileName string) RiskResponse {
	name := strings.TrimSpace(fileName)
	if name == "" {
		name = NoFilePlaceholder
	}
	return RiskResponse{Status: StatusSuccess, FileName: name, Risks: DemoRisks()}
}

func (s *service) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	if req.Question == "" {
		return ChatResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "question text is required", nil)
	}
	result := s.gateway.Complete(ctx, prompt.ChatPrompt(req.Question))
	return ChatResponse{Answer: result.String()}, nil
}

func (s *service) QuickChat(req QuickChatRequest) (QuickChatResponse, error) {
	if req.Key == "" {
		return QuickChatResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "question key is required", nil)
	}
	return s.store.GetQuickAnswer(req.Key), nil
}

func (s *service) FindNotary(req NotaryRequest) NotaryResponse {
	return s.store.FindNotary(req.Location)
}

func (s *service) Health() Health {
	state := "disabled"
	if s.gateway.Enabled() {
		state = "enabled"
	}
	return Health{Status: "ok", Gateway: state, Knowledge: s.store.Stats()}
}

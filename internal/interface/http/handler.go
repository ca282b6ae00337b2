package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/legal-assistant/internal/domain/legal"
	"github.com/yanqian/legal-assistant/internal/infra/config"
	apperrors "github.com/yanqian/legal-assistant/pkg/errors"
)

// Handler wires the HTTP transport to the legal service.
type Handler struct {
	svc    legal.Service
	web    config.WebConfig
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, svc legal.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		web:    cfg.Web,
		logger: logger.With("component", "http.handler"),
	}
}

// Index renders the single page frontend.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"title": h.web.Title})
}

// Health reports gateway and knowledge readiness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Health())
}

// GenerateDocument asks the model for a legal document template.
func (h *Handler) GenerateDocument(c *gin.Context) {
	var req legal.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "document type and client details are required", err))
		return
	}

	resp, err := h.svc.GenerateDocument(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RiskAnalysis returns the demo risk list. The uploaded file is optional and
// only its name is used.
func (h *Handler) RiskAnalysis(c *gin.Context) {
	var fileName string
	if fileHeader, err := c.FormFile("file"); err == nil {
		fileName = fileHeader.Filename
	}
	c.JSON(http.StatusOK, h.svc.AnalyzeRisk(fileName))
}

// LegalChat answers a free-form legal question.
func (h *Handler) LegalChat(c *gin.Context) {
	var req legal.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "question text is required", err))
		return
	}

	resp, err := h.svc.Chat(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// QuickChat returns a canned answer by key.
func (h *Handler) QuickChat(c *gin.Context) {
	var req legal.QuickChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "question key is required", err))
		return
	}

	resp, err := h.svc.QuickChat(req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Notary looks up notary information. Unreadable bodies fall back to the
// default location.
func (h *Handler) Notary(c *gin.Context) {
	var req legal.NotaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("notary request body ignored", "error", err)
		req = legal.NotaryRequest{}
	}
	c.JSON(http.StatusOK, h.svc.FindNotary(req))
}

func domainError(err error) *HTTPError {
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		return NewHTTPError(http.StatusBadRequest, "invalid_request", apperrors.MessageOf(err), err)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/legal-assistant/internal/domain/gateway"
	"github.com/yanqian/legal-assistant/internal/domain/knowledge"
	"github.com/yanqian/legal-assistant/internal/domain/legal"
	"github.com/yanqian/legal-assistant/internal/infra/config"
)

func TestRouter_GenerateDocumentSuccess(t *testing.T) {
	gw := &countingGateway{reply: "Ijara shartnomasi matni"}
	server := newRouterUnderTest(t, gw)

	recorder := performRequest(server, "/api/generate-document", `{"type":"Ijara","client":"A va B"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got legal.DocumentResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "success", got.Status)
	require.Equal(t, "Ijara shartnomasi matni", got.Document)
	require.Equal(t, 1, gw.calls)
}

func TestRouter_GenerateDocumentEmptyFieldReachesModel(t *testing.T) {
	gw := &countingGateway{reply: "shablon"}
	server := newRouterUnderTest(t, gw)

	recorder := performRequest(server, "/api/generate-document", `{"type":"","client":"A va B"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 1, gw.calls)
}

func TestRouter_GenerateDocumentMissingFields(t *testing.T) {
	gw := &countingGateway{}
	server := newRouterUnderTest(t, gw)

	for _, body := range []string{`{"type":"Ijara"}`, `{"client":"A"}`, `{"type":null,"client":"A"}`, `{}`, `not json`} {
		recorder := performRequest(server, "/api/generate-document", body)
		require.Equal(t, http.StatusBadRequest, recorder.Code, body)

		errBody := decodeErrorBody(t, recorder.Body.Bytes())
		require.Equal(t, "error", errBody["status"])
		require.Equal(t, "invalid_request", errBody["code"])
		require.NotEmpty(t, errBody["message"])
	}
	require.Zero(t, gw.calls)
}

func TestRouter_LegalChatDisabledGateway(t *testing.T) {
	server := newRouterWithGateway(t, gateway.Disabled(newTestLogger()))

	recorder := performRequest(server, "/api/legal-chat", `{"question":"test"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, map[string]string{"answer": gateway.DisabledMessage}, got)
}

func TestRouter_LegalChatMissingQuestion(t *testing.T) {
	gw := &countingGateway{}
	server := newRouterUnderTest(t, gw)

	recorder := performRequest(server, "/api/legal-chat", `{"question":""}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, "question text is required", decodeErrorBody(t, recorder.Body.Bytes())["message"])
	require.Zero(t, gw.calls)
}

func TestRouter_LegalChatModelError(t *testing.T) {
	gw := &countingGateway{fail: true}
	server := newRouterUnderTest(t, gw)

	recorder := performRequest(server, "/api/legal-chat", `{"question":"Meros?"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got legal.ChatResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.True(t, strings.HasPrefix(got.Answer, gateway.ErrorPrefix))
}

func TestRouter_QuickChat(t *testing.T) {
	server := newRouterUnderTest(t, &countingGateway{})

	recorder := performRequest(server, "/api/quick-chat", `{"key":"rent"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"title":"Ijara","answer":"Yozma tuziladi."}`, recorder.Body.String())

	recorder = performRequest(server, "/api/quick-chat", `{"key":"unknown"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"title":"Error","answer":"Selected question type not found."}`, recorder.Body.String())

	recorder = performRequest(server, "/api/quick-chat", `{}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_NotaryNeverErrors(t *testing.T) {
	server := newRouterUnderTest(t, &countingGateway{})

	recorder := performRequest(server, "/api/notary", `{"location":"  TASHKENT "}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"nearest":"Yunusobod idorasi","wait_time":"15 daqiqa","state_fee":"0.5 BHM"}`, recorder.Body.String())

	for _, body := range []string{`{"location":"buxoro"}`, `{}`, `{"location":null}`, `garbage`} {
		recorder = performRequest(server, "/api/notary", body)
		require.Equal(t, http.StatusOK, recorder.Code, body)
		require.JSONEq(t, `{"nearest":"Markaziy idora","wait_time":"30 daqiqa","state_fee":"1 BHM"}`, recorder.Body.String())
	}
}

func TestRouter_RiskAnalysisWithoutFile(t *testing.T) {
	server := newRouterUnderTest(t, &countingGateway{})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/risk-analysis", nil)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var got legal.RiskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, legal.NoFilePlaceholder, got.FileName)
		require.Equal(t, legal.DemoRisks(), got.Risks)
	}
}

func TestRouter_RiskAnalysisEchoesFileName(t *testing.T) {
	server := newRouterUnderTest(t, &countingGateway{})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "shartnoma.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4 anything"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/risk-analysis", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got legal.RiskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "success", got.Status)
	require.Equal(t, "shartnoma.pdf", got.FileName)
	require.Equal(t, legal.DemoRisks(), got.Risks)
}

func TestRouter_IndexAndHealth(t *testing.T) {
	server := newRouterUnderTest(t, &countingGateway{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<title>Test page</title>")

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var health legal.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	require.Equal(t, "enabled", health.Gateway)
	require.True(t, health.Knowledge.Loaded)
}

func TestRouter_RequestID(t *testing.T) {
	server := newRouterUnderTest(t, &countingGateway{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	rec = performRequest(server, "/api/notary", `{}`)
	require.Len(t, rec.Header().Get("X-Request-ID"), 36)
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newRouterUnderTest(t, &countingGateway{})

	req := httptest.NewRequest(http.MethodOptions, "/api/legal-chat", nil)
	req.Header.Set("Origin", "https://example.uz")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestResolveOrigin(t *testing.T) {
	allowed := []string{"https://a.uz", "https://b.uz"}
	require.Equal(t, "https://B.uz", resolveOrigin("https://B.uz", allowed))
	require.Equal(t, "https://b.uz", resolveOrigin("https://b.uz", allowed))
	require.Equal(t, "https://a.uz", resolveOrigin("https://evil.com", allowed))
	require.Equal(t, "*", resolveOrigin("https://any.uz", nil))
}

func performRequest(server *http.Server, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, gw *countingGateway) *http.Server {
	t.Helper()
	return newRouterWithGateway(t, gw)
}

func newRouterWithGateway(t *testing.T, gw gateway.Gateway) *http.Server {
	t.Helper()
	store, err := knowledge.NewStore(knowledge.Document{
		NotaryInfo: map[string]knowledge.NotaryRecord{
			"default":  {Nearest: "Markaziy idora", WaitTime: "30 daqiqa", StateFee: "1 BHM"},
			"tashkent": {Nearest: "Yunusobod idorasi", WaitTime: "15 daqiqa", StateFee: "0.5 BHM"},
		},
		QuickAnswers: map[string]knowledge.QuickAnswer{
			"rent": {Title: "Ijara", Answer: "Yozma tuziladi."},
		},
	})
	require.NoError(t, err)

	logger := newTestLogger()
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:            ":0",
			ReadTimeout:        time.Second,
			WriteTimeout:       time.Second,
			MaxMultipartMemory: 1 << 20,
		},
		Web: config.WebConfig{Title: "Test page"},
	}
	svc := legal.NewService(store, gw, nil, logger)
	return NewRouter(cfg, NewHandler(cfg, svc, logger))
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type countingGateway struct {
	reply string
	fail  bool
	calls int
}

func (g *countingGateway) Complete(_ context.Context, _ string) gateway.Result {
	g.calls++
	if g.fail {
		return gateway.Result{Outcome: gateway.OutcomeFailed, Err: io.ErrUnexpectedEOF}
	}
	return gateway.Result{Outcome: gateway.OutcomeText, Text: g.reply}
}

func (g *countingGateway) Enabled() bool { return true }

func decodeErrorBody(t *testing.T, raw []byte) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

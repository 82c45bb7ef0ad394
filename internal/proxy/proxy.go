// Package proxy implements the content-generation endpoint: it turns an
// action into prompts, forwards them to a language model and returns the
// model's JSON unchanged.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"focusboard/internal/content"
)

// Upstream completes a system/user prompt pair and returns the model's JSON text.
type Upstream interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// UpstreamError carries a non-2xx status from the model provider.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Status, e.Body)
}

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
	"Content-Type":                 "application/json",
}

// Headers returns a fresh copy of the headers every response carries.
func Headers() map[string]string {
	h := make(map[string]string, len(corsHeaders))
	for k, v := range corsHeaders {
		h[k] = v
	}
	return h
}

const (
	msgMethodNotAllowed = "Method not allowed"
	msgUnknownAction    = "Action inconnue"
	msgUpstream         = "Erreur API Groq"
	msgServer           = "Erreur serveur"
)

// Response is transport independent; HandleLambda and ServeHTTP render it.
type Response struct {
	Status int
	Body   string
}

type Handler struct {
	upstream Upstream
	// credential names the missing setting reported while upstream is nil.
	credential string
	timeout    time.Duration
	log        *zap.Logger
}

// NewHandler builds a handler. A nil upstream makes every POST fail with a
// configuration error naming credential.
func NewHandler(upstream Upstream, credential string, timeout time.Duration, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if credential == "" {
		credential = "GROQ_API_KEY"
	}
	return &Handler{upstream: upstream, credential: credential, timeout: timeout, log: log}
}

func errorResponse(status int, msg string) Response {
	body, _ := json.Marshal(content.ErrorResponse{Error: msg})
	return Response{Status: status, Body: string(body)}
}

type inbound struct {
	Action content.Action  `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// Handle processes one request.
func (h *Handler) Handle(ctx context.Context, method string, body string) Response {
	start := time.Now()
	resp, action := h.handle(ctx, method, body)
	h.log.Info("proxy request",
		zap.String("method", method),
		zap.String("action", string(action)),
		zap.Int("status", resp.Status),
		zap.Duration("elapsed", time.Since(start)),
	)
	return resp
}

func (h *Handler) handle(ctx context.Context, method string, body string) (Response, content.Action) {
	switch method {
	case http.MethodOptions:
		return Response{Status: http.StatusOK}, ""
	case http.MethodPost:
	default:
		return errorResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed), ""
	}

	if h.upstream == nil {
		return errorResponse(http.StatusInternalServerError, h.credential+" not configured"), ""
	}

	if body == "" {
		body = "{}"
	}
	var in inbound
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		h.log.Warn("bad request body", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, msgServer), ""
	}

	system, user, err := BuildPrompt(in.Action, in.Data)
	if errors.Is(err, ErrUnknownAction) {
		return errorResponse(http.StatusBadRequest, msgUnknownAction), in.Action
	}
	if err != nil {
		h.log.Warn("build prompt", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, msgServer), in.Action
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	out, err := h.upstream.Complete(ctx, system, user)
	if err != nil {
		var ue *UpstreamError
		if errors.As(err, &ue) {
			h.log.Error("upstream error", zap.String("provider", ue.Provider), zap.Int("status", ue.Status), zap.String("body", ue.Body))
			status := ue.Status
			if status < 100 || status > 599 {
				status = http.StatusBadGateway
			}
			return errorResponse(status, msgUpstream), in.Action
		}
		h.log.Error("upstream call failed", zap.Error(err))
		return errorResponse(http.StatusInternalServerError, msgServer), in.Action
	}
	if strings.TrimSpace(out) == "" {
		h.log.Warn("upstream returned an empty completion")
		return errorResponse(http.StatusBadGateway, msgUpstream), in.Action
	}
	return Response{Status: http.StatusOK, Body: out}, in.Action
}

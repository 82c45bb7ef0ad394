package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"focusboard/internal/content"
)

type stubUpstream struct {
	system, user string
	out          string
	err          error
}

func (s *stubUpstream) Complete(ctx context.Context, system, user string) (string, error) {
	s.system, s.user = system, user
	return s.out, s.err
}

func errorBody(t *testing.T, body string) string {
	t.Helper()
	var e content.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	return e.Error
}

func TestHandlerFailureModes(t *testing.T) {
	ctx := context.Background()
	up := &stubUpstream{out: `{"ok":true}`}
	h := NewHandler(up, "", 0, nil)

	resp := h.Handle(ctx, http.MethodOptions, "")
	require.Equal(t, http.StatusOK, resp.Status)
	require.Empty(t, resp.Body)

	resp = h.Handle(ctx, http.MethodGet, "")
	require.Equal(t, http.StatusMethodNotAllowed, resp.Status)
	require.Equal(t, "Method not allowed", errorBody(t, resp.Body))

	resp = h.Handle(ctx, http.MethodPost, `{"action":"dance"}`)
	require.Equal(t, http.StatusBadRequest, resp.Status)
	require.Equal(t, "Action inconnue", errorBody(t, resp.Body))

	resp = h.Handle(ctx, http.MethodPost, `not json`)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	require.Equal(t, "Erreur serveur", errorBody(t, resp.Body))

	unconfigured := NewHandler(nil, "GROQ_API_KEY", 0, nil)
	resp = unconfigured.Handle(ctx, http.MethodPost, `{"action":"inspiration"}`)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
	require.Equal(t, "GROQ_API_KEY not configured", errorBody(t, resp.Body))
}

func TestHandlerUpstreamErrors(t *testing.T) {
	ctx := context.Background()

	up := &stubUpstream{err: &UpstreamError{Provider: "groq", Status: http.StatusTooManyRequests, Body: "slow down"}}
	resp := NewHandler(up, "", 0, nil).Handle(ctx, http.MethodPost, `{"action":"quiz_code"}`)
	require.Equal(t, http.StatusTooManyRequests, resp.Status)
	require.Equal(t, "Erreur API Groq", errorBody(t, resp.Body))

	up = &stubUpstream{err: &UpstreamError{Provider: "gemini", Status: 0, Body: "no code"}}
	resp = NewHandler(up, "", 0, nil).Handle(ctx, http.MethodPost, `{"action":"quiz_code"}`)
	require.Equal(t, http.StatusBadGateway, resp.Status)

	up = &stubUpstream{err: &UpstreamError{Provider: "gemini", Status: 1000}}
	resp = NewHandler(up, "", 0, nil).Handle(ctx, http.MethodPost, `{"action":"quiz_code"}`)
	require.Equal(t, http.StatusBadGateway, resp.Status)

	up = &stubUpstream{err: errors.New("dial tcp: refused")}
	resp = NewHandler(up, "", 0, nil).Handle(ctx, http.MethodPost, `{"action":"quiz_code"}`)
	require.Equal(t, http.StatusInternalServerError, resp.Status)
}

func TestHandlerPassesModelJSONThrough(t *testing.T) {
	up := &stubUpstream{out: `{"score":4,"analysis":"a","suggestion":"s"}`}
	h := NewHandler(up, "", 0, nil)

	resp := h.Handle(context.Background(), http.MethodPost,
		`{"action":"analyse","data":{"category":"Recherche","question":"Q1","reason":"R1"}}`)
	require.Equal(t, http.StatusOK, resp.Status)
	require.Equal(t, up.out, resp.Body)
	require.Contains(t, up.user, "Catégorie: Recherche")
	require.Contains(t, up.user, "Question: Q1")
	require.Contains(t, up.user, "Raison: R1")
	require.Contains(t, up.system, "coach productivité")
}

func TestHandlerEmptyCompletionIsBadGateway(t *testing.T) {
	for _, out := range []string{"", "  \n"} {
		h := NewHandler(&stubUpstream{out: out}, "", 0, nil)
		resp := h.Handle(context.Background(), http.MethodPost, `{"action":"inspiration"}`)
		require.Equal(t, http.StatusBadGateway, resp.Status, "completion %q", out)
		require.Equal(t, "Erreur API Groq", errorBody(t, resp.Body))
	}
}

func TestServeHTTPUnknownUpstreamStatus(t *testing.T) {
	h := NewHandler(&stubUpstream{err: &UpstreamError{Provider: "gemini"}}, "", 0, nil)
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(`{"action":"quiz_code"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestBuildPromptQuizInspiEmbedsViewed(t *testing.T) {
	_, user, err := BuildPrompt(content.ActionQuizInspi, json.RawMessage(`{"inspirations":[{"id":"x1"}]}`))
	require.NoError(t, err)
	require.Contains(t, user, `[{"id":"x1"}]`)
	require.Contains(t, user, "Génère 10 questions")

	_, user, err = BuildPrompt(content.ActionQuizInspi, nil)
	require.NoError(t, err)
	require.Contains(t, user, "Voici les inspirations vues :\n[]")

	_, user, err = BuildPrompt(content.ActionQuizCode, nil)
	require.NoError(t, err)
	require.Contains(t, user, "Génère 20 questions")

	_, _, err = BuildPrompt("nope", nil)
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestHandleLambdaCarriesCORS(t *testing.T) {
	h := NewHandler(&stubUpstream{out: `{}`}, "", 0, nil)

	resp, err := h.HandleLambda(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodOptions})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	if diff := cmp.Diff(Headers(), resp.Headers); diff != "" {
		t.Fatalf("headers (-want +got):\n%s", diff)
	}

	resp, err = h.HandleLambda(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"action":"inspiration"}`,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
}

func TestServeHTTP(t *testing.T) {
	h := NewHandler(&stubUpstream{out: `{"questions":[]}`}, "", 0, nil)
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Post(srv.URL, "application/json", strings.NewReader(`{"action":"quiz_code"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, `{"questions":[]}`, string(body))
	require.Equal(t, "POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestGroqUpstreamRequestShape(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer k", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"{\"a\":1}"}}]}`)
	}))
	defer srv.Close()

	g := NewGroqUpstream(GroqConfig{APIKey: "k", BaseURL: srv.URL + "/"})
	out, err := g.Complete(context.Background(), "sys", "usr")
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, out)

	require.Equal(t, DefaultGroqModel, got.Model)
	require.Equal(t, 0.7, got.Temperature)
	require.Equal(t, 4000, got.MaxTokens)
	require.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Equal(t, []chatMessage{{Role: "system", Content: "sys"}, {Role: "user", Content: "usr"}}, got.Messages)
}

func TestGroqUpstreamNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	out, err := NewGroqUpstream(GroqConfig{APIKey: "k", BaseURL: srv.URL}).Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGroqUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"bad key"}}`)
	}))
	defer srv.Close()

	_, err := NewGroqUpstream(GroqConfig{APIKey: "k", BaseURL: srv.URL}).Complete(context.Background(), "s", "u")
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	require.Equal(t, http.StatusUnauthorized, ue.Status)
}

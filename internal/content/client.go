package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"focusboard/internal/storage"
)

// DefaultTimeout bounds a single proxy round trip.
const DefaultTimeout = 60 * time.Second

// StatusError is returned when the proxy answers with a non-2xx status.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("proxy returned status %d", e.Status)
	}
	return fmt.Sprintf("proxy returned status %d: %s", e.Status, e.Message)
}

// Returned when the proxy answered but the payload is unusable.
var (
	ErrEmptyQuiz        = errors.New("no usable questions in response")
	ErrEmptyInspiration = errors.New("inspiration response is missing artist, book or word")
	ErrEmptyAnalysis    = errors.New("analysis response has no analysis text")
)

// Client calls the content-generation proxy over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(url string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *Client) do(ctx context.Context, req Request, out any) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	c.log.Debug("proxy call",
		zap.String("action", string(req.Action)),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e ErrorResponse
		_ = json.Unmarshal(body, &e)
		return &StatusError{Status: resp.StatusCode, Message: e.Error}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.Action, err)
	}
	return nil
}

func (c *Client) Inspiration(ctx context.Context) (storage.InspirationContent, error) {
	var out storage.InspirationContent
	if err := c.do(ctx, Request{Action: ActionInspiration}, &out); err != nil {
		return storage.InspirationContent{}, err
	}
	if !out.Valid() {
		return storage.InspirationContent{}, ErrEmptyInspiration
	}
	return out, nil
}

func (c *Client) CodeQuiz(ctx context.Context) ([]Question, error) {
	return c.quiz(ctx, Request{Action: ActionQuizCode})
}

func (c *Client) InspirationQuiz(ctx context.Context, viewed []storage.Inspiration) ([]Question, error) {
	return c.quiz(ctx, Request{Action: ActionQuizInspi, Data: QuizInspiData{Inspirations: viewed}})
}

func (c *Client) quiz(ctx context.Context, req Request) ([]Question, error) {
	var out QuizResponse
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	questions := Usable(out.Questions)
	if len(questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	return questions, nil
}

func (c *Client) Analyse(ctx context.Context, category, question, reason string) (Analysis, error) {
	var out Analysis
	err := c.do(ctx, Request{
		Action: ActionAnalyse,
		Data:   AnalyseData{Category: category, Question: question, Reason: reason},
	}, &out)
	if err != nil {
		return Analysis{}, err
	}
	if !out.Valid() {
		return Analysis{}, ErrEmptyAnalysis
	}
	return out, nil
}

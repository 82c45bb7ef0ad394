// Command focus-proxy forwards FocusBoard content requests to an LLM provider.
// It serves HTTP when FOCUSBOARD_PROXY_ADDR is set and runs as an AWS Lambda
// behind API Gateway otherwise.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"focusboard/internal/config"
	"focusboard/internal/logging"
	"focusboard/internal/proxy"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	upstream, err := newUpstream(ctx, cfg, logger)
	if err != nil {
		return err
	}
	handler := proxy.NewHandler(upstream, cfg.CredentialEnv(), cfg.UpstreamTimeout, logger)

	if cfg.ProxyAddr == "" {
		logger.Info("starting lambda handler", zap.String("provider", cfg.Provider))
		lambda.Start(handler.HandleLambda)
		return nil
	}

	srv := &http.Server{
		Addr:              cfg.ProxyAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("proxy listening", zap.String("addr", cfg.ProxyAddr), zap.String("provider", cfg.Provider))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// newUpstream returns a nil Upstream when the provider's key is missing; the
// handler then answers every request with a configuration error.
func newUpstream(ctx context.Context, cfg config.Config, logger *zap.Logger) (proxy.Upstream, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			logger.Warn("GEMINI_API_KEY not set")
			return nil, nil
		}
		return proxy.NewGeminiUpstream(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		if cfg.GroqAPIKey == "" {
			logger.Warn("GROQ_API_KEY not set")
			return nil, nil
		}
		return proxy.NewGroqUpstream(proxy.GroqConfig{
			APIKey:  cfg.GroqAPIKey,
			BaseURL: cfg.GroqBaseURL,
			Model:   cfg.GroqModel,
			Timeout: cfg.UpstreamTimeout,
		}), nil
	}
}

package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderGroq {
		t.Fatalf("Provider=%q, want groq", cfg.Provider)
	}
	if cfg.Namespace != "focusboard" {
		t.Fatalf("Namespace=%q, want focusboard", cfg.Namespace)
	}
	if cfg.UpstreamTimeout != 60*time.Second {
		t.Fatalf("UpstreamTimeout=%v, want 60s", cfg.UpstreamTimeout)
	}
	if cfg.CredentialEnv() != "GROQ_API_KEY" {
		t.Fatalf("CredentialEnv=%q", cfg.CredentialEnv())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FOCUSBOARD_PROVIDER", "gemini")
	t.Setenv("FOCUSBOARD_NAMESPACE", "alt")
	t.Setenv("FOCUSBOARD_UPSTREAM_TIMEOUT", "5s")
	t.Setenv("FOCUSBOARD_DB", "/tmp/focus.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderGemini || cfg.Namespace != "alt" || cfg.UpstreamTimeout != 5*time.Second {
		t.Fatalf("cfg=%+v", cfg)
	}
	if cfg.DBPath != "/tmp/focus.db" {
		t.Fatalf("DBPath=%q, want /tmp/focus.db", cfg.DBPath)
	}
	if cfg.CredentialEnv() != "GEMINI_API_KEY" {
		t.Fatalf("CredentialEnv=%q", cfg.CredentialEnv())
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("FOCUSBOARD_PROVIDER", "openai")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestParseEnvWrapsErrors(t *testing.T) {
	t.Setenv("FOCUSBOARD_UPSTREAM_TIMEOUT", "soon")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("err=%v, want parse env error", err)
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"

	"github.com/Vovarama1992/super_bot/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TELEGRAM_BOT_TOKEN", "GROQ_API_KEY", "HF_TOKEN", "GROQ_MODEL",
		"ADMIN_CHAT_ID", "HTTP_TIMEOUT", "PORT", "CHAT_MAX_TOKENS", "S3_ENDPOINT", "S3_BUCKET",
	} {
		// пустое значение считается заданным, godotenv его не перетрёт
		t.Setenv(k, "")
	}
}

func TestLoad_FromEnvWithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg")
	t.Setenv("GROQ_API_KEY", "groq")
	t.Setenv("HF_TOKEN", "hf")
	t.Setenv("ADMIN_CHAT_ID", "12345")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Groq.Model != "openai/gpt-oss-120b" {
		t.Errorf("model: got %q", cfg.Groq.Model)
	}
	if cfg.Groq.MaxTokens != 300 {
		t.Errorf("max tokens: got %d", cfg.Groq.MaxTokens)
	}
	if cfg.HTTP.Port != "8080" {
		t.Errorf("port: got %q", cfg.HTTP.Port)
	}
	if cfg.HTTP.Timeout != 120*time.Second {
		t.Errorf("timeout: got %v", cfg.HTTP.Timeout)
	}
	if cfg.Telegram.AdminChatID != 12345 {
		t.Errorf("admin chat: got %d", cfg.Telegram.AdminChatID)
	}
	if cfg.S3.Enabled() {
		t.Error("s3 must be disabled without endpoint")
	}
}

func TestLoad_MissingSecretsAreAggregated(t *testing.T) {
	clearEnv(t)

	_, err := config.Load("")
	if err == nil {
		t.Fatal("expected error")
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Fatalf("errors: got %d, want 3 (%v)", n, err)
	}
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("MY_HF", "hf-from-file")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
telegram:
  token: tg-file
groq:
  api_key: groq-file
  model: file-model
huggingface:
  token: ${MY_HF}
http:
  port: "9090"
  timeout: 30s
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HF.Token != "hf-from-file" {
		t.Errorf("expanded token: got %q", cfg.HF.Token)
	}
	if cfg.Groq.Model != "llama-3.1-8b-instant" {
		t.Errorf("env must override file: got %q", cfg.Groq.Model)
	}
	if cfg.HTTP.Port != "9090" || cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("http: got %+v", cfg.HTTP)
	}
}

func TestLoad_BadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg")
	t.Setenv("GROQ_API_KEY", "groq")
	t.Setenv("HF_TOKEN", "hf")
	t.Setenv("ADMIN_CHAT_ID", "abc")

	_, err := config.Load("")
	if err == nil || !strings.Contains(err.Error(), "ADMIN_CHAT_ID") {
		t.Fatalf("expected ADMIN_CHAT_ID error, got %v", err)
	}
}

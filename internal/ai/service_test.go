package ai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Vovarama1992/super_bot/internal/ai"
	"github.com/Vovarama1992/super_bot/internal/notify"
	"github.com/Vovarama1992/super_bot/internal/user"
)

type chatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newService(t *testing.T, h http.HandlerFunc) *ai.AiService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	log := zap.NewNop().Sugar()
	client := ai.NewOpenAIClient(ai.ClientConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "openai/gpt-oss-120b",
		MaxTokens: 300,
		Timeout:   5 * time.Second,
	})
	return ai.NewAiService(client, notify.NewService(nil, log), log)
}

func TestGetReply_SendsLanguagePromptAndTrims(t *testing.T) {
	var got chatRequest
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("auth header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  hello  "},"finish_reason":"stop"}]}`))
	})

	reply, err := svc.GetReply(context.Background(), user.LangEnglish, "hi")
	if err != nil {
		t.Fatalf("reply: %v", err)
	}
	if reply != "hello" {
		t.Errorf("reply: got %q", reply)
	}

	if got.Model != "openai/gpt-oss-120b" || got.MaxTokens != 300 {
		t.Errorf("request: model=%q max_tokens=%d", got.Model, got.MaxTokens)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("messages: got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != "Always reply in English." {
		t.Errorf("system message: %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != "hi" {
		t.Errorf("user message: %+v", got.Messages[1])
	}
}

func TestGetReply_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"down","type":"server_error"}}`},
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key","type":"invalid_request_error"}}`},
		{"no choices", http.StatusOK, `{"id":"1","object":"chat.completion","choices":[]}`},
		{"blank content", http.StatusOK, `{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"   "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			if _, err := svc.GetReply(context.Background(), user.LangKhmer, "x"); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGetReply_EmptyChoicesIsSentinel(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := svc.GetReply(context.Background(), user.LangKhmer, "x")
	if !errors.Is(err, ai.ErrEmptyCompletion) {
		t.Fatalf("got %v, want ErrEmptyCompletion", err)
	}
}

func TestSystemPrompt(t *testing.T) {
	if p := ai.SystemPrompt(user.LangKhmer); p != "Always reply in Khmer language using clear Khmer." {
		t.Errorf("kh prompt: %q", p)
	}
	if p := ai.SystemPrompt(user.LangEnglish); p != "Always reply in English." {
		t.Errorf("en prompt: %q", p)
	}
}

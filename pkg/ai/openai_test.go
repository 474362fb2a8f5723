package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

func writeRecording(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "standup.mp3")
	if err := os.WriteFile(path, []byte("ID3 fake audio"), 0o600); err != nil {
		t.Fatalf("write recording: %v", err)
	}
	return path
}

func TestOpenAIClient_Transcribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/audio/transcriptions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"  We agreed to ship on Friday.  "}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, TranscriptionModel: "whisper-1"})
	text, err := c.Transcribe(context.Background(), Audio{Path: writeRecording(t), Filename: "standup.mp3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "We agreed to ship on Friday." {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestOpenAIClient_TranscribeMissingFile(t *testing.T) {
	c := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})
	_, err := c.Transcribe(context.Background(), Audio{Path: filepath.Join(t.TempDir(), "gone.mp3")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if kind := Classify(err); kind != KindInvalidInput {
		t.Fatalf("expected invalid_input, got %s", kind)
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Model != "gpt-4o" {
			t.Errorf("unexpected model %q", body.Model)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Content != "summarize this" {
			t.Errorf("unexpected messages %+v", body.Messages)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"\n- Shipped the release\n"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, ChatModel: "gpt-4o"})
	out, err := c.Complete(context.Background(), "You are a helpful assistant.", "summarize this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "- Shipped the release" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOpenAIClient_CompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(&config.OpenAIConfig{APIKey: "k", BaseURL: srv.URL})
	if _, err := c.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestOpenAIClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(&config.OpenAIConfig{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	if kind := Classify(err); kind != KindQuota {
		t.Fatalf("expected quota, got %s (%v)", kind, err)
	}
}

func TestLocalClient_JoinsSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"ignored","segments":[{"id":0,"text":" Hello team. "},{"id":1,"text":"   "},{"id":2,"text":"Let's start."}]}`))
	}))
	defer srv.Close()

	c := NewLocalClient(&config.LocalConfig{WhisperURL: srv.URL, WhisperModel: "small", ChatURL: srv.URL, ChatModel: "llama3.1"})
	text, err := c.Transcribe(context.Background(), Audio{Path: writeRecording(t)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Hello team. Let's start." {
		t.Fatalf("unexpected transcript %q", text)
	}
}

func TestLocalClient_CompleteSendsMaxTokens(t *testing.T) {
	var maxTokens int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			MaxTokens int `json:"max_tokens"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		maxTokens = body.MaxTokens
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"| Task | Owner | Deadline |"}}]}`))
	}))
	defer srv.Close()

	c := NewLocalClient(&config.LocalConfig{WhisperURL: srv.URL, ChatURL: srv.URL, ChatModel: "llama3.1", MaxTokens: 512})
	if _, err := c.Complete(context.Background(), "s", "u"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if maxTokens != 512 {
		t.Fatalf("expected max_tokens 512, got %d", maxTokens)
	}
}

func TestGroqClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer groq-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"- Decision made"}}]}`))
	}))
	defer srv.Close()

	g := NewGroqClient(&config.GroqConfig{APIKey: "groq-key", BaseURL: srv.URL, ChatModel: "llama-3.3-70b-versatile"})
	out, err := g.Complete(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "- Decision made" {
		t.Fatalf("unexpected output %q", out)
	}
}

package config

import (
	"os"
	"testing"
	"time"
)

// clearEnv unsets keys for the duration of the test so defaults apply
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"PORT", "HOST", "ENVIRONMENT", "LOG_LEVEL", "MAX_UPLOAD_MB",
		"PIPELINE_BACKEND", "PIPELINE_TRANSCRIBER", "PIPELINE_GENERATOR", "PIPELINE_PROMPTS_FILE",
		"OPENAI_API_KEY", "ASSEMBLYAI_API_KEY", "GROQ_API_KEY", "GEMINI_API_KEY",
		"LOCAL_MAX_TOKENS", "LOCAL_CHAT_URL", "LOCAL_WHISPER_URL", "STORAGE_URL_EXPIRY",
		"OPENAI_CHAT_MODEL", "GROQ_CHAT_MODEL", "LOCAL_CHAT_MODEL", "OPENAI_TIMEOUT", "LOCAL_TIMEOUT",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv_HostedDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Pipeline.Backend != BackendHosted || cfg.Pipeline.Transcriber != ProviderOpenAI || cfg.Pipeline.Generator != ProviderOpenAI {
		t.Fatalf("unexpected pipeline %+v", cfg.Pipeline)
	}
	if cfg.OpenAI.TranscriptionModel != "whisper-1" || cfg.OpenAI.ChatModel != "gpt-4o" {
		t.Fatalf("unexpected openai defaults %+v", cfg.OpenAI)
	}
	if cfg.MaxUploadBytes() != 25<<20 {
		t.Fatalf("unexpected upload limit %d", cfg.MaxUploadBytes())
	}
	if cfg.Storage.URLExpiry != time.Hour {
		t.Fatalf("unexpected url expiry %s", cfg.Storage.URLExpiry)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
}

func TestFromEnv_MissingKey(t *testing.T) {
	clearEnv(t)
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error without OPENAI_API_KEY")
	}
}

func TestFromEnv_ProviderKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIPELINE_TRANSCRIBER", "assemblyai")
	t.Setenv("PIPELINE_GENERATOR", "groq")
	t.Setenv("ASSEMBLYAI_API_KEY", "aai")

	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error without GROQ_API_KEY")
	}

	t.Setenv("GROQ_API_KEY", "gsk")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Groq.ChatModel != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected groq model %s", cfg.Groq.ChatModel)
	}
}

func TestFromEnv_LocalNeedsNoKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIPELINE_BACKEND", "local")
	t.Setenv("LOCAL_MAX_TOKENS", "256")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Local.MaxTokens != 256 || cfg.Local.ChatURL != "http://localhost:11434/v1" {
		t.Fatalf("unexpected local config %+v", cfg.Local)
	}
}

func TestFromEnv_InvalidEnum(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PIPELINE_BACKEND", "cloud")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestFromEnv_BareNamesDoNotLeakIntoSections(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CHAT_MODEL", "surprise")
	t.Setenv("TIMEOUT", "1s")
	t.Setenv("API_KEY", "leaked")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenAI.ChatModel != "gpt-4o" || cfg.Groq.ChatModel != "llama-3.3-70b-versatile" || cfg.Local.ChatModel != "llama3.1" {
		t.Fatalf("bare CHAT_MODEL leaked: openai=%q groq=%q local=%q", cfg.OpenAI.ChatModel, cfg.Groq.ChatModel, cfg.Local.ChatModel)
	}
	if cfg.OpenAI.Timeout != 10*time.Minute || cfg.Local.Timeout != 30*time.Minute {
		t.Fatalf("bare TIMEOUT leaked: openai=%s local=%s", cfg.OpenAI.Timeout, cfg.Local.Timeout)
	}
	if cfg.Groq.APIKey != "" || cfg.Gemini.APIKey != "" || cfg.OpenAI.APIKey != "sk-test" {
		t.Fatalf("bare API_KEY leaked: %+v", cfg)
	}
}

func TestFromEnv_PrefixedNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_CHAT_MODEL", "gpt-4o-mini")
	t.Setenv("LOCAL_TIMEOUT", "5m")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OpenAI.ChatModel != "gpt-4o-mini" || cfg.Local.Timeout != 5*time.Minute {
		t.Fatalf("unexpected config openai=%q local=%s", cfg.OpenAI.ChatModel, cfg.Local.Timeout)
	}
	if cfg.Groq.ChatModel != "llama-3.3-70b-versatile" {
		t.Fatalf("OPENAI_CHAT_MODEL must not reach groq, got %q", cfg.Groq.ChatModel)
	}
}

package ai

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// LocalClient drives model runtimes on the same machine: an OpenAI-compatible
// whisper server (faster-whisper-server, whisper.cpp) and an OpenAI-compatible
// chat runtime such as Ollama. No API key is sent.
type LocalClient struct {
	whisper *OpenAIClient
	chat    *OpenAIClient
}

// NewLocalClient creates a LocalClient from config
func NewLocalClient(cfg *config.LocalConfig) *LocalClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}

	return &LocalClient{
		whisper: &OpenAIClient{
			client:             newOpenAICompatible("", cfg.WhisperURL, timeout),
			name:               config.ProviderLocal,
			transcriptionModel: cfg.WhisperModel,
			segmented:          true,
		},
		chat: &OpenAIClient{
			client:    newOpenAICompatible("", cfg.ChatURL, timeout),
			name:      config.ProviderLocal,
			chatModel: cfg.ChatModel,
			maxTokens: cfg.MaxTokens,
		},
	}
}

// Transcribe runs the local whisper model and joins the returned segments
func (l *LocalClient) Transcribe(ctx context.Context, audio Audio) (string, error) {
	return l.whisper.Transcribe(ctx, audio)
}

// Complete runs the local chat model
func (l *LocalClient) Complete(ctx context.Context, system, user string) (string, error) {
	return l.chat.Complete(ctx, system, user)
}

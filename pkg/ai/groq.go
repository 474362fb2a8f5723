package ai

import (
	"context"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// GroqClient is a chat client for Groq's OpenAI-compatible API
type GroqClient struct {
	client *openai.Client
	model  string
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.GroqConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	base := os.Getenv("GROQ_BASE_URL")
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	}
	if base == "" {
		base = "https://api.groq.com/openai/v1"
	}

	model := "llama-3.3-70b-versatile"
	timeout := 2 * time.Minute
	if cfg != nil {
		if cfg.ChatModel != "" {
			model = cfg.ChatModel
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &GroqClient{
		client: newOpenAICompatible(apiKey, base, timeout),
		model:  model,
	}
}

// Complete sends the prompt to Groq and returns the assistant content
func (g *GroqClient) Complete(ctx context.Context, system, user string) (string, error) {
	return complete(ctx, g.client, config.ProviderGroq, g.model, 0, system, user)
}

package ai

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// OpenAIClient talks to the OpenAI audio and chat completion endpoints.
// It is also used against OpenAI-compatible servers (see LocalClient).
type OpenAIClient struct {
	client             *openai.Client
	name               string
	transcriptionModel string
	chatModel          string
	maxTokens          int
	segmented          bool
}

// NewOpenAIClient creates an OpenAI client using the provided config.
// If the config has no API key, falls back to OPENAI_API_KEY.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	var apiKey, baseURL string
	transcriptionModel, chatModel := openai.Whisper1, openai.GPT4o
	timeout := 10 * time.Minute
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
		if cfg.TranscriptionModel != "" {
			transcriptionModel = cfg.TranscriptionModel
		}
		if cfg.ChatModel != "" {
			chatModel = cfg.ChatModel
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	return &OpenAIClient{
		client:             newOpenAICompatible(apiKey, baseURL, timeout),
		name:               config.ProviderOpenAI,
		transcriptionModel: transcriptionModel,
		chatModel:          chatModel,
	}
}

func newOpenAICompatible(apiKey, baseURL string, timeout time.Duration) *openai.Client {
	c := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		c.BaseURL = strings.TrimRight(baseURL, "/")
	}
	c.HTTPClient = &http.Client{Timeout: timeout}
	return openai.NewClientWithConfig(c)
}

// Transcribe uploads the recording to the transcription endpoint
func (c *OpenAIClient) Transcribe(ctx context.Context, audio Audio) (string, error) {
	req := openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: audio.Path,
	}
	if c.segmented {
		req.Format = openai.AudioResponseFormatVerboseJSON
	}

	resp, err := c.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s transcription: %w", c.name, err)
	}

	if c.segmented {
		return joinSegments(resp), nil
	}
	return strings.TrimSpace(resp.Text), nil
}

// Complete sends one system + user exchange and returns the assistant content
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	return complete(ctx, c.client, c.name, c.chatModel, c.maxTokens, system, user)
}

func complete(ctx context.Context, client *openai.Client, provider, model string, maxTokens int, system, user string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: provider, Kind: KindUnknown, Message: "empty response"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// joinSegments aggregates the segments a local model returned into one text
func joinSegments(resp openai.AudioResponse) string {
	if len(resp.Segments) == 0 {
		return strings.TrimSpace(resp.Text)
	}

	parts := make([]string, 0, len(resp.Segments))
	for _, seg := range resp.Segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

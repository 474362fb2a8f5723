package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/meeting-minutes/pkg/config"
)

// AssemblyAIClient transcribes recordings with the official AssemblyAI SDK
type AssemblyAIClient struct {
	client       *aai.Client
	languageCode string
}

// NewAssemblyAIClient creates an AssemblyAI client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	var apiKey, baseURL, language string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
		language = cfg.LanguageCode
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	opts := []aai.ClientOption{aai.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, aai.WithBaseURL(baseURL))
	}

	return &AssemblyAIClient{
		client:       aai.NewClientWithOptions(opts...),
		languageCode: language,
	}
}

// Transcribe submits the recording and waits for the transcript. A remote URL
// is used when the recording was published to object storage, otherwise the
// local file is uploaded first.
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio Audio) (string, error) {
	params := c.params()

	var (
		transcript aai.Transcript
		err        error
	)
	if audio.URL != "" {
		transcript, err = c.client.Transcripts.TranscribeFromURL(ctx, audio.URL, params)
	} else {
		f, openErr := os.Open(audio.Path)
		if openErr != nil {
			return "", fmt.Errorf("open recording: %w", openErr)
		}
		defer f.Close()

		transcript, err = c.client.Transcripts.TranscribeFromReader(ctx, f, params)
	}
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription: %w", err)
	}

	return transcriptText(transcript)
}

func (c *AssemblyAIClient) params() *aai.TranscriptOptionalParams {
	params := &aai.TranscriptOptionalParams{
		Punctuate:  aai.Bool(true),
		FormatText: aai.Bool(true),
	}
	if c.languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(c.languageCode)
	} else {
		params.LanguageDetection = aai.Bool(true)
	}
	return params
}

// transcriptText extracts the text of a finished transcript
func transcriptText(t aai.Transcript) (string, error) {
	if t.Status == aai.TranscriptStatusError {
		msg := "transcription failed"
		if t.Error != nil && *t.Error != "" {
			msg = *t.Error
		}
		return "", &ProviderError{Provider: config.ProviderAssemblyAI, Kind: KindInvalidInput, Message: msg}
	}
	if t.Text == nil {
		return "", nil
	}
	return strings.TrimSpace(*t.Text), nil
}

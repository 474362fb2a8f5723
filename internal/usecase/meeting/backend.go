package meeting

import (
	"context"
	"fmt"

	pkgai "github.com/johnquangdev/meeting-minutes/pkg/ai"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
	"github.com/johnquangdev/meeting-minutes/pkg/prompt"

	"github.com/johnquangdev/meeting-minutes/internal/domain/entities"
)

// Backend is the set of engines serving one deployment. It is chosen once at
// startup from configuration.
type Backend struct {
	Info        entities.BackendInfo
	Transcriber pkgai.Transcriber
	Generator   pkgai.ChatModel
	Prompts     prompt.Set
}

// NewBackend builds the hosted or local backend described by cfg
func NewBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	prompts, err := loadPrompts(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Pipeline.Backend == config.BackendLocal {
		local := pkgai.NewLocalClient(&cfg.Local)
		return &Backend{
			Info: entities.BackendInfo{
				Mode:               config.BackendLocal,
				Transcriber:        config.ProviderLocal,
				Generator:          config.ProviderLocal,
				TranscriptionModel: cfg.Local.WhisperModel,
				ChatModel:          cfg.Local.ChatModel,
			},
			Transcriber: local,
			Generator:   local,
			Prompts:     prompts.Local,
		}, nil
	}

	b := &Backend{
		Info:    entities.BackendInfo{Mode: config.BackendHosted},
		Prompts: prompts.Hosted,
	}

	var openaiClient *pkgai.OpenAIClient
	openAI := func() *pkgai.OpenAIClient {
		if openaiClient == nil {
			openaiClient = pkgai.NewOpenAIClient(&cfg.OpenAI)
		}
		return openaiClient
	}

	switch cfg.Pipeline.Transcriber {
	case config.ProviderOpenAI:
		b.Transcriber = openAI()
		b.Info.TranscriptionModel = cfg.OpenAI.TranscriptionModel
	case config.ProviderAssemblyAI:
		b.Transcriber = pkgai.NewAssemblyAIClient(&cfg.Assembly)
		b.Info.TranscriptionModel = "assemblyai"
	default:
		return nil, fmt.Errorf("unknown transcriber %q", cfg.Pipeline.Transcriber)
	}
	b.Info.Transcriber = cfg.Pipeline.Transcriber

	switch cfg.Pipeline.Generator {
	case config.ProviderOpenAI:
		b.Generator = openAI()
		b.Info.ChatModel = cfg.OpenAI.ChatModel
	case config.ProviderGroq:
		b.Generator = pkgai.NewGroqClient(&cfg.Groq)
		b.Info.ChatModel = cfg.Groq.ChatModel
	case config.ProviderGemini:
		gemini, err := pkgai.NewGeminiClient(ctx, &cfg.Gemini)
		if err != nil {
			return nil, err
		}
		b.Generator = gemini
		b.Info.ChatModel = cfg.Gemini.Model
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Pipeline.Generator)
	}
	b.Info.Generator = cfg.Pipeline.Generator

	return b, nil
}

func loadPrompts(cfg *config.Config) (*prompt.File, error) {
	if cfg.Pipeline.PromptsFile == "" {
		return &prompt.File{Hosted: prompt.Hosted(), Local: prompt.Local()}, nil
	}
	return prompt.Load(cfg.Pipeline.PromptsFile)
}

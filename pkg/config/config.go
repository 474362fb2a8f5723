package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Backend modes
const (
	BackendHosted = "hosted"
	BackendLocal  = "local"
)

// Provider names
const (
	ProviderOpenAI     = "openai"
	ProviderAssemblyAI = "assemblyai"
	ProviderGroq       = "groq"
	ProviderGemini     = "gemini"
	ProviderLocal      = "local"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Pipeline PipelineConfig
	OpenAI   OpenAIConfig
	Assembly AssemblyAIConfig
	Groq     GroqConfig
	Gemini   GeminiConfig
	Local    LocalConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development" validate:"oneof=development staging production test"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10" validate:"gte=0"`
	MaxUploadMB     int64    `envconfig:"MAX_UPLOAD_MB" default:"25" validate:"gt=0"`
	LogLevel        string   `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

// PipelineConfig selects which backend adapters serve the stages
type PipelineConfig struct {
	Backend     string `envconfig:"PIPELINE_BACKEND" default:"hosted" validate:"oneof=hosted local"`
	Transcriber string `envconfig:"PIPELINE_TRANSCRIBER" default:"openai" validate:"oneof=openai assemblyai"`
	Generator   string `envconfig:"PIPELINE_GENERATOR" default:"openai" validate:"oneof=openai groq gemini"`
	PromptsFile string `envconfig:"PIPELINE_PROMPTS_FILE"`
}

// OpenAIConfig holds OpenAI configuration (Whisper + chat completions)
type OpenAIConfig struct {
	APIKey             string        `envconfig:"OPENAI_API_KEY"`
	BaseURL            string        `envconfig:"OPENAI_BASE_URL"`
	TranscriptionModel string        `envconfig:"OPENAI_TRANSCRIPTION_MODEL" default:"whisper-1"`
	ChatModel          string        `envconfig:"OPENAI_CHAT_MODEL" default:"gpt-4o"`
	Timeout            time.Duration `envconfig:"OPENAI_TIMEOUT" default:"10m"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey       string `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL      string `envconfig:"ASSEMBLYAI_BASE_URL"`
	LanguageCode string `envconfig:"ASSEMBLYAI_LANGUAGE_CODE"`
}

// GroqConfig holds Groq configuration (OpenAI-compatible endpoint)
type GroqConfig struct {
	APIKey    string        `envconfig:"GROQ_API_KEY"`
	BaseURL   string        `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1"`
	ChatModel string        `envconfig:"GROQ_CHAT_MODEL" default:"llama-3.3-70b-versatile"`
	Timeout   time.Duration `envconfig:"GROQ_TIMEOUT" default:"2m"`
}

// GeminiConfig holds Google Gemini configuration
type GeminiConfig struct {
	APIKey string `envconfig:"GEMINI_API_KEY"`
	Model  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash"`
}

// LocalConfig points at model runtimes on the same machine
type LocalConfig struct {
	WhisperURL   string        `envconfig:"LOCAL_WHISPER_URL" default:"http://localhost:8000/v1"`
	WhisperModel string        `envconfig:"LOCAL_WHISPER_MODEL" default:"Systran/faster-whisper-small"`
	ChatURL      string        `envconfig:"LOCAL_CHAT_URL" default:"http://localhost:11434/v1"`
	ChatModel    string        `envconfig:"LOCAL_CHAT_MODEL" default:"llama3.1"`
	MaxTokens    int           `envconfig:"LOCAL_MAX_TOKENS" default:"512" validate:"gte=0"`
	Timeout      time.Duration `envconfig:"LOCAL_TIMEOUT" default:"30m"`
}

// StorageConfig holds staging configuration for uploaded recordings
type StorageConfig struct {
	TempDir         string        `envconfig:"STORAGE_TEMP_DIR"`
	RemoteEnabled   bool          `envconfig:"STORAGE_REMOTE_ENABLED" default:"false"`
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string        `envconfig:"STORAGE_BUCKET" default:"meeting-minutes"`
	UseSSL          bool          `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string        `envconfig:"STORAGE_PUBLIC_URL"`
	URLExpiry       time.Duration `envconfig:"STORAGE_URL_EXPIRY" default:"1h"`
}

// sections lists the config sections by name. Every field carries its full
// variable name so a bare name like CHAT_MODEL never reaches a section.
func (c *Config) sections() map[string]interface{} {
	return map[string]interface{}{
		"server":     &c.Server,
		"pipeline":   &c.Pipeline,
		"openai":     &c.OpenAI,
		"assemblyai": &c.Assembly,
		"groq":       &c.Groq,
		"gemini":     &c.Gemini,
		"local":      &c.Local,
		"storage":    &c.Storage,
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv reads configuration from the process environment only
func FromEnv() (*Config, error) {
	config := &Config{}
	for name, section := range config.sections() {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to read %s config: %w", name, err)
		}
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Pipeline.Backend == BackendLocal {
		if c.Local.WhisperURL == "" {
			return fmt.Errorf("LOCAL_WHISPER_URL is required in local mode")
		}
		if c.Local.ChatURL == "" {
			return fmt.Errorf("LOCAL_CHAT_URL is required in local mode")
		}
		return nil
	}

	switch c.Pipeline.Transcriber {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	case ProviderAssemblyAI:
		if c.Assembly.APIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
		}
	}

	switch c.Pipeline.Generator {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	case ProviderGroq:
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	}

	return nil
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}

// Address returns host:port for the HTTP listener
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreBackendMongo  = "mongo"
	StoreBackendMemory = "memory"

	SummarizerHuggingFace = "huggingface"
	SummarizerGemini      = "gemini"
	SummarizerOllama      = "ollama"
)

// Config holds everything the server needs at startup.
type Config struct {
	Addr        string
	RoutePrefix string
	DebugErrors bool

	StoreBackend  string
	MongoURI      string
	MongoDatabase string

	Summarizer SummarizerConfig
}

// SummarizerConfig selects and parameterizes the summarization backend.
type SummarizerConfig struct {
	Backend string
	Model   string
	URL     string
	APIKey  string
	Timeout time.Duration
}

// New returns a viper instance with the service defaults registered and
// environment lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("route_prefix", "")
	v.SetDefault("debug_errors", false)
	v.SetDefault("store_backend", StoreBackendMongo)
	v.SetDefault("mongodb_database", "flashcard")
	v.SetDefault("summarizer_backend", SummarizerHuggingFace)
	v.SetDefault("summarizer_timeout", 2*time.Minute)
	v.AutomaticEnv()
	return v
}

// Load reads the optional .env file into the process environment and then
// resolves the configuration from v.
func Load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("CONFIG: No %s file found, relying on environment variables.", envFile)
	}

	cfg := &Config{
		Addr:          v.GetString("addr"),
		RoutePrefix:   strings.TrimRight(v.GetString("route_prefix"), "/"),
		DebugErrors:   v.GetBool("debug_errors"),
		StoreBackend:  strings.ToLower(v.GetString("store_backend")),
		MongoURI:      v.GetString("mongodb_uri"),
		MongoDatabase: v.GetString("mongodb_database"),
		Summarizer: SummarizerConfig{
			Backend: strings.ToLower(v.GetString("summarizer_backend")),
			Model:   v.GetString("summarizer_model"),
			URL:     v.GetString("summarizer_url"),
			Timeout: v.GetDuration("summarizer_timeout"),
		},
	}
	switch cfg.Summarizer.Backend {
	case SummarizerHuggingFace:
		cfg.Summarizer.APIKey = v.GetString("huggingface_api_token")
	case SummarizerGemini:
		cfg.Summarizer.APIKey = v.GetString("gemini_api_key")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports configuration combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI not set")
		}
	case StoreBackendMemory:
	default:
		return fmt.Errorf("unsupported store backend: %q", c.StoreBackend)
	}

	switch c.Summarizer.Backend {
	case SummarizerHuggingFace, SummarizerOllama:
	case SummarizerGemini:
		if c.Summarizer.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
	default:
		return fmt.Errorf("unsupported summarizer backend: %q", c.Summarizer.Backend)
	}
	if c.Summarizer.Timeout < 0 {
		return fmt.Errorf("summarizer timeout must not be negative")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := Load(New(), filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.MongoDatabase != "flashcard" {
		t.Fatalf("expected default database flashcard, got %q", cfg.MongoDatabase)
	}
	if cfg.Summarizer.Backend != SummarizerHuggingFace {
		t.Fatalf("expected huggingface backend, got %q", cfg.Summarizer.Backend)
	}
	if cfg.Summarizer.Timeout != 2*time.Minute {
		t.Fatalf("expected 2m timeout, got %s", cfg.Summarizer.Timeout)
	}
	if cfg.DebugErrors {
		t.Fatalf("expected debug errors off by default")
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	body := "STORE_BACKEND=memory\nROUTE_PREFIX=/api/\nSUMMARIZER_BACKEND=ollama\nSUMMARIZER_TIMEOUT=15s\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Cleanup(func() {
		for _, key := range []string{"STORE_BACKEND", "ROUTE_PREFIX", "SUMMARIZER_BACKEND", "SUMMARIZER_TIMEOUT"} {
			os.Unsetenv(key)
		}
	})

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreBackend != StoreBackendMemory {
		t.Fatalf("expected memory store, got %q", cfg.StoreBackend)
	}
	if cfg.RoutePrefix != "/api" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.RoutePrefix)
	}
	if cfg.Summarizer.Backend != SummarizerOllama {
		t.Fatalf("expected ollama backend, got %q", cfg.Summarizer.Backend)
	}
	if cfg.Summarizer.Timeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %s", cfg.Summarizer.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "mongo without uri",
			cfg:     Config{StoreBackend: StoreBackendMongo, Summarizer: SummarizerConfig{Backend: SummarizerHuggingFace}},
			wantErr: true,
		},
		{
			name:    "gemini without key",
			cfg:     Config{StoreBackend: StoreBackendMemory, Summarizer: SummarizerConfig{Backend: SummarizerGemini}},
			wantErr: true,
		},
		{
			name:    "unknown summarizer",
			cfg:     Config{StoreBackend: StoreBackendMemory, Summarizer: SummarizerConfig{Backend: "bart"}},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{StoreBackend: StoreBackendMemory, Summarizer: SummarizerConfig{Backend: SummarizerOllama, Timeout: -time.Second}},
			wantErr: true,
		},
		{
			name: "memory with ollama",
			cfg:  Config{StoreBackend: StoreBackendMemory, Summarizer: SummarizerConfig{Backend: SummarizerOllama}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

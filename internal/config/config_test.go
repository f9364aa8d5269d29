package config

import (
	"errors"
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				OpenAI: OpenAIConfig{APIKey: "sk-test"},
				Paths:  PathsConfig{Output: "data/output"},
			},
			wantErr: nil,
		},
		{
			name: "missing api key",
			config: Config{
				Paths: PathsConfig{Output: "data/output"},
			},
			wantErr: ErrMissingAPIKey,
		},
		{
			name: "missing output path",
			config: Config{
				OpenAI: OpenAIConfig{APIKey: "sk-test"},
			},
			wantErr: errors.New("paths.output is required"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != (tt.wantErr != nil) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == ErrMissingAPIKey && !errors.Is(err, ErrMissingAPIKey) {
				t.Errorf("Validate() error = %v, want ErrMissingAPIKey", err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		OpenAI: OpenAIConfig{APIKey: "sk-test"},
		Paths:  PathsConfig{Output: "data/output"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.OpenAI.TranscribeModel != "whisper-1" {
		t.Errorf("TranscribeModel = %v, want whisper-1", cfg.OpenAI.TranscribeModel)
	}
	if cfg.OpenAI.ImageModel != "dall-e-3" {
		t.Errorf("ImageModel = %v, want dall-e-3", cfg.OpenAI.ImageModel)
	}
	if cfg.Video.FPS != 24 {
		t.Errorf("FPS = %v, want 24", cfg.Video.FPS)
	}
	if cfg.Video.FadeDuration != 0.5 {
		t.Errorf("FadeDuration = %v, want 0.5", cfg.Video.FadeDuration)
	}
	if cfg.Performance.MaxConcurrentImages != 2 {
		t.Errorf("MaxConcurrentImages = %v, want 2", cfg.Performance.MaxConcurrentImages)
	}
	if cfg.Video.DefaultStyle != "simple" {
		t.Errorf("DefaultStyle = %v, want simple", cfg.Video.DefaultStyle)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
openai:
  transcribe_model: "whisper-1"
  image_model: "dall-e-3"
  image_size: "1024x1024"

video:
  encoder: "libx264"
  fps: 30
  fade_duration: 0.5

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEYS", "key-a, key-b")

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %v, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.Video.FPS != 30 {
		t.Errorf("FPS = %v, want 30", cfg.Video.FPS)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "key-b" {
		t.Errorf("Gemini.APIKeys = %v, want [key-a key-b]", cfg.Gemini.APIKeys)
	}
}

func TestLoadMissingKey(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte("paths:\n  output: data/output\n")); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	t.Setenv("OPENAI_API_KEY", "")

	if _, err := Load(tmpfile.Name()); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Load() error = %v, want ErrMissingAPIKey", err)
	}
}

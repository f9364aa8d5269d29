package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Validate when no OpenAI credential is
// available. It is a startup failure: nothing in the pipeline can run
// without it.
var ErrMissingAPIKey = errors.New("OpenAI API key is required (set OPENAI_API_KEY)")

type Config struct {
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Video       VideoConfig       `yaml:"video"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Server      ServerConfig      `yaml:"server"`
}

type OpenAIConfig struct {
	// APIKey is never read from yaml; it comes from the environment.
	APIKey          string `yaml:"-"`
	TranscribeModel string `yaml:"transcribe_model"`
	ImageModel      string `yaml:"image_model"`
	ImageSize       string `yaml:"image_size"`
	ImageQuality    string `yaml:"image_quality"`
}

type GeminiConfig struct {
	// APIKeys come from GEMINI_API_KEYS (comma-separated). When empty the
	// scene refiner is disabled and raw sentences go straight to the
	// image model.
	APIKeys []string `yaml:"-"`
	Model   string   `yaml:"model"`
}

type VideoConfig struct {
	Encoder      string  `yaml:"encoder"`
	Preset       string  `yaml:"preset"`
	AudioCodec   string  `yaml:"audio_codec"`
	FPS          int     `yaml:"fps"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	FadeDuration float64 `yaml:"fade_duration"`
	DefaultStyle string  `yaml:"default_style"`
	Storyboard   bool    `yaml:"storyboard"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrentImages int `yaml:"max_concurrent_images"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

// Load reads the yaml config file, overlays credentials from the
// environment (a .env file is honored when present) and validates.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if keys := os.Getenv("GEMINI_API_KEYS"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.Gemini.APIKeys = append(cfg.Gemini.APIKeys, k)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.OpenAI.TranscribeModel == "" {
		c.OpenAI.TranscribeModel = "whisper-1"
	}
	if c.OpenAI.ImageModel == "" {
		c.OpenAI.ImageModel = "dall-e-3"
	}
	if c.OpenAI.ImageSize == "" {
		c.OpenAI.ImageSize = "1024x1024"
	}
	if c.OpenAI.ImageQuality == "" {
		c.OpenAI.ImageQuality = "standard"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Video.Encoder == "" {
		c.Video.Encoder = "libx264"
	}
	if c.Video.Preset == "" {
		c.Video.Preset = "medium"
	}
	if c.Video.AudioCodec == "" {
		c.Video.AudioCodec = "aac"
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = 24
	}
	if c.Video.Width == 0 {
		c.Video.Width = 1024
	}
	if c.Video.Height == 0 {
		c.Video.Height = 1024
	}
	if c.Video.FadeDuration == 0 {
		c.Video.FadeDuration = 0.5
	}
	if c.Video.DefaultStyle == "" {
		c.Video.DefaultStyle = "simple"
	}
	if c.Performance.MaxConcurrentImages == 0 {
		c.Performance.MaxConcurrentImages = 2
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 100
	}

	return nil
}

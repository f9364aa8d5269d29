package illustrator

import (
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/config"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
)

type implIllustrator struct {
	client     *openai.Client
	httpClient *http.Client
	cfg        config.OpenAIConfig
	logger     logger.Logger
}

// New creates an Illustrator backed by the OpenAI image generation API.
// The returned image URL is temporary, so downloads happen immediately
// after generation with a bounded timeout.
func New(cfg config.OpenAIConfig, log logger.Logger) Illustrator {
	return &implIllustrator{
		client:     openai.NewClient(cfg.APIKey),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		cfg:        cfg,
		logger:     log,
	}
}

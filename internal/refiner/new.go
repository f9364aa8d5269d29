package refiner

import (
	"sync"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
)

type implRefiner struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates a Refiner that rotates through the supplied Gemini API keys.
// Returns nil when no keys are configured; callers treat a nil Refiner as
// "refinement disabled".
func New(apiKeys []string, model string, log logger.Logger) Refiner {
	if len(apiKeys) == 0 {
		return nil
	}
	return &implRefiner{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}

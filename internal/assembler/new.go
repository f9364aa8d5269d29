package assembler

import (
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/config"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/pkg/executor"
)

type implAssembler struct {
	cfg      config.VideoConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Assembler that shells out to ffmpeg/ffprobe.
func New(cfg config.VideoConfig, exec executor.Executor, log logger.Logger) Assembler {
	return &implAssembler{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

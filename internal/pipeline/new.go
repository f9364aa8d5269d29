package pipeline

import (
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/assembler"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/config"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/illustrator"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/refiner"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	refiner     refiner.Refiner // nil disables scene refinement
	illustrator illustrator.Illustrator
	assembler   assembler.Assembler
	logger      logger.Logger
	progress    ProgressFunc
}

// New creates a Pipeline instance. refiner may be nil; progress may be nil.
func New(
	cfg *config.Config,
	trans transcriber.Transcriber,
	ref refiner.Refiner,
	ill illustrator.Illustrator,
	asm assembler.Assembler,
	log logger.Logger,
	progress ProgressFunc,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		transcriber: trans,
		refiner:     ref,
		illustrator: ill,
		assembler:   asm,
		logger:      log,
		progress:    progress,
	}
}

package pipeline

import (
	"context"
	"errors"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/illustrator"
)

var (
	// ErrNoSentences means the transcript yielded nothing to illustrate.
	ErrNoSentences = errors.New("no sentences could be extracted from the transcript")
	// ErrNoIllustrations means every illustration attempt failed; the
	// assembler is never invoked in that case.
	ErrNoIllustrations = errors.New("no illustrations were generated")
)

// Pipeline defines the interface for one audio-to-animation run
type Pipeline interface {
	// Run drives transcription, segmentation, illustration and assembly
	// in sequence and writes the final video to outputPath.
	Run(ctx context.Context, audioPath string, style illustrator.Style, outputPath string) (*Result, error)
}

// ProgressFunc receives coarse run progress: a stage name and a fraction
// in [0,1]. May be nil.
type ProgressFunc func(stage string, fraction float64)

// Result summarizes a completed run.
type Result struct {
	VideoPath   string
	Transcript  string
	Sentences   []string
	Illustrated int
	Skipped     int
}

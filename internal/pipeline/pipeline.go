package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/illustrator"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/segmenter"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/storyboard"
)

// Run orchestrates one animation run. Stages execute in order; all
// intermediate artifacts live in a per-run scratch directory that is
// removed on every exit path.
func (p *implPipeline) Run(ctx context.Context, audioPath string, style illustrator.Style, outputPath string) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting animation run: %s (style: %s)", audioPath, style)
	p.logger.Info(ctx, "========================================")

	scratchDir, err := os.MkdirTemp("", "animation-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratchDir)

	// Step 1: Transcription
	p.report("transcribing", 0.10)
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe audio: %w", err)
	}

	sentences := segmenter.Segment(transcript)
	if len(sentences) == 0 {
		return nil, ErrNoSentences
	}
	p.logger.Info(ctx, "Extracted %d sentences", len(sentences))

	// Step 2: Illustration fan-out
	images, scenes := p.illustrateAll(ctx, sentences, style, scratchDir)
	if len(images) == 0 {
		return nil, ErrNoIllustrations
	}
	if skipped := len(sentences) - len(images); skipped > 0 {
		p.logger.Warn(ctx, "%d of %d sentences produced no illustration", skipped, len(sentences))
	}

	// Step 3: Assembly
	p.report("assembling", 0.95)
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := p.assembler.Assemble(ctx, images, audioPath, outputPath); err != nil {
		return nil, fmt.Errorf("assemble video: %w", err)
	}

	if p.cfg.Video.Storyboard {
		boardPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + "_storyboard.docx"
		title := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
		if err := storyboard.Write(title, scenes, boardPath); err != nil {
			p.logger.Warn(ctx, "Failed to write storyboard: %v", err)
		} else {
			p.logger.Info(ctx, "Storyboard written: %s", boardPath)
		}
	}

	p.report("done", 1.0)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Animation completed: %s", outputPath)
	p.logger.Info(ctx, "Run time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return &Result{
		VideoPath:   outputPath,
		Transcript:  transcript,
		Sentences:   sentences,
		Illustrated: len(images),
		Skipped:     len(sentences) - len(images),
	}, nil
}

// illustrateAll generates one image per sentence with a bounded fan-out.
// Sentence order is preserved by index regardless of completion order. A
// failed sentence is logged and dropped; the returned paths are the
// successful ones, in order.
func (p *implPipeline) illustrateAll(ctx context.Context, sentences []string, style illustrator.Style, destDir string) ([]string, []storyboard.Scene) {
	results := make([]string, len(sentences))
	prompts := make([]string, len(sentences))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Performance.MaxConcurrentImages)

	for idx, sentence := range sentences {
		g.Go(func() error {
			scene := sentence
			if p.refiner != nil {
				refined, err := p.refiner.Refine(gctx, sentence)
				if err != nil {
					p.logger.Warn(gctx, "Scene refinement failed for sentence %d, using raw text: %v", idx, err)
				} else {
					scene = refined
				}
			}
			prompts[idx] = illustrator.BuildPrompt(scene, style)

			path, err := p.illustrator.Illustrate(gctx, scene, style, idx, destDir)
			if err != nil {
				p.logger.Warn(gctx, "Skipping sentence %d (%q): %v", idx, sentence, err)
			} else {
				results[idx] = path
			}

			n := done.Add(1)
			p.report("illustrating", 0.10+0.80*float64(n)/float64(len(sentences)))
			return nil
		})
	}
	// Workers never return errors; per-sentence failures are tolerated.
	_ = g.Wait()

	images := make([]string, 0, len(sentences))
	scenes := make([]storyboard.Scene, 0, len(sentences))
	for idx, sentence := range sentences {
		if results[idx] != "" {
			images = append(images, results[idx])
		}
		scenes = append(scenes, storyboard.Scene{
			Index:    idx,
			Sentence: sentence,
			Prompt:   prompts[idx],
			Skipped:  results[idx] == "",
		})
	}

	return images, scenes
}

func (p *implPipeline) report(stage string, fraction float64) {
	if p.progress != nil {
		p.progress(stage, fraction)
	}
}

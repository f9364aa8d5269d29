package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/assembler"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/config"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/illustrator"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/pipeline"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/refiner"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/transcriber"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/watcher"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Audio to Whiteboard Animation Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	trans := transcriber.New(cfg.OpenAI.APIKey, cfg.OpenAI.TranscribeModel, log)
	ref := refiner.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	ill := illustrator.New(cfg.OpenAI, log)
	asm := assembler.New(cfg.Video, exec, log)

	progress := func(stage string, fraction float64) {
		log.Debug(ctx, "Progress [%s]: %.0f%%", stage, fraction*100)
	}
	pipe := pipeline.New(cfg, trans, ref, ill, asm, log, progress)

	style, err := illustrator.ParseStyle(cfg.Video.DefaultStyle)
	if err != nil {
		log.Error(ctx, "Invalid default style: %v", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, audioPath string) error {
		name := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
		outputPath := filepath.Join(cfg.Paths.Output, name+".mp4")

		if _, err := pipe.Run(ctx, audioPath, style, outputPath); err != nil {
			return err
		}

		// Move the processed input aside so it is not picked up again
		archivedPath := filepath.Join(cfg.Paths.Archived, filepath.Base(audioPath))
		if err := os.Rename(audioPath, archivedPath); err != nil {
			log.Warn(ctx, "Failed to archive %s: %v", audioPath, err)
		}
		return nil
	}

	// Create watcher with the pipeline as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, handler, log, 1)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Animation pipeline is ready!")
	log.Info(ctx, "Drop audio files into: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Default style: %s", cfg.Video.DefaultStyle)
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Animation pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/assembler"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/config"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/illustrator"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/pipeline"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/refiner"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/server"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/transcriber"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/pkg/executor"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		log.Error(ctx, "Failed to create output directory: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	trans := transcriber.New(cfg.OpenAI.APIKey, cfg.OpenAI.TranscribeModel, log)
	ref := refiner.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	ill := illustrator.New(cfg.OpenAI, log)
	asm := assembler.New(cfg.Video, exec, log)

	progress := func(stage string, fraction float64) {
		log.Debug(ctx, "Progress [%s]: %.0f%%", stage, fraction*100)
	}
	pipe := pipeline.New(cfg, trans, ref, ill, asm, log, progress)

	srv := server.New(cfg, pipe, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Listen()
	}()

	log.Info(ctx, "Animation server listening on %s", cfg.Server.Addr)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	log.Info(ctx, "Animation server stopped")
}

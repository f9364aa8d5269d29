package server

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/illustrator"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/pipeline"
)

// createAnimation accepts a multipart upload (audio file + style), runs
// the pipeline synchronously and returns the animation id and URLs. The
// uploaded file is staged in a per-request temp dir removed afterwards.
func (s *Server) createAnimation(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "an audio file is required (field 'audio')",
		})
	}

	if !isSupportedAudio(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "unsupported audio format (use MP3, WAV or M4A)",
		})
	}

	styleName := c.FormValue("style", s.cfg.Video.DefaultStyle)
	style, err := illustrator.ParseStyle(styleName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	uploadDir, err := os.MkdirTemp("", "upload-*")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "could not stage upload",
		})
	}
	defer os.RemoveAll(uploadDir)

	audioPath := filepath.Join(uploadDir, filepath.Base(file.Filename))
	if err := c.SaveFile(file, audioPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "could not save upload",
		})
	}

	id := uuid.New().String()
	outputPath := filepath.Join(s.cfg.Paths.Output, id+".mp4")

	result, err := s.pipeline.Run(c.UserContext(), audioPath, style, outputPath)
	if err != nil {
		s.logger.Error(c.UserContext(), "Animation run failed: %v", err)

		status := fiber.StatusInternalServerError
		if errors.Is(err, pipeline.ErrNoSentences) || errors.Is(err, pipeline.ErrNoIllustrations) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}

	s.register(id, result.VideoPath)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":       "success",
		"id":           id,
		"video_url":    "/animations/" + id + "/video",
		"download_url": "/animations/" + id + "/download",
		"sentences":    len(result.Sentences),
		"illustrated":  result.Illustrated,
		"skipped":      result.Skipped,
	})
}

// serveVideo streams the finished animation inline for playback.
func (s *Server) serveVideo(c *fiber.Ctx) error {
	path, ok := s.lookup(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "animation not found",
		})
	}
	return c.SendFile(path)
}

// downloadVideo serves the animation as an attachment with the fixed
// download filename.
func (s *Server) downloadVideo(c *fiber.Ctx) error {
	path, ok := s.lookup(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "animation not found",
		})
	}
	return c.Download(path, "final_animation.mp4")
}

func isSupportedAudio(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3", ".wav", ".m4a":
		return true
	}
	return false
}

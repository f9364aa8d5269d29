package server

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/config"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/pipeline"
)

// Server exposes the upload form and the animation endpoints.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	pipeline pipeline.Pipeline
	logger   logger.Logger

	mu     sync.Mutex
	videos map[string]string // animation id -> video path
}

// New wires the fiber app and routes.
func New(cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Server.MaxUploadMB * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(fiberlogger.New())

	s := &Server{
		app:      app,
		cfg:      cfg,
		pipeline: pipe,
		logger:   log,
		videos:   make(map[string]string),
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	app.Get("/", s.index)

	apiV1 := app.Group("/api/v1")
	apiV1.Post("/animations", s.createAnimation)

	app.Get("/animations/:id/video", s.serveVideo)
	app.Get("/animations/:id/download", s.downloadVideo)

	return s
}

// Listen blocks serving HTTP on the configured address.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) register(id, videoPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[id] = videoPath
}

func (s *Server) lookup(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	path, ok := s.videos[id]
	return path, ok
}

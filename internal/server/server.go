package server

import (
	"github.com/kindermann-r/hiking-navigator/internal/config"
	"github.com/kindermann-r/hiking-navigator/internal/session"
	"github.com/kindermann-r/hiking-navigator/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	Redis    *redis.Client
	Stream   *stream.Hub
	Sessions *session.Service
}

func NewServer(cfg config.Config, redisClient *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxTrackBytes,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	hub := stream.NewHub(redisClient)
	s := &Server{
		App:      app,
		Cfg:      cfg,
		Redis:    redisClient,
		Stream:   hub,
		Sessions: session.NewService(hub, cfg.OnTrailRadiusM, cfg.NearTrailRadiusM),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	session.RegisterRoutes(s.App.Group("/sessions"), s.Sessions)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}

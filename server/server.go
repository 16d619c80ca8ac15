// Package server exposes the channel analytics dashboard as an HTTP API.
package server

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/nigeshu/YoutubeSangam/client"
	"github.com/nigeshu/YoutubeSangam/config"
	"github.com/nigeshu/YoutubeSangam/store"
)

// Server wires the upstream clients, the document store and the snapshot
// cache into a Fiber application.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	channels client.ChannelDataClient
	games    client.GameSearchClient
	store    store.DocumentStore
	cache    *SnapshotCache
	holder   *SnapshotHolder
}

// New builds a Server with all middleware and routes registered.
func New(cfg *config.Config, channels client.ChannelDataClient, games client.GameSearchClient, documents store.DocumentStore, cache *SnapshotCache) *Server {
	InitMetrics()

	s := &Server{
		app:      fiber.New(),
		cfg:      cfg,
		channels: channels,
		games:    games,
		store:    documents,
		cache:    cache,
		holder:   NewSnapshotHolder(),
	}

	s.setupRoutes()
	return s
}

// App exposes the underlying Fiber application, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) setupRoutes() {
	// Middleware stack (order matters)
	s.app.Use(recoverer.New())
	s.app.Use(NewRequestLogger())
	s.app.Use(MetricsMiddleware())
	s.app.Use(NewCORS(s.cfg.CORSOrigins))

	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/metrics", MetricsHandler())

	api := s.app.Group("/api")

	// Channel loading and derived views
	api.Post("/channel", s.handleLoadChannel)
	api.Get("/videos", s.handleListVideos)
	api.Get("/videos/top", s.handleTopVideos)
	api.Get("/calendar", s.handleCalendar)
	api.Get("/stats", s.handleStats)

	// Playlists
	api.Get("/playlists", s.handleListPlaylists)
	api.Get("/playlists/:id/videos", s.handlePlaylistVideos)

	// Comment feed
	api.Get("/comments", s.handleComments)

	// Game catalog search
	api.Get("/games/search", s.handleGameSearch)

	// Per-user documents
	api.Get("/goals", s.handleListGoals)
	api.Post("/goals", s.handleAddGoal)
	api.Patch("/goals/:id", s.handleUpdateGoal)
	api.Delete("/goals/:id", s.handleDeleteGoal)

	api.Get("/library", s.handleListLibrary)
	api.Post("/library", s.handleAddLibraryGame)
	api.Patch("/library/:id", s.handleUpdateLibraryGame)
	api.Delete("/library/:id", s.handleDeleteLibraryGame)
}

// Listen starts serving on the configured port and blocks.
func (s *Server) Listen() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	log.Info().Str("addr", addr).Msg("Starting analytics server")
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// errorResponse writes the uniform error envelope.
func errorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// requireOwner extracts the per-user document owner from the X-User-ID
// header. An empty owner is rejected before any store access.
func requireOwner(c fiber.Ctx) (string, bool) {
	owner := c.Get("X-User-ID")
	return owner, owner != ""
}

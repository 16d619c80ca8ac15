package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/rs/zerolog/log"
)

// NewRequestLogger returns a Fiber middleware that logs each request as
// structured JSON via zerolog.
func NewRequestLogger() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		evt := log.Info()
		if status >= 500 {
			evt = log.Error()
		} else if status >= 400 {
			evt = log.Warn()
		}

		evt.
			Str("method", c.Method()).
			Str("path", sanitizeEndpoint(string([]byte(c.Path())))).
			Int("status", status).
			Dur("duration_ms", duration).
			Int("bytes_sent", len(c.Response().Body())).
			Msg("request")

		return err
	}
}

// NewCORS returns a CORS middleware for the dashboard frontend. corsOrigins
// is a comma-separated list of allowed origins; "*" allows all.
func NewCORS(corsOrigins string) fiber.Handler {
	origins := []string{"*"}
	if corsOrigins != "" && corsOrigins != "*" {
		origins = strings.Split(corsOrigins, ",")
		for i, o := range origins {
			origins[i] = strings.TrimSpace(o)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPatch,
			fiber.MethodDelete,
			fiber.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-User-ID",
		},
		MaxAge: 86400,
	})
}

// sanitizeEndpoint normalizes paths to avoid label cardinality explosion in
// logs and metrics.
func sanitizeEndpoint(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/playlists/") && strings.HasSuffix(path, "/videos"):
		return "/api/playlists/:id/videos"
	case strings.HasPrefix(path, "/api/goals/"):
		return "/api/goals/:id"
	case strings.HasPrefix(path, "/api/library/"):
		return "/api/library/:id"
	default:
		return path
	}
}

package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

// handleGameSearch handles GET /api/games/search?q=
func (s *Server) handleGameSearch(c fiber.Ctx) error {
	query := fiber.Query[string](c, "q")
	if query == "" {
		return errorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "q query parameter is required")
	}

	if s.games == nil {
		return errorResponse(c, fiber.StatusServiceUnavailable, "NOT_CONFIGURED", "Game catalog search is not configured")
	}

	games, err := s.games.SearchGames(c.Context(), query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Game search failed")
		return errorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Game catalog search failed")
	}

	return c.JSON(fiber.Map{"games": games})
}

package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/nigeshu/YoutubeSangam/youtube"
)

type loadChannelRequest struct {
	URL string `json:"url"`
}

// handleLoadChannel handles POST /api/channel. It resolves the submitted URL
// or handle, fetches the channel wholesale and replaces the current
// snapshot. A failed fetch leaves the previous snapshot untouched.
func (s *Server) handleLoadChannel(c fiber.Ctx) error {
	var req loadChannelRequest
	if err := c.Bind().Body(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be JSON with a url field")
	}

	identifier, err := youtube.ResolveChannelIdentifier(req.URL)
	if errors.Is(err, youtube.ErrNoChannelIdentifier) {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_URL", "Could not recognize a channel in the submitted URL")
	}
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_URL", err.Error())
	}

	if cached := s.cache.Get(c.Context(), identifier); cached != nil {
		s.holder.Set(cached)
		Metrics.ChannelFetches.WithLabelValues("cache_hit").Inc()
		log.Info().Str("identifier", identifier).Msg("Channel snapshot served from cache")
		return c.JSON(cached)
	}

	snapshot, err := s.channels.FetchChannelData(c.Context(), identifier)
	if err != nil {
		Metrics.ChannelFetches.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("identifier", identifier).Msg("Channel fetch failed")
		return errorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch channel data")
	}

	s.holder.Set(snapshot)
	s.cache.Set(c.Context(), identifier, snapshot)
	Metrics.ChannelFetches.WithLabelValues("success").Inc()

	return c.JSON(snapshot)
}

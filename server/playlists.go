package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/nigeshu/YoutubeSangam/analytics"
	"github.com/nigeshu/YoutubeSangam/model"
)

// handleListPlaylists handles GET /api/playlists
func (s *Server) handleListPlaylists(c fiber.Ctx) error {
	snapshot, ok := s.requireSnapshot(c)
	if !ok {
		return nil
	}

	return c.JSON(fiber.Map{
		"playlists": snapshot.Playlists,
	})
}

// handlePlaylistVideos handles GET /api/playlists/:id/videos?sort=
// Playlists the snapshot reports as empty short-circuit without an upstream
// call.
func (s *Server) handlePlaylistVideos(c fiber.Ctx) error {
	snapshot, ok := s.requireSnapshot(c)
	if !ok {
		return nil
	}

	playlistID := c.Params("id")

	var known *model.Playlist
	for i := range snapshot.Playlists {
		if snapshot.Playlists[i].ID == playlistID {
			known = &snapshot.Playlists[i]
			break
		}
	}
	if known == nil {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Playlist not found in the loaded channel")
	}

	if known.VideoCount == 0 {
		return c.JSON(fiber.Map{"videos": []model.Video{}})
	}

	videos, err := s.channels.FetchPlaylistVideos(c.Context(), playlistID)
	if err != nil {
		log.Error().Err(err).Str("playlist_id", playlistID).Msg("Playlist video fetch failed")
		return errorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch playlist videos")
	}

	sortOpt := analytics.SortOption(fiber.Query(c, "sort", string(analytics.SortNewest)))
	return c.JSON(fiber.Map{
		"videos": analytics.SortVideos(videos, sortOpt),
	})
}

package server

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/nigeshu/YoutubeSangam/analytics"
	"github.com/nigeshu/YoutubeSangam/model"
)

const topVideosCount = 10

// requireSnapshot fetches the current snapshot or writes the NO_CHANNEL
// error. All derived views go through it.
func (s *Server) requireSnapshot(c fiber.Ctx) (*model.ChannelSnapshot, bool) {
	snapshot := s.holder.Get()
	if snapshot == nil {
		_ = errorResponse(c, fiber.StatusNotFound, "NO_CHANNEL", "No channel loaded, POST /api/channel first")
		return nil, false
	}
	return snapshot, true
}

// handleListVideos handles GET /api/videos?filter=&q=&sort=&page=
func (s *Server) handleListVideos(c fiber.Ctx) error {
	snapshot, ok := s.requireSnapshot(c)
	if !ok {
		return nil
	}

	filter := fiber.Query(c, "filter", analytics.FilterAll)
	query := fiber.Query[string](c, "q")
	sortOpt := analytics.SortOption(fiber.Query(c, "sort", string(analytics.SortNewest)))
	page := fiber.Query(c, "page", 1)

	videos := analytics.Filter(snapshot.Videos, filter, query)
	videos = analytics.SortVideos(videos, sortOpt)

	return c.JSON(analytics.Paginate(videos, page))
}

// handleTopVideos handles GET /api/videos/top. Results come back in
// ascending view order, highest last, ready for chart rendering.
func (s *Server) handleTopVideos(c fiber.Ctx) error {
	snapshot, ok := s.requireSnapshot(c)
	if !ok {
		return nil
	}

	return c.JSON(fiber.Map{
		"videos": analytics.TopByViews(snapshot.Videos, topVideosCount),
	})
}

// handleCalendar handles GET /api/calendar?year=&month=
func (s *Server) handleCalendar(c fiber.Ctx) error {
	snapshot, ok := s.requireSnapshot(c)
	if !ok {
		return nil
	}

	year := fiber.Query[int](c, "year")
	month := fiber.Query[int](c, "month")
	if year < 1 || month < 1 || month > 12 {
		return errorResponse(c, fiber.StatusBadRequest, "INVALID_MONTH", "year and month query parameters are required")
	}

	buckets := analytics.MonthBuckets(snapshot.Videos, year, time.Month(month))
	return c.JSON(fiber.Map{
		"year":  year,
		"month": month,
		"days":  buckets,
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(c fiber.Ctx) error {
	snapshot, ok := s.requireSnapshot(c)
	if !ok {
		return nil
	}

	return c.JSON(analytics.Compute(snapshot.Videos))
}

package server

import (
	"sort"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nigeshu/YoutubeSangam/analytics"
	"github.com/nigeshu/YoutubeSangam/model"
)

// commentFeedVideos is how many of the most recent videos feed the comment
// stream.
const commentFeedVideos = 5

// handleComments handles GET /api/comments. Top comments of the most recent
// videos are fetched concurrently and merged newest first. Videos with
// comments disabled contribute nothing; any other upstream failure fails the
// whole feed.
func (s *Server) handleComments(c fiber.Ctx) error {
	snapshot, ok := s.requireSnapshot(c)
	if !ok {
		return nil
	}

	recent := analytics.SortVideos(snapshot.Videos, analytics.SortNewest)
	if len(recent) > commentFeedVideos {
		recent = recent[:commentFeedVideos]
	}

	titles := make(map[string]string, len(recent))
	for _, v := range recent {
		titles[v.ID] = v.Title
	}

	var mu sync.Mutex
	var feed []model.Comment

	g, ctx := errgroup.WithContext(c.Context())
	for _, v := range recent {
		video := v
		g.Go(func() error {
			comments, err := s.channels.FetchVideoComments(ctx, video.ID)
			if err != nil {
				return err
			}
			mu.Lock()
			feed = append(feed, comments...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Comment feed fetch failed")
		return errorResponse(c, fiber.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch comments")
	}

	for i := range feed {
		feed[i].VideoTitle = titles[feed[i].VideoID]
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].PublishedAt.After(feed[j].PublishedAt)
	})

	if feed == nil {
		feed = []model.Comment{}
	}
	return c.JSON(fiber.Map{"comments": feed})
}

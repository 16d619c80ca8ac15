package client

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/nigeshu/YoutubeSangam/model"
	"github.com/nigeshu/YoutubeSangam/youtube"
)

const (
	// maxFetchVideos caps how much of the uploads playlist one channel fetch
	// walks.
	maxFetchVideos = 200

	// playlistPageSize is the API maximum for playlistItems and the batch
	// size for videos.list id lists.
	playlistPageSize = 50

	// maxCommentsPerVideo bounds the comment feed per video.
	maxCommentsPerVideo = 10
)

// YouTubeDataClient implements ChannelDataClient against the YouTube Data API
type YouTubeDataClient struct {
	service *ytapi.Service
	apiKey  string
}

// NewYouTubeDataClient creates a new YouTube data client
func NewYouTubeDataClient(apiKey string) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	return &YouTubeDataClient{
		apiKey: apiKey,
	}, nil
}

// Connect establishes a connection to the YouTube API
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API successfully")
	return nil
}

// Disconnect closes the connection to the YouTube API
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// FetchChannelData retrieves the channel summary, up to maxFetchVideos of its
// uploads and its playlists. Any upstream failure aborts the whole fetch and
// surfaces as a single error.
func (c *YouTubeDataClient) FetchChannelData(ctx context.Context, identifier string) (*model.ChannelSnapshot, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Info().Str("identifier", identifier).Msg("Fetching YouTube channel data")

	channel, uploadsPlaylistID, err := c.lookupChannel(ctx, identifier)
	if err != nil {
		return nil, err
	}

	videos, err := c.fetchUploads(ctx, uploadsPlaylistID)
	if err != nil {
		return nil, err
	}

	playlists, err := c.fetchPlaylists(ctx, channel.ID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("channel_id", channel.ID).
		Str("title", channel.Name).
		Int("video_count", len(videos)).
		Int("playlist_count", len(playlists)).
		Msg("YouTube channel data retrieved")

	return &model.ChannelSnapshot{
		Channel:   *channel,
		Videos:    videos,
		Playlists: playlists,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// lookupChannel resolves a channel token to its summary and uploads playlist.
func (c *YouTubeDataClient) lookupChannel(ctx context.Context, identifier string) (*model.ChannelSummary, string, error) {
	part := []string{"snippet", "statistics", "contentDetails"}
	var call *ytapi.ChannelsListCall

	if strings.HasPrefix(identifier, "UC") {
		call = c.service.Channels.List(part).Id(identifier)
	} else {
		// Handles resolve with or without the leading @
		call = c.service.Channels.List(part).ForHandle(strings.TrimPrefix(identifier, "@"))
	}

	response, err := call.MaxResults(1).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("identifier", identifier).Msg("Failed to get channel from YouTube API")
		return nil, "", fmt.Errorf("failed to get channel from YouTube API: %w", err)
	}

	if len(response.Items) == 0 {
		log.Error().Str("identifier", identifier).Msg("Channel not found on YouTube")
		return nil, "", fmt.Errorf("channel not found on YouTube: %s", identifier)
	}

	item := response.Items[0]
	summary := &model.ChannelSummary{
		ID:          item.Id,
		Name:        item.Snippet.Title,
		Subscribers: int64(item.Statistics.SubscriberCount),
	}

	var uploads string
	if item.ContentDetails != nil {
		uploads = item.ContentDetails.RelatedPlaylists.Uploads
	}
	if uploads == "" {
		return nil, "", fmt.Errorf("channel has no uploads playlist: %s", identifier)
	}

	return summary, uploads, nil
}

// fetchUploads pages through the uploads playlist and hydrates each page of
// video ids into full records, newest first.
func (c *YouTubeDataClient) fetchUploads(ctx context.Context, uploadsPlaylistID string) ([]model.Video, error) {
	ids, err := c.collectPlaylistVideoIDs(ctx, uploadsPlaylistID, maxFetchVideos)
	if err != nil {
		return nil, err
	}

	videos, err := c.hydrateVideos(ctx, ids)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt.After(videos[j].PublishedAt)
	})
	return videos, nil
}

// collectPlaylistVideoIDs walks a playlist up to limit ids. A limit of zero
// or less walks the whole playlist.
func (c *YouTubeDataClient) collectPlaylistVideoIDs(ctx context.Context, playlistID string, limit int) ([]string, error) {
	var ids []string
	var nextPageToken string

	for {
		call := c.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(playlistPageSize).
			Context(ctx)
		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		response, err := call.Do()
		if err != nil {
			log.Error().Err(err).Str("playlist_id", playlistID).Msg("Failed to get playlist items")
			return nil, fmt.Errorf("failed to get playlist items: %w", err)
		}

		for _, item := range response.Items {
			if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
				continue
			}
			ids = append(ids, item.ContentDetails.VideoId)
			if limit > 0 && len(ids) >= limit {
				return ids, nil
			}
		}

		if response.NextPageToken == "" {
			return ids, nil
		}
		nextPageToken = response.NextPageToken
	}
}

// hydrateVideos fetches full video records in batches of playlistPageSize ids.
func (c *YouTubeDataClient) hydrateVideos(ctx context.Context, ids []string) ([]model.Video, error) {
	videos := make([]model.Video, 0, len(ids))

	for start := 0; start < len(ids); start += playlistPageSize {
		end := start + playlistPageSize
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		call := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails", "liveStreamingDetails"}).
			Id(batch...).
			Context(ctx)

		response, err := call.Do()
		if err != nil {
			log.Error().Err(err).Strs("video_ids", batch).Msg("Failed to get video details")
			return nil, fmt.Errorf("failed to get video details: %w", err)
		}

		for _, item := range response.Items {
			videos = append(videos, mapVideo(item))
		}
	}

	return videos, nil
}

// mapVideo converts one API video resource into the domain record, assigning
// its content type from duration and live metadata.
func mapVideo(item *ytapi.Video) model.Video {
	video := model.Video{
		ID: item.Id,
	}

	var durationSeconds int64
	if item.ContentDetails != nil {
		durationSeconds = youtube.ParseISODuration(item.ContentDetails.Duration)
	}

	hasLiveMetadata := item.LiveStreamingDetails != nil
	video.Type = youtube.Classify(durationSeconds, hasLiveMetadata)

	if hasLiveMetadata && item.LiveStreamingDetails.ActualStartTime != "" {
		if started, err := time.Parse(time.RFC3339, item.LiveStreamingDetails.ActualStartTime); err == nil {
			video.LiveStartedAt = &started
		}
	}

	if item.Snippet != nil {
		video.Title = item.Snippet.Title
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			video.PublishedAt = publishedAt
		}
		if item.Snippet.Thumbnails != nil {
			if item.Snippet.Thumbnails.High != nil {
				video.ThumbnailURL = item.Snippet.Thumbnails.High.Url
			} else if item.Snippet.Thumbnails.Default != nil {
				video.ThumbnailURL = item.Snippet.Thumbnails.Default.Url
			}
		}
	}

	if item.Statistics != nil {
		video.Views = int64(item.Statistics.ViewCount)
		video.Likes = int64(item.Statistics.LikeCount)
	}

	return video
}

// fetchPlaylists retrieves the channel's public playlists, newest first.
func (c *YouTubeDataClient) fetchPlaylists(ctx context.Context, channelID string) ([]model.Playlist, error) {
	playlists := make([]model.Playlist, 0)
	var nextPageToken string

	for {
		call := c.service.Playlists.List([]string{"snippet", "contentDetails"}).
			ChannelId(channelID).
			MaxResults(playlistPageSize).
			Context(ctx)
		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		response, err := call.Do()
		if err != nil {
			log.Error().Err(err).Str("channel_id", channelID).Msg("Failed to get channel playlists")
			return nil, fmt.Errorf("failed to get channel playlists: %w", err)
		}

		for _, item := range response.Items {
			playlist := model.Playlist{
				ID: item.Id,
			}
			if item.Snippet != nil {
				playlist.Title = item.Snippet.Title
				playlist.Description = item.Snippet.Description
				if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					playlist.PublishedAt = publishedAt
				}
				if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.High != nil {
					playlist.ThumbnailURL = item.Snippet.Thumbnails.High.Url
				}
			}
			if item.ContentDetails != nil {
				playlist.VideoCount = item.ContentDetails.ItemCount
			}
			playlists = append(playlists, playlist)
		}

		if response.NextPageToken == "" {
			break
		}
		nextPageToken = response.NextPageToken
	}

	sort.SliceStable(playlists, func(i, j int) bool {
		return playlists[i].PublishedAt.After(playlists[j].PublishedAt)
	})
	return playlists, nil
}

// FetchPlaylistVideos retrieves every video of one playlist in playlist order.
func (c *YouTubeDataClient) FetchPlaylistVideos(ctx context.Context, playlistID string) ([]model.Video, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Info().Str("playlist_id", playlistID).Msg("Fetching playlist videos")

	ids, err := c.collectPlaylistVideoIDs(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	return c.hydrateVideos(ctx, ids)
}

// FetchVideoComments retrieves the top comments of one video. A 403 means
// comments are disabled for the video and yields an empty result.
func (c *YouTubeDataClient) FetchVideoComments(ctx context.Context, videoID string) ([]model.Comment, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	call := c.service.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		MaxResults(maxCommentsPerVideo).
		TextFormat("plainText").
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		if apiErr, ok := err.(*googleapi.Error); ok && apiErr.Code == http.StatusForbidden {
			log.Debug().Str("video_id", videoID).Msg("Comments disabled for video")
			return []model.Comment{}, nil
		}
		log.Error().Err(err).Str("video_id", videoID).Msg("Failed to get video comments")
		return nil, fmt.Errorf("failed to get video comments: %w", err)
	}

	comments := make([]model.Comment, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet == nil || item.Snippet.TopLevelComment == nil || item.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		top := item.Snippet.TopLevelComment.Snippet

		comment := model.Comment{
			ID:              item.Id,
			AuthorName:      top.AuthorDisplayName,
			AuthorAvatarURL: top.AuthorProfileImageUrl,
			Text:            top.TextDisplay,
			Likes:           top.LikeCount,
			VideoID:         videoID,
		}
		if publishedAt, err := time.Parse(time.RFC3339, top.PublishedAt); err == nil {
			comment.PublishedAt = publishedAt
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

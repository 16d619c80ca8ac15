package client

import (
	"context"

	"github.com/nigeshu/YoutubeSangam/model"
)

// ChannelDataClient is the upstream data source for channel analytics.
type ChannelDataClient interface {
	// Connect establishes a connection to the service
	Connect(ctx context.Context) error

	// Disconnect closes the connection to the service
	Disconnect(ctx context.Context) error

	// FetchChannelData retrieves the channel summary, its recent uploads and
	// its playlists in one pass. The identifier is a resolved channel token
	// (a UC id, an @handle or a legacy username).
	FetchChannelData(ctx context.Context, identifier string) (*model.ChannelSnapshot, error)

	// FetchPlaylistVideos retrieves every video of one playlist.
	FetchPlaylistVideos(ctx context.Context, playlistID string) ([]model.Video, error)

	// FetchVideoComments retrieves the top comments of one video. Videos
	// with comments disabled yield an empty slice, not an error.
	FetchVideoComments(ctx context.Context, videoID string) ([]model.Comment, error)
}

// GameSearchClient searches an external game-metadata catalog.
type GameSearchClient interface {
	SearchGames(ctx context.Context, query string) ([]model.RawgGame, error)
}

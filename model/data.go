package model

import "time"

// ContentType tags one published unit of channel content. It is assigned
// once when raw API data is mapped and never changes afterwards.
type ContentType string

const (
	ContentTypeVideo ContentType = "video"
	ContentTypeShort ContentType = "short"
	ContentTypeLive  ContentType = "live"
)

// Video is a single published unit of content on a channel.
type Video struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Type          ContentType `json:"type"`
	PublishedAt   time.Time   `json:"publishedAt"`
	LiveStartedAt *time.Time  `json:"liveStartedAt,omitempty"`
	ThumbnailURL  string      `json:"thumbnailUrl"`
	Views         int64       `json:"views"`
	Likes         int64       `json:"likes"`
}

// EffectiveDate is the timestamp used for calendar placement: the actual
// live start for live records when known, the publish time otherwise.
func (v Video) EffectiveDate() time.Time {
	if v.Type == ContentTypeLive && v.LiveStartedAt != nil {
		return *v.LiveStartedAt
	}
	return v.PublishedAt
}

// Playlist is a channel playlist. VideoCount is the authoritative
// cardinality reported by the API and is used to skip fetching empty
// playlists.
type Playlist struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoCount   int64     `json:"videoCount"`
	PublishedAt  time.Time `json:"publishedAt"`
}

// ChannelSummary is an immutable snapshot of channel metadata as of fetch
// time.
type ChannelSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Subscribers int64  `json:"subscribers"`
}

// ChannelSnapshot bundles everything one fetch of a channel produces. A new
// fetch replaces the snapshot wholesale; records are never edited in place.
type ChannelSnapshot struct {
	Channel   ChannelSummary `json:"channel"`
	Videos    []Video        `json:"videos"`
	Playlists []Playlist     `json:"playlists"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// Comment is one top-level comment on a video. VideoTitle is denormalized
// for feed display and may be empty.
type Comment struct {
	ID              string    `json:"id"`
	AuthorName      string    `json:"authorName"`
	AuthorAvatarURL string    `json:"authorAvatarUrl"`
	Text            string    `json:"text"`
	PublishedAt     time.Time `json:"publishedAt"`
	Likes           int64     `json:"likes"`
	VideoID         string    `json:"videoId"`
	VideoTitle      string    `json:"videoTitle,omitempty"`
}

// Goal is a per-user tracked goal document.
type Goal struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// GameStatus is the play status of a game in a user's library.
type GameStatus string

const (
	GameStatusPlanned   GameStatus = "Planned"
	GameStatusPlaying   GameStatus = "Playing"
	GameStatusCompleted GameStatus = "Completed"
	GameStatusPause     GameStatus = "Pause"
	GameStatusGaveUp    GameStatus = "Gave Up"
)

// ValidGameStatus reports whether s is one of the known library statuses.
func ValidGameStatus(s GameStatus) bool {
	switch s {
	case GameStatusPlanned, GameStatusPlaying, GameStatusCompleted, GameStatusPause, GameStatusGaveUp:
		return true
	}
	return false
}

// LibraryGame is a per-user game library document. Rating is 0-5, 0 meaning
// unrated.
type LibraryGame struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"ownerId"`
	GameID          int64      `json:"gameId"`
	Name            string     `json:"name"`
	BackgroundImage string     `json:"backgroundImage"`
	Released        string     `json:"released"`
	Status          GameStatus `json:"status"`
	Rating          int        `json:"rating"`
	AddedAt         time.Time  `json:"addedAt"`
}

// RawgGame is a search result from the RAWG game-metadata API.
type RawgGame struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	ReleaseDate string `json:"releaseDate"`
}

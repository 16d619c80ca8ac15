package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nigeshu/YoutubeSangam/model"
)

func TestExtractGameName(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"plain game before separator", "Elden Ring | First Playthrough", "Elden Ring"},
		{"boilerplate segment skipped", "LIVE NOW | Elden Ring | road to 1k", "Elden Ring"},
		{"bullet separator", "Minecraft Hardcore • Day 100", "Minecraft Hardcore"},
		{"bracketed text stripped", "[4K] Celeste Any% (PB attempts)", "Celeste Any%"},
		{"blocked tokens dropped from winner", "Celeste speedrun part 3", "Celeste speedrun"},
		{"hashtag tokens dropped", "Stardew Valley #shorts", "Stardew Valley"},
		{"single characters dropped", "A Hat in Time", "Hat in Time"},
		{"nothing survives", "live stream", GameFallbackLabel},
		{"empty title", "", GameFallbackLabel},
		{"only brackets", "(members only)", GameFallbackLabel},
		{"all segments blocked falls back to first", "playing games live - stream vod", "games"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractGameName(tt.title))
		})
	}
}

func TestTopGame(t *testing.T) {
	base := time.Date(2024, 4, 1, 18, 0, 0, 0, time.UTC)
	live := func(id, title string, daysAgo int) model.Video {
		return makeVideo(id, title, model.ContentTypeLive, base.Add(time.Duration(-daysAgo)*24*time.Hour), 0, 0)
	}

	t.Run("most frequent name wins", func(t *testing.T) {
		videos := []model.Video{
			live("a", "Elden Ring | boss rush", 0),
			live("b", "Elden Ring | DLC", 1),
			live("c", "Celeste | chill run", 2),
		}
		assert.Equal(t, "Elden Ring", TopGame(videos))
	})

	t.Run("ties resolve to the most recent name", func(t *testing.T) {
		videos := []model.Video{
			live("a", "Celeste | chill", 0),
			live("b", "Elden Ring | boss", 1),
		}
		assert.Equal(t, "Celeste", TopGame(videos))
	})

	t.Run("non-live records are ignored", func(t *testing.T) {
		videos := []model.Video{
			makeVideo("v", "Hades review", model.ContentTypeVideo, base, 0, 0),
		}
		assert.Equal(t, GameFallbackLabel, TopGame(videos))
	})

	t.Run("only the ten most recent live records count", func(t *testing.T) {
		var videos []model.Video
		for i := 0; i < 10; i++ {
			videos = append(videos, live("", "Hades | run", i))
		}
		// Older than the window: would win on frequency if counted.
		for i := 10; i < 30; i++ {
			videos = append(videos, live("", "Terraria | build", i))
		}
		assert.Equal(t, "Hades", TopGame(videos))
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Equal(t, GameFallbackLabel, TopGame(nil))
	})
}

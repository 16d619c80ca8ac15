package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigeshu/YoutubeSangam/model"
)

func TestSortVideos(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 2, d, 10, 0, 0, 0, time.UTC)
	}
	videos := []model.Video{
		makeVideo("a", "first", model.ContentTypeVideo, day(1), 500, 5),
		makeVideo("b", "second", model.ContentTypeVideo, day(3), 100, 50),
		makeVideo("c", "third", model.ContentTypeVideo, day(2), 300, 1),
	}

	ids := func(vs []model.Video) []string {
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = v.ID
		}
		return out
	}

	tests := []struct {
		name     string
		opt      SortOption
		expected []string
	}{
		{"newest", SortNewest, []string{"b", "c", "a"}},
		{"oldest", SortOldest, []string{"a", "c", "b"}},
		{"most views", SortMostViews, []string{"a", "c", "b"}},
		{"least views", SortLeastViews, []string{"b", "c", "a"}},
		{"most likes", SortMostLikes, []string{"b", "a", "c"}},
		{"least likes", SortLeastLikes, []string{"c", "a", "b"}},
		{"unknown option falls back to newest", SortOption("bogus"), []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(SortVideos(videos, tt.opt)))
		})
	}

	t.Run("input slice is not mutated", func(t *testing.T) {
		SortVideos(videos, SortOldest)
		assert.Equal(t, []string{"a", "b", "c"}, ids(videos))
	})

	t.Run("ties keep input order", func(t *testing.T) {
		tied := []model.Video{
			makeVideo("x", "one", model.ContentTypeVideo, day(1), 100, 1),
			makeVideo("y", "two", model.ContentTypeVideo, day(2), 100, 2),
			makeVideo("z", "three", model.ContentTypeVideo, day(3), 100, 3),
		}
		assert.Equal(t, []string{"x", "y", "z"}, ids(SortVideos(tied, SortMostViews)))
	})
}

func TestTopByViews(t *testing.T) {
	videos := makeCollection(15)

	top := TopByViews(videos, 10)
	require.Len(t, top, 10)

	// Ascending view order, highest value last for chart rendering.
	for i := 1; i < len(top); i++ {
		assert.LessOrEqual(t, top[i-1].Views, top[i].Views)
	}
	assert.Equal(t, "vid-000", top[len(top)-1].ID)

	t.Run("fewer records than requested", func(t *testing.T) {
		assert.Len(t, TopByViews(makeCollection(3), 10), 3)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TopByViews(nil, 10))
	})
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nigeshu/YoutubeSangam/model"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"plain UTC", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), "2024-01-15"},
		{"just before UTC midnight", time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC), "2024-01-15"},
		{
			// 23:30 in UTC+2 is 21:30 UTC on the same day; the key must come
			// from the UTC components, not the local ones.
			"non-UTC location normalizes",
			time.Date(2024, 1, 16, 0, 30, 0, 0, time.FixedZone("UTC+2", 2*3600)),
			"2024-01-15",
		},
		{"single-digit padding", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayKey(tt.input))
		})
	}
}

func TestBucketByDay(t *testing.T) {
	liveStart := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	videos := []model.Video{
		makeVideo("v1", "morning upload", model.ContentTypeVideo, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), 10, 1),
		makeVideo("v2", "evening upload", model.ContentTypeVideo, time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC), 20, 2),
		{
			ID:            "l1",
			Title:         "late night stream",
			Type:          model.ContentTypeLive,
			PublishedAt:   time.Date(2024, 1, 2, 0, 5, 0, 0, time.UTC),
			LiveStartedAt: &liveStart,
			Views:         30,
			Likes:         3,
		},
	}

	buckets := BucketByDay(videos)

	// The live record buckets under its start day, not its publish day.
	require.Contains(t, buckets, "2024-01-01")
	require.Len(t, buckets["2024-01-01"], 1)
	assert.Equal(t, "l1", buckets["2024-01-01"][0].ID)

	require.Contains(t, buckets, "2024-01-02")
	assert.Len(t, buckets["2024-01-02"], 2)

	t.Run("every record lands in exactly one bucket", func(t *testing.T) {
		total := 0
		for _, vs := range buckets {
			total += len(vs)
		}
		assert.Equal(t, len(videos), total)
	})

	t.Run("live record without start time uses publish day", func(t *testing.T) {
		v := makeVideo("l2", "stream", model.ContentTypeLive, time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC), 1, 1)
		got := BucketByDay([]model.Video{v})
		assert.Contains(t, got, "2024-05-06")
	})
}

func TestMonthBuckets(t *testing.T) {
	videos := []model.Video{
		makeVideo("jan", "in january", model.ContentTypeVideo, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 1, 1),
		makeVideo("feb", "in february", model.ContentTypeVideo, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 1, 1),
	}

	buckets := MonthBuckets(videos, 2024, time.January)
	assert.Contains(t, buckets, "2024-01-15")
	assert.NotContains(t, buckets, "2024-02-01")
	assert.Len(t, buckets, 1)
}

// Mirrors the dashboard flow: three records on one UTC day at different
// hours, one of them live with a start on the previous UTC day; bucket the
// month, then filter and search down to a single record on page one.
func TestCalendarAndFilterScenario(t *testing.T) {
	liveStart := time.Date(2023, 12, 31, 23, 45, 0, 0, time.UTC)
	videos := []model.Video{
		makeVideo("a", "Morning devlog", model.ContentTypeVideo, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), 50, 5),
		makeVideo("b", "Evening speedrun recap", model.ContentTypeVideo, time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC), 60, 6),
		{
			ID:            "c",
			Title:         "New Year countdown stream",
			Type:          model.ContentTypeLive,
			PublishedAt:   time.Date(2024, 1, 1, 0, 10, 0, 0, time.UTC),
			LiveStartedAt: &liveStart,
			Views:         70,
			Likes:         7,
		},
	}

	jan := MonthBuckets(videos, 2024, time.January)
	require.Contains(t, jan, "2024-01-01")
	assert.Len(t, jan["2024-01-01"], 2)
	assert.NotContains(t, jan, "2023-12-31")

	dec := MonthBuckets(videos, 2023, time.December)
	require.Contains(t, dec, "2023-12-31")
	assert.Equal(t, "c", dec["2023-12-31"][0].ID)

	filtered := Filter(videos, "video", "speedrun")
	page := Paginate(filtered, 1)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "b", page.Items[0].ID)
	assert.Equal(t, 1, page.TotalPages)
}

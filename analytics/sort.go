package analytics

import (
	"sort"

	"github.com/nigeshu/YoutubeSangam/model"
)

// SortOption selects one of the six sort orders for a video collection.
type SortOption string

const (
	SortNewest     SortOption = "newest"
	SortOldest     SortOption = "oldest"
	SortMostViews  SortOption = "mostViews"
	SortLeastViews SortOption = "leastViews"
	SortMostLikes  SortOption = "mostLikes"
	SortLeastLikes SortOption = "leastLikes"
)

// SortVideos returns a sorted copy of the collection. Every order is stable:
// records comparing equal keep their relative input order. An unknown option
// sorts newest-first.
func SortVideos(videos []model.Video, opt SortOption) []model.Video {
	sorted := make([]model.Video, len(videos))
	copy(sorted, videos)

	var less func(a, b model.Video) bool
	switch opt {
	case SortOldest:
		less = func(a, b model.Video) bool { return a.PublishedAt.Before(b.PublishedAt) }
	case SortMostViews:
		less = func(a, b model.Video) bool { return a.Views > b.Views }
	case SortLeastViews:
		less = func(a, b model.Video) bool { return a.Views < b.Views }
	case SortMostLikes:
		less = func(a, b model.Video) bool { return a.Likes > b.Likes }
	case SortLeastLikes:
		less = func(a, b model.Video) bool { return a.Likes < b.Likes }
	default:
		less = func(a, b model.Video) bool { return a.PublishedAt.After(b.PublishedAt) }
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// TopByViews returns the n highest-viewed records in ascending view order,
// so the highest value renders last (rightmost) in a chart. Ties keep input
// order.
func TopByViews(videos []model.Video, n int) []model.Video {
	top := SortVideos(videos, SortMostViews)
	if len(top) > n {
		top = top[:n]
	}
	for i, j := 0, len(top)-1; i < j; i, j = i+1, j-1 {
		top[i], top[j] = top[j], top[i]
	}
	return top
}

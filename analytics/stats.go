package analytics

import (
	"math"

	"github.com/nigeshu/YoutubeSangam/model"
)

// Creator archetype labels, chosen by comparing type proportions against
// fixed thresholds, first match wins.
const (
	ArchetypeShorts   = "Shorts Specialist"
	ArchetypeLive     = "Live Streamer"
	ArchetypeLongForm = "Long-form Specialist"
	ArchetypeHybrid   = "Hybrid Creator"
)

// Upload rhythm labels, bucketed from the mean gap in days between the five
// most recent uploads.
const (
	RhythmNewCreator = "New Creator"
	RhythmDaily      = "Daily Grinder"
	RhythmFrequent   = "Frequent Uploader"
	RhythmWeekly     = "Weekly Regular"
	RhythmBiWeekly   = "Bi-Weekly"
	RhythmOccasional = "Occasional"
)

// titleLengthSplit is the rune count at which titles partition into the
// "short" and "long" buckets. Strictly shorter titles count as short.
const titleLengthSplit = 50

// rhythmWindow is how many of the most recent uploads feed the rhythm
// classification.
const rhythmWindow = 5

// TitleStrategy compares mean views of short-titled records against
// long-titled ones. Recommended is "short" or "long", whichever bucket has
// the higher mean.
type TitleStrategy struct {
	Recommended   string  `json:"recommended"`
	ShortAvgViews int64   `json:"shortAvgViews"`
	LongAvgViews  int64   `json:"longAvgViews"`
	UpliftPercent float64 `json:"upliftPercent"`
}

// Stats is the full descriptive-statistics record derived from a video
// collection. It is recomputed from scratch on every input change and holds
// no state of its own.
type Stats struct {
	TotalVideos    int                           `json:"totalVideos"`
	TotalViews     int64                         `json:"totalViews"`
	TotalLikes     int64                         `json:"totalLikes"`
	AvgViews       int64                         `json:"avgViews"`
	CountByType    map[model.ContentType]int     `json:"countByType"`
	AvgViewsByType map[model.ContentType]int64   `json:"avgViewsByType"`
	BestType       model.ContentType             `json:"bestType,omitempty"`
	UploadsByDay   [7]int                        `json:"uploadsByDay"`
	Archetype      string                        `json:"archetype"`
	UploadRhythm   string                        `json:"uploadRhythm"`
	TitleStrategy  *TitleStrategy                `json:"titleStrategy,omitempty"`
	TopGame        string                        `json:"topGame"`
}

var contentTypes = []model.ContentType{
	model.ContentTypeVideo,
	model.ContentTypeShort,
	model.ContentTypeLive,
}

// Compute derives the full statistics record from the collection. It is
// total over its domain: an empty collection yields zero totals and the
// neutral labels, never an error.
func Compute(videos []model.Video) Stats {
	stats := Stats{
		TotalVideos:    len(videos),
		CountByType:    make(map[model.ContentType]int, len(contentTypes)),
		AvgViewsByType: make(map[model.ContentType]int64, len(contentTypes)),
		Archetype:      ArchetypeHybrid,
		UploadRhythm:   uploadRhythm(videos),
		TopGame:        TopGame(videos),
	}

	viewsByType := make(map[model.ContentType]int64, len(contentTypes))
	for _, v := range videos {
		stats.TotalViews += v.Views
		stats.TotalLikes += v.Likes
		stats.CountByType[v.Type]++
		viewsByType[v.Type] += v.Views
		stats.UploadsByDay[int(v.EffectiveDate().UTC().Weekday())]++
	}

	if len(videos) == 0 {
		return stats
	}

	stats.AvgViews = roundedMean(stats.TotalViews, len(videos))

	for _, ct := range contentTypes {
		if n := stats.CountByType[ct]; n > 0 {
			stats.AvgViewsByType[ct] = roundedMean(viewsByType[ct], n)
		} else {
			stats.AvgViewsByType[ct] = 0
		}
	}

	stats.BestType = bestType(stats.AvgViewsByType)
	stats.Archetype = archetype(stats.CountByType, len(videos))
	stats.TitleStrategy = titleStrategy(videos)

	return stats
}

func roundedMean(sum int64, n int) int64 {
	return int64(math.Round(float64(sum) / float64(n)))
}

// archetype picks a creator label from type proportions. Evaluation order
// matters: shorts, then live, then long-form.
func archetype(counts map[model.ContentType]int, total int) string {
	t := float64(total)
	switch {
	case float64(counts[model.ContentTypeShort])/t > 0.6:
		return ArchetypeShorts
	case float64(counts[model.ContentTypeLive])/t > 0.5:
		return ArchetypeLive
	case float64(counts[model.ContentTypeVideo])/t > 0.7:
		return ArchetypeLongForm
	default:
		return ArchetypeHybrid
	}
}

// bestType is the content type with the highest mean views. Ties resolve in
// video, short, live order.
func bestType(avgByType map[model.ContentType]int64) model.ContentType {
	best := contentTypes[0]
	for _, ct := range contentTypes[1:] {
		if avgByType[ct] > avgByType[best] {
			best = ct
		}
	}
	return best
}

// uploadRhythm classifies cadence from the mean gap between the five most
// recent publish timestamps. Fewer than two records cannot produce a gap.
func uploadRhythm(videos []model.Video) string {
	if len(videos) < 2 {
		return RhythmNewCreator
	}

	recent := SortVideos(videos, SortNewest)
	if len(recent) > rhythmWindow {
		recent = recent[:rhythmWindow]
	}

	var totalDays float64
	for i := 0; i < len(recent)-1; i++ {
		gap := recent[i].PublishedAt.Sub(recent[i+1].PublishedAt)
		totalDays += gap.Hours() / 24
	}
	avgGap := totalDays / float64(len(recent)-1)

	switch {
	case avgGap <= 1.2:
		return RhythmDaily
	case avgGap <= 3.5:
		return RhythmFrequent
	case avgGap <= 7.5:
		return RhythmWeekly
	case avgGap <= 14:
		return RhythmBiWeekly
	default:
		return RhythmOccasional
	}
}

// titleStrategy partitions records at the title-length split and reports the
// bucket with the higher mean views. Nil when either bucket is empty, since
// the comparison is undefined.
func titleStrategy(videos []model.Video) *TitleStrategy {
	var shortSum, longSum int64
	var shortN, longN int
	for _, v := range videos {
		if len([]rune(v.Title)) < titleLengthSplit {
			shortSum += v.Views
			shortN++
		} else {
			longSum += v.Views
			longN++
		}
	}

	if shortN == 0 || longN == 0 {
		return nil
	}

	ts := &TitleStrategy{
		ShortAvgViews: roundedMean(shortSum, shortN),
		LongAvgViews:  roundedMean(longSum, longN),
	}

	higher, lower := ts.ShortAvgViews, ts.LongAvgViews
	ts.Recommended = "short"
	if ts.LongAvgViews > ts.ShortAvgViews {
		higher, lower = ts.LongAvgViews, ts.ShortAvgViews
		ts.Recommended = "long"
	}
	if lower > 0 {
		ts.UpliftPercent = float64(higher-lower) / float64(lower) * 100
	}

	return ts
}

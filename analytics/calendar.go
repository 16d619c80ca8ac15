package analytics

import (
	"fmt"
	"time"

	"github.com/nigeshu/YoutubeSangam/model"
)

// DayKey formats a timestamp as its UTC calendar day, "YYYY-MM-DD". The key
// is built from the UTC year/month/day components individually rather than a
// locale-dependent date conversion, so a video published late at night never
// shifts to a neighboring day with the viewer's timezone.
func DayKey(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%04d-%02d-%02d", u.Year(), int(u.Month()), u.Day())
}

// BucketByDay groups records by the UTC calendar day of their effective
// date: the live start time for live records when present, the publish time
// otherwise. Every record lands in exactly one bucket; within a bucket,
// input order is preserved.
func BucketByDay(videos []model.Video) map[string][]model.Video {
	buckets := make(map[string][]model.Video)
	for _, v := range videos {
		key := DayKey(v.EffectiveDate())
		buckets[key] = append(buckets[key], v)
	}
	return buckets
}

// MonthBuckets restricts BucketByDay to the days of one UTC month.
func MonthBuckets(videos []model.Video, year int, month time.Month) map[string][]model.Video {
	buckets := make(map[string][]model.Video)
	for _, v := range videos {
		d := v.EffectiveDate().UTC()
		if d.Year() != year || d.Month() != month {
			continue
		}
		key := DayKey(d)
		buckets[key] = append(buckets[key], v)
	}
	return buckets
}

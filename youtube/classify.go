package youtube

import "github.com/nigeshu/YoutubeSangam/model"

// Classify assigns a content type from a video's resolved duration and the
// presence of live-streaming metadata. The checks are ordered: live metadata
// wins outright, even for a very short stream. The short-form window is
// (0, 60] seconds — a zero duration indicates missing or unprocessed
// metadata, not an actual short, and classifies as a regular video.
func Classify(durationSeconds int64, hasLiveMetadata bool) model.ContentType {
	if hasLiveMetadata {
		return model.ContentTypeLive
	}
	if durationSeconds > 0 && durationSeconds <= 60 {
		return model.ContentTypeShort
	}
	return model.ContentTypeVideo
}

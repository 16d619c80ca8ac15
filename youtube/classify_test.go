package youtube

import (
	"testing"

	"github.com/nigeshu/YoutubeSangam/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		duration int64
		live     bool
		expected model.ContentType
	}{
		{"sixty seconds is a short", 60, false, model.ContentTypeShort},
		{"sixty-one seconds is a video", 61, false, model.ContentTypeVideo},
		{"one second is a short", 1, false, model.ContentTypeShort},
		{"zero duration is a video, not a short", 0, false, model.ContentTypeVideo},
		{"live overrides short duration", 5, true, model.ContentTypeLive},
		{"live overrides long duration", 7200, true, model.ContentTypeLive},
		{"live with zero duration", 0, true, model.ContentTypeLive},
		{"long video", 600, false, model.ContentTypeVideo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.duration, tt.live)
			if got != tt.expected {
				t.Errorf("Classify(%d, %v) = %q, want %q", tt.duration, tt.live, got, tt.expected)
			}
		})
	}
}

package youtube

import "testing"

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"zero seconds", "PT0S", 0},
		{"seconds only", "PT45S", 45},
		{"minutes only", "PT3M", 180},
		{"hours only", "PT2H", 7200},
		{"full form", "PT1H2M3S", 3723},
		{"minutes and seconds", "PT2M10S", 130},
		{"hours and seconds", "PT1H5S", 3605},
		{"empty string", "", 0},
		{"garbage", "garbage", 0},
		{"bare PT", "PT", 0},
		{"large hours", "PT100H", 360000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseISODuration(tt.input)
			if got != tt.expected {
				t.Errorf("ParseISODuration(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

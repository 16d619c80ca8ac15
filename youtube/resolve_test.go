package youtube

import (
	"errors"
	"testing"
)

func TestResolveChannelIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"channel id path", "https://youtube.com/channel/UCxyz", "UCxyz", false},
		{"channel id path with www", "https://www.youtube.com/channel/UC1234567890", "UC1234567890", false},
		{"handle path", "https://youtube.com/@someHandle", "@someHandle", false},
		{"handle path with trailing segment", "https://youtube.com/@someHandle/videos", "@someHandle", false},
		{"legacy c path", "https://youtube.com/c/LegacyName", "LegacyName", false},
		{"legacy user path", "https://youtube.com/user/OldUser", "OldUser", false},
		{"bare handle", "@bareHandle", "@bareHandle", false},
		{"bare channel id", "UCabcdef", "UCabcdef", false},
		{"bare token with slash", "UCabc/def", "", true},
		{"channel path without id", "https://youtube.com/channel/", "", true},
		{"unrelated path", "https://youtube.com/watch?v=abc", "", true},
		{"plain text", "not a url, no prefix", "", true},
		{"empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveChannelIdentifier(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveChannelIdentifier(%q) = %q, want error", tt.input, got)
				}
				if !errors.Is(err, ErrNoChannelIdentifier) {
					t.Errorf("error = %v, want ErrNoChannelIdentifier", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveChannelIdentifier(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ResolveChannelIdentifier(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

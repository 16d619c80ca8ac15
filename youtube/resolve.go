package youtube

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoChannelIdentifier is returned when a pasted URL or token does not
// contain anything recognizable as a channel id, handle, or legacy username.
// Callers surface it distinctly from network errors so the user can correct
// the link.
var ErrNoChannelIdentifier = errors.New("no channel identifier found")

// ResolveChannelIdentifier extracts a stable channel identifier from a
// free-form URL string. Recognized shapes:
//
//	https://youtube.com/channel/UCxxxx  -> UCxxxx
//	https://youtube.com/@handle         -> @handle
//	https://youtube.com/c/Name          -> Name
//	https://youtube.com/user/Name       -> Name
//
// A bare "@handle" or "UCxxxx" token without slashes is accepted verbatim
// for users who paste the identifier instead of a full URL.
func ResolveChannelIdentifier(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err == nil && u.Host != "" {
		parts := splitPath(u.Path)
		if len(parts) > 0 {
			switch {
			case parts[0] == "channel":
				if len(parts) > 1 {
					return parts[1], nil
				}
			case strings.HasPrefix(parts[0], "@"):
				return parts[0], nil
			case parts[0] == "c" || parts[0] == "user":
				if len(parts) > 1 {
					return parts[1], nil
				}
			}
		}
		if strings.HasPrefix(u.Path, "/@") {
			return u.Path[1:], nil
		}
		return "", fmt.Errorf("%w in URL %q", ErrNoChannelIdentifier, raw)
	}

	// Not a URL: accept a bare handle or channel id pasted on its own.
	if !strings.Contains(raw, "/") && (strings.HasPrefix(raw, "@") || strings.HasPrefix(raw, "UC")) {
		return raw, nil
	}

	return "", fmt.Errorf("%w in %q", ErrNoChannelIdentifier, raw)
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Package youtube holds the leaf utilities for interpreting raw YouTube
// metadata: ISO-8601 duration parsing, content-type classification, and
// channel identifier resolution from pasted URLs.
package youtube

import (
	"regexp"
	"strconv"
)

var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts an ISO-8601 duration string such as "PT1H2M3S"
// into total whole seconds. Any subset of the hour/minute/second groups may
// be present. Parsing is deliberately permissive: malformed input yields 0
// rather than an error, and a zero duration downstream means "no usable
// duration metadata".
func ParseISODuration(duration string) int64 {
	matches := isoDurationPattern.FindStringSubmatch(duration)
	if matches == nil {
		return 0
	}

	var total int64
	units := []int64{3600, 60, 1}
	for i, unit := range units {
		group := matches[i+1]
		if group == "" {
			continue
		}
		n, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			continue
		}
		total += n * unit
	}
	return total
}

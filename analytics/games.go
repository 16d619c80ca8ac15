package analytics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nigeshu/YoutubeSangam/model"
)

// GameFallbackLabel is returned when nothing in a title survives the
// extraction heuristic.
const GameFallbackLabel = "Variety Content"

// recentLiveWindow limits game extraction to the most recent live records.
const recentLiveWindow = 10

// Words that mark a title segment as channel boilerplate rather than a game
// name.
var gameTitleBlocklist = map[string]struct{}{
	"live":     {},
	"gameplay": {},
	"stream":   {},
	"playing":  {},
	"part":     {},
	"ep":       {},
	"episode":  {},
	"shorts":   {},
	"video":    {},
}

var (
	bracketedText   = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)
	segmentSplitter = regexp.MustCompile(`[|•-]`)
)

// ExtractGameName guesses which game a stream title refers to. This is a
// best-effort heuristic over free-form title conventions, not an
// authoritative extraction: it strips bracketed text, splits the title on
// common separators, prefers the first segment free of boilerplate words,
// and drops boilerplate and one-character tokens from the winner. Titles
// that yield nothing return GameFallbackLabel.
func ExtractGameName(title string) string {
	cleaned := bracketedText.ReplaceAllString(title, " ")

	var first, winner string
	for _, seg := range segmentSplitter.Split(cleaned, -1) {
		s := strings.TrimSpace(seg)
		if s == "" {
			continue
		}
		if first == "" {
			first = s
		}
		if !containsBlockedWord(s) {
			winner = s
			break
		}
	}
	if winner == "" {
		winner = first
	}
	if winner == "" {
		return GameFallbackLabel
	}

	var kept []string
	for _, tok := range strings.Fields(winner) {
		if strings.HasPrefix(tok, "#") {
			continue
		}
		stripped := stripNonAlnum(tok)
		if utf8.RuneCountInString(stripped) <= 1 {
			continue
		}
		if _, blocked := gameTitleBlocklist[strings.ToLower(stripped)]; blocked {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return GameFallbackLabel
	}
	return strings.Join(kept, " ")
}

// TopGame returns the most frequently extracted game name across the ten
// most recent live records, first-seen winning ties. Collections without
// live records yield GameFallbackLabel. Like ExtractGameName, the result is
// a best-effort label, never a claim of correctness.
func TopGame(videos []model.Video) string {
	var lives []model.Video
	for _, v := range SortVideos(videos, SortNewest) {
		if v.Type != model.ContentTypeLive {
			continue
		}
		lives = append(lives, v)
		if len(lives) == recentLiveWindow {
			break
		}
	}
	if len(lives) == 0 {
		return GameFallbackLabel
	}

	counts := make(map[string]int, len(lives))
	var order []string
	for _, v := range lives {
		name := ExtractGameName(v.Title)
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	top := order[0]
	for _, name := range order[1:] {
		if counts[name] > counts[top] {
			top = name
		}
	}
	return top
}

func containsBlockedWord(segment string) bool {
	for _, tok := range strings.Fields(segment) {
		if strings.HasPrefix(tok, "#") {
			return true
		}
		stripped := strings.ToLower(stripNonAlnum(tok))
		if _, ok := gameTitleBlocklist[stripped]; ok {
			return true
		}
	}
	return false
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

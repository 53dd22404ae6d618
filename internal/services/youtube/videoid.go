// videoid.go extracts the 11-character video ID from a user-submitted URL.
package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoVideoID is returned when no video ID can be extracted from the input.
// Callers map this to a 400 response — it is user-correctable.
var ErrNoVideoID = errors.New("no video ID found in URL")

// videoIDPattern matches the two canonical URL shapes:
//
//	https://www.youtube.com/watch?v=dQw4w9WgXcQ
//	https://youtu.be/dQw4w9WgXcQ
//
// A video ID is exactly 11 characters from [A-Za-z0-9_-].
var videoIDPattern = regexp.MustCompile(`(?:v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID returns the 11-character video ID embedded in a YouTube
// URL, or ErrNoVideoID when the input doesn't contain one.
//
// The function is total: arbitrary garbage input yields ErrNoVideoID, never
// a panic. No network access.
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrNoVideoID
	}

	matches := videoIDPattern.FindStringSubmatch(input)
	if len(matches) < 2 {
		return "", ErrNoVideoID
	}
	return matches[1], nil
}

// WatchURL builds the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

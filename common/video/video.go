package video

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var videoRegex = regexp.MustCompile(`(?i)\.(mp4|mov|mpeg|mpg|webm|wmv|3gpp|avi|flv|m4v)$`)

// IsVideoUrl reports whether url points at a video file judging by its path.
// Query strings such as signed CDN parameters are ignored.
func IsVideoUrl(rawURL string) bool {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return videoRegex.MatchString(path.Base(u.Path))
}

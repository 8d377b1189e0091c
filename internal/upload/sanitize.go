package upload

import (
	"regexp"
	"strings"
)

// nonAlnum matches every run of characters outside [a-z0-9]. Replacing runs
// in one pass both substitutes and collapses would-be consecutive hyphens.
var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// sanitizeToken lowercases s, replaces anything outside [a-z0-9] with a
// single hyphen, and strips leading/trailing hyphens. Total and idempotent.
func sanitizeToken(s string) string {
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SanitizeFileName turns a free-form filename into a URL-safe token,
// preserving the final extension: "Song One.MP3" -> "song-one.mp3".
// A name without an extension is invalid and yields the empty string.
func SanitizeFileName(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	base := name[:idx]
	ext := strings.ToLower(name[idx+1:])
	return sanitizeToken(base) + "." + ext
}

// SanitizeArtistName turns a free-form artist name into a key-safe
// namespace token: "A. R. Rahman!" -> "a-r-rahman". Dots carry no special
// meaning here.
func SanitizeArtistName(name string) string {
	return sanitizeToken(name)
}

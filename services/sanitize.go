package services

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// MaxLabelLength caps labels echoed back into notifications
const MaxLabelLength = 64

var labelPolicy = bluemonday.StrictPolicy()

// SanitizeLabel cleans a client-supplied service, feature or section name.
// Markup is stripped, whitespace collapsed and the result capped at MaxLabelLength runes.
// An empty result is valid.
func SanitizeLabel(raw string) string {
	// StrictPolicy escapes entities; the label is escaped again at render time
	cleaned := html.UnescapeString(labelPolicy.Sanitize(raw))
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if utf8.RuneCountInString(cleaned) > MaxLabelLength {
		runes := []rune(cleaned)
		cleaned = strings.TrimSpace(string(runes[:MaxLabelLength]))
	}
	return cleaned
}

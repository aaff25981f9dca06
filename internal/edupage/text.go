package edupage

import (
	"regexp"
	"strings"
	"unicode"
)

// Pre-compiled regular expressions shared across the pipeline.
var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	digitRun      = regexp.MustCompile(`\d+`)
)

// Normalize collapses every run of whitespace (including newlines)
// into a single space and trims the result. Empty input stays empty.
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// LooksLikePeriod reports whether the text contains at least one
// decimal digit. Header rows made up entirely of such labels are
// period axes, not day axes, and force a transposition.
func LooksLikePeriod(text string) bool {
	return strings.ContainsFunc(text, unicode.IsDigit)
}

package search

import (
	"regexp"
	"strings"
)

// Stop words excluded from lexical scoring
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

var (
	mdLinkPattern  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// stripMarkup reduces markdown links and HTML tags to plain text so
// lexical scoring does not count URLs and tag names as terms.
func stripMarkup(text string) string {
	text = mdLinkPattern.ReplaceAllString(text, "$1")
	return htmlTagPattern.ReplaceAllString(text, " ")
}

// tokenize splits text into words, lowercases, trims punctuation and
// markup characters, and removes stop words.
func tokenize(text string) []string {
	words := strings.Fields(text)
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}#*`_~>"))

		if cleaned != "" && !stopWords[cleaned] {
			filtered = append(filtered, cleaned)
		}
	}

	return filtered
}

package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// GateConfig configures the query gate.
type GateConfig struct {
	// MinQueryLength is the minimum normalized query length (in runes)
	// worth searching. Default: 15
	MinQueryLength int

	// Fillers are conversational markers that disqualify a query when
	// they appear anywhere in it as a substring.
	Fillers []string
}

var defaultFillers = []string{
	"thanks", "thank you", "ok", "okay", "hello", "hey",
	"bye", "goodbye", "got it", "sounds good", "nevermind",
}

// shortQuestionPattern matches question stubs: an interrogative or
// auxiliary word with at most ~10 trailing characters.
var shortQuestionPattern = regexp.MustCompile(
	`^(what|how|why|when|where|who|is|are|can|could|would|will)\b.{0,10}$`)

// Gate decides whether running the scorers is worthwhile at all.
// Greetings and one-word follow-ups in a conversational context would
// otherwise trigger two search backends, one of which costs money per
// call.
type Gate struct {
	minQueryLength int
	fillers        []string
}

// NewGate creates a gate, filling zero config values with defaults.
func NewGate(cfg GateConfig) *Gate {
	if cfg.MinQueryLength == 0 {
		cfg.MinQueryLength = 15
	}
	if cfg.Fillers == nil {
		cfg.Fillers = defaultFillers
	}
	return &Gate{
		minQueryLength: cfg.MinQueryLength,
		fillers:        cfg.Fillers,
	}
}

// ShouldSkip reports whether the query should be treated as having no
// relevant notes, without invoking any scorer. It is a pure function of
// the input string.
func (g *Gate) ShouldSkip(query string) bool {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if utf8.RuneCountInString(normalized) < g.minQueryLength {
		return true
	}

	for _, filler := range g.fillers {
		if strings.Contains(normalized, filler) {
			return true
		}
	}

	return shortQuestionPattern.MatchString(normalized)
}

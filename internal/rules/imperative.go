package rules

import (
	"strings"
	"unicode"
)

// Imperative verbs that happen to carry a past-tense or gerund suffix.
var suffixExceptions = map[string]bool{
	"bring":   true,
	"embed":   true,
	"exceed":  true,
	"feed":    true,
	"proceed": true,
	"ring":    true,
	"shed":    true,
	"speed":   true,
	"spring":  true,
	"string":  true,
	"swing":   true,
}

// nonImperativeWord returns the first word of the shortlog when it looks
// like a past-tense or gerund form, preserving its original casing, or ""
// when the shortlog passes. Exactly one leading "tag:"-style token is
// stripped before inspection, so "tag: Add x" inspects "Add".
func nonImperativeWord(shortlog string) string {
	fields := strings.Fields(shortlog)
	if len(fields) > 1 && strings.HasSuffix(fields[0], ":") {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return ""
	}

	word := leadingLetters(fields[0])
	lower := strings.ToLower(word)
	if suffixExceptions[lower] {
		return ""
	}
	// Minimum word lengths keep short verbs like "Sing" or "Red" from
	// tripping the suffix heuristic.
	switch {
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return word
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return word
	}
	return ""
}

// leadingLetters returns the run of letters a token starts with, dropping
// trailing punctuation like "Added," -> "Added".
func leadingLetters(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			return s[:i]
		}
	}
	return s
}

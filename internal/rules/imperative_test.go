package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonImperativeWord(t *testing.T) {
	tests := []struct {
		shortlog string
		want     string
	}{
		{"Add feature", ""},
		{"Added invalid shortlog", "Added"},
		{"Adding another invalid shortlog", "Adding"},
		{"tag: Add shortlog in imperative", ""},
		{"tag: Removed thing", "Removed"},
		{"Using the wrong mood", "Using"},
		{"Added, with punctuation", "Added"},
		{"Used the wrong API", "Used"},
		// Imperative verbs carrying the suffixes are exempt.
		{"Shed light on the parser", ""},
		{"Speed up the cache", ""},
		{"Bring back the old parser", ""},
		// Short words stay below the suffix heuristic's minimum length.
		{"Sing the song", ""},
		{"", ""},
		{"tag:", ""},
	}

	for _, tt := range tests {
		t.Run(tt.shortlog, func(t *testing.T) {
			assert.Equal(t, tt.want, nonImperativeWord(tt.shortlog))
		})
	}
}

// Package tokenizer turns raw file text into normalized word tokens.
package tokenizer

import (
	"regexp"
	"strings"
)

// nonWord matches runs of anything outside [A-Za-z0-9_].
var nonWord = regexp.MustCompile(`\W+`)

// apostrophes are deleted so contractions collapse: don't -> dont.
var apostrophes = strings.NewReplacer("'", "", "’", "", "`", "")

// Tokenizer splits text into lowercase words.
type Tokenizer struct {
	// KeepLeadingEmpty keeps the empty token produced when the text starts
	// with a delimiter (and the single empty token of an empty text).
	// Downstream this shows up as an "" entry in the v-z bucket.
	KeepLeadingEmpty bool
}

// Tokenize splits text with the default settings (empty tokens dropped).
func Tokenize(text string) []string {
	t := Tokenizer{}
	return t.Tokenize(text)
}

// Normalize lowercases text and strips apostrophe-like characters.
func Normalize(text string) string {
	return apostrophes.Replace(strings.ToLower(text))
}

// Tokenize returns the words of text in order of appearance.
func (t *Tokenizer) Tokenize(text string) []string {
	parts := nonWord.Split(Normalize(text), -1)

	if t.KeepLeadingEmpty {
		// Trailing empties are never kept, only the leading one.
		if len(parts) > 1 {
			end := len(parts)
			for end > 0 && parts[end-1] == "" {
				end--
			}
			parts = parts[:end]
		}
		return parts
	}

	words := parts[:0]
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

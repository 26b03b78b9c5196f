// Package bucket partitions word counts into alphabetic buckets and merges
// them into persisted bucket state.
package bucket

import (
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/words-counter/models"
)

// Name identifies one of the four fixed buckets.
type Name string

const (
	AG Name = "a-g"
	HN Name = "h-n"
	OU Name = "o-u"
	VZ Name = "v-z" // catch-all: digits, underscore, empty and non-ascii words land here
)

// All returns the bucket names in file order.
func All() []Name {
	return []Name{AG, HN, OU, VZ}
}

// Parse converts a bucket name such as "a-g" into a Name.
func Parse(s string) (Name, bool) {
	for _, n := range All() {
		if string(n) == s {
			return n, true
		}
	}
	return "", false
}

// Of returns the bucket for a word based on its first character.
func Of(word string) Name {
	r, _ := utf8.DecodeRuneInString(word)
	r = unicode.ToLower(r)
	switch {
	case r >= 'a' && r <= 'g':
		return AG
	case r >= 'h' && r <= 'n':
		return HN
	case r >= 'o' && r <= 'u':
		return OU
	default:
		return VZ
	}
}

// Partition splits counts by bucket. Buckets without words are omitted.
func Partition(counts models.WordCount) map[Name]models.WordCount {
	parts := make(map[Name]models.WordCount)
	for word, count := range counts {
		b := Of(word)
		if parts[b] == nil {
			parts[b] = make(models.WordCount)
		}
		parts[b][word] += count
	}
	return parts
}

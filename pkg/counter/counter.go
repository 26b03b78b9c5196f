// Package counter computes and combines word frequency maps.
package counter

import "github.com/dtnitsch/words-counter/models"

// Count returns the number of occurrences of each distinct token.
// Tokens are expected to be normalized already; no case folding happens here.
func Count(tokens []string) models.WordCount {
	counts := make(models.WordCount)
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}

// Merge returns a new map holding the union of a and b with counts summed
// for words present in both. Neither input is modified.
func Merge(a, b models.WordCount) models.WordCount {
	merged := make(models.WordCount, len(a)+len(b))
	for word, count := range a {
		merged[word] = count
	}
	for word, count := range b {
		merged[word] += count
	}
	return merged
}

// Reduce aggregates a slice of word frequency maps into a single map.
func Reduce(intermediate []models.WordCount) models.WordCount {
	finalResults := make(models.WordCount)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}

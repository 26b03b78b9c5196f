package models

// WordCount maps a normalized word to its number of occurrences.
type WordCount map[string]int

// Total returns the sum of all counts.
func (wc WordCount) Total() int {
	total := 0
	for _, count := range wc {
		total += count
	}
	return total
}

package counter

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/words-counter/models"
)

// Entry is a single word and its count.
type Entry struct {
	Word  string
	Count int
}

// Ranked returns all entries sorted by count descending, then word ascending.
func Ranked(wordCounts models.WordCount) []Entry {
	ss := make([]Entry, 0, len(wordCounts))
	for k, v := range wordCounts {
		ss = append(ss, Entry{k, v})
	}

	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Count != ss[j].Count {
			return ss[i].Count > ss[j].Count
		}
		return ss[i].Word < ss[j].Word
	})
	return ss
}

// TopKeywords returns the top N words formatted as "word:count".
// The empty word is skipped.
func TopKeywords(wordCounts models.WordCount, n int) []string {
	ranked := Ranked(wordCounts)

	keywords := make([]string, 0, n)
	for _, e := range ranked {
		if len(keywords) >= n {
			break
		}
		if e.Word == "" {
			continue
		}
		keywords = append(keywords, fmt.Sprintf("%s:%d", e.Word, e.Count))
	}
	return keywords
}

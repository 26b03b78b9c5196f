package bucket

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/dtnitsch/words-counter/models"
)

// Separator divides the word from its count on a bucket line.
const Separator = " = "

var (
	// ErrNotFound means the bucket has never been written. Callers treat it as empty.
	ErrNotFound = errors.New("bucket not found")
	// ErrMalformed means persisted bucket data could not be parsed.
	ErrMalformed = errors.New("malformed bucket data")
)

// MalformedLineError describes a bucket line that could not be parsed.
type MalformedLineError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformed
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}

// ParseLine splits a "word = count" line at the first separator.
func ParseLine(line string) (string, int, error) {
	word, rawCount, found := strings.Cut(line, Separator)
	if !found {
		return "", 0, fmt.Errorf("missing %q separator", Separator)
	}
	count, err := strconv.Atoi(rawCount)
	if err != nil {
		return "", 0, fmt.Errorf("invalid count: %w", err)
	}
	if count < 0 {
		return "", 0, fmt.Errorf("negative count %d", count)
	}
	return word, count, nil
}

// ParseLines reads bucket lines into a WordCount. It stops at the first
// malformed line unless skip is set; skipped lines are returned as errors
// alongside the parsed counts. Lines have no length limit.
func ParseLines(r io.Reader, skip bool) (models.WordCount, []error, error) {
	counts := make(models.WordCount)
	var skipped []error

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, skipped, fmt.Errorf("failed to read bucket lines: %w", readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}

		lineNo++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		word, count, err := ParseLine(line)
		if err != nil {
			lineErr := &MalformedLineError{Line: lineNo, Text: line, Err: err}
			if !skip {
				return nil, skipped, lineErr
			}
			skipped = append(skipped, lineErr)
		} else {
			counts[word] += count
		}

		if readErr == io.EOF {
			break
		}
	}
	return counts, skipped, nil
}

// SortedWords returns the words of counts in ascending byte order.
func SortedWords(counts models.WordCount) []string {
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// FormatLines serializes counts as sorted "word = count" lines.
func FormatLines(counts models.WordCount) []byte {
	var sb strings.Builder
	for _, word := range SortedWords(counts) {
		sb.WriteString(word)
		sb.WriteString(Separator)
		sb.WriteString(strconv.Itoa(counts[word]))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

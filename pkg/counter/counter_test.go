package counter

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/words-counter/models"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   models.WordCount
	}{
		{
			name:   "repeated token",
			tokens: []string{"a", "b", "a"},
			want:   models.WordCount{"a": 2, "b": 1},
		},
		{
			name:   "no case folding",
			tokens: []string{"Go", "go"},
			want:   models.WordCount{"Go": 1, "go": 1},
		},
		{
			name:   "empty token is counted",
			tokens: []string{"", "x"},
			want:   models.WordCount{"": 1, "x": 1},
		},
		{
			name:   "no tokens",
			tokens: nil,
			want:   models.WordCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Count(%q) = %v, want %v", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	a := models.WordCount{"cat": 2, "dog": 1}
	b := models.WordCount{"cat": 3, "emu": 4}

	got := Merge(a, b)
	want := models.WordCount{"cat": 5, "dog": 1, "emu": 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}

	// Inputs stay untouched
	if a["cat"] != 2 || b["cat"] != 3 {
		t.Errorf("Merge() modified its inputs: a=%v b=%v", a, b)
	}
}

func TestMerge_Twice(t *testing.T) {
	single := models.WordCount{"cat": 2, "dog": 1}

	got := Merge(Merge(models.WordCount{}, single), single)
	for word, count := range single {
		if got[word] != 2*count {
			t.Errorf("word %q = %d, want %d", word, got[word], 2*count)
		}
	}
}

func TestReduce(t *testing.T) {
	got := Reduce([]models.WordCount{
		{"a": 1},
		{"a": 2, "b": 1},
		{},
	})
	want := models.WordCount{"a": 3, "b": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestTopKeywords(t *testing.T) {
	counts := models.WordCount{"go": 5, "rust": 5, "java": 2, "": 9, "c": 1}

	got := TopKeywords(counts, 3)
	want := []string{"go:5", "rust:5", "java:2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}

	if got := TopKeywords(counts, 10); len(got) != 4 {
		t.Errorf("TopKeywords(10) returned %d entries, want 4", len(got))
	}
}

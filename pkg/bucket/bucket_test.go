package bucket

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/words-counter/models"
)

func TestOf(t *testing.T) {
	tests := []struct {
		word string
		want Name
	}{
		{"apple", AG},
		{"dog", AG},
		{"golang", AG},
		{"high", HN},
		{"node", HN},
		{"orange", OU},
		{"umbrella", OU},
		{"vine", VZ},
		{"zebra", VZ},
		{"Apple", AG},
		{"Hat", HN},
		{"42nd", VZ},
		{"_private", VZ},
		{"", VZ},
		{"égal", VZ},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Of(tt.word); got != tt.want {
				t.Errorf("Of(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, n := range All() {
		got, ok := Parse(string(n))
		if !ok || got != n {
			t.Errorf("Parse(%q) = %q, %v", n, got, ok)
		}
	}
	if _, ok := Parse("a-z"); ok {
		t.Error("Parse(\"a-z\") should fail")
	}
}

func TestPartition(t *testing.T) {
	counts := models.WordCount{
		"cat":   2,
		"dog":   1,
		"house": 3,
		"zoo":   4,
		"7up":   1,
	}

	got := Partition(counts)
	want := map[Name]models.WordCount{
		AG: {"cat": 2, "dog": 1},
		HN: {"house": 3},
		VZ: {"zoo": 4, "7up": 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Partition() = %v, want %v", got, want)
	}

	// Every word lands in exactly one bucket
	seen := 0
	for _, part := range got {
		seen += len(part)
	}
	if seen != len(counts) {
		t.Errorf("partitioned %d words, want %d", seen, len(counts))
	}
}

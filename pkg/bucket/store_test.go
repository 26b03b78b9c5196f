package bucket

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/dtnitsch/words-counter/models"
)

func TestFileStore_ReadMissing(t *testing.T) {
	fs := NewFileStore(t.TempDir(), nil)

	_, err := fs.Read(AG)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Read() error = %v, want ErrNotFound", err)
	}
}

func TestFileStore_WriteRead(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "counted"), nil)

	counts := models.WordCount{"cat": 2, "dog": 1}
	if err := fs.Write(AG, counts); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "counted", "a-g.txt"))
	if err != nil {
		t.Fatalf("bucket file missing: %v", err)
	}
	if string(data) != "cat = 2\ndog = 1\n" {
		t.Errorf("file content = %q", data)
	}

	got, err := fs.Read(AG)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !reflect.DeepEqual(got, counts) {
		t.Errorf("Read() = %v, want %v", got, counts)
	}

	stats, err := fs.Stats(AG)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.SizeBytes != int64(len(data)) {
		t.Errorf("SizeBytes = %d, want %d", stats.SizeBytes, len(data))
	}
}

func TestFileStore_ReadMalformed(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir, nil)
	path := fs.Path(HN)
	if err := os.WriteFile(path, []byte("hat = 1\nhen = lots\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := fs.Read(HN); !errors.Is(err, ErrMalformed) {
		t.Errorf("Read() error = %v, want ErrMalformed", err)
	}

	fs.SkipMalformed = true
	got, err := fs.Read(HN)
	if err != nil {
		t.Fatalf("Read() with SkipMalformed error = %v", err)
	}
	if !reflect.DeepEqual(got, models.WordCount{"hat": 1}) {
		t.Errorf("Read() = %v", got)
	}
}

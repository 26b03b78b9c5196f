package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveFile_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "a-g.txt")
	s := &Storage{}

	if err := s.SaveFile(path, []byte("first\n")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if err := s.SaveFile(path, []byte("second\n")); err != nil {
		t.Fatalf("SaveFile() second call error = %v", err)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "second\n" {
		t.Errorf("content = %q, want %q", data, "second\n")
	}

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestReadFile_Missing(t *testing.T) {
	s := &Storage{}
	_, err := s.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want ErrNotExist", err)
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "in.counted")

	if err := s.SaveFile(src, []byte("x")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if err := s.Rename(src, dst); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if s.HasFile(src) || !s.HasFile(dst) {
		t.Errorf("Rename() did not move file")
	}

	// A second upload with the same name replaces the old marker
	if err := s.SaveFile(src, []byte("y")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if err := s.Rename(src, dst); err != nil {
		t.Fatalf("Rename() onto existing file error = %v", err)
	}
	data, err := s.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "y" {
		t.Errorf("content = %q, want %q", data, "y")
	}
}

func TestGetFileStats(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}
	path := filepath.Join(dir, "f.txt")
	if err := s.SaveFile(path, []byte("12345")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	stats, err := s.GetFileStats(path)
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != 5 {
		t.Errorf("SizeBytes = %d, want 5", stats.SizeBytes)
	}
}

// Package scanner discovers uploaded files and marks them as counted.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dtnitsch/words-counter/pkg/storage"
)

// CountedExtension replaces the input extension once a file has been counted.
const CountedExtension = ".counted"

// File is an input file found in the upload directory.
type File struct {
	Name      string
	Path      string
	SizeBytes int64
}

// Ext returns the lowercase extension of the file name.
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Scanner lists and reads files in an upload directory.
type Scanner struct {
	dir     string
	exts    map[string]struct{}
	storage *storage.Storage
}

// New creates a Scanner for dir matching the given extensions (".txt").
func New(dir string, exts ...string) *Scanner {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return &Scanner{dir: dir, exts: set, storage: &storage.Storage{}}
}

// Dir returns the upload directory.
func (s *Scanner) Dir() string {
	return s.dir
}

// Discover returns the matching regular files sorted by name.
// A missing directory yields no files.
func (s *Scanner) Discover() ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.dir, err)
	}

	var files []File
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		f := File{Name: entry.Name(), Path: filepath.Join(s.dir, entry.Name())}
		if _, ok := s.exts[f.Ext()]; !ok {
			continue
		}
		if info, err := entry.Info(); err == nil {
			f.SizeBytes = info.Size()
		}
		files = append(files, f)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// Read returns the whole content of f.
func (s *Scanner) Read(f File) (string, error) {
	data, err := s.storage.ReadFile(f.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CountedPath returns the name f is renamed to once counted: notes.txt -> notes.counted.
func CountedPath(f File) string {
	base := strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
	return filepath.Join(filepath.Dir(f.Path), base+CountedExtension)
}

// MarkCounted renames f so it is not discovered again. replaced is true when
// an earlier upload with the same name had already been counted and its
// .counted file was overwritten.
func (s *Scanner) MarkCounted(f File) (dst string, replaced bool, err error) {
	dst = CountedPath(f)
	replaced = s.storage.HasFile(dst)
	if err := s.storage.Rename(f.Path, dst); err != nil {
		return "", false, err
	}
	return dst, replaced, nil
}

package bucket

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dtnitsch/words-counter/models"
	"github.com/dtnitsch/words-counter/pkg/storage"
)

// FileExtension is appended to the bucket name to form the bucket file name.
const FileExtension = ".txt"

// Store persists the accumulated counts of each bucket.
// Read returns ErrNotFound for a bucket that was never written.
type Store interface {
	Read(name Name) (models.WordCount, error)
	Write(name Name, counts models.WordCount) error
}

// FileStore keeps one "<bucket>.txt" file per bucket in a directory.
type FileStore struct {
	dir     string
	storage *storage.Storage
	logger  *slog.Logger

	// SkipMalformed drops unparsable lines instead of failing the read.
	SkipMalformed bool
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// on first write.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{
		dir:     dir,
		storage: &storage.Storage{},
		logger:  logger,
	}
}

// Path returns the bucket file path.
func (fs *FileStore) Path(name Name) string {
	return filepath.Join(fs.dir, string(name)+FileExtension)
}

func (fs *FileStore) Read(name Name) (models.WordCount, error) {
	path := fs.Path(name)
	f, err := fs.storage.Open(path)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	counts, skipped, err := ParseLines(f, fs.SkipMalformed)
	for _, lineErr := range skipped {
		fs.logger.Warn("Skipping malformed bucket line", "bucket", name, "path", path, "error", lineErr)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return counts, nil
}

func (fs *FileStore) Write(name Name, counts models.WordCount) error {
	return fs.storage.SaveFile(fs.Path(name), FormatLines(counts))
}

// Stats returns the size and modification time of a bucket file.
func (fs *FileStore) Stats(name Name) (*storage.FileStats, error) {
	return fs.storage.GetFileStats(fs.Path(name))
}

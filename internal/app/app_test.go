package app

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/words-counter/models"
)

func testConfig(t *testing.T) *models.Config {
	t.Helper()
	root := t.TempDir()
	config := models.DefaultConfig()
	config.UploadDir = filepath.Join(root, "uploads")
	config.CountedDir = filepath.Join(root, "counted")
	config.DBPath = filepath.Join(root, "ledger.db")
	return config
}

func TestOpen_LedgerOnlyWhenRequested(t *testing.T) {
	tests := []struct {
		name       string
		store      string
		withLedger bool
		wantDB     bool
	}{
		{"file store read only", models.StoreFile, false, false},
		{"file store with ledger", models.StoreFile, true, true},
		{"sqlite store read only", models.StoreSQLite, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testConfig(t)
			config.Store = tt.store

			a, err := Open(config, slog.Default(), tt.withLedger)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer a.Close()

			if (a.DB != nil) != tt.wantDB {
				t.Errorf("DB opened = %v, want %v", a.DB != nil, tt.wantDB)
			}
			_, statErr := os.Stat(config.DBPath)
			if exists := !errors.Is(statErr, os.ErrNotExist); exists != tt.wantDB {
				t.Errorf("database file exists = %v, want %v", exists, tt.wantDB)
			}
			if (a.FileStore != nil) != (tt.store == models.StoreFile) {
				t.Errorf("FileStore set = %v for store %q", a.FileStore != nil, tt.store)
			}
		})
	}
}

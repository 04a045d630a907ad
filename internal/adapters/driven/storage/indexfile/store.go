// Package indexfile persists the document index as a single JSON file.
// It is the default durable record: human-inspectable and trivially
// portable between machines.
package indexfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.IndexStore = (*Store)(nil)

// Store is a JSON-file implementation of driven.IndexStore.
type Store struct {
	filePath string
}

// NewStore creates a file-backed index store. If dataDir is empty,
// defaults to ~/.sos-licitacoes/data/index.json.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sos-licitacoes", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Store{filePath: filepath.Join(dataDir, "index.json")}, nil
}

// Load reads the index from disk. A missing file yields an empty index;
// an unreadable one is treated as empty so one bad write never bricks
// the catalog.
func (s *Store) Load(ctx context.Context) (*domain.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &domain.Index{}, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var idx domain.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		logger.Warn("Index file %s is corrupt, starting empty: %v", s.filePath, err)
		return &domain.Index{}, nil
	}
	return &idx, nil
}

// Save writes the index atomically: marshal to a sibling temp file,
// then rename over the target.
func (s *Store) Save(ctx context.Context, idx *domain.Index) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.filePath), "index-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp index: %w", err)
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace index: %w", err)
	}
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}

// Path returns the index file path.
func (s *Store) Path() string {
	return s.filePath
}

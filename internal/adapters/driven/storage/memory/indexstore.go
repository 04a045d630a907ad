// Package memory provides in-memory implementations of driven ports
// for tests.
package memory

import (
	"context"
	"sync"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore is an in-memory implementation of driven.IndexStore.
type IndexStore struct {
	mu  sync.RWMutex
	idx domain.Index
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// Load returns a deep copy of the stored index.
func (s *IndexStore) Load(_ context.Context) (*domain.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIndex(&s.idx), nil
}

// Save replaces the stored index with a deep copy of idx.
func (s *IndexStore) Save(_ context.Context, idx *domain.Index) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idx = *copyIndex(idx)
	return nil
}

// Close is a no-op.
func (s *IndexStore) Close() error {
	return nil
}

func copyIndex(idx *domain.Index) *domain.Index {
	out := &domain.Index{
		Documents: make([]domain.Document, len(idx.Documents)),
		Chunks:    make([]domain.Chunk, len(idx.Chunks)),
	}
	copy(out.Documents, idx.Documents)
	copy(out.Chunks, idx.Chunks)
	return out
}

package driven

import (
	"context"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
)

// IndexStore persists the index as a single durable record.
// The record is the source of truth: services reload it at the start of
// every operation and replace it wholesale on every write.
type IndexStore interface {
	// Load returns the current record. A record that does not exist yet
	// loads as an empty index, not an error.
	Load(ctx context.Context) (*domain.Index, error)

	// Save replaces the durable record with idx.
	Save(ctx context.Context, idx *domain.Index) error

	// Close releases resources.
	Close() error
}

package driving

import (
	"context"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
)

// CatalogService manages the indexed document catalog.
type CatalogService interface {
	// IndexDocument extracts, chunks and persists one PDF, returning a
	// summary. Fails with domain.ErrExtraction when no backend can read
	// the file and domain.ErrEmptyDocument when no page has usable text.
	IndexDocument(ctx context.Context, path string) (domain.IngestResult, error)

	// ListDocuments returns one summary per indexed document, in
	// insertion order.
	ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error)

	// ClearIndex replaces the durable record with an empty index.
	ClearIndex(ctx context.Context) error
}

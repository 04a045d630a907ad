package driven

import "context"

// PageExtractor turns a PDF file into per-page normalised text.
// Backends are tried in registration order: an error from one backend
// hands the file to the next, and ingestion fails only when every
// backend has failed.
type PageExtractor interface {
	// Name identifies the backend in logs and status output.
	Name() string

	// ExtractPages returns one text string per page, in page order.
	// A page that cannot be read yields an empty string for that page
	// only; an error means the backend cannot handle the file at all.
	ExtractPages(ctx context.Context, path string) ([]string, error)
}

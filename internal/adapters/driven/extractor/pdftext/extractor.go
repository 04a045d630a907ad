// Package pdftext extracts per-page plain text from PDFs using the
// ledongthuc/pdf reader. It is the primary extraction backend: fast and
// dependency-light, but it gives up on some generator quirks that the
// pdfcpu backend still handles.
package pdftext

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/logger"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/text"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Extractor reads page text straight from the PDF content streams.
type Extractor struct{}

// New creates a new pdftext extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the backend in logs.
func (e *Extractor) Name() string {
	return "pdftext"
}

// ExtractPages returns one normalised text per page, in page order.
// A page whose content cannot be decoded yields an empty string rather
// than failing the whole document.
func (e *Extractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			logger.Debug("pdftext: page %d unreadable: %v", i, err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text.NormalizeSpace(content))
	}

	return pages, nil
}

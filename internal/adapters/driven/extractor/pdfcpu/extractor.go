// Package pdfcpu extracts per-page text from PDFs via pdfcpu content
// extraction. It is the fallback backend: slower than pdftext because
// it round-trips page contents through a temp directory, but it copes
// with documents the stream reader rejects.
package pdfcpu

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/logger"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/text"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Extractor extracts page contents through pdfcpu.
type Extractor struct {
	conf *model.Configuration
}

// New creates a new pdfcpu extractor.
func New() *Extractor {
	return &Extractor{conf: model.NewDefaultConfiguration()}
}

// Name identifies the backend in logs.
func (e *Extractor) Name() string {
	return "pdfcpu"
}

// ExtractPages returns one normalised text per page, in page order.
// pdfcpu has no direct text API, so page contents are extracted to a
// temp directory and read back by page number.
func (e *Extractor) ExtractPages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir, err := os.MkdirTemp("", "sos-licitacoes-pdf-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(path, outDir, nil, e.conf); err != nil {
		return nil, fmt.Errorf("extract pdf content: %w", err)
	}

	pageTexts := make(map[int]string, pageCount)
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("read extracted content: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		pageNum, ok := parsePageNumber(entry.Name())
		if !ok {
			logger.Debug("pdfcpu: skipping unrecognised output file %s", entry.Name())
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			continue
		}
		pageTexts[pageNum] = string(content)
	}

	pages := make([]string, 0, pageCount)
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pages = append(pages, text.NormalizeSpace(pageTexts[pageNum]))
	}
	return pages, nil
}

// parsePageNumber recovers the page number from a pdfcpu output file
// name. Different pdfcpu versions use page_N and Content_page_N.
func parsePageNumber(name string) (int, bool) {
	var pageNum int
	if _, err := fmt.Sscanf(name, "page_%d", &pageNum); err == nil {
		return pageNum, true
	}
	if _, err := fmt.Sscanf(name, "Content_page_%d", &pageNum); err == nil {
		return pageNum, true
	}
	return 0, false
}

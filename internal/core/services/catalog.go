package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/chunker"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driven"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driving"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the indexed document catalog. Every operation
// reloads the durable record before acting, so the in-memory index is
// never trusted across calls. The mutex serialises the
// reload-mutate-persist cycle: without it two concurrent ingestions
// could reload the same snapshot and the later save would silently
// discard the earlier document.
type CatalogService struct {
	mu         sync.RWMutex
	store      driven.IndexStore
	extractors []driven.PageExtractor
	chunker    *chunker.Chunker
}

// NewCatalogService creates a new catalog service. Extractors are tried
// in the given order during ingestion.
func NewCatalogService(store driven.IndexStore, extractors []driven.PageExtractor, ck *chunker.Chunker) *CatalogService {
	if ck == nil {
		ck = chunker.New()
	}
	return &CatalogService{
		store:      store,
		extractors: extractors,
		chunker:    ck,
	}
}

// IndexDocument extracts, chunks and persists one PDF.
func (s *CatalogService) IndexDocument(ctx context.Context, path string) (domain.IngestResult, error) {
	if strings.TrimSpace(path) == "" {
		return domain.IngestResult{}, fmt.Errorf("%w: empty document path", domain.ErrInvalidInput)
	}

	logger.Section("Document Ingestion")
	logger.Debug("Path: %s", path)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.store.Load(ctx)
	if err != nil {
		return domain.IngestResult{}, fmt.Errorf("load index: %w", err)
	}

	pages, err := s.extractPages(ctx, path)
	if err != nil {
		return domain.IngestResult{}, err
	}
	if len(pages) == 0 {
		return domain.IngestResult{}, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, filepath.Base(path))
	}

	name := filepath.Base(path)
	docIndex := len(idx.Documents)

	var chunks []domain.Chunk
	for i, pageText := range pages {
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		for _, part := range s.chunker.Split(pageText) {
			chunks = append(chunks, domain.Chunk{
				DocumentIndex: docIndex,
				Page:          i + 1,
				Text:          part,
			})
		}
	}
	if len(chunks) == 0 {
		return domain.IngestResult{}, fmt.Errorf("%w: %s", domain.ErrEmptyDocument, name)
	}

	idx.Documents = append(idx.Documents, domain.Document{Name: name, PageCount: len(pages)})
	idx.Chunks = append(idx.Chunks, chunks...)

	if err := s.store.Save(ctx, idx); err != nil {
		return domain.IngestResult{}, fmt.Errorf("persist index: %w", err)
	}

	logger.Info("Indexed %s: %d pages, %d chunks", name, len(pages), len(chunks))

	return domain.IngestResult{
		Name:       name,
		ChunkCount: len(chunks),
		PageCount:  len(pages),
	}, nil
}

// extractPages runs the backends in order until one succeeds.
func (s *CatalogService) extractPages(ctx context.Context, path string) ([]string, error) {
	var lastErr error
	for _, ex := range s.extractors {
		pages, err := ex.ExtractPages(ctx, path)
		if err != nil {
			logger.Warn("Extractor %s failed: %v", ex.Name(), err)
			lastErr = err
			continue
		}
		logger.Debug("Extractor %s: %d pages", ex.Name(), len(pages))
		return pages, nil
	}
	if lastErr == nil {
		return nil, fmt.Errorf("%w: no extraction backend configured", domain.ErrExtraction)
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrExtraction, lastErr)
}

// ListDocuments returns one summary per indexed document.
func (s *CatalogService) ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load index: %w", err)
	}

	counts := make([]int, len(idx.Documents))
	for _, ch := range idx.Chunks {
		if ch.DocumentIndex >= 0 && ch.DocumentIndex < len(counts) {
			counts[ch.DocumentIndex]++
		}
	}

	summaries := make([]domain.DocumentSummary, len(idx.Documents))
	for i, doc := range idx.Documents {
		summaries[i] = domain.DocumentSummary{Name: doc.Name, ChunkCount: counts[i]}
	}
	return summaries, nil
}

// ClearIndex replaces the durable record with an empty index.
func (s *CatalogService) ClearIndex(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, &domain.Index{}); err != nil {
		return fmt.Errorf("persist index: %w", err)
	}
	logger.Info("Index cleared")
	return nil
}

// Snapshot reloads and returns the current index contents. Used by the
// answering pipeline so ranking always sees the durable record.
func (s *CatalogService) Snapshot(ctx context.Context) (*domain.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Load(ctx)
}

package mcp

import (
	"context"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/domain"
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driving"
)

// Compile-time checks that the mocks satisfy the driving ports.
var (
	_ driving.CatalogService = (*mockCatalogService)(nil)
	_ driving.AnswerService  = (*mockAnswerService)(nil)
)

// mockCatalogService is a scriptable driving.CatalogService.
type mockCatalogService struct {
	indexResult domain.IngestResult
	indexErr    error
	indexedPath string

	documents []domain.DocumentSummary
	listErr   error

	clearErr    error
	clearCalled bool
}

func (m *mockCatalogService) IndexDocument(_ context.Context, path string) (domain.IngestResult, error) {
	m.indexedPath = path
	if m.indexErr != nil {
		return domain.IngestResult{}, m.indexErr
	}
	return m.indexResult, nil
}

func (m *mockCatalogService) ListDocuments(_ context.Context) ([]domain.DocumentSummary, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.documents, nil
}

func (m *mockCatalogService) ClearIndex(_ context.Context) error {
	m.clearCalled = true
	return m.clearErr
}

// mockAnswerService is a scriptable driving.AnswerService.
type mockAnswerService struct {
	answer       domain.Answer
	lastQuestion string
	lastRemote   bool

	sources []string
	status  string
}

func (m *mockAnswerService) Answer(_ context.Context, question string, useRemote bool) domain.Answer {
	m.lastQuestion = question
	m.lastRemote = useRemote
	return m.answer
}

func (m *mockAnswerService) LastSources() []string {
	return m.sources
}

func (m *mockAnswerService) Status(_ context.Context) string {
	return m.status
}

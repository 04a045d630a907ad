package mcp

import (
	"github.com/mojuniorlima-droid/sos-licitacoes/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog manages the indexed document catalog.
	Catalog driving.CatalogService

	// Answer answers questions over the catalog.
	Answer driving.AnswerService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	return nil
}

// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants index procurement notices and ask questions
// over the local catalog.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")

package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed procurement notices"`
	Local    bool   `json:"local,omitempty" jsonschema:"skip the remote model and use the local summary"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Title         string   `json:"title"`
	Answer        string   `json:"answer"`
	Sources       []string `json:"sources"`
	Authoritative bool     `json:"authoritative"`
}

// IndexDocumentInput is the input schema for the index_document tool.
type IndexDocumentInput struct {
	Path string `json:"path" jsonschema:"filesystem path of the PDF to index"`
}

// IndexDocumentOutput is the output schema for the index_document tool.
type IndexDocumentOutput struct {
	Name   string `json:"name"`
	Pages  int    `json:"pages"`
	Chunks int    `json:"chunks"`
}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentInfo `json:"documents"`
	Count     int            `json:"count"`
}

// DocumentInfo describes one indexed document.
type DocumentInfo struct {
	Name   string `json:"name"`
	Chunks int    `json:"chunks"`
}

// StatusOutput is the output schema for the status tool.
type StatusOutput struct {
	Status string `json:"status"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question about the indexed procurement notices, with citations",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index_document",
		Description: "Extract, chunk and index a procurement notice PDF",
	}, s.handleIndexDocument)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the indexed documents and their chunk counts",
	}, s.handleListDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "status",
		Description: "Report remote reasoning availability, active model and document count",
	}, s.handleStatus)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	ans := s.ports.Answer.Answer(ctx, input.Question, !input.Local)

	return nil, AskOutput{
		Title:         ans.Title,
		Answer:        ans.Markdown,
		Sources:       ans.Sources,
		Authoritative: ans.Authoritative,
	}, nil
}

// handleIndexDocument handles the index_document tool invocation.
func (s *Server) handleIndexDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IndexDocumentInput,
) (*mcp.CallToolResult, IndexDocumentOutput, error) {
	result, err := s.ports.Catalog.IndexDocument(ctx, input.Path)
	if err != nil {
		return nil, IndexDocumentOutput{}, err
	}

	return nil, IndexDocumentOutput{
		Name:   result.Name,
		Pages:  result.PageCount,
		Chunks: result.ChunkCount,
	}, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	docs, err := s.ports.Catalog.ListDocuments(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentInfo, len(docs)),
		Count:     len(docs),
	}
	for i, doc := range docs {
		output.Documents[i] = DocumentInfo{
			Name:   doc.Name,
			Chunks: doc.ChunkCount,
		}
	}
	return nil, output, nil
}

// handleStatus handles the status tool invocation.
func (s *Server) handleStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, StatusOutput, error) {
	return nil, StatusOutput{Status: s.ports.Answer.Status(ctx)}, nil
}

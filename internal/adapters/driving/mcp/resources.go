package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for crossword resources.
	uriScheme = "crossword://"

	gridURI  = uriScheme + "grid"
	wordsURI = uriScheme + "words"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         gridURI,
		Name:        "grid",
		Description: "The grid being edited, with clue numbers",
		MIMEType:    "application/json",
	}, s.handleGridResource)

	s.server.AddResource(&mcp.Resource{
		URI:         wordsURI,
		Name:        "words",
		Description: "Across and down words of the grid being edited",
		MIMEType:    "application/json",
	}, s.handleWordsResource)
}

// handleGridResource returns the current grid snapshot.
func (s *Server) handleGridResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	snap, err := s.ports.Editor.Snapshot()
	if errors.Is(err, domain.ErrNoGrid) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return jsonResource(req.Params.URI, snap)
}

// handleWordsResource returns the words of the current grid.
func (s *Server) handleWordsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	words, err := s.ports.Editor.Words()
	if errors.Is(err, domain.ErrNoGrid) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("listing words: %w", err)
	}
	if words == nil {
		words = []domain.Word{}
	}
	return jsonResource(req.Params.URI, words)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Package mcp provides an MCP (Model Context Protocol) server adapter that
// lets AI assistants build and fill crossword grids.
package mcp

import "errors"

// ErrMissingEditorService is returned when the editor service is not provided.
var ErrMissingEditorService = errors.New("mcp: editor service is required")

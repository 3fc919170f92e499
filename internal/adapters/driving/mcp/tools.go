package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/console"
	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

// NewGridInput is the input schema for the new_grid tool.
type NewGridInput struct {
	Rows int `json:"rows" jsonschema:"number of rows, 1 to 256"`
	Cols int `json:"cols" jsonschema:"number of columns, 1 to 256"`
}

// GetGridInput is the input schema for the get_grid tool.
type GetGridInput struct{}

// SquareInput addresses one square with 0-based coordinates.
type SquareInput struct {
	Row int `json:"row" jsonschema:"0-based row"`
	Col int `json:"col" jsonschema:"0-based column"`
}

// WriteInput is the input schema for the write_square tool.
type WriteInput struct {
	Letter string `json:"letter" jsonschema:"a single letter, stored in uppercase"`
	Row    int    `json:"row" jsonschema:"0-based row"`
	Col    int    `json:"col" jsonschema:"0-based column"`
}

// ListWordsInput is the input schema for the list_words tool.
type ListWordsInput struct{}

// GridOutput is the output schema for every grid tool.
type GridOutput struct {
	Grid domain.GridSnapshot `json:"grid"`
	// Board is the grid drawn as text.
	Board string `json:"board"`
}

// WordsOutput is the output schema for the list_words tool.
type WordsOutput struct {
	Words []domain.Word `json:"words"`
	Count int           `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "new_grid",
		Description: "Start a new empty crossword grid, replacing the current one",
	}, s.handleNewGrid)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_grid",
		Description: "Return the current grid with its clue numbers",
	}, s.handleGetGrid)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_square",
		Description: "Empty one square",
	}, s.handleClear)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "block_square",
		Description: "Turn one square into a block",
	}, s.handleBlock)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "write_square",
		Description: "Write a letter into one square",
	}, s.handleWrite)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_words",
		Description: "List every across and down word with its number and letter pattern",
	}, s.handleListWords)
}

func (s *Server) handleNewGrid(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NewGridInput,
) (*mcp.CallToolResult, GridOutput, error) {
	if err := s.allow("new_grid"); err != nil {
		return nil, GridOutput{}, err
	}
	return s.gridResult(s.ports.Editor.NewGrid(input.Rows, input.Cols))
}

func (s *Server) handleGetGrid(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GetGridInput,
) (*mcp.CallToolResult, GridOutput, error) {
	return s.gridResult(s.ports.Editor.Snapshot())
}

func (s *Server) handleClear(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SquareInput,
) (*mcp.CallToolResult, GridOutput, error) {
	if err := s.allow("clear_square"); err != nil {
		return nil, GridOutput{}, err
	}
	return s.gridResult(s.ports.Editor.Clear(input.Row, input.Col))
}

func (s *Server) handleBlock(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SquareInput,
) (*mcp.CallToolResult, GridOutput, error) {
	if err := s.allow("block_square"); err != nil {
		return nil, GridOutput{}, err
	}
	return s.gridResult(s.ports.Editor.Block(input.Row, input.Col))
}

func (s *Server) handleWrite(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input WriteInput,
) (*mcp.CallToolResult, GridOutput, error) {
	if err := s.allow("write_square"); err != nil {
		return nil, GridOutput{}, err
	}
	return s.gridResult(s.ports.Editor.Write(input.Letter, input.Row, input.Col))
}

func (s *Server) handleListWords(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListWordsInput,
) (*mcp.CallToolResult, WordsOutput, error) {
	words, err := s.ports.Editor.Words()
	if err != nil {
		return nil, WordsOutput{}, err
	}
	if words == nil {
		words = []domain.Word{}
	}
	return nil, WordsOutput{Words: words, Count: len(words)}, nil
}

// gridResult turns an editor result into tool output.
func (s *Server) gridResult(snap *domain.GridSnapshot, err error) (*mcp.CallToolResult, GridOutput, error) {
	if err != nil {
		return nil, GridOutput{}, err
	}

	var board strings.Builder
	if err := console.RenderBoard(&board, snap, s.settings.Display.BlockGlyph); err != nil {
		return nil, GridOutput{}, err
	}
	return nil, GridOutput{Grid: *snap, Board: board.String()}, nil
}

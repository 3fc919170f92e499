package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
	"github.com/custodia-labs/crossword-cli/internal/core/services"
)

func runSession(t *testing.T, cfg Config, input string) (*services.EditorService, string, error) {
	t.Helper()
	editor := services.NewEditorService()
	var out bytes.Buffer
	if cfg.BlockGlyph == "" {
		cfg.BlockGlyph = "#"
	}
	err := NewSession(editor, strings.NewReader(input), &out, cfg).Run(context.Background())
	return editor, out.String(), err
}

func squareAt(t *testing.T, editor *services.EditorService, row, col int) domain.SquareView {
	t.Helper()
	v, err := editor.Square(row, col)
	require.NoError(t, err)
	return v
}

func TestSession_PromptsForSize(t *testing.T) {
	editor, out, err := runSession(t, Config{}, "0\nabc\n2\n-1\n3\nexit\n")

	require.NoError(t, err)
	snap, err := editor.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Height)
	assert.Equal(t, 3, snap.Width)
	assert.Equal(t, 3, strings.Count(out, "How many rows? "))
	assert.Equal(t, 2, strings.Count(out, "How many columns? "))
	assert.Equal(t, 3, strings.Count(out, "Enter an integer greater than 0\n"))
}

func TestSession_PromptRejectsOversizedGrid(t *testing.T) {
	editor, out, err := runSession(t, Config{}, "257\n300\n4\n1000\n5\nexit\n")

	require.NoError(t, err)
	snap, err := editor.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 4, snap.Height)
	assert.Equal(t, 5, snap.Width)
	assert.Equal(t, 3, strings.Count(out, "Enter an integer no greater than 256\n"))
}

func TestSession_PresetSizeOverLimit(t *testing.T) {
	_, _, err := runSession(t, Config{Rows: domain.MaxDimension + 1, Cols: 2}, "")

	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
}

func TestSession_InputClosedDuringPrompt(t *testing.T) {
	_, _, err := runSession(t, Config{}, "4\n")

	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestSession_PresetSizeSkipsPrompts(t *testing.T) {
	_, out, err := runSession(t, Config{Rows: 1, Cols: 2}, "")

	require.NoError(t, err)
	assert.NotContains(t, out, "How many")
	assert.True(t, strings.HasPrefix(out, "+---+---+\n"))
}

func TestSession_EditCommands(t *testing.T) {
	input := strings.Join([]string{
		"block 0 1",
		"write a 1 1",
		"write b 1 0",
		"clear 1 0",
		"exit",
		"block 0 0",
	}, "\n")

	editor, _, err := runSession(t, Config{Rows: 2, Cols: 2}, input)

	require.NoError(t, err)
	assert.Equal(t, domain.SquareBlock, squareAt(t, editor, 0, 1).Type)
	assert.Equal(t, "A", squareAt(t, editor, 1, 1).Letter)
	assert.Equal(t, domain.SquareEmpty, squareAt(t, editor, 1, 0).Type)
	assert.Equal(t, domain.SquareEmpty, squareAt(t, editor, 0, 0).Type, "commands after exit are not run")
}

func TestSession_PrintsBoardAfterEachEdit(t *testing.T) {
	_, out, err := runSession(t, Config{Rows: 1, Cols: 1}, "block 0 0\nclear 0 0\n")

	require.NoError(t, err)
	// Initial board plus one per edit.
	assert.Equal(t, 3, strings.Count(out, "+---+\n|"))
	assert.Contains(t, out, "|###|")
}

func TestSession_ErrorMessages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown command", "jump 1 1", "Unrecognized command\n"},
		{"missing coordinates", "block", "Invalid square\n"},
		{"one coordinate", "clear 1", "Invalid square\n"},
		{"non-numeric coordinates", "block a b", "Invalid square\n"},
		{"out of bounds", "block 5 5", "Invalid square\n"},
		{"negative", "clear -1 0", "Invalid square\n"},
		{"write without letter", "write", "Provide a letter\n"},
		{"write multiple letters", "write ab 0 0", "Provide a single letter\n"},
		{"write non-letter", "write 1 0 0", "Invalid letter: 1\n"},
		{"write bad square", "write a 9 9", "Invalid square\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor, out, err := runSession(t, Config{Rows: 2, Cols: 2}, tt.input+"\n")

			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
			snap, _ := editor.Snapshot()
			for _, row := range snap.Squares {
				for _, sq := range row {
					assert.Equal(t, domain.SquareEmpty, sq.Type)
				}
			}
		})
	}
}

func TestSession_Help(t *testing.T) {
	_, out, err := runSession(t, Config{Rows: 1, Cols: 1}, "help\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Available commands:\n")
	assert.Contains(t, out, "write letter row col\n")
}

func TestSession_Words(t *testing.T) {
	_, out, err := runSession(t, Config{Rows: 1, Cols: 3}, "write c 0 0\nwords\n")

	require.NoError(t, err)
	assert.Contains(t, out, "1 across (0, 0) C__\n")
}

func TestSession_BlankLinesIgnored(t *testing.T) {
	_, out, err := runSession(t, Config{Rows: 1, Cols: 1}, "\n   \n")

	require.NoError(t, err)
	assert.NotContains(t, out, "Unrecognized")
}

func TestSession_InteractivePrompt(t *testing.T) {
	_, out, err := runSession(t, Config{Rows: 1, Cols: 1, Interactive: true}, "help\n")

	require.NoError(t, err)
	assert.Contains(t, out, "> Available commands:")
}

func TestSession_ContextCancelled(t *testing.T) {
	editor := services.NewEditorService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSession(editor, strings.NewReader("block 0 0\n"), &bytes.Buffer{}, Config{Rows: 1, Cols: 1}).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	v, _ := editor.Square(0, 0)
	assert.Equal(t, domain.SquareEmpty, v.Type)
}

func TestSession_Execute(t *testing.T) {
	editor := services.NewEditorService()
	_, err := editor.NewGrid(1, 1)
	require.NoError(t, err)
	s := NewSession(editor, strings.NewReader(""), &bytes.Buffer{}, Config{})

	assert.False(t, s.Execute("block 0 0"))
	assert.True(t, s.Execute("  exit  "))
	assert.Equal(t, "▉", s.config.BlockGlyph)
}

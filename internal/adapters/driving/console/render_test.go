package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

func snapshotOf(t *testing.T, rows, cols int, edit func(g *domain.Grid)) *domain.GridSnapshot {
	t.Helper()
	g, err := domain.NewGrid(rows, cols)
	require.NoError(t, err)
	if edit != nil {
		edit(g)
	}
	snap := g.Snapshot()
	return &snap
}

func TestRenderBoard_Fresh(t *testing.T) {
	var buf bytes.Buffer

	err := RenderBoard(&buf, snapshotOf(t, 2, 2, nil), "#")

	require.NoError(t, err)
	assert.Equal(t, ""+
		"+---+---+\n"+
		"|1  |2  |\n"+
		"|   |   |\n"+
		"+---+---+\n"+
		"|3  |   |\n"+
		"|   |   |\n"+
		"+---+---+\n", buf.String())
}

func TestRenderBoard_BlocksAndLetters(t *testing.T) {
	snap := snapshotOf(t, 2, 2, func(g *domain.Grid) {
		sq, _ := g.SquareAt(0, 1)
		sq.Block()
		sq, _ = g.SquareAt(1, 1)
		_ = sq.Write('Z')
	})
	var buf bytes.Buffer

	require.NoError(t, RenderBoard(&buf, snap, "#"))

	assert.Equal(t, ""+
		"+---+---+\n"+
		"|1  |###|\n"+
		"|   |###|\n"+
		"+---+---+\n"+
		"|2  |   |\n"+
		"|   | Z |\n"+
		"+---+---+\n", buf.String())
}

func TestRenderBoard_TwoDigitNumbers(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderBoard(&buf, snapshotOf(t, 2, 10, nil), "#"))

	assert.Contains(t, buf.String(), "|9  |10 |\n")
	assert.Contains(t, buf.String(), "|11 |   |")
}

func TestRenderWords(t *testing.T) {
	var buf bytes.Buffer

	err := RenderWords(&buf, []domain.Word{
		{Number: 1, Direction: domain.Across, Row: 0, Col: 0, Length: 3, Pattern: "C_T"},
		{Number: 2, Direction: domain.Down, Row: 0, Col: 2, Length: 2, Pattern: "T_"},
	})

	require.NoError(t, err)
	assert.Equal(t, "1 across (0, 0) C_T\n2 down (0, 2) T_\n", buf.String())
}

func TestRenderWords_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderWords(&buf, nil))
	assert.Equal(t, "No words\n", buf.String())
}

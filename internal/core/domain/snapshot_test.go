package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_Snapshot(t *testing.T) {
	g := mustGrid(t, 2, 2)
	mustSquare(t, g, 0, 1).Block()
	require.NoError(t, mustSquare(t, g, 1, 0).Write('Q'))

	snap := g.Snapshot()

	assert.Equal(t, 2, snap.Height)
	assert.Equal(t, 2, snap.Width)

	first, ok := snap.At(0, 0)
	require.True(t, ok)
	assert.Equal(t, SquareEmpty, first.Type)
	require.NotNil(t, first.Number)
	assert.Equal(t, 1, *first.Number)

	block, _ := snap.At(0, 1)
	assert.Equal(t, SquareBlock, block.Type)
	assert.Nil(t, block.Number)

	letter, _ := snap.At(1, 0)
	assert.Equal(t, "Q", letter.Letter)
	assert.Equal(t, "letter", letter.Kind)

	_, ok = snap.At(2, 0)
	assert.False(t, ok)
}

func TestGrid_Snapshot_IsACopy(t *testing.T) {
	g := mustGrid(t, 1, 2)
	snap := g.Snapshot()

	mustSquare(t, g, 0, 0).Block()

	v, _ := snap.At(0, 0)
	assert.Equal(t, SquareEmpty, v.Type)
	require.NotNil(t, v.Number)
	assert.Equal(t, 1, *v.Number)
}

func TestGridSnapshot_JSON(t *testing.T) {
	g := mustGrid(t, 1, 2)
	snap := g.Snapshot()
	snap.ID = "abc"

	data, err := json.Marshal(snap)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "abc",
		"height": 1,
		"width": 2,
		"squares": [[
			{"row": 0, "col": 0, "type": "empty", "number": 1},
			{"row": 0, "col": 1, "type": "empty"}
		]]
	}`, string(data))
}

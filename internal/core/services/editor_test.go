package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

func newEditorWithGrid(t *testing.T, rows, cols int) *EditorService {
	t.Helper()
	editor := NewEditorService()
	_, err := editor.NewGrid(rows, cols)
	require.NoError(t, err)
	return editor
}

func number(t *testing.T, snap *domain.GridSnapshot, row, col int) int {
	t.Helper()
	v, ok := snap.At(row, col)
	require.True(t, ok)
	if v.Number == nil {
		return 0
	}
	return *v.Number
}

func TestEditorService_NoGrid(t *testing.T) {
	editor := NewEditorService()

	_, err := editor.Snapshot()
	assert.ErrorIs(t, err, domain.ErrNoGrid)

	_, err = editor.Clear(0, 0)
	assert.ErrorIs(t, err, domain.ErrNoGrid)

	_, err = editor.Block(0, 0)
	assert.ErrorIs(t, err, domain.ErrNoGrid)

	_, err = editor.Write("A", 0, 0)
	assert.ErrorIs(t, err, domain.ErrNoGrid)

	_, err = editor.Words()
	assert.ErrorIs(t, err, domain.ErrNoGrid)

	_, err = editor.Square(0, 0)
	assert.ErrorIs(t, err, domain.ErrNoGrid)

	assert.False(t, editor.Exists(0, 0))
}

func TestEditorService_NewGrid(t *testing.T) {
	editor := NewEditorService()

	snap, err := editor.NewGrid(2, 3)

	require.NoError(t, err)
	assert.Equal(t, 2, snap.Height)
	assert.Equal(t, 3, snap.Width)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, 1, number(t, snap, 0, 0))
	assert.True(t, editor.Exists(1, 2))
	assert.False(t, editor.Exists(2, 0))
}

func TestEditorService_NewGrid_ReplacesSession(t *testing.T) {
	editor := NewEditorService()
	first, err := editor.NewGrid(2, 2)
	require.NoError(t, err)
	_, err = editor.Block(0, 0)
	require.NoError(t, err)

	second, err := editor.NewGrid(3, 3)

	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	v, _ := second.At(0, 0)
	assert.Equal(t, domain.SquareEmpty, v.Type)
}

func TestEditorService_NewGrid_InvalidDimensions(t *testing.T) {
	editor := newEditorWithGrid(t, 2, 2)
	before, err := editor.Snapshot()
	require.NoError(t, err)

	_, err = editor.NewGrid(0, 5)

	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
	after, err := editor.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed NewGrid keeps the old grid")
}

func TestEditorService_Write(t *testing.T) {
	tests := []struct {
		name    string
		letter  string
		want    string
		wantErr error
	}{
		{"uppercase", "A", "A", nil},
		{"lowercase is normalised", "q", "Q", nil},
		{"unicode letter", "é", "É", nil},
		{"digit", "7", "", domain.ErrInvalidInput},
		{"empty", "", "", domain.ErrInvalidInput},
		{"two letters", "ab", "", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor := newEditorWithGrid(t, 2, 2)

			snap, err := editor.Write(tt.letter, 1, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, snap)
				v, err := editor.Square(1, 1)
				require.NoError(t, err)
				assert.Equal(t, domain.SquareEmpty, v.Type)
				return
			}
			require.NoError(t, err)
			v, _ := snap.At(1, 1)
			assert.Equal(t, tt.want, v.Letter)
		})
	}
}

func TestEditorService_OutOfBounds(t *testing.T) {
	editor := newEditorWithGrid(t, 2, 2)

	_, err := editor.Clear(2, 0)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	_, err = editor.Block(0, -1)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	_, err = editor.Write("A", 5, 5)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)

	_, err = editor.Square(-1, 0)
	assert.ErrorIs(t, err, domain.ErrOutOfBounds)
}

func TestEditorService_BlockRenumbers(t *testing.T) {
	editor := newEditorWithGrid(t, 2, 2)

	snap, err := editor.Block(0, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, number(t, snap, 0, 0))
	assert.Equal(t, 0, number(t, snap, 0, 1))
	assert.Equal(t, 2, number(t, snap, 1, 0))
	assert.Equal(t, 0, number(t, snap, 1, 1))

	snap, err = editor.Clear(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, number(t, snap, 0, 1))
	assert.Equal(t, 3, number(t, snap, 1, 0))
}

func TestEditorService_Words(t *testing.T) {
	editor := newEditorWithGrid(t, 1, 3)
	_, err := editor.Write("c", 0, 0)
	require.NoError(t, err)
	_, err = editor.Write("a", 0, 1)
	require.NoError(t, err)

	words, err := editor.Words()

	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, domain.Across, words[0].Direction)
	assert.Equal(t, "CA_", words[0].Pattern)
}

func TestEditorService_ConcurrentEdits(t *testing.T) {
	editor := newEditorWithGrid(t, 5, 5)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			row, col := i/5, i%5
			if i%2 == 0 {
				_, _ = editor.Block(row, col)
			} else {
				_, _ = editor.Write("X", row, col)
			}
			_, _ = editor.Snapshot()
		}(i)
	}
	wg.Wait()

	snap, err := editor.Snapshot()
	require.NoError(t, err)
	v, _ := snap.At(0, 0)
	assert.Equal(t, domain.SquareBlock, v.Type)
	v, _ = snap.At(0, 1)
	assert.Equal(t, "X", v.Letter)
}

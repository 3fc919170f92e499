package driving

import "github.com/custodia-labs/crossword-cli/internal/core/domain"

// EditorService manages the grid being edited in a session.
//
// Coordinates are 0-based. Mutations return the snapshot taken after the
// edit, including any renumbering the edit triggered.
type EditorService interface {
	// NewGrid replaces the current grid with an empty one.
	NewGrid(rows, cols int) (*domain.GridSnapshot, error)

	// Snapshot returns a copy of the current grid.
	// Returns domain.ErrNoGrid if no grid has been created.
	Snapshot() (*domain.GridSnapshot, error)

	// Square returns a copy of one square.
	Square(row, col int) (domain.SquareView, error)

	// Exists reports whether (row, col) is inside the current grid.
	Exists(row, col int) bool

	// Clear empties the square at (row, col).
	Clear(row, col int) (*domain.GridSnapshot, error)

	// Block fills the square at (row, col).
	Block(row, col int) (*domain.GridSnapshot, error)

	// Write stores a single letter at (row, col), normalised to uppercase.
	Write(letter string, row, col int) (*domain.GridSnapshot, error)

	// Words lists every word of the current grid in clue order.
	Words() ([]domain.Word, error)
}

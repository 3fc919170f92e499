package services

import (
	"fmt"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
	"github.com/custodia-labs/crossword-cli/internal/logger"
)

// Ensure EditorService implements the interface.
var _ driving.EditorService = (*EditorService)(nil)

// EditorService owns the grid of one editing session.
//
// The domain grid is not safe for concurrent use; EditorService serialises
// access so the TUI and an MCP server can share a session.
type EditorService struct {
	mu   sync.Mutex
	id   string
	grid *domain.Grid
}

// NewEditorService creates an editor with no grid.
func NewEditorService() *EditorService {
	return &EditorService{}
}

// NewGrid replaces the current grid with an empty rows x cols grid.
func (s *EditorService) NewGrid(rows, cols int) (*domain.GridSnapshot, error) {
	grid, err := domain.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.grid = grid
	s.id = uuid.New().String()
	logger.Info("new %dx%d grid %s", rows, cols, s.id)
	return s.snapshot(), nil
}

// Snapshot returns a copy of the current grid.
func (s *EditorService) Snapshot() (*domain.GridSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil {
		return nil, domain.ErrNoGrid
	}
	return s.snapshot(), nil
}

// Square returns a copy of the square at (row, col).
func (s *EditorService) Square(row, col int) (domain.SquareView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil {
		return domain.SquareView{}, domain.ErrNoGrid
	}
	if _, err := s.grid.SquareAt(row, col); err != nil {
		return domain.SquareView{}, err
	}
	// Snapshot-per-read is fine at crossword sizes.
	snap := s.grid.Snapshot()
	v, _ := snap.At(row, col)
	return v, nil
}

// Exists reports whether (row, col) is inside the current grid.
func (s *EditorService) Exists(row, col int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.grid != nil && s.grid.SquareExists(row, col)
}

// Clear empties the square at (row, col).
func (s *EditorService) Clear(row, col int) (*domain.GridSnapshot, error) {
	return s.mutate("clear", row, col, func(sq *domain.Square) error {
		sq.Clear()
		return nil
	})
}

// Block fills the square at (row, col).
func (s *EditorService) Block(row, col int) (*domain.GridSnapshot, error) {
	return s.mutate("block", row, col, func(sq *domain.Square) error {
		sq.Block()
		return nil
	})
}

// Write stores letter at (row, col). The letter must be exactly one
// character; it is uppercased before being written.
func (s *EditorService) Write(letter string, row, col int) (*domain.GridSnapshot, error) {
	c, err := parseLetter(letter)
	if err != nil {
		return nil, err
	}
	return s.mutate("write "+string(c), row, col, func(sq *domain.Square) error {
		return sq.Write(c)
	})
}

// Words lists every word of the current grid.
func (s *EditorService) Words() ([]domain.Word, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil {
		return nil, domain.ErrNoGrid
	}
	return s.grid.Words(), nil
}

// mutate applies op to one square. Failed operations leave the grid as is.
func (s *EditorService) mutate(
	name string, row, col int, op func(sq *domain.Square) error,
) (*domain.GridSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid == nil {
		return nil, domain.ErrNoGrid
	}
	sq, err := s.grid.SquareAt(row, col)
	if err != nil {
		logger.Debug("%s rejected: %v", name, err)
		return nil, err
	}

	done := logger.Timed(name)
	err = op(sq)
	done()
	if err != nil {
		logger.Debug("%s at (%d, %d) failed: %v", name, row, col, err)
		return nil, err
	}

	logger.Debug("%s at (%d, %d)", name, row, col)
	return s.snapshot(), nil
}

// snapshot copies the grid (caller must hold lock).
func (s *EditorService) snapshot() *domain.GridSnapshot {
	snap := s.grid.Snapshot()
	snap.ID = s.id
	return &snap
}

// parseLetter validates a single-character letter and uppercases it.
func parseLetter(letter string) (rune, error) {
	if utf8.RuneCountInString(letter) != 1 {
		return 0, fmt.Errorf("%w: provide a single letter, got %q", domain.ErrInvalidInput, letter)
	}
	c, _ := utf8.DecodeRuneInString(letter)
	return unicode.ToUpper(c), nil
}

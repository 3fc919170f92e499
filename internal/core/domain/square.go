package domain

import (
	"fmt"
	"unicode"
)

// SquareType identifies what a square currently holds.
type SquareType int

const (
	// SquareEmpty is a writable square with no letter.
	SquareEmpty SquareType = iota
	// SquareBlock is a filled square that separates words.
	SquareBlock
	// SquareLetter is a square holding a letter.
	SquareLetter
)

// String returns the string representation of the square type.
func (t SquareType) String() string {
	switch t {
	case SquareEmpty:
		return "empty"
	case SquareBlock:
		return "block"
	case SquareLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// Square is a single cell of a Grid.
//
// Squares are only created by NewGrid and are only reachable through the
// grid that owns them. The grid pointer is a back-reference used to
// renumber after block transitions; it does not own the grid.
type Square struct {
	grid     *Grid
	kind     SquareType
	letter   rune
	number   int
	numbered bool
}

// Clear empties the square.
func (s *Square) Clear() {
	s.set(SquareEmpty, 0)
}

// Block fills the square.
func (s *Square) Block() {
	s.set(SquareBlock, 0)
}

// Write stores a letter in the square. It fails with ErrInvalidInput and
// leaves the square untouched if c is not alphabetic. Case is preserved;
// callers normalise before writing.
func (s *Square) Write(c rune) error {
	if !IsValidLetter(c) {
		return fmt.Errorf("%w: invalid letter %q", ErrInvalidInput, c)
	}
	s.set(SquareLetter, c)
	return nil
}

// Type returns what the square currently holds.
func (s *Square) Type() SquareType {
	return s.kind
}

// Letter returns the stored letter, or ErrInvalidState if the square
// does not hold one.
func (s *Square) Letter() (rune, error) {
	if s.kind != SquareLetter {
		return 0, fmt.Errorf("%w: square is %s, not a letter", ErrInvalidState, s.kind)
	}
	return s.letter, nil
}

// Number returns the clue number and whether the square has one.
func (s *Square) Number() (int, bool) {
	return s.number, s.numbered
}

// IsBlock reports whether the square is a block.
func (s *Square) IsBlock() bool {
	return s.kind == SquareBlock
}

func (s *Square) set(kind SquareType, letter rune) {
	wasBlock := s.IsBlock()
	s.kind = kind
	s.letter = letter
	if wasBlock != s.IsBlock() && s.grid != nil {
		s.grid.renumber()
	}
}

func (s *Square) setNumber(n int) {
	s.number = n
	s.numbered = true
}

func (s *Square) clearNumber() {
	s.number = 0
	s.numbered = false
}

// IsValidLetter reports whether c may be written into a square.
func IsValidLetter(c rune) bool {
	return unicode.IsLetter(c)
}

package domain

import "fmt"

// Grid is a fixed-size rectangle of squares addressed by (row, col).
//
// Squares live in a single backing slice indexed by row*width+col. The
// slice is allocated once in NewGrid and never grows, so pointers handed
// out by SquareAt stay valid for the grid's lifetime.
//
// Grid is not safe for concurrent use.
type Grid struct {
	height  int
	width   int
	squares []Square
}

// MaxDimension is the largest accepted height or width. It bounds a grid
// to MaxDimension*MaxDimension squares, so height*width cannot overflow.
const MaxDimension = 256

// NewGrid creates a grid of empty squares and numbers it.
// Both dimensions must be in 1..MaxDimension.
func NewGrid(height, width int) (*Grid, error) {
	if !ValidDimensions(height, width) {
		return nil, fmt.Errorf("%w: %dx%d (each side must be 1 to %d)",
			ErrInvalidDimensions, height, width, MaxDimension)
	}

	g := &Grid{
		height:  height,
		width:   width,
		squares: make([]Square, height*width),
	}
	for i := range g.squares {
		g.squares[i].grid = g
	}
	g.renumber()
	return g, nil
}

// ValidDimensions reports whether NewGrid accepts height x width.
func ValidDimensions(height, width int) bool {
	return 0 < height && height <= MaxDimension && 0 < width && width <= MaxDimension
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// SquareExists reports whether (row, col) lies inside the grid.
func (g *Grid) SquareExists(row, col int) bool {
	return 0 <= row && row < g.height && 0 <= col && col < g.width
}

// SquareAt returns the square at (row, col), or ErrOutOfBounds.
func (g *Grid) SquareAt(row, col int) (*Square, error) {
	if !g.SquareExists(row, col) {
		return nil, fmt.Errorf("%w: (%d, %d) outside %dx%d grid",
			ErrOutOfBounds, row, col, g.height, g.width)
	}
	return &g.squares[row*g.width+col], nil
}

// ForEachSquare calls fn for every square in row-major order.
func (g *Grid) ForEachSquare(fn func(row, col int, sq *Square)) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			fn(r, c, &g.squares[r*g.width+c])
		}
	}
}

// isOpen reports whether (row, col) is inside the grid and not a block.
func (g *Grid) isOpen(row, col int) bool {
	return g.SquareExists(row, col) && !g.squares[row*g.width+col].IsBlock()
}

// startsAcross reports whether an across word begins at (row, col).
func (g *Grid) startsAcross(row, col int) bool {
	return g.isOpen(row, col) && !g.isOpen(row, col-1) && g.isOpen(row, col+1)
}

// startsDown reports whether a down word begins at (row, col).
func (g *Grid) startsDown(row, col int) bool {
	return g.isOpen(row, col) && !g.isOpen(row-1, col) && g.isOpen(row+1, col)
}

// renumber assigns clue numbers from scratch.
func (g *Grid) renumber() {
	next := 1
	g.ForEachSquare(func(row, col int, sq *Square) {
		if g.startsAcross(row, col) || g.startsDown(row, col) {
			sq.setNumber(next)
			next++
			return
		}
		sq.clearNumber()
	})
}

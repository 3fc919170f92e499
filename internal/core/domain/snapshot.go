package domain

// SquareView is a read-only copy of one square.
type SquareView struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Type   SquareType `json:"-"`
	Kind   string     `json:"type"`
	Letter string     `json:"letter,omitempty"`
	// Number is nil when the square carries no clue number.
	Number *int `json:"number,omitempty"`
}

// GridSnapshot is an immutable copy of a grid. Presentation layers render
// from snapshots so they never hold pointers into a live grid.
type GridSnapshot struct {
	ID      string         `json:"id"`
	Height  int            `json:"height"`
	Width   int            `json:"width"`
	Squares [][]SquareView `json:"squares"`
}

// At returns the square view at (row, col) and whether it exists.
func (s *GridSnapshot) At(row, col int) (SquareView, bool) {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return SquareView{}, false
	}
	return s.Squares[row][col], true
}

// Snapshot copies the grid's current state.
func (g *Grid) Snapshot() GridSnapshot {
	snap := GridSnapshot{
		Height:  g.height,
		Width:   g.width,
		Squares: make([][]SquareView, g.height),
	}
	for r := range snap.Squares {
		snap.Squares[r] = make([]SquareView, g.width)
	}
	g.ForEachSquare(func(row, col int, sq *Square) {
		snap.Squares[row][col] = sq.view(row, col)
	})
	return snap
}

func (s *Square) view(row, col int) SquareView {
	v := SquareView{Row: row, Col: col, Type: s.kind, Kind: s.kind.String()}
	if s.kind == SquareLetter {
		v.Letter = string(s.letter)
	}
	if n, ok := s.Number(); ok {
		v.Number = &n
	}
	return v
}

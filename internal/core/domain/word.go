package domain

import "strings"

// Direction is the orientation of a word.
type Direction string

const (
	// Across runs left to right.
	Across Direction = "across"
	// Down runs top to bottom.
	Down Direction = "down"
)

// String returns the string representation.
func (d Direction) String() string {
	return string(d)
}

// PatternBlank marks an empty square inside a word pattern.
const PatternBlank = '_'

// Word is an entry in the grid, derived from the current block layout.
type Word struct {
	Number    int       `json:"number"`
	Direction Direction `json:"direction"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Length    int       `json:"length"`
	// Pattern holds the letters of the word with PatternBlank for
	// empty squares, e.g. "C_T".
	Pattern string `json:"pattern"`
}

// IsComplete reports whether every square of the word holds a letter.
func (w Word) IsComplete() bool {
	return !strings.ContainsRune(w.Pattern, PatternBlank)
}

// Words lists every word in the grid ordered by number, with the across
// word before the down word when both share a number.
func (g *Grid) Words() []Word {
	var words []Word
	g.ForEachSquare(func(row, col int, sq *Square) {
		n, ok := sq.Number()
		if !ok {
			return
		}
		if g.startsAcross(row, col) {
			words = append(words, g.word(n, Across, row, col))
		}
		if g.startsDown(row, col) {
			words = append(words, g.word(n, Down, row, col))
		}
	})
	return words
}

func (g *Grid) word(number int, dir Direction, row, col int) Word {
	dr, dc := 0, 1
	if dir == Down {
		dr, dc = 1, 0
	}

	w := Word{Number: number, Direction: dir, Row: row, Col: col}
	var b strings.Builder
	for r, c := row, col; g.isOpen(r, c); r, c = r+dr, c+dc {
		sq := &g.squares[r*g.width+c]
		if letter, err := sq.Letter(); err == nil {
			b.WriteRune(letter)
		} else {
			b.WriteRune(PatternBlank)
		}
		w.Length++
	}
	w.Pattern = b.String()
	return w
}

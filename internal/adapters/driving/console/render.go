package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

// cellWidth is the number of characters inside each cell.
const cellWidth = 3

// RenderBoard writes snap as a boxed grid. Each row takes two lines: the
// clue number in the top-left corner, then the square's glyph.
func RenderBoard(w io.Writer, snap *domain.GridSnapshot, blockGlyph string) error {
	var b strings.Builder
	boundary := strings.Repeat("+"+strings.Repeat("-", cellWidth), snap.Width) + "+\n"

	for r := 0; r < snap.Height; r++ {
		b.WriteString(boundary)
		for c := 0; c < snap.Width; c++ {
			b.WriteString("|" + numberCell(snap.Squares[r][c], blockGlyph))
		}
		b.WriteString("|\n")
		for c := 0; c < snap.Width; c++ {
			b.WriteString("|" + glyphCell(snap.Squares[r][c], blockGlyph))
		}
		b.WriteString("|\n")
	}
	b.WriteString(boundary)

	_, err := io.WriteString(w, b.String())
	return err
}

func numberCell(sq domain.SquareView, blockGlyph string) string {
	if sq.Type == domain.SquareBlock {
		return strings.Repeat(blockGlyph, cellWidth)
	}
	if sq.Number == nil {
		return strings.Repeat(" ", cellWidth)
	}
	return fmt.Sprintf("%-*s", cellWidth, strconv.Itoa(*sq.Number))
}

func glyphCell(sq domain.SquareView, blockGlyph string) string {
	switch sq.Type {
	case domain.SquareBlock:
		return strings.Repeat(blockGlyph, cellWidth)
	case domain.SquareLetter:
		return " " + sq.Letter + " "
	default:
		return strings.Repeat(" ", cellWidth)
	}
}

// RenderWords writes one line per word, e.g. "1 across (0, 0) ___".
func RenderWords(w io.Writer, words []domain.Word) error {
	if len(words) == 0 {
		_, err := io.WriteString(w, "No words\n")
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintf(w, "%d %s (%d, %d) %s\n",
			word.Number, word.Direction, word.Row, word.Col, word.Pattern); err != nil {
			return err
		}
	}
	return nil
}

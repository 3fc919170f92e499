// Package board provides the grid editing view for the TUI.
package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/crossword-cli/internal/core/domain"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
)

// Cell geometry in terminal columns and lines. The board starts boardTop
// lines below the top of the view.
const (
	cellWidth  = 4
	cellHeight = 2
	boardTop   = 2
)

// View renders the grid and turns keys and clicks into edits.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	editor   driving.EditorService
	snap     *domain.GridSnapshot
	row, col int
	advance  domain.AdvanceDirection
	width    int
	height   int
}

// NewView creates a board view.
func NewView(s *styles.Styles, km *keymap.KeyMap, editor driving.EditorService, advance domain.AdvanceDirection) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	if !advance.IsValid() {
		advance = domain.AdvanceNone
	}

	return &View{
		styles:  s,
		keymap:  km,
		editor:  editor,
		advance: advance,
		width:   80,
		height:  24,
	}
}

// Init initialises the board view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if v.snap == nil {
		return v, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	case tea.MouseMsg:
		v.handleMouse(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		v.move(-1, 0)
	case keymap.Matches(k, v.keymap.Down):
		v.move(1, 0)
	case keymap.Matches(k, v.keymap.Left):
		v.move(0, -1)
	case keymap.Matches(k, v.keymap.Right):
		v.move(0, 1)
	case keymap.Matches(k, v.keymap.CycleAdvance):
		v.advance = v.advance.Next()
		dir := v.advance
		return func() tea.Msg { return messages.AdvanceChanged{Advance: dir} }
	case keymap.Matches(k, v.keymap.Advance):
		v.step(1)
	case keymap.Matches(k, v.keymap.Block):
		return v.edit(v.editor.Block, 1)
	case keymap.Matches(k, v.keymap.Erase):
		return v.edit(v.editor.Clear, -1)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		letter := string(msg.Runes)
		return v.edit(func(row, col int) (*domain.GridSnapshot, error) {
			return v.editor.Write(letter, row, col)
		}, 1)
	}
	return nil
}

// edit applies op to the selected square, then steps by dir along the
// advance direction.
func (v *View) edit(op func(row, col int) (*domain.GridSnapshot, error), dir int) tea.Cmd {
	snap, err := op(v.row, v.col)
	if err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	v.snap = snap
	v.step(dir)
	return func() tea.Msg { return messages.GridChanged{Snapshot: snap} }
}

// move shifts the selection, wrapping at the grid edges.
func (v *View) move(dRow, dCol int) {
	v.row = (v.row + dRow + v.snap.Height) % v.snap.Height
	v.col = (v.col + dCol + v.snap.Width) % v.snap.Width
}

// step moves one square along the advance direction, forward for dir 1 and
// backward for dir -1, unless the target is off the grid or a block.
func (v *View) step(dir int) {
	dRow, dCol := v.advance.Delta()
	row, col := v.row+dir*dRow, v.col+dir*dCol
	sq, ok := v.snap.At(row, col)
	if !ok || sq.Type == domain.SquareBlock {
		return
	}
	v.row, v.col = row, col
}

func (v *View) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.X < 0 || msg.Y < boardTop {
		return
	}
	row, col := (msg.Y-boardTop)/cellHeight, msg.X/cellWidth
	if _, ok := v.snap.At(row, col); ok {
		v.row, v.col = row, col
	}
}

// View renders the board.
func (v *View) View() string {
	if v.snap == nil {
		return v.styles.Muted.Render("No grid")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Crossword %dx%d", v.snap.Height, v.snap.Width)))
	b.WriteString("\n\n")

	rows := make([]string, 0, v.snap.Height)
	for r, line := range v.snap.Squares {
		cells := make([]string, 0, len(line))
		for c, sq := range line {
			cells = append(cells, v.renderCell(sq, r == v.row && c == v.col))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}

func (v *View) renderCell(sq domain.SquareView, selected bool) string {
	var style lipgloss.Style
	switch {
	case sq.Type == domain.SquareBlock && selected:
		style = v.styles.SelectedBlockSquare
	case sq.Type == domain.SquareBlock:
		style = v.styles.BlockSquare
	case selected:
		style = v.styles.SelectedSquare
	default:
		style = v.styles.Square
	}

	number, letter := "", ""
	if sq.Number != nil {
		number = fmt.Sprintf("%d", *sq.Number)
	}
	if sq.Type == domain.SquareLetter {
		letter = " " + sq.Letter
	}
	return style.Render(pad(number) + "\n" + pad(letter))
}

func pad(s string) string {
	if n := utf8.RuneCountInString(s); n < cellWidth {
		return s + strings.Repeat(" ", cellWidth-n)
	}
	return s
}

// SetSnapshot replaces the rendered grid, keeping the selection inside it.
func (v *View) SetSnapshot(snap *domain.GridSnapshot) {
	v.snap = snap
	if snap == nil {
		return
	}
	if v.row >= snap.Height {
		v.row = snap.Height - 1
	}
	if v.col >= snap.Width {
		v.col = snap.Width - 1
	}
}

// Snapshot returns the grid currently shown.
func (v *View) Snapshot() *domain.GridSnapshot {
	return v.snap
}

// Selection returns the selected square.
func (v *View) Selection() (row, col int) {
	return v.row, v.col
}

// SetAdvance sets the auto-advance direction.
func (v *View) SetAdvance(dir domain.AdvanceDirection) {
	if dir.IsValid() {
		v.advance = dir
	}
}

// Advance returns the auto-advance direction.
func (v *View) Advance() domain.AdvanceDirection {
	return v.advance
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Package setup provides the view that asks for new grid dimensions.
package setup

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/crossword-cli/internal/core/domain"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
)

// InvalidSizeMessage is shown when either dimension is not a positive integer.
const InvalidSizeMessage = "Enter an integer greater than 0."

const (
	fieldRows = iota
	fieldCols
)

// View asks for the number of rows and columns and creates the grid.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	editor  driving.EditorService
	fields  [2]*input.NumberInput
	focused int
	err     string
	width   int
	height  int
}

// NewView creates a setup view pre-filled with the default size.
func NewView(s *styles.Styles, km *keymap.KeyMap, editor driving.EditorService, defaults domain.GridSettings) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles: s,
		keymap: km,
		editor: editor,
		fields: [2]*input.NumberInput{
			input.NewNumberInput(s, "Rows"),
			input.NewNumberInput(s, "Columns"),
		},
		width:  80,
		height: 24,
	}
	v.SetDefaults(defaults)
	v.fields[fieldRows].Focus()
	return v
}

// Init initialises the setup view.
func (v *View) Init() tea.Cmd {
	return v.fields[v.focused].Init()
}

// Update handles messages for the setup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keymap.Matches(msg.String(), v.keymap.Submit):
			return v, v.submit()
		case keymap.Matches(msg.String(), v.keymap.NextField):
			return v, v.toggleFocus()
		}
	}

	var cmd tea.Cmd
	v.fields[v.focused], cmd = v.fields[v.focused].Update(msg)
	return v, cmd
}

func (v *View) toggleFocus() tea.Cmd {
	v.fields[v.focused].Blur()
	v.focused = (v.focused + 1) % len(v.fields)
	return v.fields[v.focused].Focus()
}

func (v *View) submit() tea.Cmd {
	rows, rowsErr := v.fields[fieldRows].Int()
	cols, colsErr := v.fields[fieldCols].Int()
	if rowsErr != nil || colsErr != nil {
		v.err = InvalidSizeMessage
		return nil
	}
	if v.editor == nil {
		v.err = "editor service not available"
		return nil
	}

	snap, err := v.editor.NewGrid(rows, cols)
	if err != nil {
		v.err = err.Error()
		return nil
	}
	v.err = ""
	return func() tea.Msg {
		return messages.GridCreated{Snapshot: snap}
	}
}

// View renders the setup form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("New crossword"))
	b.WriteString("\n\n")
	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}
	if v.err != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.err))
		b.WriteString("\n")
	}
	return b.String()
}

// SetDefaults fills the fields with a default size.
func (v *View) SetDefaults(defaults domain.GridSettings) {
	if !defaults.IsValid() {
		defaults = domain.DefaultAppSettings().Grid
	}
	v.fields[fieldRows].SetValue(strconv.Itoa(defaults.Rows))
	v.fields[fieldCols].SetValue(strconv.Itoa(defaults.Cols))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Err returns the current validation message.
func (v *View) Err() string {
	return v.err
}

// Focused returns the index of the focused field (0 rows, 1 columns).
func (v *View) Focused() int {
	return v.focused
}

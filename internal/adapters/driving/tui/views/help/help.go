// Package help provides the keybinding reference view for the TUI.
package help

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/styles"
)

// View lists every board keybinding.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	width  int
	height int
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// Init initialises the help view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update returns to the board on esc or ?.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && keymap.Matches(msg.String(), v.keymap.Back) {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewBoard}
		}
	}
	return v, nil
}

// View renders the keybinding reference.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Keys"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Width(8)
	for _, group := range v.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(h.Key), v.styles.Normal.Render(h.Desc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("Letters are written in uppercase. Auto-advance stops at blocks and edges."))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("[Esc] Back"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

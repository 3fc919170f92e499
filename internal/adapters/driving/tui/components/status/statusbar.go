// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateSetup   State = "setup"
	StateEditing State = "editing"
	StateError   State = "error"
	StateHelp    State = "help"
)

// Bar displays the selection, advance direction and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	row, col int
	advance  domain.AdvanceDirection
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:  s,
		keymap:  km,
		state:   StateSetup,
		advance: domain.AdvanceNone,
		width:   80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is mostly passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	// StatusBar has one column of padding on each side.
	padding := s.width - 2 - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateSetup:
		return s.styles.Muted.Render("New grid")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateEditing:
		return s.styles.Normal.Render(fmt.Sprintf("(%d, %d)  advance: %s",
			s.row, s.col, s.advance.Description()))
	}
	return ""
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.state == StateSetup {
		bindings = s.keymap.SetupHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetError switches the bar to the error state with message.
func (s *Bar) SetError(message string) {
	s.state = StateError
	s.message = message
}

// Message returns the current error message.
func (s *Bar) Message() string {
	return s.message
}

// SetSelection records the selected square.
func (s *Bar) SetSelection(row, col int) {
	s.row, s.col = row, col
}

// Selection returns the recorded selected square.
func (s *Bar) Selection() (row, col int) {
	return s.row, s.col
}

// SetAdvance records the advance direction.
func (s *Bar) SetAdvance(dir domain.AdvanceDirection) {
	s.advance = dir
}

// Advance returns the recorded advance direction.
func (s *Bar) Advance() domain.AdvanceDirection {
	return s.advance
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear drops any error and returns to editing.
func (s *Bar) Clear() {
	s.state = StateEditing
	s.message = ""
}

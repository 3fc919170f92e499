// Package input provides text input components for the TUI.
package input

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/styles"
)

// ErrNotPositive is returned by Int when the value is not an integer above zero.
var ErrNotPositive = errors.New("enter an integer greater than 0")

// NumberInput wraps a bubbles textinput for entering a positive integer.
type NumberInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
}

// NewNumberInput creates a labelled number input.
func NewNumberInput(s *styles.Styles, label string) *NumberInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "10"
	ti.CharLimit = 4
	ti.Width = 6
	ti.Validate = func(v string) error {
		if _, err := parsePositive(v); err != nil && v != "" {
			return err
		}
		return nil
	}

	return &NumberInput{
		textinput: ti,
		styles:    s,
		label:     label,
	}
}

// Init initialises the input.
func (n *NumberInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (n *NumberInput) Update(msg tea.Msg) (*NumberInput, tea.Cmd) {
	var cmd tea.Cmd
	n.textinput, cmd = n.textinput.Update(msg)
	return n, cmd
}

// View renders the label and input box.
func (n *NumberInput) View() string {
	field := n.styles.InputField
	if n.textinput.Focused() {
		field = n.styles.FocusedInputField
	}
	label := n.styles.Title.Render(n.label + ": ")
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field.Render(n.textinput.View()))
}

// Int parses the current value as a positive integer.
func (n *NumberInput) Int() (int, error) {
	return parsePositive(n.textinput.Value())
}

// Value returns the raw input value.
func (n *NumberInput) Value() string {
	return n.textinput.Value()
}

// SetValue sets the input value.
func (n *NumberInput) SetValue(value string) {
	n.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (n *NumberInput) Focus() tea.Cmd {
	return n.textinput.Focus()
}

// Blur removes focus from the input.
func (n *NumberInput) Blur() {
	n.textinput.Blur()
}

// Focused returns whether the input is focused.
func (n *NumberInput) Focused() bool {
	return n.textinput.Focused()
}

// Label returns the input label.
func (n *NumberInput) Label() string {
	return n.label
}

// Reset clears the input.
func (n *NumberInput) Reset() {
	n.textinput.Reset()
}

func parsePositive(v string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || i <= 0 {
		return 0, ErrNotPositive
	}
	return i, nil
}

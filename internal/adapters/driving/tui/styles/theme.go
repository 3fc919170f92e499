// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Paper is the background of open squares.
	Paper lipgloss.Color

	// Ink is the letter colour on open squares.
	Ink lipgloss.Color

	// Block is the fill of block squares.
	Block lipgloss.Color

	// Selection is the background of the selected open square.
	Selection lipgloss.Color

	// SelectedBlock is the fill of the selected block square.
	SelectedBlock lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:       lipgloss.Color("#7C3AED"), // Purple
		Secondary:     lipgloss.Color("#06B6D4"), // Cyan
		Foreground:    lipgloss.Color("#CDD6F4"), // Light gray
		Muted:         lipgloss.Color("#6C7086"), // Medium gray
		Error:         lipgloss.Color("#F38BA8"), // Red
		Paper:         lipgloss.Color("#FFFFFF"),
		Ink:           lipgloss.Color("#000000"),
		Block:         lipgloss.Color("#11111B"),
		Selection:     lipgloss.Color("#B4D5FE"), // Browser text selection blue
		SelectedBlock: lipgloss.Color("#022E64"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for headers.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// FocusedInputField style for the input that has focus.
	FocusedInputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style

	// Square style for open squares.
	Square lipgloss.Style

	// SelectedSquare style for the selected open square.
	SelectedSquare lipgloss.Style

	// BlockSquare style for block squares.
	BlockSquare lipgloss.Style

	// SelectedBlockSquare style for the selected block square.
	SelectedBlockSquare lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	square := lipgloss.NewStyle().
		Foreground(theme.Ink).
		Background(theme.Paper)

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),

		FocusedInputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Square: square,

		SelectedSquare: square.
			Background(theme.Selection),

		BlockSquare: lipgloss.NewStyle().
			Background(theme.Block),

		SelectedBlockSquare: lipgloss.NewStyle().
			Background(theme.SelectedBlock),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

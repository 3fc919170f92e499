// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSetup asks for the grid dimensions.
	ViewSetup ViewType = iota
	// ViewBoard is the grid editor.
	ViewBoard
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSetup:
		return "setup"
	case ViewBoard:
		return "board"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// GridCreated is sent once the setup view has built a new grid.
type GridCreated struct {
	Snapshot *domain.GridSnapshot
}

// GridChanged carries the grid state after an edit.
type GridChanged struct {
	Snapshot *domain.GridSnapshot
}

// AdvanceChanged is sent when the cursor advance direction changes.
type AdvanceChanged struct {
	Advance domain.AdvanceDirection
}

// SettingsChanged is sent when the settings on disk have been reloaded.
type SettingsChanged struct {
	Settings *domain.AppSettings
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// Package tui provides an interactive terminal user interface for editing
// crossword grids. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Editor manages the grid being edited.
	Editor driving.EditorService

	// Settings supplies the default size and advance direction. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(editor driving.EditorService, settings driving.SettingsService) *Ports {
	return &Ports{
		Editor:   editor,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Editor == nil {
		return ErrMissingEditorService
	}
	return nil
}

package driving

import "github.com/custodia-labs/crossword-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultSize updates the size offered for new grids.
	SetDefaultSize(rows, cols int) error

	// SetAdvance updates the auto-advance direction.
	SetAdvance(dir domain.AdvanceDirection) error

	// SetBlockGlyph updates the glyph drawn for blocks in the console.
	SetBlockGlyph(glyph string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}

package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driven"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyGridRows     = "grid.rows"
	keyGridCols     = "grid.cols"
	keyAdvance      = "editor.advance"
	keyBlockGlyph   = "display.block_glyph"
	keyMCPRateLimit = "mcp.rate_limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	grid := domain.GridSettings{
		Rows: s.configStore.GetInt(keyGridRows),
		Cols: s.configStore.GetInt(keyGridCols),
	}
	if !grid.IsValid() {
		grid = defaults.Grid
	}

	settings := &domain.AppSettings{
		Grid: grid,
		Editor: domain.EditorSettings{
			Advance: s.getAdvance(defaults.Editor.Advance),
		},
		Display: domain.DisplaySettings{
			BlockGlyph: s.getGlyph(defaults.Display.BlockGlyph),
		},
		MCP: domain.MCPSettings{
			RateLimit: s.getRate(defaults.MCP.RateLimit),
		},
	}
	return settings, nil
}

// Save persists application settings in a single store write.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	err := s.configStore.SetAll(map[string]any{
		keyGridRows:     settings.Grid.Rows,
		keyGridCols:     settings.Grid.Cols,
		keyAdvance:      settings.Editor.Advance.String(),
		keyBlockGlyph:   settings.Display.BlockGlyph,
		keyMCPRateLimit: settings.MCP.RateLimit,
	})
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SetDefaultSize updates the size offered for new grids.
func (s *SettingsService) SetDefaultSize(rows, cols int) error {
	if !(domain.GridSettings{Rows: rows, Cols: cols}).IsValid() {
		return fmt.Errorf("%w: %dx%d", domain.ErrInvalidDimensions, rows, cols)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Grid = domain.GridSettings{Rows: rows, Cols: cols}
	return s.Save(settings)
}

// SetAdvance updates the auto-advance direction.
func (s *SettingsService) SetAdvance(dir domain.AdvanceDirection) error {
	if !dir.IsValid() {
		return fmt.Errorf("%w: unknown advance direction %q", domain.ErrInvalidInput, dir)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Editor.Advance = dir
	return s.Save(settings)
}

// SetBlockGlyph updates the glyph drawn for blocks in the console.
func (s *SettingsService) SetBlockGlyph(glyph string) error {
	if utf8.RuneCountInString(glyph) != 1 {
		return fmt.Errorf("%w: block glyph must be one character", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.BlockGlyph = glyph
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getAdvance(def domain.AdvanceDirection) domain.AdvanceDirection {
	dir := domain.AdvanceDirection(s.configStore.GetString(keyAdvance))
	if !dir.IsValid() {
		return def
	}
	return dir
}

func (s *SettingsService) getGlyph(def string) string {
	glyph := s.configStore.GetString(keyBlockGlyph)
	if utf8.RuneCountInString(glyph) != 1 {
		return def
	}
	return glyph
}

func (s *SettingsService) getRate(def float64) float64 {
	rate := s.configStore.GetFloat(keyMCPRateLimit)
	if rate <= 0 {
		return def
	}
	return rate
}

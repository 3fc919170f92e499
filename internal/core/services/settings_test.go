package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("grid.rows", 15)
	_ = store.Set("grid.cols", int64(21))
	_ = store.Set("editor.advance", "vertical")
	_ = store.Set("display.block_glyph", "#")
	_ = store.Set("mcp.rate_limit", 2.5)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.GridSettings{Rows: 15, Cols: 21}, settings.Grid)
	assert.Equal(t, domain.AdvanceVertical, settings.Editor.Advance)
	assert.Equal(t, "#", settings.Display.BlockGlyph)
	assert.InDelta(t, 2.5, settings.MCP.RateLimit, 0.0001)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("grid.rows", -3)
	_ = store.Set("grid.cols", 8)
	_ = store.Set("editor.advance", "diagonal")
	_ = store.Set("display.block_glyph", "##")
	_ = store.Set("mcp.rate_limit", -1.0)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Grid, settings.Grid, "a partially invalid size falls back as a whole")
	assert.Equal(t, defaults.Editor.Advance, settings.Editor.Advance)
	assert.Equal(t, defaults.Display.BlockGlyph, settings.Display.BlockGlyph)
	assert.InDelta(t, defaults.MCP.RateLimit, settings.MCP.RateLimit, 0.0001)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	want := &domain.AppSettings{
		Grid:    domain.GridSettings{Rows: 4, Cols: 6},
		Editor:  domain.EditorSettings{Advance: domain.AdvanceHorizontal},
		Display: domain.DisplaySettings{BlockGlyph: "X"},
		MCP:     domain.MCPSettings{RateLimit: 1},
	}

	require.NoError(t, service.Save(want))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "horizontal", store.GetString("editor.advance"))
}

// countingStore records writes so tests can see how often the file
// would be rewritten.
type countingStore struct {
	*memory.ConfigStore
	sets    int
	setAlls int
	err     error
}

func (s *countingStore) Set(key string, value any) error {
	s.sets++
	return s.ConfigStore.Set(key, value)
}

func (s *countingStore) SetAll(values map[string]any) error {
	s.setAlls++
	if s.err != nil {
		return s.err
	}
	return s.ConfigStore.SetAll(values)
}

func TestSettingsService_SaveWritesOnce(t *testing.T) {
	store := &countingStore{ConfigStore: memory.NewConfigStore()}
	service := NewSettingsService(store)

	require.NoError(t, service.SetAdvance(domain.AdvanceVertical))

	assert.Equal(t, 1, store.setAlls)
	assert.Zero(t, store.sets)
}

func TestSettingsService_SaveError(t *testing.T) {
	errDisk := errors.New("disk full")
	store := &countingStore{ConfigStore: memory.NewConfigStore(), err: errDisk}
	service := NewSettingsService(store)

	err := service.SetBlockGlyph("#")

	assert.ErrorIs(t, err, errDisk)
	assert.Empty(t, store.GetString("display.block_glyph"))
}

func TestSettingsService_SetDefaultSize(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetDefaultSize(15, 15))
	settings, _ := service.Get()
	assert.Equal(t, domain.GridSettings{Rows: 15, Cols: 15}, settings.Grid)

	err := service.SetDefaultSize(0, 15)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
	settings, _ = service.Get()
	assert.Equal(t, 15, settings.Grid.Rows, "rejected size is not saved")

	err = service.SetDefaultSize(15, domain.MaxDimension+1)
	assert.ErrorIs(t, err, domain.ErrInvalidDimensions)
}

func TestSettingsService_SetAdvance(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetAdvance(domain.AdvanceVertical))
	settings, _ := service.Get()
	assert.Equal(t, domain.AdvanceVertical, settings.Editor.Advance)

	err := service.SetAdvance("sideways")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_SetBlockGlyph(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.SetBlockGlyph("█"))
	settings, _ := service.Get()
	assert.Equal(t, "█", settings.Display.BlockGlyph)

	assert.ErrorIs(t, service.SetBlockGlyph(""), domain.ErrInvalidInput)
	assert.ErrorIs(t, service.SetBlockGlyph("##"), domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

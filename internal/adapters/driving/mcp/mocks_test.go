package mcp

import (
	"errors"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
	"github.com/custodia-labs/crossword-cli/internal/core/services"
)

var errBroken = errors.New("editor broken")

// brokenEditor fails every call with errBroken.
type brokenEditor struct {
	driving.EditorService
}

func (brokenEditor) Snapshot() (*domain.GridSnapshot, error) { return nil, errBroken }
func (brokenEditor) Words() ([]domain.Word, error)           { return nil, errBroken }

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	driving.SettingsService
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

// unlimitedSettings disables throttling so tests can call tools freely.
func unlimitedSettings() *mockSettingsService {
	s := domain.DefaultAppSettings()
	s.MCP.RateLimit = 0
	return &mockSettingsService{settings: s}
}

func newTestServer(editor driving.EditorService) (*Server, error) {
	if editor == nil {
		editor = services.NewEditorService()
	}
	return NewServer(&Ports{Editor: editor, Settings: unlimitedSettings()})
}

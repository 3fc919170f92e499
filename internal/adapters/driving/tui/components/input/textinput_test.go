package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/styles"
)

func TestNewNumberInput(t *testing.T) {
	input := NewNumberInput(styles.DefaultStyles(), "Rows")

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.Equal(t, "Rows", input.Label())
	assert.False(t, input.Focused())
}

func TestNewNumberInput_NilStyles(t *testing.T) {
	input := NewNumberInput(nil, "Rows")

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestNumberInput_Init(t *testing.T) {
	input := NewNumberInput(nil, "Rows")

	assert.NotNil(t, input.Init())
}

func TestNumberInput_TypesWhenFocused(t *testing.T) {
	input := NewNumberInput(nil, "Rows")
	input.Focus()

	input, _ = input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")})

	assert.Equal(t, "12", input.Value())
	n, err := input.Int()
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestNumberInput_IgnoresKeysWhenBlurred(t *testing.T) {
	input := NewNumberInput(nil, "Rows")

	input, _ = input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})

	assert.Equal(t, "", input.Value())
}

func TestNumberInput_Int(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{" 15 ", 15, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			input := NewNumberInput(nil, "Cols")
			input.SetValue(tt.value)

			n, err := input.Int()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotPositive)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestNumberInput_FocusBlur(t *testing.T) {
	input := NewNumberInput(nil, "Rows")

	input.Focus()
	assert.True(t, input.Focused())

	input.Blur()
	assert.False(t, input.Focused())
}

func TestNumberInput_ViewContainsLabel(t *testing.T) {
	input := NewNumberInput(nil, "Columns")

	assert.Contains(t, input.View(), "Columns:")
}

func TestNumberInput_Reset(t *testing.T) {
	input := NewNumberInput(nil, "Rows")
	input.SetValue("9")

	input.Reset()

	assert.Equal(t, "", input.Value())
}

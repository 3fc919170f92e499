package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/crossword-cli/internal/core/services"
)

// withServices injects fresh in-memory services for one test.
func withServices(t *testing.T) (*services.EditorService, *services.SettingsService) {
	t.Helper()
	editor := services.NewEditorService()
	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(&Services{Editor: editor, Settings: settings})
	t.Cleanup(func() { SetServices(nil) })
	return editor, settings
}

// runCLI executes the root command with args and stdin, returning
// everything written to stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func requireSquareLetter(t *testing.T, editor *services.EditorService, row, col int, letter string) {
	t.Helper()
	sq, err := editor.Square(row, col)
	require.NoError(t, err)
	require.Equal(t, letter, sq.Letter)
}

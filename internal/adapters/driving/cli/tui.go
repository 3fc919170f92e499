package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/crossword-cli/internal/logger"
)

// tuiLogFile receives debug logs while the TUI owns the terminal.
var tuiLogFile = filepath.Join(os.TempDir(), "crossword-tui.log")

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the full-screen grid editor.

Controls:
  ←/→/↑/↓    Move the selection (wraps at the edges)
  letters    Write the letter and advance
  space      Block the square and advance
  backspace  Clear the square and step back
  enter      Advance without editing
  tab        Cycle advance direction (none, horizontal, vertical)
  click      Select a square
  ctrl+n     Start a new grid
  ?          Toggle help
  esc        Quit

With --verbose, logs are written to ` + "`$TMPDIR/crossword-tui.log`" + `.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(editorService, settingsService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app.WithContext(ctx).WithUpdates(watchSettings(ctx))

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLogs keeps log lines off the alternate screen.
func redirectLogs() (restore func(), err error) {
	if !logger.IsVerbose() {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	f, err := tea.LogToFile(tuiLogFile, "crossword")
	if err != nil {
		return nil, fmt.Errorf("opening TUI log: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// watchSettings forwards reloaded settings to the TUI until ctx ends.
// It returns nil when there is nothing to watch.
func watchSettings(ctx context.Context) <-chan tea.Msg {
	if configWatcher == nil || settingsService == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() {
		defer close(ch)
		err := configWatcher.Watch(ctx, func() {
			settings, err := settingsService.Get()
			if err != nil {
				logger.Warn("reloading settings: %v", err)
				return
			}
			select {
			case ch <- messages.SettingsChanged{Settings: settings}:
			case <-ctx.Done():
			}
		})
		if err != nil {
			logger.Warn("config watcher stopped: %v", err)
		}
	}()
	return ch
}

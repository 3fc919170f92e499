package cli

import (
	"io"
	"os"

	"github.com/muesli/cancelreader"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/console"
	"github.com/custodia-labs/crossword-cli/internal/logger"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Edit a grid from a line console",
	Long: `Start a line-oriented editing session.

You are asked for the number of rows and columns unless --rows and --cols
are given. The board is printed after every change.

Commands:
  clear row col          Empty a square
  block row col          Turn a square into a block
  write letter row col   Write a letter (stored in uppercase)
  print                  Print the board
  words                  List across and down words
  help                   List commands
  exit                   Leave the console

Rows and columns count from 0.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().Int("rows", 0, "number of rows (0 = ask)")
	consoleCmd.Flags().Int("cols", 0, "number of columns (0 = ask)")
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, _ []string) error {
	if editorService == nil {
		return errNotConfigured
	}

	rows, _ := cmd.Flags().GetInt("rows")
	cols, _ := cmd.Flags().GetInt("cols")
	cfg := console.Config{
		Rows:        rows,
		Cols:        cols,
		Interactive: isTerminal(cmd.InOrStdin()),
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			cfg.BlockGlyph = settings.Display.BlockGlyph
		}
	}

	in := newConsoleInput(cmd.InOrStdin())
	defer in.Close()
	session := console.NewSession(editorService, in, cmd.OutOrStdout(), cfg)

	// Reads block, so an interrupt must not wait for the next line.
	ctx := cmd.Context()
	done := make(chan error, 1)
	go func() { done <- session.Run(ctx) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		if in.Cancel() {
			<-done
		} else {
			// The reader is not pollable; the session goroutine exits with
			// the next line or EOF.
			logger.Debug("console input not cancellable, leaving reader")
		}
		return nil
	}
}

// newConsoleInput wraps r so a pending read can be cancelled. Readers
// that cannot be polled (regular files on Linux) are read directly and
// are never cancelled.
func newConsoleInput(r io.Reader) cancelreader.CancelReader {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		logger.Debug("console input: %v", err)
		return uncancellable{r}
	}
	return cr
}

// uncancellable is a CancelReader whose Cancel always fails.
type uncancellable struct {
	io.Reader
}

func (uncancellable) Cancel() bool { return false }
func (uncancellable) Close() error { return nil }

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

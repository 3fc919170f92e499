// Package cli provides the cobra command tree for the crossword binary.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/crossword-cli/internal/core/ports/driven"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
	"github.com/custodia-labs/crossword-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services are the core services the commands drive.
type Services struct {
	Editor   driving.EditorService
	Settings driving.SettingsService

	// Watcher reports config file changes. Optional.
	Watcher driven.ConfigWatcher
}

// Bootstrap builds the services once flags are parsed. configDir is the
// value of --config-dir and may be empty.
type Bootstrap func(configDir string) (*Services, error)

var (
	editorService   driving.EditorService
	settingsService driving.SettingsService
	configWatcher   driven.ConfigWatcher

	bootstrap Bootstrap

	verbose   bool
	configDir string
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "crossword",
	Short: "Build crossword grids from the terminal",
	Long: `crossword edits crossword grids. Squares are empty, blocks or letters,
and clue numbers are recomputed after every edit.

Edit a grid with the line console, the full-screen TUI, or let an AI
assistant drive it through the MCP server.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.crossword)")
}

// setup applies global flags and builds services on first use.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || editorService != nil {
		return nil
	}

	svc, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	SetServices(svc)
	return nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services after flag
// parsing.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects ready-made services.
func SetServices(svc *Services) {
	if svc == nil {
		editorService, settingsService, configWatcher = nil, nil, nil
		return
	}
	editorService = svc.Editor
	settingsService = svc.Settings
	configWatcher = svc.Watcher
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every
// subcommand.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

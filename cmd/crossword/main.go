// Command crossword edits crossword grids from a console, a TUI or an MCP
// client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/crossword-cli/internal/core/services"
	"github.com/custodia-labs/crossword-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(newServices)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newServices wires the core services to the TOML config file.
func newServices(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("config file: %s", store.Path())

	return &cli.Services{
		Editor:   services.NewEditorService(),
		Settings: services.NewSettingsService(store),
		Watcher:  file.NewWatcher(store),
	}, nil
}

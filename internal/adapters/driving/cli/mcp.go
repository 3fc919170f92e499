package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/crossword-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so an AI assistant can build
and fill a grid.

Tools: new_grid, get_grid, clear_square, block_square, write_square,
list_words. Resources: crossword://grid, crossword://words.

Mutating tools are limited to mcp.rate_limit calls per second.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead, or --http to serve on the
first free port from 8080.

Examples:
  # Stdio mode (default)
  crossword mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  crossword mcp serve --port 8080
  crossword mcp serve --http

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "crossword": {
        "command": "/path/to/crossword",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve HTTP on the first free port from 8080")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	useHTTP, _ := cmd.Flags().GetBool("http")
	if useHTTP && port == 0 {
		port, err = mcp.FindAvailablePort(mcp.DefaultPortStart, mcp.DefaultPortEnd)
		if err != nil {
			return err
		}
	}

	ports := &mcp.Ports{
		Editor:   editorService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

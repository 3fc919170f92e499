package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
)

var errNoSettings = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the default grid size, the cursor advance direction,
the block glyph and the MCP rate limit.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSizeCmd = &cobra.Command{
	Use:   "size ROWS COLS",
	Short: "Set the default grid size",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSize,
}

var settingsAdvanceCmd = &cobra.Command{
	Use:   "advance [none|horizontal|vertical]",
	Short: "Set the cursor advance direction",
	Long: `Set where the TUI cursor moves after an edit.

Available directions:
  none        - Stay on the edited square
  horizontal  - Move right along the row
  vertical    - Move down the column

Without an argument you are asked to pick one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsAdvance,
}

var settingsGlyphCmd = &cobra.Command{
	Use:   "glyph GLYPH",
	Short: "Set the character drawn for blocks in the console",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGlyph,
}

var settingsRateCmd = &cobra.Command{
	Use:   "rate PER_SECOND",
	Short: "Set how many MCP edits are allowed per second",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsRate,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSizeCmd)
	settingsCmd.AddCommand(settingsAdvanceCmd)
	settingsCmd.AddCommand(settingsGlyphCmd)
	settingsCmd.AddCommand(settingsRateCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Grid]")
	cmd.Printf("  Default size: %d x %d\n", settings.Grid.Rows, settings.Grid.Cols)
	cmd.Println()

	cmd.Println("[Editor]")
	cmd.Printf("  Advance: %s\n", settings.Editor.Advance.Description())
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Block glyph: %s\n", settings.Display.BlockGlyph)
	cmd.Println()

	cmd.Println("[MCP]")
	cmd.Printf("  Rate limit: %g edits/s\n", settings.MCP.RateLimit)

	return nil
}

func runSettingsSize(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	rows, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: rows must be an integer", domain.ErrInvalidDimensions)
	}
	cols, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: cols must be an integer", domain.ErrInvalidDimensions)
	}

	if err := settingsService.SetDefaultSize(rows, cols); err != nil {
		return fmt.Errorf("failed to set size: %w", err)
	}
	cmd.Printf("Default size set to: %d x %d\n", rows, cols)
	return nil
}

func runSettingsAdvance(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	var dir domain.AdvanceDirection
	if len(args) == 1 {
		dir = domain.AdvanceDirection(strings.ToLower(args[0]))
	} else {
		dirs := domain.AllAdvanceDirections()
		cmd.Println("Select Advance Direction")
		cmd.Println("------------------------")
		for i, d := range dirs {
			cmd.Printf("  %d. %s\n", i+1, d.Description())
		}
		cmd.Print("\nEnter choice: ")
		idx := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(dirs), 0)
		if idx == 0 {
			return errors.New("invalid selection")
		}
		dir = dirs[idx-1]
	}

	if err := settingsService.SetAdvance(dir); err != nil {
		return fmt.Errorf("failed to set advance direction: %w", err)
	}
	cmd.Printf("Advance direction set to: %s\n", dir.Description())
	return nil
}

func runSettingsGlyph(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	if err := settingsService.SetBlockGlyph(args[0]); err != nil {
		return fmt.Errorf("failed to set block glyph: %w", err)
	}
	cmd.Printf("Block glyph set to: %s\n", args[0])
	return nil
}

func runSettingsRate(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettings
	}

	perSecond, err := strconv.ParseFloat(args[0], 64)
	if err != nil || perSecond <= 0 {
		return fmt.Errorf("%w: rate must be a number greater than 0", domain.ErrInvalidInput)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.MCP.RateLimit = perSecond
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Printf("MCP rate limit set to: %g edits/s\n", perSecond)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

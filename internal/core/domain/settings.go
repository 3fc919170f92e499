package domain

const unknownDescription = "Unknown"

// AdvanceDirection controls where the cursor moves after an edit.
type AdvanceDirection string

// Available advance directions.
const (
	// AdvanceNone keeps the cursor on the edited square.
	AdvanceNone AdvanceDirection = "none"

	// AdvanceHorizontal moves the cursor along the row.
	AdvanceHorizontal AdvanceDirection = "horizontal"

	// AdvanceVertical moves the cursor down the column.
	AdvanceVertical AdvanceDirection = "vertical"
)

// IsValid returns true if the direction is recognised.
func (d AdvanceDirection) IsValid() bool {
	switch d {
	case AdvanceNone, AdvanceHorizontal, AdvanceVertical:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d AdvanceDirection) String() string {
	return string(d)
}

// Description returns a human-readable description of the direction.
func (d AdvanceDirection) Description() string {
	switch d {
	case AdvanceNone:
		return "None"
	case AdvanceHorizontal:
		return "Horizontal"
	case AdvanceVertical:
		return "Vertical"
	default:
		return unknownDescription
	}
}

// Next returns the direction that follows d when cycling.
func (d AdvanceDirection) Next() AdvanceDirection {
	switch d {
	case AdvanceNone:
		return AdvanceHorizontal
	case AdvanceHorizontal:
		return AdvanceVertical
	default:
		return AdvanceNone
	}
}

// Delta returns the row and column step for one forward move.
func (d AdvanceDirection) Delta() (dRow, dCol int) {
	switch d {
	case AdvanceHorizontal:
		return 0, 1
	case AdvanceVertical:
		return 1, 0
	default:
		return 0, 0
	}
}

// AllAdvanceDirections returns every advance direction in cycle order.
func AllAdvanceDirections() []AdvanceDirection {
	return []AdvanceDirection{AdvanceNone, AdvanceHorizontal, AdvanceVertical}
}

// GridSettings holds the default size for new grids.
type GridSettings struct {
	Rows int
	Cols int
}

// IsValid returns true if NewGrid would accept the dimensions.
func (g GridSettings) IsValid() bool {
	return ValidDimensions(g.Rows, g.Cols)
}

// EditorSettings holds interactive editing preferences.
type EditorSettings struct {
	Advance AdvanceDirection
}

// DisplaySettings controls console rendering.
type DisplaySettings struct {
	// BlockGlyph is drawn for block squares.
	BlockGlyph string
}

// MCPSettings controls the MCP server.
type MCPSettings struct {
	// RateLimit is the number of mutating tool calls allowed per second.
	RateLimit float64
}

// AppSettings is the complete user configuration.
type AppSettings struct {
	Grid    GridSettings
	Editor  EditorSettings
	Display DisplaySettings
	MCP     MCPSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Grid: GridSettings{
			Rows: 10,
			Cols: 10,
		},
		Editor: EditorSettings{
			Advance: AdvanceNone,
		},
		Display: DisplaySettings{
			BlockGlyph: "▉",
		},
		MCP: MCPSettings{
			RateLimit: 5,
		},
	}
}

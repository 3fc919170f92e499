// Package domain defines the core crossword model for the editor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Square: a single cell, either empty, blocked, or holding a letter
//   - Grid: a fixed-size rectangle of squares with clue numbering
//   - Word: an across or down entry derived from the block layout
//   - GridSnapshot: an immutable copy of a grid for presentation layers
//   - EditorSettings: user preferences for new grids and editing
//
// # Numbering
//
// Every mutation that turns a square into a block, or a block back into
// a non-block square, renumbers the whole grid before returning. A square
// carries a number when it is not a block and starts an across or a down
// word. The grid edge counts as a block.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

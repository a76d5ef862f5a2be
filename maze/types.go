package maze

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidDimensions indicates a non-positive height or width.
	ErrInvalidDimensions = errors.New("maze: invalid dimensions: non (positive) integer values")

	// ErrNotGenerated indicates Solve or LongestPath was called before Generate.
	ErrNotGenerated = errors.New("maze: maze has not been generated")

	// ErrDisconnectedTree indicates the stored spanning tree does not reach
	// every cell. The construction makes this impossible, so seeing it means
	// internal state is corrupt.
	ErrDisconnectedTree = errors.New("maze: spanning tree is disconnected")
)

// Screen geometry of a cell sprite. A cell is drawn as
//
//	+---+
//	|   |
//	+---+
//
// and neighbors share their common wall, so cells advance by two lines and
// four columns.
const (
	lineInit   = 2 // first line of the top row
	lineOffset = 1 // extra lines between rows
	colInit    = 3 // first column of the left-most cell
	colOffset  = 3 // extra columns between cells
)

// Direction is the side of a cell facing one of its grid neighbors.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Arrow returns the path marker pointing in d.
func (d Direction) Arrow() Symbol {
	switch d {
	case North:
		return '^'
	case South:
		return 'v'
	case East:
		return '>'
	default:
		return '<'
	}
}

// Symbol is a single-character path marker drawn inside a cell.
type Symbol rune

const (
	// SymbolSource marks the first cell of a shown path.
	SymbolSource Symbol = 's'
	// SymbolTarget marks the last cell of a shown path.
	SymbolTarget Symbol = 't'
)

// Point is a screen position: Line counts rows of the terminal, Column
// counts characters.
type Point struct {
	Line   int
	Column int
}

// Cell is one grid position. ID is the vertex id (Row*width + Col) used by
// every graph operation; Location is only for rendering.
type Cell struct {
	ID       int
	Row      int
	Col      int
	Location Point
}

// newCell places the cell at (row, col) of a grid that is width cells wide.
func newCell(row, col, width int) Cell {
	return Cell{
		ID:  row*width + col,
		Row: row,
		Col: col,
		Location: Point{
			Line:   lineInit + row + row*lineOffset,
			Column: colInit + col + col*colOffset,
		},
	}
}

// DirectionBetween returns the side of from that faces to. The two cells are
// expected to be grid neighbors; rows are compared before columns.
func DirectionBetween(from, to Cell) Direction {
	switch {
	case from.Row < to.Row:
		return South
	case from.Row > to.Row:
		return North
	case from.Col < to.Col:
		return East
	default:
		return West
	}
}

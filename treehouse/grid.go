// Package treehouse surveys a grid of tree heights, counting trees visible
// from outside the grid and scoring the view from each tree.
package treehouse

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrParse is returned for an empty, ragged, or non-digit grid.
var ErrParse = errors.New("malformed height grid")

// Coordinate of a Grid cell.
type Coordinate struct {
	Row, Column int
}

func (c Coordinate) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Column) }

// Grid is a row-major grid of heights in [0, 9].
type Grid struct {
	rows, columns int
	heights       []uint8
}

// newGrid returns a Grid of zero heights.
func newGrid(rows, columns int) *Grid {
	return &Grid{rows: rows, columns: columns, heights: make([]uint8, rows*columns)}
}

// ParseGrid parses one row per line, one digit per column.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, errors.WithMessage(ErrParse, "empty grid")
	}
	var g = newGrid(len(lines), len(lines[0]))

	for r, line := range lines {
		if len(line) != g.columns {
			return nil, errors.WithMessagef(ErrParse, "line %d: %d columns, expected %d", r+1, len(line), g.columns)
		}
		for c := 0; c != len(line); c++ {
			if line[c] < '0' || line[c] > '9' {
				return nil, errors.WithMessagef(ErrParse, "line %d: invalid height %q at column %d", r+1, line[c], c+1)
			}
			g.set(Coordinate{r, c}, line[c]-'0')
		}
	}
	return g, nil
}

// Rows of the Grid.
func (g *Grid) Rows() int { return g.rows }

// Columns of the Grid.
func (g *Grid) Columns() int { return g.columns }

// InBounds returns whether |c| lies within the Grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Column >= 0 && c.Column < g.columns
}

// Height returns the height at |c|, which must be InBounds.
func (g *Grid) Height(c Coordinate) uint8 { return g.heights[c.Row*g.columns+c.Column] }

// set the height at |c|, which must be InBounds.
func (g *Grid) set(c Coordinate, h uint8) { g.heights[c.Row*g.columns+c.Column] = h }

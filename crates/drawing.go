package crates

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrGridParse is returned for a drawing row with malformed cells.
	ErrGridParse = errors.New("malformed drawing row")
	// ErrMalformedInput is returned when the drawing isn't followed by an
	// optional label row and then a blank line.
	ErrMalformedInput = errors.New("drawing is not followed by a blank line")
)

// Crate is the single-letter label of a crate. The zero Crate is Hole.
type Crate byte

// Hole marks a position of the drawing which has no crate.
const Hole Crate = 0

func (c Crate) String() string {
	if c == Hole {
		return "   "
	}
	return "[" + string(c) + "]"
}

// Row is one line of the drawing, indexed by stack.
type Row []Crate

// ParseRow parses a drawing row: cells of exactly "[X]" (X in A-Z) or three
// spaces, separated by single spaces, consuming the whole line.
func ParseRow(line string) (Row, error) {
	var row Row

	for i := 0; ; i += 4 {
		if len(line)-i < 3 {
			return nil, errors.WithMessagef(ErrGridParse, "%q: truncated cell at column %d", line, i+1)
		}
		var cell = line[i : i+3]

		if cell == "   " {
			row = append(row, Hole)
		} else if cell[0] == '[' && cell[2] == ']' && cell[1] >= 'A' && cell[1] <= 'Z' {
			row = append(row, Crate(cell[1]))
		} else {
			return nil, errors.WithMessagef(ErrGridParse, "%q: invalid cell %q at column %d", line, cell, i+1)
		}

		if i+3 == len(line) {
			return row, nil
		} else if line[i+3] != ' ' {
			return nil, errors.WithMessagef(ErrGridParse, "%q: expected separator at column %d", line, i+4)
		}
	}
}

// Drawing is a parsed drawing: its rows from top to bottom, and the number
// of stacks it describes.
type Drawing struct {
	Rows   []Row
	Stacks int
}

// String renders the Drawing as rows of cells, without the label row.
func (d Drawing) String() string {
	var b strings.Builder
	for r, row := range d.Rows {
		if r != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col != d.Stacks; col++ {
			if col != 0 {
				b.WriteByte(' ')
			}
			var c = Hole
			if col < len(row) {
				c = row[col]
			}
			b.WriteString(c.String())
		}
	}
	return b.String()
}

// ParseDrawing parses the drawing which begins |lines|, and returns it with
// the number of lines consumed (including the terminating blank line).
//
// Rows continue while lines parse as rows, including rows which are
// entirely Holes. A non-row line which contains a '[' is a malformed row.
// Otherwise it may be the row of stack labels, in which case it fixes the
// number of stacks and must itself be followed by a blank line, or it must
// be blank.
func ParseDrawing(lines []string) (Drawing, int, error) {
	var out Drawing
	var i int

	for ; i != len(lines); i++ {
		var row, err = ParseRow(lines[i])
		if err != nil && strings.ContainsRune(lines[i], '[') {
			return Drawing{}, 0, errors.WithMessagef(err, "line %d", i+1)
		} else if err != nil {
			break
		}
		if len(row) > out.Stacks {
			out.Stacks = len(row)
		}
		out.Rows = append(out.Rows, row)
	}

	if i != len(lines) && reLabels.MatchString(lines[i]) {
		var n = len(strings.Fields(lines[i]))
		if n < out.Stacks {
			return Drawing{}, 0, errors.WithMessagef(ErrMalformedInput,
				"line %d: %d stack labels for %d columns", i+1, n, out.Stacks)
		}
		out.Stacks = n
		i++
	}

	if i == len(lines) {
		return Drawing{}, 0, errors.WithMessage(ErrMalformedInput, "unexpected end of input")
	} else if lines[i] != "" {
		return Drawing{}, 0, errors.WithMessagef(ErrMalformedInput, "line %d: %q", i+1, lines[i])
	}
	return out, i + 1, nil
}

var reLabels = regexp.MustCompile(`^ *[0-9]+( +[0-9]+)* *$`)

package crates

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyStack is returned when reading the top of an empty Stack.
var ErrEmptyStack = errors.New("stack is empty")

// Stack is a sequence of crates from bottom to top.
type Stack []Crate

// Top returns the top Crate of the Stack.
func (s Stack) Top() (Crate, error) {
	if len(s) == 0 {
		return Hole, ErrEmptyStack
	}
	return s[len(s)-1], nil
}

// Stacks are indexed from zero.
type Stacks []Stack

// BuildStacks transposes the top-to-bottom rows of |d| into one Stack per
// column, ordered bottom to top. Holes are skipped, and rows shorter than
// d.Stacks are treated as padded with Holes.
func BuildStacks(d Drawing) Stacks {
	var out = make(Stacks, d.Stacks)

	for r := len(d.Rows) - 1; r >= 0; r-- {
		for col, c := range d.Rows[r] {
			if c != Hole {
				out[col] = append(out[col], c)
			}
		}
	}
	return out
}

// Clone returns a deep copy of the Stacks, sharing no backing storage.
func (s Stacks) Clone() Stacks {
	var out = make(Stacks, len(s))
	for i := range s {
		out[i] = append(Stack(nil), s[i]...)
	}
	return out
}

// Tops concatenates the top Crate label of each Stack, in index order.
func (s Stacks) Tops() (string, error) {
	var b strings.Builder

	for i := range s {
		var c, err = s[i].Top()
		if err != nil {
			return "", errors.WithMessagef(err, "stack %d", i+1)
		}
		b.WriteByte(byte(c))
	}
	return b.String(), nil
}

// Drawing renders the Stacks back into the rows of a drawing, top row first.
func (s Stacks) Drawing() Drawing {
	var height int
	for i := range s {
		if len(s[i]) > height {
			height = len(s[i])
		}
	}

	var out = Drawing{Rows: make([]Row, height), Stacks: len(s)}
	for r := range out.Rows {
		out.Rows[r] = make(Row, len(s))
		for col := range s {
			if level := height - 1 - r; level < len(s[col]) {
				out.Rows[r][col] = s[col][level]
			}
		}
	}
	return out
}

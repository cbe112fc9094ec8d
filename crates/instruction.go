package crates

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// ErrParse is returned for a malformed move instruction.
var ErrParse = errors.New("malformed move instruction")

// Instruction moves Quantity crates from stack Source to Destination.
// Stack indices are zero-based.
type Instruction struct {
	Quantity    int
	Source      int
	Destination int
}

// ParseInstruction parses "move N from A to B", where A and B are the
// one-based stack labels of the drawing.
func ParseInstruction(line string) (Instruction, error) {
	var m = reInstruction.FindStringSubmatch(line)
	if m == nil {
		return Instruction{}, errors.WithMessagef(ErrParse, "%q", line)
	}

	var n [3]int
	for i := range n {
		var v, err = strconv.Atoi(m[i+1])
		if err != nil {
			return Instruction{}, errors.WithMessagef(ErrParse, "%q: %s", line, err)
		}
		n[i] = v
	}
	if n[1] == 0 || n[2] == 0 {
		return Instruction{}, errors.WithMessagef(ErrParse, "%q: stack labels begin at 1", line)
	}
	return Instruction{Quantity: n[0], Source: n[1] - 1, Destination: n[2] - 1}, nil
}

// ParseInstructions parses instruction |lines|, skipping trailing blank
// lines. |offset| is added to reported line numbers.
func ParseInstructions(lines []string, offset int) ([]Instruction, error) {
	for len(lines) != 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var out = make([]Instruction, 0, len(lines))
	for i, line := range lines {
		var inst, err = ParseInstruction(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", offset+i+1)
		}
		out = append(out, inst)
	}
	return out, nil
}

var reInstruction = regexp.MustCompile(`^move ([0-9]+) from ([0-9]+) to ([0-9]+)$`)

// Package puzzle holds the pieces shared by every daily solver: loading of
// puzzle input, the two-part Answer, and its encodings.
package puzzle

import (
	"fmt"
	"strconv"
)

// Answer is the pair of results produced by a solver.
type Answer struct {
	Part1 string `yaml:"part1" json:"part1"`
	Part2 string `yaml:"part2" json:"part2"`
}

// NewAnswer renders |part1| and |part2| with their default formats.
func NewAnswer(part1, part2 interface{}) Answer {
	return Answer{Part1: render(part1), Part2: render(part2)}
}

func render(v interface{}) string {
	switch vv := v.(type) {
	case string:
		return vv
	case int:
		return strconv.Itoa(vv)
	case uint64:
		return strconv.FormatUint(vv, 10)
	default:
		return fmt.Sprint(v)
	}
}

// Solver computes an Answer from the lines of a puzzle input.
type Solver func(lines []string) (Answer, error)

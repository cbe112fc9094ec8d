package dirtree

import (
	"github.com/pkg/errors"

	"go.advent.dev/aoc2022/puzzle"
)

// Solve parses the transcript |lines|, builds its Tree, and answers both
// size queries under DefaultLimits.
func Solve(lines []string) (puzzle.Answer, error) {
	var tree, err = Load(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}

	var part1 = SumSmall(tree, DefaultLimits)
	part2, err := SmallestToFree(tree, DefaultLimits)
	if err != nil {
		return puzzle.Answer{}, errors.WithMessage(err, "part 2")
	}
	return puzzle.NewAnswer(part1, part2), nil
}

// Load parses and builds the Tree of transcript |lines|.
func Load(lines []string) (*Tree, error) {
	var records, err = ParseTranscript(lines)
	if err != nil {
		return nil, err
	}
	return Build(records)
}

package crates

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"go.advent.dev/aoc2022/puzzle"
)

// Manifest is a parsed puzzle input: starting Stacks and the Instructions
// to replay against them.
type Manifest struct {
	Stacks       Stacks
	Instructions []Instruction
}

// ParseManifest parses the drawing, blank line, and instructions of |lines|.
func ParseManifest(lines []string) (Manifest, error) {
	var drawing, n, err = ParseDrawing(lines)
	if err != nil {
		return Manifest{}, err
	}
	instructions, err := ParseInstructions(lines[n:], n)
	if err != nil {
		return Manifest{}, err
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		log.WithFields(log.Fields{
			"stacks":       drawing.Stacks,
			"instructions": len(instructions),
		}).Debug("parsed drawing:\n" + drawing.String())
	}
	return Manifest{Stacks: BuildStacks(drawing), Instructions: instructions}, nil
}

// Run replays the Manifest's instructions with |m| over a copy of its
// Stacks, and returns the resulting top crates. The Manifest is unchanged.
func (mf Manifest) Run(m Mover) (string, error) {
	var stacks = mf.Stacks.Clone()

	if err := Replay(m, stacks, mf.Instructions); err != nil {
		return "", err
	}
	return stacks.Tops()
}

// Solve answers with the top crates after replay by a SingleMover (part 1)
// and a BulkMover (part 2).
func Solve(lines []string) (puzzle.Answer, error) {
	var mf, err = ParseManifest(lines)
	if err != nil {
		return puzzle.Answer{}, err
	}

	part1, err := mf.Run(SingleMover{})
	if err != nil {
		return puzzle.Answer{}, errors.WithMessage(err, "part 1")
	}
	part2, err := mf.Run(BulkMover{})
	if err != nil {
		return puzzle.Answer{}, errors.WithMessage(err, "part 2")
	}
	return puzzle.NewAnswer(part1, part2), nil
}

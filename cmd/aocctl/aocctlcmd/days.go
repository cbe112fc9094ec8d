package aocctlcmd

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"go.advent.dev/aoc2022/assignments"
	"go.advent.dev/aoc2022/crates"
	"go.advent.dev/aoc2022/dirtree"
	mbp "go.advent.dev/aoc2022/mainboilerplate"
	"go.advent.dev/aoc2022/puzzle"
	"go.advent.dev/aoc2022/signal"
	"go.advent.dev/aoc2022/treehouse"
)

// day describes a puzzle and its Solver.
type day struct {
	number int
	title  string
	solve  puzzle.Solver
}

func (d day) command() string { return fmt.Sprintf("day%d", d.number) }

var days = []day{
	{4, "Camp Cleanup", assignments.Solve},
	{5, "Supply Stacks", crates.Solve},
	{6, "Tuning Trouble", signal.Solve},
	{7, "No Space Left On Device", dirtree.Solve},
	{8, "Treetop Tree House", treehouse.Solve},
}

// cmdDay solves the input of a single day.
type cmdDay struct {
	InputConfig
	day day
}

func init() {
	for _, d := range days {
		if d.number == 7 {
			continue // Registered by cmdDay7, which adds a directory listing.
		}
		CommandRegistry.AddCommand("", d.command(), fmt.Sprintf("Solve day %d: %s", d.number, d.title), fmt.Sprintf(`
Solve both parts of day %d, %q, from the puzzle input.

The input is read from --input, or from stdin if --input is '-'. Answers are
written to stdout as
>    Part 1 result: <value>
>    Part 2 result: <value>
or as a YAML or JSON document with --format.
`, d.number, d.title), &cmdDay{day: d})
	}
}

func (cmd *cmdDay) Execute([]string) error {
	startup()

	var answer, err = solveInput(cmd.day, cmd.InputConfig)
	mbp.Must(err, "failed to solve puzzle", "day", cmd.day.number, "input", cmd.Path)
	mbp.Must(puzzle.Write(stdout, answer, cmd.Format), "failed to write answer")
	return nil
}

// lookupDay returns the day having |number|, which must be in the days table.
func lookupDay(number int) day {
	for _, d := range days {
		if d.number == number {
			return d
		}
	}
	panic(fmt.Sprintf("day %d is not in the days table", number))
}

func solveInput(d day, cfg InputConfig) (puzzle.Answer, error) {
	var lines, err = cfg.readLines()
	if err != nil {
		return puzzle.Answer{}, err
	}
	return solveLines(d, lines)
}

func solveLines(d day, lines []string) (puzzle.Answer, error) {
	var answer, err = d.solve(lines)
	if err != nil {
		return puzzle.Answer{}, errors.WithMessagef(err, "day %d", d.number)
	}
	log.WithFields(log.Fields{
		"day":   d.number,
		"part1": answer.Part1,
		"part2": answer.Part2,
	}).Info("solved puzzle")
	return answer, nil
}

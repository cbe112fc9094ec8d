package aocctlcmd

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"go.advent.dev/aoc2022/dirtree"
	mbp "go.advent.dev/aoc2022/mainboilerplate"
	"go.advent.dev/aoc2022/puzzle"
)

type cmdDay7 struct {
	InputConfig
	Dirs bool `long:"dirs" description:"Also print a table of every directory and its total size"`
}

func init() {
	CommandRegistry.AddCommand("", "day7", "Solve day 7: No Space Left On Device", `
Solve both parts of day 7, "No Space Left On Device", from a terminal
transcript of cd and ls commands.

Part 1 sums the total sizes of directories of at most 100000 bytes. Part 2
finds the smallest directory which, when deleted, leaves 30000000 bytes free
on a 70000000 byte disk.

With --dirs, a table of every directory of the reconstructed tree and its
total size is printed after the answers:
>    aocctl day7 --input transcript.txt --dirs
`, &cmdDay7{})
}

func (cmd *cmdDay7) Execute([]string) error {
	startup()

	// Lines are read once, as --input may be stdin.
	var lines, err = cmd.readLines()
	mbp.Must(err, "failed to read puzzle input", "input", cmd.Path)

	answer, err := solveLines(lookupDay(7), lines)
	mbp.Must(err, "failed to solve puzzle", "day", 7, "input", cmd.Path)

	var listing []dirtree.DirectorySize
	if cmd.Dirs {
		tree, err := dirtree.Load(lines)
		mbp.Must(err, "failed to build directory tree", "input", cmd.Path)
		listing = dirtree.Listing(tree)
	}

	mbp.Must(puzzle.Write(stdout, answer, cmd.Format), "failed to write answer")
	if cmd.Dirs {
		mbp.Must(writeDirectoryTable(stdout, listing), "failed to write directory table")
	}
	return nil
}

func writeDirectoryTable(w io.Writer, listing []dirtree.DirectorySize) error {
	var table = tablewriter.NewWriter(w)
	table.Header("Directory", "Size", "Bytes")

	for _, d := range listing {
		if err := table.Append([]string{d.Path, humanize.IBytes(d.Size), humanize.Comma(int64(d.Size))}); err != nil {
			return err
		}
	}
	return table.Render()
}

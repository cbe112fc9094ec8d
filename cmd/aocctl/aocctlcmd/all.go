package aocctlcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	mbp "go.advent.dev/aoc2022/mainboilerplate"
)

type cmdAll struct {
	Dir         string `long:"dir" short:"d" default:"." description:"Directory holding day<N>.txt puzzle inputs"`
	SkipMissing bool   `long:"skip-missing" description:"Skip days having no input file, rather than failing"`
}

func init() {
	CommandRegistry.AddCommand("", "all", "Solve every day", `
Solve every day from a directory of puzzle inputs, named after their day:
>    inputs/day4.txt
>    inputs/day5.txt
>    ...

and print a table of the answers:
>    aocctl all --dir inputs
`, &cmdAll{})
}

func (cmd *cmdAll) Execute([]string) error {
	startup()

	var rows [][]string
	for _, d := range days {
		var cfg = InputConfig{Path: filepath.Join(cmd.Dir, fmt.Sprintf("day%d.txt", d.number))}

		if _, err := inputFs.Stat(cfg.Path); os.IsNotExist(err) && cmd.SkipMissing {
			log.WithField("input", cfg.Path).Warn("skipping day with no input")
			continue
		}
		var answer, err = solveInput(d, cfg)
		mbp.Must(err, "failed to solve puzzle", "day", d.number, "input", cfg.Path)

		rows = append(rows, []string{fmt.Sprint(d.number), d.title, answer.Part1, answer.Part2})
	}

	// Nothing is printed unless every day was solved.
	var table = tablewriter.NewWriter(stdout)
	table.Header("Day", "Title", "Part 1", "Part 2")

	for _, row := range rows {
		mbp.Must(table.Append(row), "failed to append table row")
	}
	mbp.Must(table.Render(), "failed to render table")
	return nil
}

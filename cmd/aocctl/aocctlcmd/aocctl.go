// Package aocctlcmd implements the sub-commands of aocctl, a tool which
// solves Advent of Code 2022 puzzles from their input files.
package aocctlcmd

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"

	mbp "go.advent.dev/aoc2022/mainboilerplate"
	"go.advent.dev/aoc2022/puzzle"
)

const iniFilename = "aocctl.ini"

var (
	baseCfg = new(struct {
		Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
	})

	// CommandRegistry holds the sub-commands of aocctl, which register
	// themselves from init().
	CommandRegistry = mbp.NewCommandRegistry()

	// inputFs is the filesystem from which puzzle inputs are read.
	inputFs = afero.NewOsFs()
	// stdout receives puzzle answers.
	stdout io.Writer = os.Stdout
)

// InputConfig is common configuration of commands which solve one puzzle input.
type InputConfig struct {
	Path   string `long:"input" short:"i" default:"input.txt" description:"Puzzle input path. Use '-' for stdin"`
	Format string `long:"format" short:"o" choice:"text" choice:"yaml" choice:"json" default:"text" description:"Output format"`
}

func (cfg InputConfig) readLines() ([]string, error) {
	return puzzle.ReadLines(inputFs, cfg.Path)
}

func startup() {
	mbp.InitLog(baseCfg.Log)
}

// Execute builds the aocctl parser, and parses and runs the selected command.
func Execute() {
	var parser = flags.NewParser(baseCfg, flags.Default)

	mbp.AddPrintConfigCmd(parser, iniFilename)
	parser.LongDescription = `aocctl solves Advent of Code 2022 puzzles, days 4 through 8.

	Each dayN sub-command reads a puzzle input (--input, default 'input.txt')
	and prints the answers to both of its parts. The 'all' sub-command solves
	every day from a directory of inputs.

	Optionally configure aocctl with a '` + iniFilename + `' file in the current working directory,
	or with '~/.config/aoc2022/` + iniFilename + `'. Use the 'print-config' sub-command to inspect
	the tool's current configuration.
	`

	mbp.Must(CommandRegistry.AddCommands("", parser.Command, true), "could not add subcommand")
	mbp.MustParseConfig(parser, iniFilename)
}

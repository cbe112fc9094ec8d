package mainboilerplate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// MustParseConfig parses |parser| from an optional INI file named |configName|,
// then from environment bindings and command-line flags, which take
// precedence. The first of these INI files which exists is used:
//   - ./|configName|
//   - $HOME/.config/aoc2022/|configName|
//   - %UserProfile%/.config/aoc2022/|configName|
func MustParseConfig(parser *flags.Parser, configName string) {
	// An INI file may hold options of sub-commands other than the one invoked.
	var origOptions = parser.Options
	parser.Options |= flags.IgnoreUnknown

	var iniParser = flags.NewIniParser(parser)

	for _, prefix := range configPrefixes() {
		var err = iniParser.ParseFile(filepath.Join(prefix, configName))

		if err == nil {
			break
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "invalid %s: %s\n", configName, err)
			os.Exit(1)
		}
	}

	parser.Options = origOptions
	MustParseArgs(parser)
}

func configPrefixes() []string {
	return []string{
		".",
		filepath.Join(os.Getenv("HOME"), ".config", "aoc2022"),
		filepath.Join(os.Getenv("UserProfile"), ".config", "aoc2022"),
	}
}

// MustParseArgs parses os.Args into |parser| and runs the selected command.
// A malformed command-line exits the process with status 1. Errors of the
// flag tags themselves panic, as they're bugs of the binary rather than of
// its invocation.
func MustParseArgs(parser *flags.Parser) {
	var _, err = parser.ParseArgs(os.Args[1:])
	if err == nil {
		return
	}
	var flagErr, ok = err.(*flags.Error)
	if !ok {
		Must(err, "command failed")
	}

	switch flagErr.Type {
	case flags.ErrDuplicatedFlag, flags.ErrTag, flags.ErrInvalidTag, flags.ErrShortNameTooLong, flags.ErrMarshal:
		panic(err)

	case flags.ErrCommandRequired:
		// Follow "Please specify one command of: ..." with the list of days.
		os.Stderr.WriteString("\n")
		writeUsage(parser)
		os.Exit(1)

	case flags.ErrHelp:
		if parser.Options&flags.PrintErrors == 0 {
			writeUsage(parser)
		}
		os.Exit(1)

	default:
		// go-flags has already printed the offending flag or argument.
		os.Exit(1)
	}
}

func writeUsage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
}

// AddPrintConfigCmd adds a "print-config" command to |parser|, which writes
// the effective configuration in INI format. Its output is a valid
// |configName| file.
func AddPrintConfigCmd(parser *flags.Parser, configName string) {
	var _, err = parser.AddCommand("print-config", "Print the effective configuration and exit", `
print-config writes the configuration which results from `+configName+`,
environment variables and flags to stdout in INI format. For example, to
persist a logging level:
>    aocctl --log.level=info print-config > `+configName+`
`, &printConfig{parser})
	Must(err, "failed to add print-config command")
}

type printConfig struct {
	*flags.Parser `no-flag:"t"`
}

func (p printConfig) Execute([]string) error {
	flags.NewIniParser(p.Parser).Write(os.Stdout,
		flags.IniIncludeComments|flags.IniCommentDefaults|flags.IniIncludeDefaults)
	return nil
}

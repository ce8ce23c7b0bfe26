package cmd

import (
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
)

// Run is the entry point for the CLI. It returns the process exit code so
// that it can be driven from tests.
func Run(args []string) int {
	setConfigPath(extractConfigPath(args))

	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash|flags.PrintErrors)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}
	return 0
}

// Main runs the CLI with the process arguments and exits.
func Main() {
	os.Exit(Run(os.Args[1:]))
}

// extractConfigPath finds the -f/--config option before full parsing so that
// the service singleton can be created by whichever sub-command runs.
func extractConfigPath(args []string) string {
	for i, a := range args {
		switch a {
		case "-f", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		default:
			if strings.HasPrefix(a, "--config=") {
				return strings.TrimPrefix(a, "--config=")
			}
		}
	}
	return ""
}

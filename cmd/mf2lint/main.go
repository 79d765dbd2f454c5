// mf2lint checks MessageFormat 2 selection messages for plural coverage and
// placeholder consistency.
//
// Usage:
//
//	mf2lint <subcommand> [flags] [args]
//
// Run "mf2lint" with no arguments for a list of subcommands.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var subcommands = map[string]func([]string) error{
	"check":      runCheck,
	"compare":    runCompare,
	"categories": runCategories,
	"message":    runMessage,
	"watch":      runWatch,
}

// errDefects signals that linting completed and found problems.
var errDefects = errors.New("defects found")

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	name := args[0]
	if name == "-h" || name == "--help" || name == "help" {
		printUsage()
		return 0
	}

	cmd, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(stderr, "Unknown subcommand: %s\n\n", name)
		printUsage()
		return 1
	}

	if err := cmd(args[1:]); err != nil {
		if errors.Is(err, errDefects) {
			return 2
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(stderr, `Usage: mf2lint <subcommand> [flags] [args]

Subcommands:
  check       Plural coverage (and placeholders with -source) for catalog files
  compare     Placeholder consistency between a source and target locales
  categories  Plural categories resolved for each locale argument
  message     Validate a single message document and print the verdict
  watch       Re-run check whenever a catalog or rule file changes

Settings are read from .mf2lint.yaml or .mf2lint.toml in the working
directory (or the file named by MF2LINT_CONFIG); flags take precedence.

Run "mf2lint <subcommand> -h" for subcommand-specific flags.`)
}

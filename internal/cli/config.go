package cli

import (
	"fmt"
	"strings"
)

// Command selects what a run does with the resolved plans.
type Command string

const (
	// CommandGen writes accessor files.
	CommandGen Command = "gen"
	// CommandPlan prints method descriptors.
	CommandPlan Command = "plan"
	// CommandCheck fails when generated files are missing or out of date.
	CommandCheck Command = "check"
)

var commands = []Command{CommandGen, CommandPlan, CommandCheck}

func parseCommand(s string) (Command, error) {
	for _, c := range commands {
		if string(c) == s {
			return c, nil
		}
	}

	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, string(c))
	}

	return "", fmt.Errorf("unknown command %q (expected one of %s)", s, strings.Join(names, ", "))
}

// Plan output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Environment variables consulted for flag defaults. A .env file in the
// working directory is loaded first.
const (
	EnvConfig      = "ACCESSOR_GENERATOR_CONFIG"
	EnvParallelism = "ACCESSOR_GENERATOR_PARALLELISM"
)

// Config stores CLI options for a single run.
type Config struct {
	Command Command
	// Pkg is the package pattern holding the records.
	Pkg string
	// Types names the records. Empty selects every struct carrying directives.
	Types []string
	// ConfigFile is the optional YAML directive file.
	ConfigFile string
	// Output overrides the output file name; only valid with a single type.
	Output string
	// Parallelism bounds concurrent field resolution.
	Parallelism int
	// Format is the plan output format.
	Format      string
	NoGoimports bool
	NoComments  bool
	Verbose     bool
	ShowVersion bool
}

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"accessor-generator/internal/plan"
)

// ParseArgs parses command line arguments into Config, taking defaults from
// the process environment.
func ParseArgs(args []string) (*Config, error) {
	return ParseArgsEnv(args, os.Getenv)
}

// ParseArgsEnv is ParseArgs with an explicit environment lookup.
func ParseArgsEnv(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{Command: CommandGen}

	defaultParallelism := plan.DefaultConfig().Parallelism
	if raw := strings.TrimSpace(getenv(EnvParallelism)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvParallelism, err)
		}

		defaultParallelism = n
	}

	fs := pflag.NewFlagSet("accessor-generator", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Pkg, "pkg", "p", ".", "package pattern holding the records")
	fs.StringSliceVarP(&cfg.Types, "type", "t", nil, "record type name (repeatable, comma-separated)")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", getenv(EnvConfig), "YAML directive file")
	fs.StringVarP(&cfg.Output, "output", "o", "", "output file name (single type only)")
	fs.IntVar(&cfg.Parallelism, "parallel", defaultParallelism, "fields resolved concurrently")
	fs.StringVar(&cfg.Format, "format", FormatJSON, "plan output format: json or text")
	fs.BoolVar(&cfg.NoGoimports, "no-goimports", false, "format with go/format instead of goimports")
	fs.BoolVar(&cfg.NoComments, "no-comments", false, "omit doc comments on generated methods")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "print info diagnostics")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(rest[1:], " "))
	}
	if len(rest) == 1 {
		cmd, err := parseCommand(rest[0])
		if err != nil {
			return nil, err
		}

		cfg.Command = cmd
	}

	cfg.Types = splitCommaList(cfg.Types)

	if strings.TrimSpace(cfg.Pkg) == "" {
		return nil, fmt.Errorf("--pkg must not be empty")
	}
	if cfg.Output != "" && len(cfg.Types) != 1 {
		return nil, fmt.Errorf("--output needs exactly one --type")
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatText {
		return nil, fmt.Errorf("--format must be %s or %s", FormatJSON, FormatText)
	}

	return cfg, nil
}

func splitCommaList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

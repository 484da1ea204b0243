package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/directive"
	"accessor-generator/internal/gen"
	"accessor-generator/internal/match"
	"accessor-generator/internal/plan"
)

// ErrStale is returned by the check command when generated files are
// missing or differ from what would be generated.
var ErrStale = errors.New("generated files are out of date")

// Runner orchestrates the analyze, plan and gen layers.
type Runner struct {
	stdout io.Writer
	logger *log.Logger
	// dir is where package patterns are resolved; empty is the working directory.
	dir string
}

// NewRunner creates a runner printing plans to stdout and diagnostics to logger.
func NewRunner(stdout io.Writer, logger *log.Logger) *Runner {
	return &Runner{stdout: stdout, logger: logger}
}

// WithDir returns a copy of the runner resolving package patterns in dir.
func (r *Runner) WithDir(dir string) *Runner {
	c := *r
	c.dir = dir

	return &c
}

// target is one record selected for the run.
type target struct {
	typ *analyze.TypeInfo
	pkg *analyze.PackageInfo
	cfg *directive.RecordConfig
}

// Run executes a single generation cycle.
func (r *Runner) Run(ctx context.Context, cfg *Config) error {
	analyzer := analyze.NewAnalyzerWithConfig(analyze.Config{Dir: r.dir})

	graph, err := analyzer.LoadPackagesContext(ctx, cfg.Pkg)
	if err != nil {
		return fmt.Errorf("load %s: %w", cfg.Pkg, err)
	}

	var file *directive.File
	if cfg.ConfigFile != "" {
		if file, err = directive.LoadFile(cfg.ConfigFile); err != nil {
			return err
		}
	}

	targets, err := selectTargets(analyzer, graph, cfg.Types, file)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no records with accessor directives in %s", cfg.Pkg)
	}

	resolver := plan.NewResolver(plan.ResolutionConfig{Parallelism: cfg.Parallelism})
	plans := make([]*plan.Plan, 0, len(targets))

	for _, t := range targets {
		rec, err := plan.BuildRecord(t.typ, t.pkg, t.cfg, cfg.ConfigFile)
		if err != nil {
			return err
		}

		p, err := resolver.Resolve(rec)
		if err != nil {
			return err
		}

		r.report(p, cfg.Verbose)
		plans = append(plans, p)
	}

	switch cfg.Command {
	case CommandPlan:
		return r.printPlans(cfg, plans)
	case CommandCheck:
		return r.check(cfg, plans)
	default:
		return r.generate(cfg, plans)
	}
}

// selectTargets resolves the requested type names, or every record with
// directives when none are given. Records named in the file are always
// included and must exist.
func selectTargets(
	analyzer *analyze.Analyzer,
	graph *analyze.TypeGraph,
	names []string,
	file *directive.File,
) ([]target, error) {
	var fileRecords []string
	if file != nil {
		for _, rc := range file.Records {
			fileRecords = append(fileRecords, rc.Type)
		}
	}

	if len(names) == 0 {
		names = discoverRecords(graph)
	}

	for _, name := range fileRecords {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	targets := make([]target, 0, len(names))

	for _, name := range names {
		typ, err := analyzer.Lookup("", name)
		if err != nil {
			if s, ok := match.Suggest(name, allTypeNames(graph)); ok {
				return nil, fmt.Errorf("%w (did you mean %q?)", err, s)
			}

			return nil, err
		}

		t := target{typ: typ, pkg: graph.Packages[typ.ID.PkgPath]}
		if file != nil {
			t.cfg = file.Record(name)
		}

		targets = append(targets, t)
	}

	return targets, nil
}

// discoverRecords returns the structs carrying a record doc directive or a
// field tag, sorted by package and name.
func discoverRecords(graph *analyze.TypeGraph) []string {
	var ids []analyze.TypeID

	for _, pkg := range graph.Packages {
		for _, id := range pkg.Types {
			if hasDirectives(graph.GetType(id)) {
				ids = append(ids, id)
			}
		}
	}

	slices.SortFunc(ids, func(a, b analyze.TypeID) int {
		if c := strings.Compare(a.PkgPath, b.PkgPath); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.Name)
	}

	return names
}

func hasDirectives(t *analyze.TypeInfo) bool {
	if t == nil || t.Kind != analyze.TypeKindStruct {
		return false
	}

	for _, line := range t.Doc {
		if strings.HasPrefix(strings.TrimSpace(line), directive.DocPrefix) {
			return true
		}
	}

	for i := range t.Fields {
		if _, ok := t.Fields[i].LookupTag(directive.TagKey); ok {
			return true
		}
	}

	return false
}

func allTypeNames(graph *analyze.TypeGraph) []string {
	var names []string
	for _, pkg := range graph.Packages {
		names = append(names, pkg.TypeNames()...)
	}

	slices.Sort(names)

	return names
}

func (r *Runner) report(p *plan.Plan, verbose bool) {
	for _, d := range p.Diagnostics.Warnings {
		r.logger.Printf("warning: %s", d)
	}

	if !verbose {
		return
	}

	for _, d := range p.Diagnostics.Infos {
		r.logger.Printf("info: %s", d)
	}
}

func (r *Runner) printPlans(cfg *Config, plans []*plan.Plan) error {
	if cfg.Format == FormatText {
		_, err := io.WriteString(r.stdout, plan.FormatReport(plans...))
		return err
	}

	data, err := plan.ExportJSON(plans...)
	if err != nil {
		return err
	}

	_, err = r.stdout.Write(data)

	return err
}

// render generates every file, grouped by the directory it belongs in.
func (r *Runner) render(cfg *Config, plans []*plan.Plan) (map[string][]gen.GeneratedFile, error) {
	byDir := make(map[string][]gen.GeneratedFile)

	for _, p := range plans {
		dir := ""
		if p.Record.Package != nil {
			dir = p.Record.Package.Dir
		}

		filename := ""
		if cfg.Output != "" {
			filename = filepath.Base(cfg.Output)
			if d := filepath.Dir(cfg.Output); d != "." || filepath.IsAbs(cfg.Output) {
				dir = d
			}
		}

		g := gen.NewGenerator(gen.GeneratorConfig{
			OutputDir:        dir,
			GenerateComments: !cfg.NoComments,
			Goimports:        !cfg.NoGoimports,
		})

		file, err := g.GenerateRecord(p)
		if err != nil {
			return nil, err
		}

		if filename != "" {
			file.Filename = filename
		}

		byDir[dir] = append(byDir[dir], *file)
	}

	return byDir, nil
}

func (r *Runner) generate(cfg *Config, plans []*plan.Plan) error {
	byDir, err := r.render(cfg, plans)
	if err != nil {
		return err
	}

	for _, dir := range slices.Sorted(maps.Keys(byDir)) {
		if err := gen.WriteFiles(byDir[dir], dir); err != nil {
			return err
		}

		if cfg.Verbose {
			for _, f := range byDir[dir] {
				r.logger.Printf("wrote %s", filepath.Join(dir, f.Filename))
			}
		}
	}

	return nil
}

func (r *Runner) check(cfg *Config, plans []*plan.Plan) error {
	byDir, err := r.render(cfg, plans)
	if err != nil {
		return err
	}

	var stale []string

	for _, dir := range slices.Sorted(maps.Keys(byDir)) {
		names, err := gen.StaleFiles(byDir[dir], dir)
		if err != nil {
			return err
		}

		for _, name := range names {
			stale = append(stale, filepath.Join(dir, name))
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
	}

	return nil
}

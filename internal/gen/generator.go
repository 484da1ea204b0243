package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"golang.org/x/tools/imports"

	"accessor-generator/internal/common"
	"accessor-generator/internal/match"
	"accessor-generator/internal/plan"
)

// FileSuffix is appended to the snake-cased record name to form the output
// file name.
const FileSuffix = "_accessors.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName overrides the package clause. Empty uses the record's package.
	PackageName string
	// OutputDir is where an unformatted sidecar is written when formatting fails.
	OutputDir string
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
	// Goimports formats with goimports instead of go/format.
	Goimports bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
		Goimports:        true,
	}
}

// Formatter formats generated Go code.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

type goimportsFormatter struct{}

func (goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

type gofmtFormatter struct{}

func (gofmtFormatter) Format(_ string, src []byte) ([]byte, error) {
	return format.Source(src)
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return goimportsFormatter{}
}

// NewGofmtFormatter creates a formatter backed by go/format.
func NewGofmtFormatter() Formatter {
	return gofmtFormatter{}
}

// Generator renders plans into Go files.
type Generator struct {
	config    GeneratorConfig
	formatter Formatter
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	var f Formatter = NewGofmtFormatter()
	if config.Goimports {
		f = NewGoimportsFormatter()
	}

	return &Generator{config: config, formatter: f}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "pet_accessors.go").
	Filename string
	// Record is the record the file holds accessors for.
	Record string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the output file name of a record.
func Filename(recordName string) string {
	return match.SnakeIdent(recordName) + FileSuffix
}

// Generate renders one file per plan.
func (g *Generator) Generate(plans ...*plan.Plan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(plans))

	for _, p := range plans {
		file, err := g.GenerateRecord(p)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.RecordName, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateRecord renders the accessors of a single record.
func (g *Generator) GenerateRecord(p *plan.Plan) (*GeneratedFile, error) {
	if p == nil || p.Record == nil {
		return nil, fmt.Errorf("%w: plan has no record", plan.ErrUnclassifiableRecord)
	}

	data, err := g.buildTemplateData(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := accessorTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := g.formatter.Format(data.Filename, buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Record:   p.RecordName,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Record:   p.RecordName,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the accessor template.
type templateData struct {
	PackageName string
	Filename    string
	Record      string
	Imports     []importSpec
	Methods     []methodData
}

// methodData is one rendered method.
type methodData struct {
	Doc      string
	Receiver string
	Name     string
	Params   string
	Results  string
	Body     []string
}

func (g *Generator) buildTemplateData(p *plan.Plan) (*templateData, error) {
	rec := p.Record

	var pkgPath string
	if rec.Type != nil {
		pkgPath = rec.Type.ID.PkgPath
	}

	names, err := methodNames(rec, p.Methods)
	if err != nil {
		return nil, err
	}

	r := newRecordRenderer(rec, newImportSet(pkgPath), g.config.GenerateComments)

	data := &templateData{
		PackageName: g.packageName(rec, pkgPath),
		Filename:    Filename(rec.Name),
		Record:      rec.Name,
		Methods:     make([]methodData, 0, len(p.Methods)),
	}

	for i := range p.Methods {
		md, err := r.method(&p.Methods[i], names[i])
		if err != nil {
			return nil, &plan.ConfigError{
				Record: rec.Name,
				Field:  p.Methods[i].Field,
				Kind:   p.Methods[i].Kind.Keyword(),
				Err:    err,
			}
		}

		data.Methods = append(data.Methods, md)
	}

	data.Imports = r.imports.specs()

	return data, nil
}

func (g *Generator) packageName(rec *plan.Record, pkgPath string) string {
	switch {
	case g.config.PackageName != "":
		return g.config.PackageName
	case rec.Package != nil && rec.Package.Name != "":
		return rec.Package.Name
	case pkgPath != "":
		return common.PkgAlias(pkgPath)
	default:
		return "main"
	}
}

var accessorTemplate = template.Must(template.New("accessors").Parse(`// Code generated by accessor-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Methods}}
{{if .Doc}}// {{.Doc}}
{{end}}func ({{.Receiver}}) {{.Name}}({{.Params}}){{if .Results}} {{.Results}}{{end}} {
{{range .Body}}	{{.}}
{{end}}}
{{end}}`))

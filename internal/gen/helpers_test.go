package gen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/directive"
	"accessor-generator/internal/plan"
)

const (
	storePkg     = "accessor-generator/store"
	warehousePkg = "accessor-generator/warehouse"
)

func storePlan(t *testing.T, name string, cfg *directive.RecordConfig) *plan.Plan {
	t.Helper()

	return packagePlan(t, storePkg, name, cfg)
}

func packagePlan(t *testing.T, pkgPath, name string, cfg *directive.RecordConfig) *plan.Plan {
	t.Helper()

	graph, err := analyze.NewAnalyzer().LoadPackages(pkgPath)
	require.NoError(t, err)

	typ := graph.GetType(analyze.TypeID{PkgPath: pkgPath, Name: name})
	require.NotNil(t, typ, name)

	rec, err := plan.BuildRecord(typ, graph.Packages[pkgPath], cfg, "test")
	require.NoError(t, err)

	p, err := plan.NewResolver(plan.DefaultConfig()).Resolve(rec)
	require.NoError(t, err)

	return p
}

func basicField(name string, kind types.BasicKind, directives string) plan.Field {
	b := types.Typ[kind]
	f := plan.Field{
		Name: name,
		Type: &analyze.TypeInfo{ID: analyze.TypeID{Name: b.Name()}, Kind: analyze.TypeKindBasic, GoType: b},
	}

	if directives != "" {
		fd, err := directive.ParseFieldDirectives(directives)
		if err != nil {
			panic(err)
		}

		f.Directives = fd
	}

	return f
}

func handPlan(t *testing.T, name string, fields ...plan.Field) *plan.Plan {
	t.Helper()

	for i := range fields {
		fields[i].Index = i
	}

	p, err := plan.NewResolver(plan.DefaultConfig()).Resolve(&plan.Record{Name: name, Fields: fields})
	require.NoError(t, err)

	return p
}

func testGenerator() *Generator {
	cfg := DefaultGeneratorConfig()
	cfg.Goimports = false
	cfg.PackageName = "model"

	return NewGenerator(cfg)
}

// funcDecls parses src and returns its methods by name, in file order.
func funcDecls(t *testing.T, src []byte) ([]string, map[string]*ast.FuncDecl) {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.ParseComments)
	require.NoError(t, err, string(src))

	var order []string
	decls := make(map[string]*ast.FuncDecl)

	for _, d := range file.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok {
			order = append(order, fn.Name.Name)
			decls[fn.Name.Name] = fn
		}
	}

	return order, decls
}

// typeCheck renders plans into the directory of their package, loads the
// package with the generated files overlaid and requires it to compile.
func typeCheck(t *testing.T, pkgPath string, plans ...*plan.Plan) {
	t.Helper()

	g := NewGenerator(DefaultGeneratorConfig())
	overlay := make(map[string][]byte, len(plans))

	for _, p := range plans {
		require.NotNil(t, p.Record.Package, p.RecordName)

		file, err := g.GenerateRecord(p)
		require.NoError(t, err)

		overlay[filepath.Join(p.Record.Package.Dir, file.Filename)] = file.Content
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Overlay: overlay,
	}, pkgPath)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	for path := range overlay {
		require.Contains(t, pkg.GoFiles, path, "generated file not part of the package")
	}

	for _, e := range pkg.Errors {
		t.Errorf("%s: %s", pkgPath, e)
	}
}

package analyze

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// DefaultCacheSize is the number of loaded package sets an Analyzer keeps.
const DefaultCacheSize = 16

// Config holds the package loading configuration.
type Config struct {
	// Dir is the directory in which patterns are resolved. Empty means the
	// current working directory.
	Dir string
	// CacheSize bounds the loaded-package cache.
	CacheSize int
}

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	config    Config
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	loaded    *lru.Cache[string, []*packages.Package]
}

// NewAnalyzer creates a new Analyzer resolving patterns in the working directory.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(Config{})
}

// NewAnalyzerWithConfig creates a new Analyzer with the given configuration.
func NewAnalyzerWithConfig(config Config) *Analyzer {
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}

	// lru.New only fails on a non-positive size.
	loaded, _ := lru.New[string, []*packages.Package](config.CacheSize)

	return &Analyzer{
		config:    config,
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		loaded:    loaded,
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "accessor-generator/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	return a.LoadPackagesContext(context.Background(), patterns...)
}

// LoadPackagesContext is LoadPackages with a context that cancels the
// underlying go list invocation. Patterns loaded before are served from cache.
func (a *Analyzer) LoadPackagesContext(ctx context.Context, patterns ...string) (*TypeGraph, error) {
	for _, pattern := range patterns {
		key := a.config.Dir + "|" + pattern
		if _, ok := a.loaded.Get(key); ok {
			continue
		}

		pkgs, err := a.load(ctx, pattern)
		if err != nil {
			return nil, err
		}

		a.loaded.Add(key, pkgs)
	}

	return a.graph, nil
}

func (a *Analyzer) load(ctx context.Context, pattern string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     a.config.Dir,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register every package first so named types can be told apart from
	// external ones regardless of load order.
	for _, pkg := range pkgs {
		a.registerPackage(pkg)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return pkgs, nil
}

func (a *Analyzer) registerPackage(pkg *packages.Package) {
	if _, ok := a.graph.Packages[pkg.PkgPath]; ok {
		return
	}

	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
		Pkg:  pkg.Types,
	}
	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	a.graph.Packages[pkg.PkgPath] = info
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := a.graph.Packages[pkg.PkgPath]
	if pkgInfo == nil || pkg.Types == nil {
		return fmt.Errorf("package %s has no type information", pkg.PkgPath)
	}

	docs := collectTypeDocs(pkg.Syntax)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}
		if _, seen := a.graph.Types[typeID]; seen {
			continue
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID
		typeInfo.Pos = pkg.Fset.Position(typeName.Pos())
		typeInfo.Doc = docs[name]

		if typeInfo.Kind == TypeKindStruct {
			for i := range typeInfo.Fields {
				typeInfo.Fields[i].Pos = pkg.Fset.Position(typeInfo.Fields[i].pos)
			}
		}

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	return nil
}

// collectTypeDocs returns the raw doc comment lines of every top-level type
// declaration. Raw lines are kept because CommentGroup.Text drops
// "//word:" directive lines.
func collectTypeDocs(files []*ast.File) map[string][]string {
	docs := make(map[string][]string)

	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				group := ts.Doc
				if group == nil && len(gen.Specs) == 1 {
					group = gen.Doc
				}

				if group == nil {
					continue
				}

				lines := make([]string, 0, len(group.List))
				for _, c := range group.List {
					lines = append(lines, c.Text)
				}

				docs[ts.Name.Name] = lines
			}
		}
	}

	return docs
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	t = types.Unalias(t)

	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic
		info.ID = TypeID{Name: tt.Name()}

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.Len = tt.Len()
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.KeyType = a.analyzeType(tt.Key())
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	default:
		// Interfaces, channels, funcs, type parameters
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// Universe types such as error.
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindUnknown

		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	underlying := named.Underlying()
	external := a.isExternalPackage(obj.Pkg().Path())

	switch ut := underlying.(type) {
	case *types.Struct:
		if external {
			// Opaque struct (e.g., time.Time); its fields are not ours to walk.
			info.Kind = TypeKindExternal
			return
		}

		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	default:
		if external {
			info.Kind = TypeKindExternal
		} else {
			info.Kind = TypeKindAlias
		}

		info.Underlying = a.analyzeType(ut)
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type. Unexported fields
// are kept: accessors are usually written for exactly those.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
			pos:      field.Pos(),
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// Lookup finds a named type by its bare name in any loaded package whose
// import path or name matches pkg. An empty pkg searches every package.
func (a *Analyzer) Lookup(pkg, typeName string) (*TypeInfo, error) {
	var found *TypeInfo

	for path, info := range a.graph.Packages {
		if pkg != "" && pkg != path && pkg != info.Name {
			continue
		}

		t := a.graph.GetType(TypeID{PkgPath: path, Name: typeName})
		if t == nil {
			continue
		}

		if found != nil {
			return nil, fmt.Errorf("type %s is ambiguous: found in %s and %s", typeName, found.ID.PkgPath, path)
		}

		found = t
	}

	if found == nil {
		return nil, fmt.Errorf("type %s not found", typeName)
	}

	return found, nil
}

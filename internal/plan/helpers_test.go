package plan

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/directive"
)

const storePkg = "accessor-generator/store"

var testPkg = types.NewPackage("example.com/model", "model")

func basicType(kind types.BasicKind) *analyze.TypeInfo {
	b := types.Typ[kind]

	return &analyze.TypeInfo{
		ID:     analyze.TypeID{Name: b.Name()},
		Kind:   analyze.TypeKindBasic,
		GoType: b,
	}
}

func namedType(name string, underlying *analyze.TypeInfo) *analyze.TypeInfo {
	obj := types.NewTypeName(token.NoPos, testPkg, name, nil)
	named := types.NewNamed(obj, underlying.GoType.Underlying(), nil)

	return &analyze.TypeInfo{
		ID:         analyze.TypeID{PkgPath: testPkg.Path(), Name: name},
		Kind:       analyze.TypeKindAlias,
		Underlying: underlying,
		GoType:     named,
	}
}

func structType(name string) *analyze.TypeInfo {
	obj := types.NewTypeName(token.NoPos, testPkg, name, nil)
	named := types.NewNamed(obj, types.NewStruct(nil, nil), nil)

	return &analyze.TypeInfo{
		ID:     analyze.TypeID{PkgPath: testPkg.Path(), Name: name},
		Kind:   analyze.TypeKindStruct,
		GoType: named,
	}
}

func pointerTo(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		Kind:     analyze.TypeKindPointer,
		ElemType: elem,
		GoType:   types.NewPointer(elem.GoType),
	}
}

func sliceOf(elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		Kind:     analyze.TypeKindSlice,
		ElemType: elem,
		GoType:   types.NewSlice(elem.GoType),
	}
}

func arrayOf(n int64, elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		Kind:     analyze.TypeKindArray,
		ElemType: elem,
		Len:      n,
		GoType:   types.NewArray(elem.GoType, n),
	}
}

func mapOf(key, elem *analyze.TypeInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		Kind:     analyze.TypeKindMap,
		KeyType:  key,
		ElemType: elem,
		GoType:   types.NewMap(key.GoType, elem.GoType),
	}
}

func fieldDirectives(t *testing.T, s string) directive.FieldDirectives {
	t.Helper()

	fd, err := directive.ParseFieldDirectives(s)
	require.NoError(t, err)

	return fd
}

func recordDirectives(t *testing.T, s string) directive.Block {
	t.Helper()

	b, err := directive.ParseRecordDirectives(s)
	require.NoError(t, err)

	return b
}

// newRecord builds a record by hand; fields are given as name, type pairs.
func newRecord(name string, defaults directive.Block, fields ...Field) *Record {
	for i := range fields {
		fields[i].Index = i
	}

	return &Record{Name: name, Defaults: defaults, Fields: fields}
}

func loadStoreRecord(t *testing.T, name string, cfg *directive.RecordConfig) *Record {
	t.Helper()

	analyzer := analyze.NewAnalyzer()
	graph, err := analyzer.LoadPackages(storePkg)
	require.NoError(t, err)

	typ := graph.GetType(analyze.TypeID{PkgPath: storePkg, Name: name})
	require.NotNil(t, typ, name)

	rec, err := BuildRecord(typ, graph.Packages[storePkg], cfg, "testdata/accessors.yaml")
	require.NoError(t, err)

	return rec
}

func resolveRecord(t *testing.T, rec *Record) *Plan {
	t.Helper()

	p, err := NewResolver(DefaultConfig()).Resolve(rec)
	require.NoError(t, err)

	return p
}

func methodNames(p *Plan) []string {
	names := make([]string, 0, len(p.Methods))
	for _, m := range p.Methods {
		names = append(names, m.Name)
	}

	return names
}

func findMethod(t *testing.T, p *Plan, name string) MethodDescriptor {
	t.Helper()

	for _, m := range p.Methods {
		if m.Name == name {
			return m
		}
	}

	require.Failf(t, "method not found", "%s has no method %s: %v", p.RecordName, name, methodNames(p))

	return MethodDescriptor{}
}

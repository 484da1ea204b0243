package analyze

import (
	"go/token"
	"go/types"
	"reflect"

	"accessor-generator/internal/common"
)

// TypeID names a declared type: import path plus type name. Unnamed types
// (*T, []T, map[K]V) have a zero TypeID.
type TypeID struct {
	PkgPath string
	Name    string
}

// String returns "path.Name", or just the name for builtin types.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind is the structural shape of a TypeInfo.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindBasic
	TypeKindStruct
	TypeKindPointer
	TypeKindSlice
	TypeKindArray
	TypeKindMap
	// TypeKindAlias is a named non-struct type declared in a loaded package.
	TypeKindAlias
	// TypeKindExternal is a named type from a package outside the load set,
	// such as time.Time.
	TypeKindExternal
)

var typeKindNames = [...]string{
	TypeKindUnknown:  common.UnknownStr,
	TypeKindBasic:    "basic",
	TypeKindStruct:   "struct",
	TypeKindPointer:  "pointer",
	TypeKindSlice:    "slice",
	TypeKindArray:    "array",
	TypeKindMap:      "map",
	TypeKindAlias:    "alias",
	TypeKindExternal: "external",
}

func (k TypeKind) String() string {
	if k < 0 || int(k) >= len(typeKindNames) {
		return common.UnknownStr
	}

	return typeKindNames[k]
}

// TypeInfo is one node of the type graph.
type TypeInfo struct {
	ID   TypeID
	Kind TypeKind

	// Underlying is set for named non-struct types.
	Underlying *TypeInfo
	// ElemType is the pointee or element of pointers, slices, arrays and maps.
	ElemType *TypeInfo
	KeyType  *TypeInfo
	Len      int64

	// Fields lists struct fields in declaration order.
	Fields []FieldInfo
	// Doc holds the raw comment lines above the type declaration, where
	// record-level directives live.
	Doc []string

	GoType types.Type
	Pos    token.Position
}

// IsNamed reports whether the type has a TypeID.
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Field returns the struct field called name, or nil.
func (t *TypeInfo) Field(name string) *FieldInfo {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string
	Exported bool
	Embedded bool
	Index    int
	Type     *TypeInfo
	Tag      reflect.StructTag
	Pos      token.Position

	pos token.Pos
}

// LookupTag returns the value of the tag key and whether the key is present.
func (f *FieldInfo) LookupTag(key string) (string, bool) {
	return f.Tag.Lookup(key)
}

// TypeGraph holds the analyzed types of the loaded packages.
type TypeGraph struct {
	Types    map[TypeID]*TypeInfo
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates an empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the named type id, or nil.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo describes one loaded package.
type PackageInfo struct {
	Path string
	Name string
	// Dir is where generated files for the package are written.
	Dir string
	// Types lists the named types declared in the package, sorted by name.
	Types []TypeID
	Pkg   *types.Package
}

// TypeNames returns the names of the types declared in the package.
func (p *PackageInfo) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, id := range p.Types {
		names = append(names, id.Name)
	}

	return names
}

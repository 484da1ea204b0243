package analyze

import (
	"strconv"
	"strings"
)

// TypePath builds a readable path string for a field of a record.
// Examples:
//   - "Account" for the record itself
//   - "Account.Email" for one of its fields
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}

// TypeStringer renders type shapes for diagnostics and descriptor exports.
type TypeStringer struct{}

// NewTypeStringer creates a new TypeStringer.
func NewTypeStringer() *TypeStringer {
	return &TypeStringer{}
}

// TypeString returns a human-readable string representation of a TypeInfo.
// Named types are rendered with their package name, not their import path.
func (s *TypeStringer) TypeString(t *TypeInfo) string {
	if t == nil {
		return "<nil>"
	}

	if t.IsNamed() && t.Kind != TypeKindBasic {
		if t.ID.PkgPath == "" {
			return t.ID.Name
		}

		return t.ID.PkgPath[strings.LastIndex(t.ID.PkgPath, "/")+1:] + "." + t.ID.Name
	}

	switch t.Kind {
	case TypeKindBasic:
		return t.GoType.String()

	case TypeKindStruct:
		return "struct{...}"

	case TypeKindPointer:
		return "*" + s.elem(t.ElemType)

	case TypeKindSlice:
		return "[]" + s.elem(t.ElemType)

	case TypeKindArray:
		return "[" + strconv.FormatInt(t.Len, 10) + "]" + s.elem(t.ElemType)

	case TypeKindMap:
		return "map[" + s.elem(t.KeyType) + "]" + s.elem(t.ElemType)

	case TypeKindAlias, TypeKindExternal, TypeKindUnknown:
		if t.GoType != nil {
			return t.GoType.String()
		}
	}

	return "<unknown>"
}

func (s *TypeStringer) elem(t *TypeInfo) string {
	if t == nil {
		return "<unknown>"
	}

	return s.TypeString(t)
}

// FieldPath returns a path string for a field within a type.
// Example: Account, Email -> "Account.Email"
func (s *TypeStringer) FieldPath(typeName string, fieldNames ...string) string {
	path := NewTypePath(typeName)
	for _, fn := range fieldNames {
		path = path.Field(fn)
	}
	return path.String()
}

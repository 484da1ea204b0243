package plan

import (
	"accessor-generator/internal/analyze"
	"accessor-generator/internal/common"
	"accessor-generator/primitive"
)

// CategoryKind is the semantic bucket of a field type.
type CategoryKind int

const (
	// ScalarCopy - trivially copyable value (numbers, bool, time.Time, named scalars).
	ScalarCopy CategoryKind = iota
	// StringLike - text (string and named string types).
	StringLike
	// SequenceLike - slices and arrays.
	SequenceLike
	// OptionOf - pointer wrapping another category.
	OptionOf
	// GenericOwned - anything else: structs, maps, interfaces, channels, funcs.
	GenericOwned
)

// String returns a human-readable category kind name.
func (k CategoryKind) String() string {
	switch k {
	case ScalarCopy:
		return "ScalarCopy"
	case StringLike:
		return "StringLike"
	case SequenceLike:
		return "SequenceLike"
	case OptionOf:
		return "OptionOf"
	case GenericOwned:
		return "GenericOwned"
	default:
		return common.UnknownStr
	}
}

// Category is the classifier output. Inner is set only for OptionOf.
type Category struct {
	Kind  CategoryKind
	Inner *Category
}

// String renders the category, e.g. "OptionOf(StringLike)".
func (c Category) String() string {
	if c.Kind == OptionOf && c.Inner != nil {
		return "OptionOf(" + c.Inner.String() + ")"
	}

	return c.Kind.String()
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// IsOption reports whether the category is OptionOf(_).
func (c Category) IsOption() bool {
	return c.Kind == OptionOf
}

// maxClassifyDepth stops self-referential named pointers (type P *P).
const maxClassifyDepth = 32

// Classify maps a field type onto its category. It never fails: shapes it
// does not recognize are GenericOwned.
func Classify(t *analyze.TypeInfo) Category {
	return classify(t, 0)
}

func classify(t *analyze.TypeInfo, depth int) Category {
	if t == nil || depth > maxClassifyDepth {
		return Category{Kind: GenericOwned}
	}

	switch kind := primitive.FromGoType(t.GoType); {
	case kind.IsText():
		return Category{Kind: StringLike}
	case kind.IsTriviallyCopyable():
		return Category{Kind: ScalarCopy}
	}

	switch t.Kind {
	case analyze.TypeKindPointer:
		inner := classify(t.ElemType, depth+1)
		return Category{Kind: OptionOf, Inner: &inner}

	case analyze.TypeKindSlice, analyze.TypeKindArray:
		return Category{Kind: SequenceLike}

	case analyze.TypeKindAlias, analyze.TypeKindExternal:
		if t.Underlying != nil {
			return classify(t.Underlying, depth+1)
		}

		return Category{Kind: GenericOwned}

	default:
		// Structs, maps, unsafe.Pointer, interfaces, channels, funcs
		return Category{Kind: GenericOwned}
	}
}

// underlyingShape skips named wrappers down to the structural type.
func underlyingShape(t *analyze.TypeInfo) *analyze.TypeInfo {
	for depth := 0; t != nil && depth <= maxClassifyDepth; depth++ {
		if (t.Kind != analyze.TypeKindAlias && t.Kind != analyze.TypeKindExternal) || t.Underlying == nil {
			return t
		}

		t = t.Underlying
	}

	return t
}

// OptionInner returns the pointee of an optional field type.
func OptionInner(t *analyze.TypeInfo) *analyze.TypeInfo {
	if shape := underlyingShape(t); shape != nil && shape.Kind == analyze.TypeKindPointer {
		return shape.ElemType
	}

	return nil
}

// SequenceElem returns the element type of a sequence field type.
func SequenceElem(t *analyze.TypeInfo) *analyze.TypeInfo {
	shape := underlyingShape(t)
	if shape != nil && (shape.Kind == analyze.TypeKindSlice || shape.Kind == analyze.TypeKindArray) {
		return shape.ElemType
	}

	return nil
}

// IsSlice reports whether a sequence field type is growable.
func IsSlice(t *analyze.TypeInfo) bool {
	shape := underlyingShape(t)
	return shape != nil && shape.Kind == analyze.TypeKindSlice
}

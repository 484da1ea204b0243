package plan

import (
	"accessor-generator/internal/analyze"
	"accessor-generator/internal/common"
	"accessor-generator/internal/diagnostic"
	"accessor-generator/internal/directive"
)

// Plan is the output of the driver for one record. It contains everything
// the renderer needs.
type Plan struct {
	// Record is the record the methods belong to.
	Record *Record `json:"-"`
	// RecordName is the record's type name.
	RecordName string `json:"record"`
	// Methods lists the method descriptors in field declaration order, and
	// in get, set, mut_, clr order within one field.
	Methods []MethodDescriptor `json:"methods"`
	// Diagnostics contains all warnings and infos from resolution.
	Diagnostics diagnostic.Diagnostics `json:"-"`
}

// MethodDescriptor is a fully specified accessor method awaiting rendering.
type MethodDescriptor struct {
	// Field is the Go name of the field the method accesses.
	Field string `json:"field"`
	// FieldIndex is the field's position in the record.
	FieldIndex int `json:"field_index"`
	// FieldType is the declared field type.
	FieldType *analyze.TypeInfo `json:"-"`
	// Category is the classifier output for FieldType.
	Category Category `json:"category"`
	// Kind is the accessor kind.
	Kind directive.MethodKind `json:"kind"`
	// Name is the resolved method name: prefix, base and suffix, or the
	// explicit name, verbatim.
	Name string `json:"name"`
	// GoName is Name as a Go identifier, exported for Public and unexported
	// otherwise. It is the name the method is rendered with.
	GoName string `json:"go_name"`
	// Visibility is the resolved visibility, never Disabled.
	Visibility directive.Visibility `json:"visibility"`
	// Receiver describes how the method borrows the record.
	Receiver Receiver `json:"receiver"`
	// Params lists the method parameters.
	Params []Param `json:"params,omitempty"`
	// Return describes the result.
	Return Return `json:"return"`
	// Body is the body semantics tag.
	Body Body `json:"body"`
	// Reset is the empty value a clear method assigns. ResetNone for other kinds.
	Reset Reset `json:"reset,omitempty"`
}

// Param is one method parameter.
type Param struct {
	Name string `json:"name"`
	// Type is the accepted type. For CollectElements it is the element type.
	Type *analyze.TypeInfo `json:"-"`
	// TypeName is Type rendered for humans.
	TypeName string `json:"type"`
	// Conversion is the contract between the argument and the field.
	Conversion Conversion `json:"conversion"`
	// Variadic is set for CollectElements.
	Variadic bool `json:"variadic,omitempty"`
}

// Return describes what a method hands back.
type Return struct {
	Kind ReturnKind `json:"kind"`
	// TypeName is the returned shape rendered for humans, empty for ReturnNothing.
	TypeName string `json:"type,omitempty"`
}

// Receiver describes how a method borrows the record.
type Receiver int

const (
	// ReceiverShared - read-only borrow.
	ReceiverShared Receiver = iota
	// ReceiverMutable - mutable borrow.
	ReceiverMutable
	// ReceiverOwned - the record is consumed and handed back by value.
	ReceiverOwned
)

// String returns a human-readable receiver mode.
func (r Receiver) String() string {
	switch r {
	case ReceiverShared:
		return "shared"
	case ReceiverMutable:
		return "mutable"
	case ReceiverOwned:
		return "owned"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Receiver) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Conversion is the contract between a setter argument and the field.
type Conversion int

const (
	// ConvertIntoField - the argument is convertible into the field type.
	ConvertIntoField Conversion = iota
	// ConvertIntoInner - the argument is convertible into the optional's
	// inner type and stored as present.
	ConvertIntoInner
	// ConvertIntoOption - the argument is convertible into the full optional
	// type, so callers may store "absent".
	ConvertIntoOption
	// CollectElements - the arguments are elements collected into a fresh
	// sequence.
	CollectElements
)

// String returns a human-readable conversion name.
func (c Conversion) String() string {
	switch c {
	case ConvertIntoField:
		return "into-field"
	case ConvertIntoInner:
		return "into-inner"
	case ConvertIntoOption:
		return "into-option"
	case CollectElements:
		return "collect-elements"
	default:
		return common.UnknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Conversion) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ReturnKind is the shape of a method result.
type ReturnKind int

const (
	ReturnNothing ReturnKind = iota
	// ReturnValue - the field value itself.
	ReturnValue
	// ReturnClone - a duplicate of the field value.
	ReturnClone
	// ReturnReference - a reference to the stored field.
	ReturnReference
	// ReturnTextView - a read-only view over the text.
	ReturnTextView
	// ReturnSliceView - a read-only window over the elements.
	ReturnSliceView
	// ReturnOptionalReference - a reference to the inner value, or absent.
	ReturnOptionalReference
	// ReturnOptionalValue - the inner scalar and whether it is present.
	ReturnOptionalValue
	// ReturnSelfReference - the mutable receiver, for call chaining.
	ReturnSelfReference
	// ReturnSelf - the consumed receiver by value.
	ReturnSelf
	// ReturnPrevious - the value the field held before.
	ReturnPrevious
)

var returnKindNames = [...]string{
	"nothing", "value", "clone", "reference", "text-view", "slice-view",
	"optional-reference", "optional-value", "self-reference", "self", "previous",
}

// String returns a human-readable return kind.
func (k ReturnKind) String() string {
	if k < 0 || int(k) >= len(returnKindNames) {
		return common.UnknownStr
	}

	return returnKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k ReturnKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Body is the body semantics tag of a method.
type Body int

const (
	BodyReturnValue Body = iota
	BodyReturnReference
	BodyReturnOptionalReference
	BodyMutateInPlace
	BodyConsumeAndReturnSelf
	BodySwapAndReturnPrevious
	BodyResetToDefault
)

var bodyNames = [...]string{
	"return-value", "return-reference", "return-optional-reference", "mutate-in-place",
	"consume-and-return-self", "swap-and-return-previous", "reset-to-default",
}

// String returns the body semantics tag.
func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return common.UnknownStr
	}

	return bodyNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Reset is the empty value a clear method stores.
type Reset int

const (
	ResetNone Reset = iota
	// ResetAbsent - the optional becomes absent.
	ResetAbsent
	// ResetEmptySequence - elements are cleared in place and the sequence emptied.
	ResetEmptySequence
	// ResetEmptyText - the text becomes empty.
	ResetEmptyText
	// ResetZero - the scalar becomes its zero value.
	ResetZero
	// ResetDefault - the value becomes its type's default.
	ResetDefault
)

var resetNames = [...]string{"", "absent", "empty-sequence", "empty-text", "zero", "default"}

// String returns a human-readable reset mode.
func (r Reset) String() string {
	if r < 0 || int(r) >= len(resetNames) {
		return common.UnknownStr
	}

	return resetNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Reset) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

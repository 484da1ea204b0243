// Package primitive sorts Go types into the primitive kinds the classifier
// treats as plain values.
package primitive

import (
	"go/types"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is a primitive kind. The zero value means "not primitive".
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindTime
	KindDuration
	KindPrimitiveEnum // named type over any number or boolean
	KindStringEnum    // named type over string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k names a primitive kind.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsText reports whether values of the kind own text.
func (k KindEnum) IsText() bool {
	return k == KindString || k == KindStringEnum
}

// IsTriviallyCopyable reports whether a value of the kind can be handed out
// by value without sharing any backing storage.
func (k KindEnum) IsTriviallyCopyable() bool {
	return k.IsValid() && !k.IsText()
}

var basicKinds = map[types.BasicKind]KindEnum{
	types.Int:        KindInt,
	types.Int8:       KindInt8,
	types.Int16:      KindInt16,
	types.Int32:      KindInt32,
	types.Int64:      KindInt64,
	types.Uint:       KindUint,
	types.Uint8:      KindUint8,
	types.Uint16:     KindUint16,
	types.Uint32:     KindUint32,
	types.Uint64:     KindUint64,
	types.Uintptr:    KindUintptr,
	types.Float32:    KindFloat32,
	types.Float64:    KindFloat64,
	types.Complex64:  KindComplex64,
	types.Complex128: KindComplex128,
	types.Bool:       KindBool,
	types.String:     KindString,
}

// FromGoType maps a declared type onto a primitive kind. Types that are not
// primitive (structs, pointers, slices, maps, ...) yield the zero KindEnum.
func FromGoType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	t = types.Unalias(t)

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == "time" {
			switch obj.Name() {
			case "Time":
				return KindTime
			case "Duration":
				return KindDuration
			}
		}

		basic, ok := named.Underlying().(*types.Basic)
		if !ok {
			return 0
		}

		switch kind := basicKinds[basic.Kind()]; {
		case kind == KindString:
			return KindStringEnum
		case kind.IsValid():
			return KindPrimitiveEnum
		default:
			return 0
		}
	}

	if basic, ok := t.(*types.Basic); ok {
		return basicKinds[basic.Kind()]
	}

	return 0
}

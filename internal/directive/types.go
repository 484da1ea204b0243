package directive

import (
	"fmt"

	"accessor-generator/internal/common"
)

// MethodKind is one of the four accessor kinds.
type MethodKind int

const (
	KindGet MethodKind = iota
	KindSet
	KindMut
	KindClr

	kindCount = int(iota)
)

// MethodKinds lists every kind in emission order.
var MethodKinds = [kindCount]MethodKind{KindGet, KindSet, KindMut, KindClr}

var kindKeywords = [kindCount]string{"get", "set", "mut_", "clr"}

// Keyword returns the directive keyword of the kind.
func (k MethodKind) Keyword() string {
	if k < 0 || int(k) >= kindCount {
		return common.UnknownStr
	}

	return kindKeywords[k]
}

// String returns the directive keyword of the kind.
func (k MethodKind) String() string {
	return k.Keyword()
}

// MarshalText implements encoding.TextMarshaler.
func (k MethodKind) MarshalText() ([]byte, error) {
	return []byte(k.Keyword()), nil
}

// Visibility is the ordered lattice Disabled < Private < Scoped < Public.
type Visibility int

const (
	Disabled Visibility = iota
	Private
	Scoped
	Public
)

var visibilityKeywords = [...]string{"disable", "private", "crate", "public"}

// Keyword returns the directive keyword of the level.
func (v Visibility) Keyword() string {
	if v < 0 || int(v) >= len(visibilityKeywords) {
		return common.UnknownStr
	}

	return visibilityKeywords[v]
}

// String returns the directive keyword of the level.
func (v Visibility) String() string {
	return v.Keyword()
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.Keyword()), nil
}

// Enabled reports whether methods of this level are emitted at all.
func (v Visibility) Enabled() bool {
	return v > Disabled && v <= Public
}

// GetReturnPolicy selects what a getter hands out.
type GetReturnPolicy int

const (
	GetAuto GetReturnPolicy = iota
	GetRef
	GetClone
	GetCopy
)

var getKeywords = [...]string{"auto", "ref", "clone", "copy"}

// Keyword returns the directive keyword of the policy.
func (p GetReturnPolicy) Keyword() string {
	if p < 0 || int(p) >= len(getKeywords) {
		return common.UnknownStr
	}

	return getKeywords[p]
}

// String returns the directive keyword of the policy.
func (p GetReturnPolicy) String() string {
	return p.Keyword()
}

// MarshalText implements encoding.TextMarshaler.
func (p GetReturnPolicy) MarshalText() ([]byte, error) {
	return []byte(p.Keyword()), nil
}

// SetInputPolicy selects how a setter threads the receiver.
type SetInputPolicy int

const (
	SetRef SetInputPolicy = iota
	SetOwn
	SetNone
	SetReplace
)

var setKeywords = [...]string{"ref", "own", "none", "replace"}

// Keyword returns the directive keyword of the policy.
func (p SetInputPolicy) Keyword() string {
	if p < 0 || int(p) >= len(setKeywords) {
		return common.UnknownStr
	}

	return setKeywords[p]
}

// String returns the directive keyword of the policy.
func (p SetInputPolicy) String() string {
	return p.Keyword()
}

// MarshalText implements encoding.TextMarshaler.
func (p SetInputPolicy) MarshalText() ([]byte, error) {
	return []byte(p.Keyword()), nil
}

// ClrScope gates which categories receive a clear method.
type ClrScope int

const (
	ClrAuto ClrScope = iota
	ClrOptionOnly
	ClrAll
)

var scopeKeywords = [...]string{"auto", "option", "all"}

// Keyword returns the directive keyword of the scope.
func (s ClrScope) Keyword() string {
	if s < 0 || int(s) >= len(scopeKeywords) {
		return common.UnknownStr
	}

	return scopeKeywords[s]
}

// String returns the directive keyword of the scope.
func (s ClrScope) String() string {
	return s.Keyword()
}

// MarshalText implements encoding.TextMarshaler.
func (s ClrScope) MarshalText() ([]byte, error) {
	return []byte(s.Keyword()), nil
}

// lookupKeyword finds kw among keywords. On a miss the error carries the
// closest keyword as a suggestion.
func lookupKeyword(what, kw string, keywords []string) (int, error) {
	for i, candidate := range keywords {
		if candidate == kw {
			return i, nil
		}
	}

	return -1, newSyntaxError(kw, fmt.Sprintf("unknown %s %q", what, kw), keywords)
}

// ParseVisibility parses a visibility keyword.
func ParseVisibility(kw string) (Visibility, error) {
	i, err := lookupKeyword("visibility", kw, visibilityKeywords[:])
	return Visibility(i), err
}

// ParseMethodKind parses a method kind keyword.
func ParseMethodKind(kw string) (MethodKind, error) {
	i, err := lookupKeyword("method kind", kw, kindKeywords[:])
	return MethodKind(i), err
}

// ParseGetReturnPolicy parses a get type keyword.
func ParseGetReturnPolicy(kw string) (GetReturnPolicy, error) {
	i, err := lookupKeyword("get type", kw, getKeywords[:])
	return GetReturnPolicy(i), err
}

// ParseSetInputPolicy parses a set type keyword.
func ParseSetInputPolicy(kw string) (SetInputPolicy, error) {
	i, err := lookupKeyword("set type", kw, setKeywords[:])
	return SetInputPolicy(i), err
}

// ParseClrScope parses a clr scope keyword.
func ParseClrScope(kw string) (ClrScope, error) {
	i, err := lookupKeyword("clr scope", kw, scopeKeywords[:])
	return ClrScope(i), err
}

const unknownKeyword = common.UnknownStr

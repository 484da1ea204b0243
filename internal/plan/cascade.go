package plan

import (
	"accessor-generator/internal/directive"
)

// ResolvedConfig is the fully merged configuration of one (field, kind)
// pair. Kind-specific policies of other kinds keep their zero value.
type ResolvedConfig struct {
	Kind       directive.MethodKind
	Visibility directive.Visibility
	// Name is the explicit method name; empty when the name is derived.
	Name       string
	Prefix     string
	Suffix     string
	GetType    directive.GetReturnPolicy
	SetType    directive.SetInputPolicy
	FullOption bool
	Scope      directive.ClrScope
}

// Resolve merges the field, record and builtin tiers of kind. Every
// sub-option is looked up on its own: the first tier that sets it wins.
func Resolve(kind directive.MethodKind, field directive.FieldDirectives, record, builtin directive.Block) (ResolvedConfig, error) {
	tiers := [3]directive.KindConfig{*field.For(kind), *record.For(kind), *builtin.For(kind)}

	for _, tier := range tiers {
		if err := directive.ValidateKind(kind, tier); err != nil {
			return ResolvedConfig{}, err
		}
	}

	f, r, b := &tiers[0], &tiers[1], &tiers[2]

	rc := ResolvedConfig{
		Kind:       kind,
		Visibility: first(f.Visibility, r.Visibility, b.Visibility),
		Name:       first(f.Name, r.Name, b.Name),
		Prefix:     first(f.Prefix, r.Prefix, b.Prefix),
		Suffix:     first(f.Suffix, r.Suffix, b.Suffix),
	}

	switch kind {
	case directive.KindGet:
		rc.GetType = first(f.GetType, r.GetType, b.GetType)
	case directive.KindSet:
		rc.SetType = first(f.SetType, r.SetType, b.SetType)
		rc.FullOption = first(f.FullOption, r.FullOption, b.FullOption)
	case directive.KindClr:
		rc.Scope = first(f.Scope, r.Scope, b.Scope)
	}

	return rc, nil
}

// first returns the value of the highest-precedence tier that sets it.
func first[T any](tiers ...*T) T {
	for _, v := range tiers {
		if v != nil {
			return *v
		}
	}

	var zero T

	return zero
}

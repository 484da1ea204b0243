package plan

import (
	"accessor-generator/internal/directive"
)

// ClrEligible reports whether a field of the category gets a clear method
// under scope.
func ClrEligible(scope directive.ClrScope, category Category) bool {
	switch scope {
	case directive.ClrOptionOnly:
		return category.Kind == OptionOf
	case directive.ClrAuto:
		return category.Kind == OptionOf || category.Kind == SequenceLike
	case directive.ClrAll:
		return true
	default:
		return false
	}
}

// resetFor returns the empty value of a category.
func resetFor(category Category) Reset {
	switch category.Kind {
	case OptionOf:
		return ResetAbsent
	case SequenceLike:
		return ResetEmptySequence
	case StringLike:
		return ResetEmptyText
	case ScalarCopy:
		return ResetZero
	default:
		return ResetDefault
	}
}

// synthesizeClr builds the clear method of a field. It returns nil when the
// scope does not cover the field's category.
func synthesizeClr(fc *fieldContext, rc ResolvedConfig) (*MethodDescriptor, error) {
	if !ClrEligible(rc.Scope, fc.category) {
		return nil, nil
	}

	desc := fc.descriptor(rc)
	desc.Receiver = ReceiverMutable
	desc.Return = Return{Kind: ReturnNothing}
	desc.Body = BodyResetToDefault
	desc.Reset = resetFor(fc.category)

	return desc, nil
}

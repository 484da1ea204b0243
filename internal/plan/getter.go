package plan

import (
	"accessor-generator/internal/directive"
)

// synthesizeGet builds the getter of a field.
func synthesizeGet(fc *fieldContext, rc ResolvedConfig) (*MethodDescriptor, error) {
	desc := fc.descriptor(rc)
	desc.Receiver = ReceiverShared

	fieldType := fc.typeName(fc.field.Type)

	switch rc.GetType {
	case directive.GetCopy:
		if fc.category.Kind != ScalarCopy && fc.category.Kind != StringLike {
			return nil, unsupported("type=copy needs a trivially copyable field, %s is %s", fieldType, fc.category)
		}

		desc.Return = Return{Kind: ReturnValue, TypeName: fieldType}
		desc.Body = BodyReturnValue

	case directive.GetClone:
		desc.Return = Return{Kind: ReturnClone, TypeName: fieldType}
		desc.Body = BodyReturnValue

	case directive.GetRef:
		desc.Return = Return{Kind: ReturnReference, TypeName: "*" + fieldType}
		desc.Body = BodyReturnReference

	default:
		desc.Return, desc.Body = fc.autoGet()
	}

	return desc, nil
}

// autoGet dispatches the auto policy on the field category.
func (fc *fieldContext) autoGet() (Return, Body) {
	fieldType := fc.typeName(fc.field.Type)

	switch fc.category.Kind {
	case ScalarCopy:
		return Return{Kind: ReturnValue, TypeName: fieldType}, BodyReturnValue

	case StringLike:
		return Return{Kind: ReturnTextView, TypeName: "string"}, BodyReturnReference

	case SequenceLike:
		return Return{Kind: ReturnSliceView, TypeName: "[]" + fc.typeName(SequenceElem(fc.field.Type))}, BodyReturnReference

	case OptionOf:
		inner := OptionInner(fc.field.Type)
		if fc.category.Inner != nil && fc.category.Inner.Kind == ScalarCopy {
			return Return{Kind: ReturnOptionalValue, TypeName: "(" + fc.typeName(inner) + ", bool)"}, BodyReturnValue
		}

		return Return{Kind: ReturnOptionalReference, TypeName: "*" + fc.typeName(inner)}, BodyReturnOptionalReference

	default:
		return Return{Kind: ReturnReference, TypeName: "*" + fieldType}, BodyReturnReference
	}
}

package plan

import (
	"accessor-generator/internal/directive"
)

// setterParamName is the name of the single setter parameter.
const setterParamName = "v"

// synthesizeSet builds the setter of a field.
func synthesizeSet(fc *fieldContext, rc ResolvedConfig) (*MethodDescriptor, error) {
	desc := fc.descriptor(rc)
	desc.Params = []Param{fc.setterParam(rc)}

	switch rc.SetType {
	case directive.SetOwn:
		desc.Receiver = ReceiverOwned
		desc.Return = Return{Kind: ReturnSelf, TypeName: fc.record.TypeExpr()}
		desc.Body = BodyConsumeAndReturnSelf

	case directive.SetNone:
		desc.Receiver = ReceiverMutable
		desc.Return = Return{Kind: ReturnNothing}
		desc.Body = BodyMutateInPlace

	case directive.SetReplace:
		desc.Receiver = ReceiverMutable
		desc.Return = Return{Kind: ReturnPrevious, TypeName: fc.typeName(fc.field.Type)}
		desc.Body = BodySwapAndReturnPrevious

	default:
		desc.Receiver = ReceiverMutable
		desc.Return = Return{Kind: ReturnSelfReference, TypeName: "*" + fc.record.TypeExpr()}
		desc.Body = BodyMutateInPlace
	}

	return desc, nil
}

// setterParam picks what the setter accepts. Optionals take their inner
// value unless full_option is set; growable sequences take their elements.
func (fc *fieldContext) setterParam(rc ResolvedConfig) Param {
	switch {
	case fc.category.IsOption() && !rc.FullOption:
		inner := OptionInner(fc.field.Type)

		return Param{
			Name:       setterParamName,
			Type:       inner,
			TypeName:   fc.typeName(inner),
			Conversion: ConvertIntoInner,
		}

	case fc.category.IsOption():
		return Param{
			Name:       setterParamName,
			Type:       fc.field.Type,
			TypeName:   fc.typeName(fc.field.Type),
			Conversion: ConvertIntoOption,
		}

	case fc.category.Kind == SequenceLike && IsSlice(fc.field.Type):
		elem := SequenceElem(fc.field.Type)

		return Param{
			Name:       setterParamName,
			Type:       elem,
			TypeName:   "..." + fc.typeName(elem),
			Conversion: CollectElements,
			Variadic:   true,
		}

	default:
		return Param{
			Name:       setterParamName,
			Type:       fc.field.Type,
			TypeName:   fc.typeName(fc.field.Type),
			Conversion: ConvertIntoField,
		}
	}
}

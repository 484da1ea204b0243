package plan

// synthesizeMut builds the mutator of a field: a direct reference to the
// stored field, whatever its category.
func synthesizeMut(fc *fieldContext, rc ResolvedConfig) (*MethodDescriptor, error) {
	desc := fc.descriptor(rc)
	desc.Receiver = ReceiverMutable
	desc.Return = Return{Kind: ReturnReference, TypeName: "*" + fc.typeName(fc.field.Type)}
	desc.Body = BodyReturnReference

	return desc, nil
}

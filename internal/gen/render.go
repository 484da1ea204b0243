package gen

import (
	"fmt"
	"go/types"
	"slices"
	"unicode"
	"unicode/utf8"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/directive"
	"accessor-generator/internal/plan"
)

// recordRenderer turns the descriptors of one record into method source.
type recordRenderer struct {
	record   *plan.Record
	imports  *importSet
	recv     string
	comments bool
}

func newRecordRenderer(rec *plan.Record, imports *importSet, comments bool) *recordRenderer {
	return &recordRenderer{
		record:   rec,
		imports:  imports,
		recv:     receiverName(rec),
		comments: comments,
	}
}

// receiverName is the lower-cased first letter of the record name, or r.
// Type parameter names are avoided.
func receiverName(rec *plan.Record) string {
	candidates := []string{"r", "rec"}

	if c, _ := utf8.DecodeRuneInString(rec.Name); c != utf8.RuneError && unicode.IsLetter(c) {
		candidates = slices.Insert(candidates, 0, string(unicode.ToLower(c)))
	}

	for _, name := range candidates {
		if !slices.Contains(rec.TypeParams, name) {
			return name
		}
	}

	return "recv"
}

func (r *recordRenderer) method(m *plan.MethodDescriptor, name string) (methodData, error) {
	md := methodData{
		Name:     name,
		Receiver: r.recv + " *" + r.record.TypeExpr(),
	}

	if m.Receiver == plan.ReceiverOwned {
		md.Receiver = r.recv + " " + r.record.TypeExpr()
	}

	var err error

	switch m.Kind {
	case directive.KindGet, directive.KindMut:
		err = r.getter(m, &md)
	case directive.KindSet:
		err = r.setter(m, &md)
	case directive.KindClr:
		err = r.clear(m, &md)
	default:
		err = fmt.Errorf("unknown method kind %s", m.Kind)
	}

	if err != nil {
		return methodData{}, err
	}

	if r.comments {
		md.Doc = name + " " + describe(m)
	}

	return md, nil
}

func (r *recordRenderer) field(m *plan.MethodDescriptor) string {
	return r.recv + "." + m.Field
}

func (r *recordRenderer) getter(m *plan.MethodDescriptor, md *methodData) error {
	fe := r.field(m)
	ft := r.imports.typeString(m.FieldType)

	switch m.Return.Kind {
	case plan.ReturnValue:
		md.Results = ft
		md.Body = []string{"return " + fe}

	case plan.ReturnClone:
		md.Results = ft
		md.Body = r.cloneBody(m.FieldType, fe)

	case plan.ReturnReference:
		md.Results = "*" + ft
		md.Body = []string{"return &" + fe}

	case plan.ReturnTextView:
		md.Results = "string"
		md.Body = []string{"return string(" + fe + ")"}

	case plan.ReturnSliceView:
		md.Results = "[]" + r.imports.typeString(plan.SequenceElem(m.FieldType))
		if plan.IsSlice(m.FieldType) {
			md.Body = []string{"return " + fe}
		} else {
			md.Body = []string{"return " + fe + "[:]"}
		}

	case plan.ReturnOptionalReference:
		md.Results = ft
		md.Body = []string{"return " + fe}

	case plan.ReturnOptionalValue:
		inner := r.imports.typeString(plan.OptionInner(m.FieldType))
		md.Results = "(" + inner + ", bool)"
		md.Body = []string{
			"if " + fe + " == nil {",
			"\tvar zero " + inner,
			"\treturn zero, false",
			"}",
			"return *" + fe + ", true",
		}

	default:
		return fmt.Errorf("cannot render %s return of a %s method", m.Return.Kind, m.Kind)
	}

	return nil
}

// cloneBody returns a body handing back an independent copy of the field.
func (r *recordRenderer) cloneBody(t *analyze.TypeInfo, fe string) []string {
	switch shapeOf(t) {
	case analyze.TypeKindSlice:
		return []string{"return " + r.imports.add("slices", "slices") + ".Clone(" + fe + ")"}

	case analyze.TypeKindMap:
		return []string{"return " + r.imports.add("maps", "maps") + ".Clone(" + fe + ")"}

	case analyze.TypeKindPointer:
		return []string{
			"if " + fe + " == nil {",
			"\treturn nil",
			"}",
			"dup := *" + fe,
			"return &dup",
		}
	}

	if t != nil && hasCloneMethod(t.GoType) {
		return []string{"return " + fe + ".Clone()"}
	}

	return []string{"return " + fe}
}

func (r *recordRenderer) setter(m *plan.MethodDescriptor, md *methodData) error {
	if len(m.Params) != 1 {
		return fmt.Errorf("setter takes one parameter, descriptor has %d", len(m.Params))
	}

	param := m.Params[0]

	name := param.Name
	if name == r.recv {
		name = "value"
	}

	var stored string

	switch param.Conversion {
	case plan.ConvertIntoInner:
		md.Params = name + " " + r.imports.typeString(param.Type)
		stored = "&" + name

	case plan.CollectElements:
		md.Params = name + " ..." + r.imports.typeString(param.Type)
		stored = r.imports.add("slices", "slices") + ".Clone(" + name + ")"

	default:
		md.Params = name + " " + r.imports.typeString(param.Type)
		stored = name
	}

	fe := r.field(m)
	assign := fe + " = " + stored

	switch m.Body {
	case plan.BodyConsumeAndReturnSelf:
		md.Results = r.record.TypeExpr()
		md.Body = []string{assign, "return " + r.recv}

	case plan.BodySwapAndReturnPrevious:
		md.Results = r.imports.typeString(m.FieldType)
		md.Body = []string{"prev := " + fe, assign, "return prev"}

	case plan.BodyMutateInPlace:
		md.Body = []string{assign}
		if m.Return.Kind == plan.ReturnSelfReference {
			md.Results = "*" + r.record.TypeExpr()
			md.Body = append(md.Body, "return "+r.recv)
		}

	default:
		return fmt.Errorf("cannot render %s body of a setter", m.Body)
	}

	return nil
}

func (r *recordRenderer) clear(m *plan.MethodDescriptor, md *methodData) error {
	fe := r.field(m)
	zero := []string{"var zero " + r.imports.typeString(m.FieldType), fe + " = zero"}

	switch m.Reset {
	case plan.ResetAbsent:
		md.Body = []string{fe + " = nil"}

	case plan.ResetEmptySequence:
		if plan.IsSlice(m.FieldType) {
			md.Body = []string{"clear(" + fe + ")", fe + " = " + fe + "[:0]"}
		} else {
			md.Body = []string{"clear(" + fe + "[:])"}
		}

	case plan.ResetEmptyText:
		md.Body = []string{fe + ` = ""`}

	case plan.ResetZero:
		md.Body = zero

	case plan.ResetDefault:
		if shapeOf(m.FieldType) == analyze.TypeKindMap {
			md.Body = []string{"clear(" + fe + ")"}
		} else {
			md.Body = zero
		}

	default:
		return fmt.Errorf("cannot render %s reset", m.Reset)
	}

	return nil
}

// shapeOf returns the structural kind of t, looking through named types.
func shapeOf(t *analyze.TypeInfo) analyze.TypeKind {
	for range 32 {
		if t == nil {
			return analyze.TypeKindUnknown
		}

		if (t.Kind != analyze.TypeKindAlias && t.Kind != analyze.TypeKindExternal) || t.Underlying == nil {
			return t.Kind
		}

		t = t.Underlying
	}

	return analyze.TypeKindUnknown
}

// hasCloneMethod reports whether t has a method Clone() t.
func hasCloneMethod(t types.Type) bool {
	if t == nil {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, true, nil, "Clone")

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), t)
}

// describe returns the doc comment of a method, without its name.
func describe(m *plan.MethodDescriptor) string {
	f := m.Field

	switch m.Kind {
	case directive.KindMut:
		return "returns a pointer to " + f + " for in-place modification."
	case directive.KindSet:
		switch m.Body {
		case plan.BodyConsumeAndReturnSelf:
			return "returns a copy of the receiver with " + f + " set."
		case plan.BodySwapAndReturnPrevious:
			return "sets " + f + " and returns its previous value."
		default:
			return "sets " + f + "."
		}
	case directive.KindClr:
		switch m.Reset {
		case plan.ResetAbsent:
			return "unsets " + f + "."
		case plan.ResetEmptySequence, plan.ResetEmptyText:
			return "empties " + f + "."
		default:
			return "resets " + f + " to its zero value."
		}
	}

	switch m.Return.Kind {
	case plan.ReturnClone:
		return "returns a copy of " + f + "."
	case plan.ReturnReference:
		return "returns a pointer to " + f + "."
	case plan.ReturnSliceView:
		return "returns the elements of " + f + ". The result shares storage with the receiver."
	case plan.ReturnOptionalReference:
		return "returns " + f + ", or nil when it is unset."
	case plan.ReturnOptionalValue:
		return "returns " + f + " and whether it is set."
	default:
		return "returns " + f + "."
	}
}

package plan

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accessor-generator/internal/analyze"
	"accessor-generator/internal/directive"
)

func newFieldContext(name string, typ *analyze.TypeInfo) *fieldContext {
	rec := newRecord("Order", directive.Block{}, Field{Name: name, Type: typ})

	return &fieldContext{
		record:   rec,
		field:    &rec.Fields[0],
		category: Classify(typ),
		stringer: analyze.NewTypeStringer(),
	}
}

func TestSynthesizeGet_Auto(t *testing.T) {
	str := basicType(types.String)
	u32 := basicType(types.Uint32)

	tests := []struct {
		name    string
		typ     *analyze.TypeInfo
		ret     ReturnKind
		retType string
		body    Body
	}{
		{"scalar", u32, ReturnValue, "uint32", BodyReturnValue},
		{"text", str, ReturnTextView, "string", BodyReturnReference},
		{"slice", sliceOf(str), ReturnSliceView, "[]string", BodyReturnReference},
		{"array", arrayOf(32, basicType(types.Uint8)), ReturnSliceView, "[]uint8", BodyReturnReference},
		{"option of text", pointerTo(str), ReturnOptionalReference, "*string", BodyReturnOptionalReference},
		{"option of scalar", pointerTo(u32), ReturnOptionalValue, "(uint32, bool)", BodyReturnValue},
		{"generic", mapOf(str, u32), ReturnReference, "*map[string]uint32", BodyReturnReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFieldContext("total", tt.typ)
			rc := ResolvedConfig{Kind: directive.KindGet, Visibility: directive.Public, GetType: directive.GetAuto}

			desc, err := synthesizeGet(fc, rc)
			require.NoError(t, err)

			assert.Equal(t, ReceiverShared, desc.Receiver)
			assert.Equal(t, tt.ret, desc.Return.Kind)
			assert.Equal(t, tt.retType, desc.Return.TypeName)
			assert.Equal(t, tt.body, desc.Body)
			assert.Empty(t, desc.Params)
		})
	}
}

func TestSynthesizeGet_ExplicitPolicies(t *testing.T) {
	str := basicType(types.String)

	fc := newFieldContext("owner", str)

	clone, err := synthesizeGet(fc, ResolvedConfig{Kind: directive.KindGet, GetType: directive.GetClone})
	require.NoError(t, err)
	assert.Equal(t, ReturnClone, clone.Return.Kind)
	assert.Equal(t, BodyReturnValue, clone.Body)

	ref, err := synthesizeGet(fc, ResolvedConfig{Kind: directive.KindGet, GetType: directive.GetRef})
	require.NoError(t, err)
	assert.Equal(t, ReturnReference, ref.Return.Kind)
	assert.Equal(t, "*string", ref.Return.TypeName)

	cp, err := synthesizeGet(fc, ResolvedConfig{Kind: directive.KindGet, GetType: directive.GetCopy})
	require.NoError(t, err)
	assert.Equal(t, ReturnValue, cp.Return.Kind)
}

func TestSynthesizeGet_CopyNeedsCopyableField(t *testing.T) {
	fc := newFieldContext("tags", sliceOf(basicType(types.String)))

	_, err := synthesizeGet(fc, ResolvedConfig{Kind: directive.KindGet, GetType: directive.GetCopy})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestSynthesizeSet_Policies(t *testing.T) {
	u32 := basicType(types.Uint32)

	tests := []struct {
		policy   directive.SetInputPolicy
		receiver Receiver
		ret      ReturnKind
		retType  string
		body     Body
	}{
		{directive.SetRef, ReceiverMutable, ReturnSelfReference, "*Order", BodyMutateInPlace},
		{directive.SetOwn, ReceiverOwned, ReturnSelf, "Order", BodyConsumeAndReturnSelf},
		{directive.SetNone, ReceiverMutable, ReturnNothing, "", BodyMutateInPlace},
		{directive.SetReplace, ReceiverMutable, ReturnPrevious, "uint32", BodySwapAndReturnPrevious},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			fc := newFieldContext("age", u32)
			desc, err := synthesizeSet(fc, ResolvedConfig{Kind: directive.KindSet, SetType: tt.policy})
			require.NoError(t, err)

			assert.Equal(t, tt.receiver, desc.Receiver)
			assert.Equal(t, tt.ret, desc.Return.Kind)
			assert.Equal(t, tt.retType, desc.Return.TypeName)
			assert.Equal(t, tt.body, desc.Body)
			require.Len(t, desc.Params, 1)
			assert.Equal(t, ConvertIntoField, desc.Params[0].Conversion)
			assert.Equal(t, "uint32", desc.Params[0].TypeName)
		})
	}
}

func TestSynthesizeSet_Params(t *testing.T) {
	str := basicType(types.String)

	tests := []struct {
		name       string
		typ        *analyze.TypeInfo
		fullOption bool
		conversion Conversion
		typeName   string
		variadic   bool
	}{
		{"option takes inner", pointerTo(str), false, ConvertIntoInner, "string", false},
		{"full option takes option", pointerTo(str), true, ConvertIntoOption, "*string", false},
		{"slice collects elements", sliceOf(str), false, CollectElements, "...string", true},
		{"array takes field", arrayOf(4, str), false, ConvertIntoField, "[4]string", false},
		{"map takes field", mapOf(str, str), false, ConvertIntoField, "map[string]string", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFieldContext("value", tt.typ)
			rc := ResolvedConfig{Kind: directive.KindSet, SetType: directive.SetRef, FullOption: tt.fullOption}

			desc, err := synthesizeSet(fc, rc)
			require.NoError(t, err)
			require.Len(t, desc.Params, 1)

			p := desc.Params[0]
			assert.Equal(t, setterParamName, p.Name)
			assert.Equal(t, tt.conversion, p.Conversion)
			assert.Equal(t, tt.typeName, p.TypeName)
			assert.Equal(t, tt.variadic, p.Variadic)
		})
	}
}

func TestSynthesizeMut(t *testing.T) {
	for _, typ := range []*analyze.TypeInfo{
		basicType(types.Int), pointerTo(basicType(types.String)), mapOf(basicType(types.String), basicType(types.Int)),
	} {
		fc := newFieldContext("state", typ)
		desc, err := synthesizeMut(fc, ResolvedConfig{Kind: directive.KindMut, Prefix: "mut_"})
		require.NoError(t, err)

		assert.Equal(t, "mut_state", desc.Name)
		assert.Equal(t, ReceiverMutable, desc.Receiver)
		assert.Equal(t, ReturnReference, desc.Return.Kind)
		assert.Equal(t, BodyReturnReference, desc.Body)
	}
}

func TestClrEligible(t *testing.T) {
	categories := []Category{
		{Kind: OptionOf, Inner: &Category{Kind: ScalarCopy}},
		{Kind: SequenceLike},
		{Kind: StringLike},
		{Kind: ScalarCopy},
		{Kind: GenericOwned},
	}

	want := map[directive.ClrScope][]bool{
		directive.ClrOptionOnly: {true, false, false, false, false},
		directive.ClrAuto:       {true, true, false, false, false},
		directive.ClrAll:        {true, true, true, true, true},
	}

	for scope, expected := range want {
		for i, c := range categories {
			assert.Equal(t, expected[i], ClrEligible(scope, c), "%s on %s", scope, c)
		}
	}
}

func TestSynthesizeClr(t *testing.T) {
	str := basicType(types.String)

	tests := []struct {
		name  string
		typ   *analyze.TypeInfo
		reset Reset
	}{
		{"option", pointerTo(str), ResetAbsent},
		{"sequence", sliceOf(str), ResetEmptySequence},
		{"text", str, ResetEmptyText},
		{"scalar", basicType(types.Int64), ResetZero},
		{"generic", mapOf(str, str), ResetDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := newFieldContext("slot", tt.typ)
			desc, err := synthesizeClr(fc, ResolvedConfig{Kind: directive.KindClr, Prefix: "clear_", Scope: directive.ClrAll})
			require.NoError(t, err)
			require.NotNil(t, desc)

			assert.Equal(t, "clear_slot", desc.Name)
			assert.Equal(t, tt.reset, desc.Reset)
			assert.Equal(t, BodyResetToDefault, desc.Body)
			assert.Equal(t, ReturnNothing, desc.Return.Kind)
		})
	}

	fc := newFieldContext("slot", str)
	desc, err := synthesizeClr(fc, ResolvedConfig{Kind: directive.KindClr, Scope: directive.ClrOptionOnly})
	require.NoError(t, err)
	assert.Nil(t, desc)
}

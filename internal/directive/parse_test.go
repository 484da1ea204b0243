package directive

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldDirectives(t *testing.T) {
	fd, err := ParseFieldDirectives("get(crate,type=ref),set(own,full_option,prefix=with_),mut_(public,suffix=_mut),clr(scope=all)")
	require.NoError(t, err)

	assert.False(t, fd.Skip)
	require.NotNil(t, fd.Get.Visibility)
	assert.Equal(t, Scoped, *fd.Get.Visibility)
	assert.Equal(t, GetRef, *fd.Get.GetType)
	assert.Nil(t, fd.Get.Prefix)

	assert.Equal(t, SetOwn, *fd.Set.SetType)
	assert.True(t, *fd.Set.FullOption)
	assert.Equal(t, "with_", *fd.Set.Prefix)
	assert.Nil(t, fd.Set.Visibility)

	assert.Equal(t, Public, *fd.Mut.Visibility)
	assert.Equal(t, "_mut", *fd.Mut.Suffix)

	assert.Equal(t, ClrAll, *fd.Clr.Scope)
	assert.Nil(t, fd.Clr.Visibility)
}

func TestParseFieldDirectives_BarePolicyKeywords(t *testing.T) {
	fd, err := ParseFieldDirectives("get(crate,clone),set(own),clr(all)")
	require.NoError(t, err)
	assert.Equal(t, Scoped, *fd.Get.Visibility)
	assert.Equal(t, GetClone, *fd.Get.GetType)
	assert.Equal(t, SetOwn, *fd.Set.SetType)
	assert.Nil(t, fd.Set.Visibility)
	assert.Equal(t, ClrAll, *fd.Clr.Scope)

	fd, err = ParseFieldDirectives("get(auto),clr(auto)")
	require.NoError(t, err)
	assert.Equal(t, GetAuto, *fd.Get.GetType)
	assert.Equal(t, ClrAuto, *fd.Clr.Scope)

	cfg, err := ParseKindOptions(KindSet, "own,prefix=with_")
	require.NoError(t, err)
	assert.Equal(t, SetOwn, *cfg.SetType)
	assert.Equal(t, "with_", *cfg.Prefix)
}

func TestParseFieldDirectives_Skip(t *testing.T) {
	fd, err := ParseFieldDirectives("skip")
	require.NoError(t, err)
	assert.True(t, fd.Skip)
	assert.True(t, fd.Block.IsZero())
}

func TestParseFieldDirectives_NamesAndQuotes(t *testing.T) {
	fd, err := ParseFieldDirectives(`get(name='identification'), set(prefix=, suffix="_to")`)
	require.NoError(t, err)
	assert.Equal(t, "identification", *fd.Get.Name)
	assert.Equal(t, "", *fd.Set.Prefix)
	assert.Equal(t, "_to", *fd.Set.Suffix)
}

func TestParseFieldDirectives_GroupsOfOneKindCombine(t *testing.T) {
	fd, err := ParseFieldDirectives("get(public),get(type=copy)")
	require.NoError(t, err)
	assert.Equal(t, Public, *fd.Get.Visibility)
	assert.Equal(t, GetCopy, *fd.Get.GetType)
}

func TestParseFieldDirectives_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		contains   string
		suggestion string
	}{
		{"scope on set", "set(scope=all)", "scope is not valid for set", ""},
		{"type on mut", "mut_(type=ref)", "type is not valid for mut_", ""},
		{"full_option on get", "get(full_option)", "full_option is not valid for get", ""},
		{"skip with others", "skip,get(public)", "skip cannot be combined with get", ""},
		{"skip twice", "skip,skip", "skip given twice", ""},
		{"visibility twice", "get(public,crate)", "visibility given twice", ""},
		{"visibility twice across groups", "get(public),get(private)", "visibility given twice", ""},
		{"prefix twice", "set(prefix=a,prefix=b)", "prefix given twice", ""},
		{"bare and keyed type", "set(own,type=ref)", "type given twice", ""},
		{"two bare types", "get(ref,copy)", "type given twice", ""},
		{"bare and keyed scope", "clr(all,scope=option)", "scope given twice", ""},
		{"set keyword on get", "get(own)", `unknown option "own"`, ""},
		{"clr keyword on set", "set(option)", `unknown option "option"`, "full_option"},
		{"empty group", "get()", "empty option list", ""},
		{"empty option", "get(public,)", "empty option", ""},
		{"empty directive", "get(public),", "empty directive", ""},
		{"no option list", "get", "needs an option list", ""},
		{"unknown kind", "mut(public)", `unknown directive "mut"`, "mut_"},
		{"unknown option", "get(pubic)", `unknown option "pubic"`, "public"},
		{"unknown get type", "get(type=borrow)", `unknown get type "borrow"`, ""},
		{"unknown set type", "set(type=replce)", `unknown set type "replce"`, "replace"},
		{"unknown scope", "clr(scope=options)", `unknown clr scope "options"`, "option"},
		{"visibility with value", "get(public=yes)", "public takes no value", ""},
		{"name without value", "get(name)", "name needs a value", ""},
		{"empty name", "get(name=)", "name must not be empty", ""},
		{"unbalanced", "get(public", "unbalanced parentheses", ""},
		{"nested", "get(public(x))", "nested parentheses", ""},
		{"empty", "", "empty directive", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFieldDirectives(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrStructural)
			assert.Contains(t, err.Error(), tt.contains)

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.suggestion, se.Suggestion)
		})
	}
}

func TestParseTag(t *testing.T) {
	fd, ok, err := ParseTag(reflect.StructTag(`json:"name" property:"get(type=clone)"`))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, GetClone, *fd.Get.GetType)

	_, ok, err = ParseTag(reflect.StructTag(`json:"name"`))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = ParseTag(reflect.StructTag(`property:"set(scope=all)"`))
	require.Error(t, err)
	assert.True(t, ok)
	assert.Contains(t, err.Error(), `property:"set(scope=all)": `)
}

func TestParseRecordDoc(t *testing.T) {
	block, ok, err := ParseRecordDoc([]string{
		"// Pet is a record.",
		"//",
		"//property:get(public),set(private)",
		"//property:mut_(disable),clr(crate,scope=option)",
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Public, *block.Get.Visibility)
	assert.Equal(t, Private, *block.Set.Visibility)
	assert.Equal(t, Disabled, *block.Mut.Visibility)
	assert.Equal(t, Scoped, *block.Clr.Visibility)
	assert.Equal(t, ClrOptionOnly, *block.Clr.Scope)
}

func TestParseRecordDoc_NoDirective(t *testing.T) {
	block, ok, err := ParseRecordDoc([]string{"// property: looks similar but has a space"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, block.IsZero())
}

func TestParseRecordDoc_Errors(t *testing.T) {
	_, _, err := ParseRecordDoc([]string{"//property:skip"})
	require.ErrorIs(t, err, ErrStructural)
	assert.Contains(t, err.Error(), "skip is only valid on fields")

	_, _, err = ParseRecordDoc([]string{"//property:get(public)", "//property:get(crate)"})
	require.ErrorIs(t, err, ErrStructural)
	assert.Contains(t, err.Error(), "//property:get(crate): get: visibility given twice")
}

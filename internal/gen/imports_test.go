package gen

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportSet_QualifiesAndAliases(t *testing.T) {
	s := newImportSet("example.com/store")

	local := types.NewPackage("example.com/store", "store")
	first := types.NewPackage("example.com/a/model", "model")
	second := types.NewPackage("example.com/b/model", "model")

	assert.Empty(t, s.qualifier(local))
	assert.Equal(t, "model", s.qualifier(first))
	assert.Equal(t, "model2", s.qualifier(second))
	assert.Equal(t, "model", s.qualifier(first))
	assert.Equal(t, "slices", s.add("slices", "slices"))

	assert.Equal(t, []importSpec{
		{Path: "example.com/a/model", ref: "model"},
		{Alias: "model2", Path: "example.com/b/model", ref: "model2"},
		{Path: "slices", ref: "slices"},
	}, s.specs())
}

func TestImportSet_TypeString(t *testing.T) {
	s := newImportSet("example.com/store")

	other := types.NewPackage("example.com/clock", "clock")
	named := types.NewNamed(types.NewTypeName(token.NoPos, other, "Instant", nil), types.Typ[types.Int64], nil)

	assert.Equal(t, "map[string]*clock.Instant", types.TypeString(
		types.NewMap(types.Typ[types.String], types.NewPointer(named)), s.qualifier))
	assert.Equal(t, "any", s.typeString(nil))
	assert.Len(t, s.specs(), 1)
}

func TestImportSet_GuessedNamesGetAliases(t *testing.T) {
	s := newImportSet("example.com/store")

	assert.Equal(t, "yaml", s.add("gopkg.in/yaml.v3", ""))
	assert.Equal(t, "clock", s.add("example.com/clock", ""))

	assert.Equal(t, []importSpec{
		{Path: "example.com/clock", ref: "clock"},
		{Alias: "yaml", Path: "gopkg.in/yaml.v3", ref: "yaml"},
	}, s.specs())
}

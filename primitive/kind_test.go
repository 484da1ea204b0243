package primitive_test

import (
	"fmt"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"

	"accessor-generator/primitive"
)

func named(pkgPath, name string, underlying types.Type) *types.Named {
	pkg := types.NewPackage(pkgPath, pkgPath)
	obj := types.NewTypeName(0, pkg, name, nil)

	return types.NewNamed(obj, underlying, nil)
}

func Example() {
	fmt.Println(primitive.FromGoType(types.Typ[types.Int]))
	fmt.Println(primitive.FromGoType(types.Typ[types.String]))
	fmt.Println(primitive.FromGoType(named("example.com/m", "Level", types.Typ[types.Int])))
	fmt.Println(primitive.FromGoType(named("example.com/m", "Code", types.Typ[types.String])))
	fmt.Println(primitive.FromGoType(named("time", "Duration", types.Typ[types.Int64])))
	fmt.Println(primitive.FromGoType(named("time", "Time", types.NewStruct(nil, nil))))
	fmt.Println(primitive.FromGoType(types.NewSlice(types.Typ[types.Int])))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindStringEnum
	// KindDuration
	// KindTime
	// KindEnum(0)
}

func TestKindEnum_IsTriviallyCopyable(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		if k.IsText() {
			assert.False(t, k.IsTriviallyCopyable(), k.String())
			continue
		}

		assert.True(t, k.IsTriviallyCopyable(), k.String())
	}

	assert.False(t, primitive.KindEnum(0).IsTriviallyCopyable())
	assert.False(t, primitive.KindEnum(primitive.KindTotal).IsValid())
}

func TestFromGoType_Aliases(t *testing.T) {
	// byte and rune are aliases of uint8 and int32
	assert.Equal(t, primitive.KindUint8, primitive.FromGoType(types.Universe.Lookup("byte").Type()))
	assert.Equal(t, primitive.KindInt32, primitive.FromGoType(types.Universe.Lookup("rune").Type()))
	assert.Equal(t, primitive.KindEnum(0), primitive.FromGoType(nil))
	assert.Equal(t, primitive.KindEnum(0), primitive.FromGoType(types.NewPointer(types.Typ[types.Int])))
}

package naming

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func namedType(pkg *types.Package, name string, underlying types.Type) *types.Named {
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(obj, underlying, nil)
}

func TestNamer_TypeIdent(t *testing.T) {
	local := types.NewPackage("example.com/shapes", "shapes")
	other := types.NewPackage("example.com/geo_metry", "geo_metry")

	ints := namedType(local, "Ints", types.NewSlice(types.Typ[types.Int]))
	point := namedType(other, "Point", types.NewStruct(nil, nil))
	complexT := namedType(local, "complex", types.NewStruct(nil, nil))
	errType := types.Universe.Lookup("error").Type()
	anyType := types.NewInterfaceType(nil, nil).Complete()

	tests := []struct {
		name string
		typ  types.Type
		want string
	}{
		{"basic", types.Typ[types.Int32], "Int32"},
		{"byte alias", types.Universe.Lookup("byte").Type(), "Byte"},
		{"uint8", types.Typ[types.Uint8], "Uint8"},
		{"local named", ints, "Ints"},
		{"unexported local named", complexT, "Complex"},
		{"external named", point, "GeoMetryPoint"},
		{"pointer", types.NewPointer(point), "GeoMetryPointPtr"},
		{"slice", types.NewSlice(types.Typ[types.Int]), "Ints"},
		{"array", types.NewArray(types.Typ[types.Float64], 3), "Float64Array3"},
		{"map", types.NewMap(types.Typ[types.String], types.Typ[types.Int]), "StringToIntMap"},
		{"chan", types.NewChan(types.SendRecv, types.Typ[types.Bool]), "BoolChan"},
		{"error", errType, "Error"},
		{"empty interface", anyType, "Any"},
	}

	n := NewNamer(local)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := n.TypeIdent(tt.typ)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamer_TypeIdentUnsupported(t *testing.T) {
	sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	m := types.NewFunc(token.NoPos, nil, "Area", sig)
	shaper := types.NewInterfaceType([]*types.Func{m}, nil).Complete()

	n := NewNamer(nil)
	for _, typ := range []types.Type{
		sig,
		types.NewStruct(nil, nil),
		shaper,
		types.Typ[types.UnsafePointer],
		types.Typ[types.UntypedInt],
		types.NewSlice(sig),
		types.NewMap(sig, types.Typ[types.Int]),
	} {
		_, ok := n.TypeIdent(typ)
		assert.False(t, ok, typ.String())
	}
}

func TestNamer_FunctionNames(t *testing.T) {
	n := NewNamer(nil)

	assert.Equal(t, "ShapeFromFloat64", n.Conversion("Shape", true, "From", "Float64"))
	assert.Equal(t, "numberToInt32", n.Conversion("number", false, "To", "Int32"))
	assert.Equal(t, "ParseGreeting", n.Parse("Greeting", true))
	assert.Equal(t, "parseGreeting", n.Parse("greeting", false))
	assert.Equal(t, "FormatGreeting", n.Format("Greeting", true))
	assert.Equal(t, "formatGreeting", n.Format("greeting", false))
	assert.Equal(t, "ShapeVariant", n.Variant("Shape", true))
	assert.Equal(t, "numberVariant", n.Variant("number", false))
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "UserCustom", toCamelCase("user_custom"))
	assert.Equal(t, "UserCustom", toCamelCase("user-custom"))
	assert.Equal(t, "", toCamelCase(""))
}

package model

import (
	"go/ast"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func variant(name string, shape Shape, ds ...*Directive) *Variant {
	return &Variant{
		Name:       name,
		Spec:       &ast.TypeSpec{Name: ast.NewIdent(name)},
		Shape:      shape,
		Inner:      types.Typ[types.Int32],
		Directives: ds,
	}
}

func names(vs []*Variant) []string {
	var out []string
	for _, v := range vs {
		out = append(out, v.Name)
	}
	return out
}

func TestDerive(t *testing.T) {
	d := DeriveEnumFrom | DeriveEnumIntoWrapped
	assert.True(t, d.Has(DeriveEnumFrom))
	assert.False(t, d.Has(DeriveEnumFromWrapped))
	assert.False(t, d.Has(0))
	assert.Equal(t, "EnumFrom,EnumIntoWrapped", d.String())

	got, ok := LookupDerive("EnumFromWrapped")
	assert.True(t, ok)
	assert.Equal(t, DeriveEnumFromWrapped, got)
	_, ok = LookupDerive("Debug")
	assert.False(t, ok)
}

func TestEnumDeclarationSelections(t *testing.T) {
	str := func(p string) *Directive { return &Directive{Kind: DirectiveStr, Pattern: p} }
	inner := &Directive{Kind: DirectiveInner}

	unit := variant("Empty", ShapeUnit, str("empty"))
	wrapped := variant("Integer", ShapeSingle, inner)
	plain := variant("Float", ShapeSingle)
	other := variant("Pair", ShapeOther)

	tests := []struct {
		name      string
		derives   Derive
		parse     []string
		wrap      []string
		unwrap    []string
		converted []string
	}{
		{
			name:      "EnumFrom only",
			derives:   DeriveEnumFrom,
			parse:     []string{"Empty"},
			wrap:      []string{"Integer"},
			converted: []string{"Integer"},
		},
		{
			name:      "EnumFrom and EnumFromWrapped select the inner variant once",
			derives:   DeriveEnumFrom | DeriveEnumFromWrapped,
			parse:     []string{"Empty"},
			wrap:      []string{"Integer", "Float"},
			converted: []string{"Integer", "Float"},
		},
		{
			name:      "EnumIntoWrapped only",
			derives:   DeriveEnumIntoWrapped,
			unwrap:    []string{"Integer", "Float"},
			converted: []string{"Integer", "Float"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &EnumDeclaration{
				Name:     "Number",
				Derives:  tt.derives,
				Variants: []*Variant{unit, wrapped, plain, other},
			}
			assert.Equal(t, tt.parse, names(e.ParseVariants()))
			assert.Equal(t, tt.wrap, names(e.WrapVariants()))
			assert.Equal(t, tt.unwrap, names(e.UnwrapVariants()))
			assert.Equal(t, tt.converted, names(e.Conversions()))
			assert.False(t, e.Formattable())
		})
	}
}

func TestFormattable(t *testing.T) {
	e := &EnumDeclaration{
		Name:    "greeting",
		Derives: DeriveEnumFrom,
		Variants: []*Variant{
			variant("Hi", ShapeUnit, &Directive{Kind: DirectiveStr, Pattern: "hi"}),
			variant("Hello", ShapeUnit, &Directive{Kind: DirectiveStr, Pattern: "hello"}),
		},
	}
	assert.True(t, e.Formattable())
	assert.False(t, e.Exported())

	p, ok := e.Variants[1].Pattern()
	assert.True(t, ok)
	assert.Equal(t, "hello", p)
}

func TestStrConversionOf(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want StrConversion
		bits int
	}{
		{types.Typ[types.String], StrString, 0},
		{types.Typ[types.Bool], StrBool, 0},
		{types.Typ[types.Int], StrInt, 0},
		{types.Typ[types.Int32], StrInt, 32},
		{types.Typ[types.Uint8], StrUint, 8},
		{types.Typ[types.Float32], StrFloat, 32},
		{types.Typ[types.Complex128], StrComplex, 128},
		{types.Typ[types.UnsafePointer], StrUnsupported, 0},
		{types.NewSlice(types.Typ[types.Int]), StrUnsupported, 0},
		{types.NewPointer(types.Typ[types.String]), StrUnsupported, 0},
		{namedType("Mode", types.Typ[types.Int16], false), StrInt, 16},
		{namedType("Color", types.Typ[types.String], true), StrText, 0},
		{namedType("Level", types.Typ[types.Int], true), StrText, 0},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			got, bits := StrConversionOf(tt.typ)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.bits, bits)
		})
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "Single", ShapeSingle.String())
	assert.Equal(t, "StrInner", DirectiveStrInner.String())
	assert.Equal(t, "Shape(7)", Shape(7).String())
}

// namedType declares a defined type over underlying, optionally with a
// pointer-receiver UnmarshalText method.
func namedType(name string, underlying types.Type, text bool) *types.Named {
	pkg := types.NewPackage("example.com/enums", "enums")
	named := types.NewNamed(types.NewTypeName(token.NoPos, pkg, name, nil), underlying, nil)
	if text {
		recv := types.NewVar(token.NoPos, pkg, "x", types.NewPointer(named))
		params := types.NewTuple(types.NewVar(token.NoPos, pkg, "text", types.NewSlice(types.Typ[types.Byte])))
		results := types.NewTuple(types.NewVar(token.NoPos, pkg, "", types.Universe.Lookup("error").Type()))
		sig := types.NewSignatureType(recv, nil, nil, params, results, false)
		named.AddMethod(types.NewFunc(token.NoPos, pkg, "UnmarshalText", sig))
	}
	return named
}

package generator

import (
	"github.com/dave/jennifer/jen"

	"github.com/origadmin/enumfrom/internal/model"
)

// genUnwrap emits the fallible conversion from the enum to the inner type of
// v.
//
//	func NumberToInt32(v Number) (int32, error) {
//		x, ok := v.(Integer)
//		if !ok {
//			var zero int32
//			return zero, &enumfrom.VariantError{Enum: "Number", Got: NumberVariant(v), Want: "Integer"}
//		}
//		return int32(x), nil
//	}
func (g *Generator) genUnwrap(enum *model.EnumDeclaration, v *model.Variant) {
	ident, _ := g.namer.TypeIdent(v.Inner)
	name := g.namer.Conversion(enum.Name, enum.Exported(), "To", ident)
	variantName := g.namer.Variant(enum.Name, enum.Exported())
	g.fn(name, "returns the value held by the %s variant of v.", v.Name).
		Params(jen.Id("v").Add(g.named(enum.Type))).
		Params(g.typeCode(v.Inner), jen.Error()).
		Block(
			jen.List(jen.Id("x"), jen.Id("ok")).Op(":=").Id("v").Assert(g.named(v.Type)),
			jen.If(jen.Op("!").Id("ok")).Block(
				jen.Var().Id("zero").Add(g.typeCode(v.Inner)),
				jen.Return(jen.Id("zero"), jen.Op("&").Qual(RuntimePath, "VariantError").Values(jen.Dict{
					jen.Id("Enum"): jen.Lit(enum.Name),
					jen.Id("Want"): jen.Lit(v.Name),
					jen.Id("Got"):  jen.Id(variantName).Call(jen.Id("v")),
				})),
			),
			jen.Return(g.unwrap(v, jen.Id("x")), jen.Nil()),
		)
}

// unwrap extracts the inner value of x, a value of the variant type.
func (g *Generator) unwrap(v *model.Variant, x *jen.Statement) *jen.Statement {
	if v.Field != "" {
		return x.Dot(v.Field)
	}
	return g.convert(v.Inner, x)
}

// genVariantName emits the function naming the variant held by an enum
// value.
func (g *Generator) genVariantName(enum *model.EnumDeclaration) {
	name := g.namer.Variant(enum.Name, enum.Exported())
	g.fn(name, "returns the name of the %s variant held by v.", enum.Name).
		Params(jen.Id("v").Add(g.named(enum.Type))).
		String().
		Block(
			jen.Switch(jen.Id("v").Assert(jen.Type())).BlockFunc(func(sw *jen.Group) {
				for _, v := range enum.Variants {
					sw.Case(g.named(v.Type)).Block(jen.Return(jen.Lit(v.Name)))
				}
			}),
			jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit("%T"), jen.Id("v"))),
		)
}

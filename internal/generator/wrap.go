package generator

import (
	"github.com/dave/jennifer/jen"

	"github.com/origadmin/enumfrom/internal/model"
)

// genWrap emits the total conversion from the inner type of v to the enum.
//
//	func NumberFromInt32(v int32) Number {
//		return Integer(v)
//	}
func (g *Generator) genWrap(enum *model.EnumDeclaration, v *model.Variant) {
	ident, _ := g.namer.TypeIdent(v.Inner)
	name := g.namer.Conversion(enum.Name, enum.Exported(), "From", ident)
	g.fn(name, "wraps v in the %s variant of %s.", v.Name, enum.Name).
		Params(jen.Id("v").Add(g.typeCode(v.Inner))).
		Add(g.named(enum.Type)).
		Block(jen.Return(g.wrap(v, jen.Id("v"))))
}

// wrap builds the variant around x: a conversion for a defined type, a
// composite literal for a struct embedding the inner type.
func (g *Generator) wrap(v *model.Variant, x jen.Code) *jen.Statement {
	if v.Field != "" {
		return g.named(v.Type).Values(x)
	}
	return g.named(v.Type).Call(x)
}

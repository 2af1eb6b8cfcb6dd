package generator

import (
	"go/types"

	"github.com/dave/jennifer/jen"

	"github.com/origadmin/enumfrom/internal/model"
)

// genParse emits the function constructing an enum value from its pattern.
//
//	func ParseGreeting(s string) (Greeting, error) {
//		switch s {
//		case "hi":
//			return Hi{}, nil
//		}
//		return nil, &enumfrom.ParseError{Enum: "Greeting", Input: s}
//	}
func (g *Generator) genParse(enum *model.EnumDeclaration) {
	name := g.namer.Parse(enum.Name, enum.Exported())
	g.fn(name, "returns the %s variant registered for the pattern s.", enum.Name).
		Params(jen.Id("s").String()).
		Params(g.named(enum.Type), jen.Error()).
		Block(
			jen.Switch(jen.Id("s")).BlockFunc(func(sw *jen.Group) {
				for _, v := range enum.ParseVariants() {
					pattern, _ := v.Pattern()
					sw.Case(jen.Lit(pattern)).BlockFunc(func(c *jen.Group) {
						g.parseCase(c, enum, v)
					})
				}
			}),
			jen.Return(jen.Nil(), g.parseError(enum, nil)),
		)
}

func (g *Generator) parseCase(c *jen.Group, enum *model.EnumDeclaration, v *model.Variant) {
	if v.Shape == model.ShapeUnit {
		c.Return(g.named(v.Type).Values(), jen.Nil())
		return
	}
	if enum.StrPolicy == model.StrZero {
		c.Var().Id("x").Add(g.typeCode(v.Inner))
		c.Return(g.wrap(v, jen.Id("x")), jen.Nil())
		return
	}

	conv, bits := model.StrConversionOf(v.Inner)
	var call jen.Code
	var parsed types.Type
	switch conv {
	case model.StrString:
		c.Return(g.wrapParsed(v, types.Typ[types.String], jen.Id("s")), jen.Nil())
		return
	case model.StrText:
		c.Var().Id("x").Add(g.typeCode(v.Inner))
		c.If(
			jen.Err().Op(":=").Id("x").Dot("UnmarshalText").Call(jen.Index().Byte().Call(jen.Id("s"))),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.Nil(), g.parseError(enum, jen.Err())))
		c.Return(g.wrap(v, jen.Id("x")), jen.Nil())
		return
	case model.StrBool:
		call, parsed = jen.Qual("strconv", "ParseBool").Call(jen.Id("s")), types.Typ[types.Bool]
	case model.StrInt:
		call, parsed = jen.Qual("strconv", "ParseInt").Call(jen.Id("s"), jen.Lit(0), jen.Lit(bits)), types.Typ[types.Int64]
	case model.StrUint:
		call, parsed = jen.Qual("strconv", "ParseUint").Call(jen.Id("s"), jen.Lit(0), jen.Lit(bits)), types.Typ[types.Uint64]
	case model.StrFloat:
		call, parsed = jen.Qual("strconv", "ParseFloat").Call(jen.Id("s"), jen.Lit(bits)), types.Typ[types.Float64]
	case model.StrComplex:
		call, parsed = jen.Qual("strconv", "ParseComplex").Call(jen.Id("s"), jen.Lit(bits)), types.Typ[types.Complex128]
	case model.StrUnsupported:
		// Rejected by the analyzer.
		c.Var().Id("x").Add(g.typeCode(v.Inner))
		c.Return(g.wrap(v, jen.Id("x")), jen.Nil())
		return
	}

	c.List(jen.Id("x"), jen.Err()).Op(":=").Add(call)
	c.If(jen.Err().Op("!=").Nil()).Block(
		jen.Return(jen.Nil(), g.parseError(enum, jen.Err())),
	)
	c.Return(g.wrapParsed(v, parsed, jen.Id("x")), jen.Nil())
}

// wrapParsed wraps x of the basic type parsed. A defined type over a basic
// type converts from it directly.
func (g *Generator) wrapParsed(v *model.Variant, parsed types.Type, x jen.Code) *jen.Statement {
	if v.Field == "" {
		return g.wrap(v, x)
	}
	return g.wrap(v, g.convertFrom(v.Inner, parsed, x))
}

// parseError builds the error returned for s, wrapping cause when set.
func (g *Generator) parseError(enum *model.EnumDeclaration, cause jen.Code) *jen.Statement {
	fields := jen.Dict{
		jen.Id("Enum"):  jen.Lit(enum.Name),
		jen.Id("Input"): jen.Id("s"),
	}
	if cause != nil {
		fields[jen.Id("Err")] = cause
	}
	return jen.Op("&").Qual(RuntimePath, "ParseError").Values(fields)
}

// genFormat emits the function returning the pattern of an enum value.
func (g *Generator) genFormat(enum *model.EnumDeclaration) {
	name := g.namer.Format(enum.Name, enum.Exported())
	g.fn(name, "returns the pattern registered for the variant held by v.").
		Params(jen.Id("v").Add(g.named(enum.Type))).
		String().
		Block(
			jen.Switch(jen.Id("v").Assert(jen.Type())).BlockFunc(func(sw *jen.Group) {
				for _, v := range enum.Variants {
					pattern, _ := v.Pattern()
					sw.Case(g.named(v.Type)).Block(jen.Return(jen.Lit(pattern)))
				}
			}),
			jen.Return(jen.Lit("")),
		)
}

package generator

import (
	"go/types"

	"github.com/dave/jennifer/jen"
)

// typeCode renders t, qualifying named types through the file imports.
func (g *Generator) typeCode(t types.Type) *jen.Statement {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return jen.Id(t.Name())
	case *types.Named:
		s := g.named(t)
		if args := t.TypeArgs(); args.Len() > 0 {
			codes := make([]jen.Code, args.Len())
			for i := range codes {
				codes[i] = g.typeCode(args.At(i))
			}
			s = s.Types(codes...)
		}
		return s
	case *types.Pointer:
		return jen.Op("*").Add(g.typeCode(t.Elem()))
	case *types.Slice:
		return jen.Index().Add(g.typeCode(t.Elem()))
	case *types.Array:
		return jen.Index(jen.Lit(int(t.Len()))).Add(g.typeCode(t.Elem()))
	case *types.Map:
		return jen.Map(g.typeCode(t.Key())).Add(g.typeCode(t.Elem()))
	case *types.Chan:
		switch t.Dir() {
		case types.SendOnly:
			return jen.Chan().Op("<-").Add(g.typeCode(t.Elem()))
		case types.RecvOnly:
			return jen.Op("<-").Chan().Add(g.typeCode(t.Elem()))
		default:
			return jen.Chan().Add(g.typeCode(t.Elem()))
		}
	case *types.Interface:
		if t.Empty() {
			return jen.Id("any")
		}
	}
	// Inner types without a name are rejected by the analyzer.
	return jen.Id(types.TypeString(t, types.RelativeTo(g.pkg)))
}

// convert renders the conversion of x to t. Types starting with an operator
// are parenthesized.
func (g *Generator) convert(t types.Type, x jen.Code) *jen.Statement {
	switch types.Unalias(t).(type) {
	case *types.Pointer, *types.Chan:
		return jen.Parens(g.typeCode(t)).Call(x)
	default:
		return g.typeCode(t).Call(x)
	}
}

// convertFrom converts x of type from to t, leaving it alone when the types
// are identical.
func (g *Generator) convertFrom(t, from types.Type, x jen.Code) jen.Code {
	if types.Identical(t, from) {
		return x
	}
	return g.convert(t, x)
}

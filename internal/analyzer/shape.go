package analyzer

import (
	"go/ast"
	"go/types"

	"github.com/origadmin/enumfrom/internal/model"
)

// classify determines the payload of a variant. A struct literal yields a unit
// (no fields), a single inner value (one embedded field) or other. Any other
// defined type carries the type it was defined over.
func (a *EnumAnalyzer) classify(spec *ast.TypeSpec, named *types.Named) (model.Shape, types.Type, string) {
	if _, ok := ast.Unparen(spec.Type).(*ast.StructType); ok {
		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			return model.ShapeOther, nil, ""
		}
		switch {
		case st.NumFields() == 0:
			return model.ShapeUnit, nil, ""
		case st.NumFields() == 1 && st.Field(0).Embedded():
			f := st.Field(0)
			return model.ShapeSingle, f.Type(), f.Name()
		default:
			return model.ShapeOther, nil, ""
		}
	}

	inner := a.pkg.TypesInfo.TypeOf(spec.Type)
	if inner == nil {
		inner = named.Underlying()
	}
	return model.ShapeSingle, inner, ""
}

// describe names the shape of a variant for diagnostics.
func describe(v *model.Variant) string {
	switch v.Shape {
	case model.ShapeUnit:
		return v.Name + " is a unit variant"
	case model.ShapeSingle:
		return v.Name + " carries one inner value"
	case model.ShapeOther:
		return v.Name + " has named or multiple fields"
	default:
		return v.Name + " has an unknown shape"
	}
}

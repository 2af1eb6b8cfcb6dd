package analyzer

import (
	"errors"
	"fmt"
	"go/types"
	"log/slog"
	"slices"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/origadmin/enumfrom/internal/diag"
	"github.com/origadmin/enumfrom/internal/model"
)

// validate checks the directives of every variant and the uniqueness of the
// generated conversions.
func (a *EnumAnalyzer) validate(enum *model.EnumDeclaration) error {
	var errs error

	// pattern -> *model.Variant, in registration order
	patterns := linkedhashmap.New()
	for _, v := range enum.Variants {
		strs := v.DirectivesOf(model.DirectiveStr)
		if len(strs) > 1 {
			for _, dir := range strs[1:] {
				errs = errors.Join(errs, a.errorAt(dir, &diag.InvalidDirectiveTargetError{
					Directive: model.DirectivePrefix + dir.Key,
					Target:    v.Name,
					Reason:    "a variant registers at most one pattern",
				}))
			}
		}
		if len(strs) > 0 {
			dir := strs[0]
			if err := a.checkStr(enum, v, dir); err != nil {
				errs = errors.Join(errs, err)
			} else if prev, found := patterns.Get(dir.Pattern); found {
				errs = errors.Join(errs, a.errorAt(v, &diag.DuplicateConversionError{
					Enum:       enum.Name,
					Conversion: "pattern " + strconv.Quote(dir.Pattern),
					Variants:   []string{prev.(*model.Variant).Name, v.Name},
				}))
			} else {
				patterns.Put(dir.Pattern, v)
			}
		}

		if v.HasInner() && v.Shape != model.ShapeSingle {
			errs = errors.Join(errs, a.errorAt(v, &diag.UnsupportedShapeError{
				Target: v.Name,
				Reason: "inner requires a variant with exactly one inner value; " + describe(v),
			}))
		}
	}
	if patterns.Size() > 0 {
		slog.Debug("Registered patterns", "enum", enum.Name, "patterns", patterns.Keys())
	}

	errs = errors.Join(errs, a.checkConversions(enum))
	errs = errors.Join(errs, a.checkDeclared(enum))
	return errs
}

// checkStr validates a str directive against the shape and inner type of its
// variant.
func (a *EnumAnalyzer) checkStr(enum *model.EnumDeclaration, v *model.Variant, dir *model.Directive) error {
	switch v.Shape {
	case model.ShapeUnit:
		return nil
	case model.ShapeOther:
		return a.errorAt(v, &diag.UnsupportedShapeError{
			Target: v.Name,
			Reason: "str requires a unit variant or a variant with one inner value; " + describe(v),
		})
	}

	if _, ok := a.namer.TypeIdent(v.Inner); !ok {
		return a.errorAt(v, a.unnameable(v))
	}
	if enum.StrPolicy == model.StrZero {
		return nil
	}

	conv, bits := model.StrConversionOf(v.Inner)
	var err error
	switch conv {
	case model.StrUnsupported:
		return a.errorAt(v, &diag.UnsupportedShapeError{
			Target: v.Name,
			Reason: fmt.Sprintf("inner type %s cannot be parsed from a string; use str-inner=zero or implement encoding.TextUnmarshaler", a.typeString(v.Inner)),
		})
	case model.StrString, model.StrText:
		return nil
	case model.StrBool:
		_, err = strconv.ParseBool(dir.Pattern)
	case model.StrInt:
		_, err = strconv.ParseInt(dir.Pattern, 0, bits)
	case model.StrUint:
		_, err = strconv.ParseUint(dir.Pattern, 0, bits)
	case model.StrFloat:
		_, err = strconv.ParseFloat(dir.Pattern, bits)
	case model.StrComplex:
		_, err = strconv.ParseComplex(dir.Pattern, bits)
	}
	if err != nil {
		return a.errorAt(dir, &diag.InvalidDirectiveTargetError{
			Directive: model.DirectivePrefix + dir.Key,
			Target:    v.Name,
			Reason:    fmt.Sprintf("pattern %q does not parse as %s", dir.Pattern, a.typeString(v.Inner)),
		})
	}
	return nil
}

// checkConversions ensures that the wrapping and unwrapping conversions are
// indexed by distinct inner types and distinct function names.
func (a *EnumAnalyzer) checkConversions(enum *model.EnumDeclaration) error {
	var errs error
	var seen typeutil.Map // types.Type -> *model.Variant
	names := make(map[string]*model.Variant)
	for _, v := range enum.Conversions() {
		ident, ok := a.namer.TypeIdent(v.Inner)
		if !ok {
			errs = errors.Join(errs, a.errorAt(v, a.unnameable(v)))
			continue
		}
		if prev, ok := seen.At(v.Inner).(*model.Variant); ok {
			errs = errors.Join(errs, a.errorAt(v, &diag.DuplicateConversionError{
				Enum:       enum.Name,
				Conversion: "of inner type " + a.typeString(v.Inner),
				Variants:   []string{prev.Name, v.Name},
			}))
			continue
		}
		seen.Set(v.Inner, v)

		for _, name := range a.conversionNames(enum, v, ident) {
			if prev, ok := names[name]; ok {
				errs = errors.Join(errs, a.errorAt(v, &diag.DuplicateConversionError{
					Enum:       enum.Name,
					Conversion: name,
					Variants:   []string{prev.Name, v.Name},
				}))
				break
			}
			names[name] = v
		}
	}
	return errs
}

// conversionNames returns the wrapping and unwrapping function names
// generated for v.
func (a *EnumAnalyzer) conversionNames(enum *model.EnumDeclaration, v *model.Variant, ident string) []string {
	var names []string
	if slices.Contains(enum.WrapVariants(), v) {
		names = append(names, a.namer.Conversion(enum.Name, enum.Exported(), "From", ident))
	}
	if slices.Contains(enum.UnwrapVariants(), v) {
		names = append(names, a.namer.Conversion(enum.Name, enum.Exported(), "To", ident))
	}
	return names
}

// checkDeclared reports generated functions that collide with declarations
// of the package. Declarations in previously generated files are ignored.
func (a *EnumAnalyzer) checkDeclared(enum *model.EnumDeclaration) error {
	type generated struct {
		name  string
		owner diag.Poser
	}
	var funcs []generated
	if enum.EmitsParse() {
		funcs = append(funcs, generated{a.namer.Parse(enum.Name, enum.Exported()), enum})
	}
	if enum.Formattable() {
		funcs = append(funcs, generated{a.namer.Format(enum.Name, enum.Exported()), enum})
	}
	if enum.EmitsVariantName() {
		funcs = append(funcs, generated{a.namer.Variant(enum.Name, enum.Exported()), enum})
	}
	for _, v := range enum.Conversions() {
		ident, ok := a.namer.TypeIdent(v.Inner)
		if !ok {
			continue
		}
		for _, name := range a.conversionNames(enum, v, ident) {
			funcs = append(funcs, generated{name, v})
		}
	}

	var errs error
	scope := a.pkg.Types.Scope()
	for _, fn := range funcs {
		obj := scope.Lookup(fn.name)
		if obj == nil || a.walker.IsGenerated(obj.Pos()) {
			continue
		}
		errs = errors.Join(errs, a.errorAt(fn.owner, &diag.DuplicateConversionError{
			Enum:       enum.Name,
			Conversion: fn.name,
			Variants: []string{
				ownerName(fn.owner),
				"the declaration at " + diag.FormatPosition(a.pkg.Fset.Position(obj.Pos())),
			},
		}))
	}
	return errs
}

func ownerName(p diag.Poser) string {
	switch p := p.(type) {
	case *model.Variant:
		return p.Name
	case *model.EnumDeclaration:
		return p.Name
	default:
		return "?"
	}
}

func (a *EnumAnalyzer) unnameable(v *model.Variant) error {
	return &diag.UnsupportedShapeError{
		Target: v.Name,
		Reason: fmt.Sprintf("inner type %s has no name usable in a function name", a.typeString(v.Inner)),
	}
}

func (a *EnumAnalyzer) typeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(a.pkg.Types))
}

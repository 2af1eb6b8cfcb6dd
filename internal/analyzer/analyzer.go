// Package analyzer introspects a loaded package: it finds the enum interfaces
// annotated with derive directives, collects their variants and validates
// every requested conversion.
package analyzer

import (
	"errors"
	"fmt"
	"go/types"
	"log/slog"

	"golang.org/x/tools/go/packages"

	"github.com/origadmin/enumfrom/internal/diag"
	"github.com/origadmin/enumfrom/internal/model"
	"github.com/origadmin/enumfrom/internal/naming"
)

// Options tune the analysis.
type Options struct {
	// StrPolicy is the str policy of enums without a str-inner directive.
	StrPolicy model.StrPolicy
}

// EnumAnalyzer builds the enum model of a single package.
type EnumAnalyzer struct {
	pkg    *packages.Package
	opts   Options
	walker *PackageWalker
	namer  *naming.Namer
}

// NewEnumAnalyzer creates a new EnumAnalyzer. The package needs syntax and
// type information.
func NewEnumAnalyzer(pkg *packages.Package, opts Options) *EnumAnalyzer {
	if opts.StrPolicy == "" {
		opts.StrPolicy = model.StrParse
	}
	return &EnumAnalyzer{
		pkg:    pkg,
		opts:   opts,
		walker: NewPackageWalker(pkg),
		namer:  naming.NewNamer(pkg.Types),
	}
}

// Analyze is the main entry point for the analysis phase. It returns the
// valid enums in declaration order. Diagnostics for everything else are
// joined in the error; an enum with a diagnostic is left out.
func (a *EnumAnalyzer) Analyze() ([]*model.EnumDeclaration, error) {
	decls, errs := a.walker.Walk()

	var enums []*model.EnumDeclaration
	for _, d := range decls {
		if len(d.enumDirectives()) == 0 {
			continue
		}
		enum, err := a.enumOf(d)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		enums = append(enums, enum)
	}

	for _, enum := range enums {
		a.collectVariants(enum, decls)
		slog.Debug("Collected enum", "package", a.pkg.PkgPath, "enum", enum.Name,
			"derives", enum.Derives.String(), "variants", len(enum.Variants))
	}

	for _, d := range decls {
		if d.claimed {
			continue
		}
		for _, dir := range d.variantDirectives() {
			errs = errors.Join(errs, a.errorAt(dir, &diag.InvalidDirectiveTargetError{
				Directive: model.DirectivePrefix + dir.Key,
				Target:    d.obj.Name(),
				Reason:    a.unclaimedReason(d, enums),
			}))
		}
	}

	var valid []*model.EnumDeclaration
	for _, enum := range enums {
		if err := a.validate(enum); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		valid = append(valid, enum)
	}
	return valid, errs
}

// enumOf checks that a declaration carrying enum directives can be an enum.
func (a *EnumAnalyzer) enumOf(d *typeDecl) (*model.EnumDeclaration, error) {
	unsupported := func(reason string) error {
		return a.errorAt(d.spec.Name, &diag.UnsupportedShapeError{Target: d.obj.Name(), Reason: reason})
	}

	if d.obj.IsAlias() {
		return nil, unsupported("an alias cannot be an enum")
	}
	named, ok := d.obj.Type().(*types.Named)
	if !ok {
		return nil, unsupported("not a defined type")
	}
	if named.TypeParams().Len() > 0 {
		return nil, unsupported("a generic type cannot be an enum")
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok {
		return nil, unsupported(fmt.Sprintf("an enum must be an interface type, not %s", kindOf(named.Underlying())))
	}
	if !iface.IsMethodSet() {
		return nil, unsupported("a constraint interface cannot be an enum")
	}
	if iface.NumMethods() == 0 {
		return nil, unsupported("an enum interface needs at least one method")
	}

	enum := &model.EnumDeclaration{
		Name:       d.obj.Name(),
		Type:       named,
		Spec:       d.spec,
		StrPolicy:  a.opts.StrPolicy,
		Directives: d.enumDirectives(),
	}
	for _, dir := range enum.Directives {
		switch dir.Kind {
		case model.DirectiveDerive:
			enum.Derives |= dir.Derives
		case model.DirectiveStrInner:
			enum.StrPolicy = dir.Policy
		case model.DirectiveUnknown, model.DirectiveStr, model.DirectiveInner:
		}
	}
	if enum.Derives == 0 {
		return nil, a.errorAt(enum.Directives[0], &diag.InvalidDirectiveTargetError{
			Directive: model.DirectivePrefix + enum.Directives[0].Key,
			Target:    enum.Name,
			Reason:    "the enum has no derive directive",
		})
	}
	return enum, nil
}

// collectVariants gathers the named types implementing the enum interface in
// declaration order.
func (a *EnumAnalyzer) collectVariants(enum *model.EnumDeclaration, decls []*typeDecl) {
	iface := enum.Type.Underlying().(*types.Interface)
	for _, d := range decls {
		named, ok := a.variantCandidate(d)
		if !ok || !types.Implements(named, iface) {
			continue
		}

		shape, inner, field := a.classify(d.spec, named)
		v := &model.Variant{
			Name:  d.obj.Name(),
			Type:  named,
			Spec:  d.spec,
			Shape: shape,
			Inner: inner,
			Field: field,
		}
		if enum.Derives.Has(model.DeriveEnumFrom) {
			v.Directives = d.variantDirectives()
			d.claimed = true
		}
		enum.Variants = append(enum.Variants, v)
	}
}

// variantCandidate reports whether a declaration may be a variant at all.
func (a *EnumAnalyzer) variantCandidate(d *typeDecl) (*types.Named, bool) {
	if d.obj.IsAlias() {
		return nil, false
	}
	named, ok := d.obj.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return nil, false
	}
	if _, ok := named.Underlying().(*types.Interface); ok {
		return nil, false
	}
	return named, true
}

// unclaimedReason explains why variant directives on d have no enum.
func (a *EnumAnalyzer) unclaimedReason(d *typeDecl, enums []*model.EnumDeclaration) string {
	if named, ok := a.variantCandidate(d); ok {
		for _, enum := range enums {
			iface := enum.Type.Underlying().(*types.Interface)
			if !types.Implements(named, iface) && types.Implements(types.NewPointer(named), iface) {
				return fmt.Sprintf("only *%s implements %s; variants need value receivers", d.obj.Name(), enum.Name)
			}
		}
	}
	return "not a variant of an enum deriving EnumFrom"
}

func (a *EnumAnalyzer) errorAt(poser diag.Poser, err error) error {
	return diag.At(a.pkg.Fset, poser, err)
}

// kindOf names the kind of a type for diagnostics.
func kindOf(t types.Type) string {
	switch t.(type) {
	case *types.Struct:
		return "a struct"
	case *types.Basic:
		return "a basic type"
	case *types.Signature:
		return "a function type"
	case *types.Map:
		return "a map"
	case *types.Slice:
		return "a slice"
	case *types.Array:
		return "an array"
	case *types.Pointer:
		return "a pointer"
	case *types.Chan:
		return "a channel"
	default:
		return t.String()
	}
}

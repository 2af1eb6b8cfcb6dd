// Package model defines the transient data model built by the analyzer and
// consumed by the generator: enums, their variants and the directives attached
// to both.
package model

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// Shape classifies the payload carried by a variant.
//
//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go
type Shape int

// Constants for the different variant payloads.
const (
	// ShapeUnit is a variant without payload, declared as struct{}.
	ShapeUnit Shape = iota
	// ShapeSingle is a variant carrying exactly one inner value.
	ShapeSingle
	// ShapeOther is any other struct layout. No conversion supports it.
	ShapeOther
)

// Derive is a set of derivations requested on an enum.
type Derive uint8

const (
	// DeriveEnumFrom enables the per-variant str and inner directives.
	DeriveEnumFrom Derive = 1 << iota
	// DeriveEnumFromWrapped wraps every single-inner variant.
	DeriveEnumFromWrapped
	// DeriveEnumIntoWrapped unwraps every single-inner variant.
	DeriveEnumIntoWrapped
)

var deriveNames = []struct {
	d    Derive
	name string
}{
	{DeriveEnumFrom, "EnumFrom"},
	{DeriveEnumFromWrapped, "EnumFromWrapped"},
	{DeriveEnumIntoWrapped, "EnumIntoWrapped"},
}

// LookupDerive returns the derivation with the given directive name.
func LookupDerive(name string) (Derive, bool) {
	for _, n := range deriveNames {
		if n.name == name {
			return n.d, true
		}
	}
	return 0, false
}

// Has reports whether all derivations in o are in d.
func (d Derive) Has(o Derive) bool {
	return o != 0 && d&o == o
}

func (d Derive) String() string {
	var names []string
	for _, n := range deriveNames {
		if d.Has(n.d) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

// StrPolicy decides how a str directive on a single-inner variant obtains the
// inner value once the pattern matched.
type StrPolicy string

const (
	// StrParse parses the matched literal with the inner type's own string
	// parsing: conversion for string kinds, strconv for the other basic kinds
	// and encoding.TextUnmarshaler for everything else.
	StrParse StrPolicy = "parse"
	// StrZero wraps the zero value of the inner type.
	StrZero StrPolicy = "zero"
)

// Valid reports whether p is a known policy.
func (p StrPolicy) Valid() bool {
	return p == StrParse || p == StrZero
}

// EnumDeclaration is an interface type annotated with at least one derive
// directive, together with the variants implementing it.
type EnumDeclaration struct {
	Name       string
	Type       *types.Named
	Spec       *ast.TypeSpec
	Derives    Derive
	StrPolicy  StrPolicy
	Variants   []*Variant // declaration order
	Directives []*Directive
}

// Pos returns the position of the enum name.
func (e *EnumDeclaration) Pos() token.Pos { return e.Spec.Name.Pos() }

// End returns the end of the enum name.
func (e *EnumDeclaration) End() token.Pos { return e.Spec.Name.End() }

// Exported reports whether the enum type is exported. Generated function
// names follow it.
func (e *EnumDeclaration) Exported() bool {
	return ast.IsExported(e.Name)
}

// ParseVariants returns the variants registered for string parsing.
func (e *EnumDeclaration) ParseVariants() []*Variant {
	if !e.Derives.Has(DeriveEnumFrom) {
		return nil
	}
	var vs []*Variant
	for _, v := range e.Variants {
		if _, ok := v.Pattern(); ok && v.Shape != ShapeOther {
			vs = append(vs, v)
		}
	}
	return vs
}

// EmitsParse reports whether a parse function is generated for the enum.
func (e *EnumDeclaration) EmitsParse() bool {
	return len(e.ParseVariants()) > 0
}

// EmitsVariantName reports whether the variant name helper is generated. It
// backs the error of every unwrapping conversion.
func (e *EnumDeclaration) EmitsVariantName() bool {
	return len(e.UnwrapVariants()) > 0
}

// Formattable reports whether every variant carries a pattern, so that any
// enum value can be turned back into its pattern.
func (e *EnumDeclaration) Formattable() bool {
	return len(e.Variants) > 0 && len(e.ParseVariants()) == len(e.Variants)
}

// WrapVariants returns the variants receiving a wrapping conversion: every
// single-inner variant under EnumFromWrapped, plus those marked inner under
// EnumFrom. A variant selected both ways is returned once.
func (e *EnumDeclaration) WrapVariants() []*Variant {
	var vs []*Variant
	for _, v := range e.Variants {
		if v.Shape != ShapeSingle {
			continue
		}
		if e.Derives.Has(DeriveEnumFromWrapped) || (e.Derives.Has(DeriveEnumFrom) && v.HasInner()) {
			vs = append(vs, v)
		}
	}
	return vs
}

// UnwrapVariants returns the variants receiving a fallible unwrapping
// conversion.
func (e *EnumDeclaration) UnwrapVariants() []*Variant {
	if !e.Derives.Has(DeriveEnumIntoWrapped) {
		return nil
	}
	var vs []*Variant
	for _, v := range e.Variants {
		if v.Shape == ShapeSingle {
			vs = append(vs, v)
		}
	}
	return vs
}

// Conversions returns the variants reached by a wrapping or an unwrapping
// conversion, in declaration order.
func (e *EnumDeclaration) Conversions() []*Variant {
	wrap, unwrap := e.WrapVariants(), e.UnwrapVariants()
	var vs []*Variant
	for _, v := range e.Variants {
		if contains(wrap, v) || contains(unwrap, v) {
			vs = append(vs, v)
		}
	}
	return vs
}

func contains(vs []*Variant, v *Variant) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

// Variant is a named type implementing the enum interface.
type Variant struct {
	Name  string
	Type  *types.Named
	Spec  *ast.TypeSpec
	Shape Shape

	// Inner is the type of the carried value when Shape is ShapeSingle.
	Inner types.Type
	// Field names the embedded field holding the inner value of a
	// single-field struct variant. It is empty when the variant is a defined
	// type over the inner type itself.
	Field string

	Directives []*Directive
}

// Pos returns the position of the variant name.
func (v *Variant) Pos() token.Pos { return v.Spec.Name.Pos() }

// End returns the end of the variant name.
func (v *Variant) End() token.Pos { return v.Spec.Name.End() }

// Pattern returns the string pattern registered by the first str directive.
func (v *Variant) Pattern() (string, bool) {
	for _, d := range v.Directives {
		if d.Kind == DirectiveStr {
			return d.Pattern, true
		}
	}
	return "", false
}

// HasInner reports whether the variant carries an inner directive.
func (v *Variant) HasInner() bool {
	return len(v.DirectivesOf(DirectiveInner)) > 0
}

// DirectivesOf returns the attached directives of the given kind.
func (v *Variant) DirectivesOf(kind DirectiveKind) []*Directive {
	var ds []*Directive
	for _, d := range v.Directives {
		if d.Kind == kind {
			ds = append(ds, d)
		}
	}
	return ds
}

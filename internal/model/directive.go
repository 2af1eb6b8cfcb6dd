package model

import (
	"go/ast"
	"go/token"
)

// DirectivePrefix starts every enumfrom directive comment.
const DirectivePrefix = "//go:enumfrom:"

// DirectiveKind tells which derivation a directive drives.
//
//go:generate go tool stringer -type=DirectiveKind -trimprefix=Directive -output=directivekind_string.go
type DirectiveKind int

const (
	DirectiveUnknown DirectiveKind = iota
	// DirectiveDerive selects derivations on an enum: derive=EnumFrom,...
	DirectiveDerive
	// DirectiveStr registers a string pattern for a variant: str="hi"
	DirectiveStr
	// DirectiveInner requests a wrapping conversion for a variant: inner
	DirectiveInner
	// DirectiveStrInner overrides the str policy of an enum: str-inner=zero
	DirectiveStrInner
)

// Directive is one parsed //go:enumfrom: comment.
type Directive struct {
	Kind    DirectiveKind
	Key     string
	Comment *ast.Comment

	Derives Derive    // DirectiveDerive
	Pattern string    // DirectiveStr
	Policy  StrPolicy // DirectiveStrInner
}

// Pos returns the position of the directive comment.
func (d *Directive) Pos() token.Pos { return d.Comment.Pos() }

// End returns the end of the directive comment.
func (d *Directive) End() token.Pos { return d.Comment.End() }

// OnEnum reports whether the directive belongs on an enum declaration rather
// than on a variant.
func (d *Directive) OnEnum() bool {
	return d.Kind == DirectiveDerive || d.Kind == DirectiveStrInner
}

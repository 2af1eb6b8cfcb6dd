// Package diag carries the compile-time diagnostics reported against the
// user's source code.
package diag

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Sentinels matched by errors.Is on the typed diagnostics.
var (
	ErrUnsupportedShape       = errors.New("unsupported shape")
	ErrInvalidDirectiveTarget = errors.New("invalid directive target")
	ErrDuplicateConversion    = errors.New("duplicate conversion")
)

// UnsupportedShapeError reports a directive whose target has a shape the
// requested conversion cannot handle.
type UnsupportedShapeError struct {
	Target string
	Reason string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape of %s: %s", e.Target, e.Reason)
}

// Is matches ErrUnsupportedShape.
func (e *UnsupportedShapeError) Is(target error) bool { return target == ErrUnsupportedShape }

// InvalidDirectiveTargetError reports a directive that is malformed or placed
// on something it cannot apply to.
type InvalidDirectiveTargetError struct {
	Directive string
	Target    string
	Reason    string
}

func (e *InvalidDirectiveTargetError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("invalid directive %s: %s", e.Directive, e.Reason)
	}
	return fmt.Sprintf("invalid directive %s on %s: %s", e.Directive, e.Target, e.Reason)
}

// Is matches ErrInvalidDirectiveTarget.
func (e *InvalidDirectiveTargetError) Is(target error) bool {
	return target == ErrInvalidDirectiveTarget
}

// DuplicateConversionError reports two variants of one enum that would
// produce the same conversion.
type DuplicateConversionError struct {
	Enum       string
	Conversion string
	Variants   []string
}

func (e *DuplicateConversionError) Error() string {
	return fmt.Sprintf("duplicate conversion %s in %s: claimed by %s",
		e.Conversion, e.Enum, strings.Join(e.Variants, " and "))
}

// Is matches ErrDuplicateConversion.
func (e *DuplicateConversionError) Is(target error) bool { return target == ErrDuplicateConversion }

// Poser is anything with a position in the source code.
type Poser interface {
	Pos() token.Pos
}

// Ender is anything with an end position in the source code.
type Ender interface {
	End() token.Pos
}

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// At attaches the position of poser to err.
func At(fset *token.FileSet, poser Poser, err error) error {
	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}
	return &CodeError{err: err, pos: pos, end: end, fset: fset}
}

// Unwrap returns the underlying error.
func (e *CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e *CodeError) End() token.Pos { return e.end }

// Position resolves the position against the file set.
func (e *CodeError) Position() token.Position {
	if e.fset == nil || !e.pos.IsValid() {
		return token.Position{}
	}
	return e.fset.Position(e.pos)
}

// Message returns the error message without the position.
func (e *CodeError) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e *CodeError) Error() string {
	pos := e.Position()
	if !pos.IsValid() {
		return e.Message()
	}
	return fmt.Sprintf("%s: %s", FormatPosition(pos), e.Message())
}

var wd, _ = os.Getwd()

// FormatPosition renders pos as file:line:col with the file relative to the
// working directory when possible.
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	filename := pos.Filename
	if rel, err := filepath.Rel(wd, filename); err == nil && !strings.HasPrefix(rel, "..") {
		filename = rel
	}

	return fmt.Sprintf("%s:%d:%d", filename, pos.Line, pos.Column)
}

// Flatten expands joined errors into a flat list.
func Flatten(errs error) []error {
	if errs == nil {
		return nil
	}

	list := []error{errs}
	for i := 0; i < len(list); i++ {
		if u, ok := list[i].(interface{ Unwrap() []error }); ok {
			list = append(list, u.Unwrap()...)
			list[i] = nil
		}
	}
	return slices.DeleteFunc(list, func(err error) bool {
		return err == nil
	})
}

// Sort flattens errs and joins them again ordered by source position, then by
// message.
func Sort(errs error) error {
	list := Flatten(errs)
	if len(list) == 0 {
		return nil
	}

	sort.SliceStable(list, func(i, j int) bool {
		pi, pj := position(list[i]), position(list[j])
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}
		if pi.Line != pj.Line {
			return pi.Line < pj.Line
		}
		if pi.Column != pj.Column {
			return pi.Column < pj.Column
		}
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}

func position(err error) token.Position {
	var cerr *CodeError
	if errors.As(err, &cerr) {
		return cerr.Position()
	}
	return token.Position{}
}

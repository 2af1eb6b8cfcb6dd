// Package enumfrom holds the runtime error values returned by code generated
// with the enumfrom tool. Generated parse and unwrap functions never panic;
// every failure is reported through one of the types in this package.
package enumfrom

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNoMatch is matched by every *ParseError.
	ErrNoMatch = errors.New("enumfrom: no variant matches input")
	// ErrWrongVariant is matched by every *VariantError.
	ErrWrongVariant = errors.New("enumfrom: wrong variant")
)

// ParseError is returned by a generated Parse function when the input does
// not equal any registered pattern, or when the inner value of the matched
// variant cannot be parsed from it.
type ParseError struct {
	Enum  string // enum type name
	Input string // original input
	Err   error  // inner parse failure, nil when nothing matched
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("enumfrom: parsing ")
	b.WriteString(strconv.Quote(e.Input))
	if e.Enum != "" {
		b.WriteString(" as ")
		b.WriteString(e.Enum)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString(": no variant matches")
	}
	return b.String()
}

// Unwrap returns the inner parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrNoMatch.
func (e *ParseError) Is(target error) bool {
	return target == ErrNoMatch
}

// VariantError is returned by a generated unwrap function when the enum value
// holds a different variant than the one requested.
type VariantError struct {
	Enum string // enum type name
	Want string // requested variant
	Got  string // variant actually held
}

// Error implements the error interface.
func (e *VariantError) Error() string {
	return "enumfrom: " + e.Enum + " holds " + e.Got + ", not " + e.Want
}

// Is reports whether target is ErrWrongVariant.
func (e *VariantError) Is(target error) bool {
	return target == ErrWrongVariant
}

package diag_test

import (
	"errors"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origadmin/enumfrom/internal/diag"
)

type poser struct{ pos, end int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }
func (p poser) End() token.Pos { return token.Pos(p.end) }

func fileSet() *token.FileSet {
	fset := token.NewFileSet()
	f := fset.AddFile("/nowhere/shape.go", -1, 100)
	f.SetLines([]int{0, 10, 20, 30})
	return fset
}

func TestAt(t *testing.T) {
	err := diag.At(fileSet(), poser{12, 16}, &diag.UnsupportedShapeError{
		Target: "Circle",
		Reason: "inner requires exactly one inner value",
	})
	assert.Equal(t, "/nowhere/shape.go:2:2: unsupported shape of Circle: inner requires exactly one inner value", err.Error())
	assert.ErrorIs(t, err, diag.ErrUnsupportedShape)
	assert.NotErrorIs(t, err, diag.ErrDuplicateConversion)

	var cerr *diag.CodeError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, token.Pos(16), cerr.End())
	assert.Equal(t, 2, cerr.Position().Line)
}

func TestAtWithoutPosition(t *testing.T) {
	err := diag.At(nil, nil, &diag.InvalidDirectiveTargetError{Directive: "str", Reason: "missing value"})
	assert.Equal(t, "invalid directive str: missing value", err.Error())
	assert.ErrorIs(t, err, diag.ErrInvalidDirectiveTarget)
}

func TestDuplicateConversionError(t *testing.T) {
	err := &diag.DuplicateConversionError{
		Enum:       "Shape",
		Conversion: "ShapeFromFloat64",
		Variants:   []string{"Circle", "Square"},
	}
	assert.Equal(t, "duplicate conversion ShapeFromFloat64 in Shape: claimed by Circle and Square", err.Error())
	assert.ErrorIs(t, err, diag.ErrDuplicateConversion)
}

func TestSort(t *testing.T) {
	fset := fileSet()
	late := diag.At(fset, poser{pos: 25}, errors.New("late"))
	early := diag.At(fset, poser{pos: 3}, errors.New("early"))
	plain := errors.New("plain")

	err := diag.Sort(errors.Join(late, errors.Join(early, plain)))
	list := diag.Flatten(err)
	require.Len(t, list, 3)
	assert.Equal(t, plain, list[0])
	assert.Equal(t, early, list[1])
	assert.Equal(t, late, list[2])

	assert.NoError(t, diag.Sort(nil))
}

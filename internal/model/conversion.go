package model

import (
	"go/token"
	"go/types"
)

// StrConversion tells how a matched pattern is turned into an inner value
// under StrParse.
type StrConversion int

const (
	StrUnsupported StrConversion = iota
	StrString                    // plain conversion
	StrBool                      // strconv.ParseBool
	StrInt                       // strconv.ParseInt
	StrUint                      // strconv.ParseUint
	StrFloat                     // strconv.ParseFloat
	StrComplex                   // strconv.ParseComplex
	StrText                      // encoding.TextUnmarshaler on *Inner
)

var textUnmarshaler = func() *types.Interface {
	params := types.NewTuple(types.NewVar(token.NoPos, nil, "text", types.NewSlice(types.Typ[types.Byte])))
	results := types.NewTuple(types.NewVar(token.NoPos, nil, "", types.Universe.Lookup("error").Type()))
	sig := types.NewSignatureType(nil, nil, nil, params, results, false)
	m := types.NewFunc(token.NoPos, nil, "UnmarshalText", sig)
	return types.NewInterfaceType([]*types.Func{m}, nil).Complete()
}()

// StrConversionOf classifies t and returns the bit size handed to strconv for
// numeric kinds. A defined type implementing encoding.TextUnmarshaler parses
// with its own method even when its underlying type is basic.
func StrConversionOf(t types.Type) (StrConversion, int) {
	if b, ok := types.Unalias(t).(*types.Basic); ok {
		return basicConversion(b)
	}
	if _, ok := t.Underlying().(*types.Pointer); ok {
		return StrUnsupported, 0
	}
	if types.Implements(types.NewPointer(t), textUnmarshaler) {
		return StrText, 0
	}
	if b, ok := t.Underlying().(*types.Basic); ok {
		return basicConversion(b)
	}
	return StrUnsupported, 0
}

func basicConversion(b *types.Basic) (StrConversion, int) {
	switch b.Kind() {
	case types.String:
		return StrString, 0
	case types.Bool:
		return StrBool, 0
	case types.Int:
		return StrInt, 0
	case types.Int8:
		return StrInt, 8
	case types.Int16:
		return StrInt, 16
	case types.Int32:
		return StrInt, 32
	case types.Int64:
		return StrInt, 64
	case types.Uint:
		return StrUint, 0
	case types.Uint8:
		return StrUint, 8
	case types.Uint16:
		return StrUint, 16
	case types.Uint32:
		return StrUint, 32
	case types.Uint64, types.Uintptr:
		return StrUint, 64
	case types.Float32:
		return StrFloat, 32
	case types.Float64:
		return StrFloat, 64
	case types.Complex64:
		return StrComplex, 64
	case types.Complex128:
		return StrComplex, 128
	default:
		return StrUnsupported, 0
	}
}

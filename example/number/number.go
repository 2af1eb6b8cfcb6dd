// Package number derives every conversion for an enum of numeric and
// address variants, each reachable from a pattern.
package number

import "net/netip"

//go:generate go run github.com/origadmin/enumfrom/cmd/enumfrom .

//go:enumfrom:derive=EnumFrom,EnumFromWrapped,EnumIntoWrapped
type Number interface{ isNumber() }

//go:enumfrom:str="zero"
type Zero struct{}

//go:enumfrom:str="0x2A"
type Integer int32

//go:enumfrom:str="2.5"
type Real struct{ float64 }

//go:enumfrom:str="127.0.0.1"
type Addr struct{ netip.Addr }

func (Zero) isNumber()    {}
func (Integer) isNumber() {}
func (Real) isNumber()    {}
func (Addr) isNumber()    {}

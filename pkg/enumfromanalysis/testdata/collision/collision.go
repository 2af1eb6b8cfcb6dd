package collision

//go:enumfrom:derive=EnumFromWrapped
type Number interface{ isNumber() }

type Integer int32 // want `duplicate conversion NumberFromInt32 in Number: claimed by Integer and the declaration at .*collision.go:10:6`

func (Integer) isNumber() {}

func NumberFromInt32(v int32) Number { return Integer(v) }

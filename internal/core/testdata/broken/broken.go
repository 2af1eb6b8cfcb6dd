package broken

//go:enumfrom:derive=EnumFromWrapped
type Shape interface{ isShape() }

type Circle float64

type Square float64

func (Circle) isShape() {}
func (Square) isShape() {}

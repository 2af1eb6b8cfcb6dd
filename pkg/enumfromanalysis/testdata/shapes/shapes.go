package shapes

//go:enumfrom:derive=EnumFrom
type Config struct{} // want `unsupported shape of Config: an enum must be an interface type, not a struct`

//go:enumfrom:derive=EnumFromWrapped
type Shape interface{ isShape() }

type Circle float64
type Square float64 // want `duplicate conversion of inner type float64 in Shape: claimed by Circle and Square`

func (Circle) isShape() {}
func (Square) isShape() {}

//go:enumfrom:derive=EnumFrom
type Token interface{ isToken() }

//go:enumfrom:str="pair"
type Pair struct{ A, B int } // want `unsupported shape of Pair: str requires a unit variant or a variant with one inner value`

func (Pair) isToken() {}

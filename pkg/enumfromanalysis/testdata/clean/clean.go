package clean

//go:enumfrom:derive=EnumFrom,EnumIntoWrapped
type Greeting interface{ isGreeting() }

//go:enumfrom:str="hi"
type Hi struct{}

//go:enumfrom:inner
type Name string

func (Hi) isGreeting()   {}
func (Name) isGreeting() {}

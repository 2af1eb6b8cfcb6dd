package animals

// Animal is a pet.
//
//go:enumfrom:derive=EnumFrom,EnumIntoWrapped
type Animal interface{ isAnimal() }

type (
	//go:enumfrom:str="cat"
	Cat struct{}

	//go:enumfrom:str="dog"
	Dog struct{}

	//go:enumfrom:inner
	Fish string
)

func (Cat) isAnimal()  {}
func (Dog) isAnimal()  {}
func (Fish) isAnimal() {}

// Package greeting derives string parsing for unit variants next to a
// variant wrapping a free-form name.
package greeting

//go:generate go run github.com/origadmin/enumfrom/cmd/enumfrom .

// Greeting is something said on arrival.
//
//go:enumfrom:derive=EnumFrom,EnumIntoWrapped
type Greeting interface{ isGreeting() }

//go:enumfrom:str="hi"
type Hi struct{}

//go:enumfrom:str="hello"
type Hello struct{}

// Name greets somebody by name.
//
//go:enumfrom:inner
type Name string

func (Hi) isGreeting()    {}
func (Hello) isGreeting() {}
func (Name) isGreeting()  {}

// Say renders g as it would be spoken.
func Say(g Greeting) string {
	if name, err := GreetingToString(g); err == nil {
		return "hey " + name
	}
	return GreetingVariant(g)
}

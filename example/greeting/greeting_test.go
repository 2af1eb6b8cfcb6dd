package greeting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origadmin/enumfrom"
	"github.com/origadmin/enumfrom/example/greeting"
)

func TestParseGreeting(t *testing.T) {
	g, err := greeting.ParseGreeting("hi")
	require.NoError(t, err)
	assert.Equal(t, greeting.Hi{}, g)

	g, err = greeting.ParseGreeting("hello")
	require.NoError(t, err)
	assert.Equal(t, greeting.Hello{}, g)
}

func TestParseGreeting_NoMatch(t *testing.T) {
	for _, input := range []string{"", "Hi", "hi ", "Name"} {
		g, err := greeting.ParseGreeting(input)
		assert.Nil(t, g)
		require.ErrorIs(t, err, enumfrom.ErrNoMatch, input)

		var perr *enumfrom.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "Greeting", perr.Enum)
		assert.Equal(t, input, perr.Input)
		assert.NoError(t, perr.Err)
	}
}

func TestGreetingString(t *testing.T) {
	g := greeting.GreetingFromString("Ada")
	assert.Equal(t, greeting.Name("Ada"), g)

	name, err := greeting.GreetingToString(g)
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	_, err = greeting.GreetingToString(greeting.Hello{})
	require.ErrorIs(t, err, enumfrom.ErrWrongVariant)
	assert.EqualError(t, err, "enumfrom: Greeting holds Hello, not Name")
}

func TestSay(t *testing.T) {
	assert.Equal(t, "hey Ada", greeting.Say(greeting.GreetingFromString("Ada")))
	assert.Equal(t, "Hi", greeting.Say(greeting.Hi{}))
	assert.Equal(t, "<nil>", greeting.GreetingVariant(nil))
}

package animals

// Adopt resolves a pet by name.
func Adopt(name string) (Animal, error) {
	return ParseAnimal(name)
}

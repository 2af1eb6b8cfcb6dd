package plain

// Point has no derivation.
type Point struct{ X, Y int }

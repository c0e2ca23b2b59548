package interpreter

import "fmt"

// Position is a cursor cell on a Grid. Positions produced by a Grid are
// always in range; use Grid.Wrap to bring arbitrary coordinates back in.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// wrap reduces v into [0,n) using modular arithmetic over the integers,
// so negative inputs land on the opposite edge instead of underflowing.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// step moves v by delta steps on a ring of size n. delta is reduced first
// so huge counts cannot overflow the addition.
func step(v, delta, n int) int {
	return wrap(v+delta%n, n)
}

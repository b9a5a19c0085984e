package gridstore

// Position is a signed integer lattice coordinate. The origin is the
// ant's start cell; N increments Y, E increments X.
type Position struct {
	X, Y int
}

// Add returns the position translated by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the translation from other to p, i.e. p - other.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// RadiusSq returns x²+y².
func (p Position) RadiusSq() int64 {
	x, y := int64(p.X), int64(p.Y)
	return x*x + y*y
}

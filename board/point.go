package board

// Point is a single cell on the board. X grows to the right, Y grows
// downward.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Moved returns the point one cell away in the given direction.
func (p Point) Moved(d Direction) Point {
	switch d {
	case DirectionUp:
		return Point{X: p.X, Y: p.Y - 1}
	case DirectionDown:
		return Point{X: p.X, Y: p.Y + 1}
	case DirectionLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case DirectionRight:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

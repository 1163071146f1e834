package board

// Direction is one of the four headings a snake can move in.
type Direction string

const (
	// DirectionUp moves the head one cell up (toward y = 0)
	DirectionUp Direction = "up"
	// DirectionDown moves the head one cell down
	DirectionDown Direction = "down"
	// DirectionLeft moves the head one cell left (toward x = 0)
	DirectionLeft Direction = "left"
	// DirectionRight moves the head one cell right
	DirectionRight Direction = "right"
)

// Opposite returns the 180 degree reversal of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

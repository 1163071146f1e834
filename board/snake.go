package board

// Snake is an ordered sequence of occupied cells, head first. It does no
// validation of its own; callers are expected to have checked bounds and
// collisions before pushing a new head.
type Snake struct {
	Body []Point
}

// Push prepends a new head. The tail is not removed, that is done separately
// after the eating check.
func (s *Snake) Push(head Point) {
	s.Body = append([]Point{head}, s.Body...)
}

// Shrink removes the tail cell, used on a normal non-eating move.
func (s *Snake) Shrink() {
	if len(s.Body) == 0 {
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Head returns the first point in the body.
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body.
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Contains reports whether the given cell is occupied by any body segment.
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// CloneBody returns a copy of the body, used for render snapshots.
func (s *Snake) CloneBody() []Point {
	body := make([]Point, len(s.Body))
	copy(body, s.Body)
	return body
}

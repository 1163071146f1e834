// Package board holds the value types for the snake game: the grid, points
// on it, directions and the snake body itself. These are passive containers,
// the rules package owns all mutation and invariant checking.
package board

// Board is the fixed playing grid. Cells range over [0, Width) x [0, Height).
type Board struct {
	Width  int
	Height int
}

// InBounds reports whether a point lies on the board.
func (b Board) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Size returns the total number of cells on the board.
func (b Board) Size() int {
	return b.Width * b.Height
}

package rules

import (
	"math/rand"

	"github.com/Apurbabhaumik/snakegame/board"
)

// unoccupiedPoint picks a uniformly random cell on the board that is not in
// occupied. The second return is false when every cell is occupied.
func unoccupiedPoint(b board.Board, occupied []board.Point) (board.Point, bool) {
	openPoints := unoccupiedPoints(b, occupied)
	if len(openPoints) == 0 {
		return board.Point{}, false
	}
	return openPoints[rand.Intn(len(openPoints))], true
}

func unoccupiedPoints(b board.Board, occupied []board.Point) []board.Point {
	candidatePoints := make([]board.Point, 0, b.Size()-len(occupied))

	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			p := board.Point{X: x, Y: y}
			match := false

			for _, o := range occupied {
				if o.Equal(p) {
					match = true
					break
				}
			}

			if !match {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}

	return candidatePoints
}

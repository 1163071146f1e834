package rules

import (
	"time"

	"github.com/Apurbabhaumik/snakegame/board"
	"github.com/Apurbabhaumik/snakegame/config"
)

// testGame builds a game with an explicit body so tests control the geometry.
// The food starts parked off-board; tests that exercise eating place it
// themselves. The head is at body[0], the heading is inferred by the caller.
func testGame(width, height int, body []board.Point, heading board.Direction) *Game {
	g := &Game{
		id:        "test-game",
		board:     board.Board{Width: width, Height: height},
		snake:     &board.Snake{Body: body},
		heading:   heading,
		pending:   heading,
		status:    GameStatusRunning,
		moveDelay: config.InitialMoveDelay,
		food:      board.Point{X: -1, Y: -1},
	}
	g.clock = NewClock(g.moveDelay, time.Unix(0, 0))
	g.prevBody = g.snake.CloneBody()
	return g
}

// startBody is the 3-segment starting shape used across the tick tests: head
// at (2,2) with the tail extending left, heading right.
func startBody() []board.Point {
	return []board.Point{
		{X: 2, Y: 2},
		{X: 1, Y: 2},
		{X: 0, Y: 2},
	}
}

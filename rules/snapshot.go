package rules

import "github.com/Apurbabhaumik/snakegame/board"

// Snapshot is an immutable copy of game state handed to the render path.
// Snake and PrevSnake are the bodies after and before the latest tick;
// renderers interpolate between them using Fraction.
type Snapshot struct {
	GameID    string
	Turn      int64
	Snake     []board.Point
	PrevSnake []board.Point
	Food      board.Point
	Score     int
	HighScore int
	Status    GameStatus
	Cause     string
	Fraction  float64
}

// Snapshot copies the current state out of the game. The copy shares nothing
// with the live state; renderers may hold it as long as they like.
func (g *Game) Snapshot() Snapshot {
	prev := make([]board.Point, len(g.prevBody))
	copy(prev, g.prevBody)

	return Snapshot{
		GameID:    g.id,
		Turn:      g.turn,
		Snake:     g.snake.CloneBody(),
		PrevSnake: prev,
		Food:      g.food,
		Score:     g.score,
		HighScore: g.highScore,
		Status:    g.status,
		Cause:     g.cause,
		Fraction:  g.clock.Fraction(),
	}
}

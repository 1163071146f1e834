package rules

import "github.com/Apurbabhaumik/snakegame/board"

// Input is a player intent produced by the host (key presses, usually).
type Input string

const (
	// InputMoveUp requests the snake head up on the next tick
	InputMoveUp Input = "move-up"
	// InputMoveDown requests the snake head down on the next tick
	InputMoveDown Input = "move-down"
	// InputMoveLeft requests the snake head left on the next tick
	InputMoveLeft Input = "move-left"
	// InputMoveRight requests the snake head right on the next tick
	InputMoveRight Input = "move-right"
	// InputTogglePause flips between running and paused
	InputTogglePause Input = "toggle-pause"
	// InputRestart abandons the current run and starts over
	InputRestart Input = "restart"
)

// HandleInput applies a player intent. Direction changes update the pending
// direction consumed by the next tick; unknown inputs are ignored.
func (g *Game) HandleInput(in Input) {
	switch in {
	case InputMoveUp:
		g.setDirection(board.DirectionUp)
	case InputMoveDown:
		g.setDirection(board.DirectionDown)
	case InputMoveLeft:
		g.setDirection(board.DirectionLeft)
	case InputMoveRight:
		g.setDirection(board.DirectionRight)
	case InputTogglePause:
		g.TogglePause()
	case InputRestart:
		g.Restart()
	}
}

// setDirection records the pending direction for the next tick. A 180 degree
// reversal of the committed heading would drive the head straight into the
// neck, so it is silently dropped.
func (g *Game) setDirection(d board.Direction) {
	if d == g.heading.Opposite() {
		return
	}
	g.pending = d
}

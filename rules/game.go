// Package rules implements the snake game engine: a single-writer Game that
// owns all mutable state, advanced one logical tick at a time. The render
// path only ever sees copied snapshots.
package rules

import (
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Apurbabhaumik/snakegame/board"
	"github.com/Apurbabhaumik/snakegame/config"
)

// Game owns the full state of a single-player snake game. It is not safe for
// concurrent use; all calls are expected to come from the one loop driving
// the game.
type Game struct {
	id    string
	board board.Board
	snake *board.Snake
	food  board.Point

	heading board.Direction
	pending board.Direction

	status GameStatus
	cause  string

	turn      int64
	score     int
	highScore int

	moveDelay time.Duration
	clock     *Clock

	// prevBody is the body as it was before the most recent tick, kept for
	// render interpolation.
	prevBody []board.Point
}

// NewGame creates a game on the configured board size, ready to run.
func NewGame() *Game {
	return newGame(config.BoardWidth, config.BoardHeight)
}

func newGame(width, height int) *Game {
	g := &Game{
		board: board.Board{Width: width, Height: height},
	}
	g.reset()
	log.WithFields(log.Fields{
		"GameID": g.id,
		"Width":  width,
		"Height": height,
	}).Info("game created")
	return g
}

// reset reinitializes every run-scoped field. The high score is the only
// state that survives.
func (g *Game) reset() {
	g.id = uuid.NewV4().String()
	g.snake = startingSnake(g.board)
	g.prevBody = g.snake.CloneBody()
	g.heading = board.DirectionRight
	g.pending = board.DirectionRight
	g.status = GameStatusRunning
	g.cause = ""
	g.turn = 0
	g.score = 0
	g.moveDelay = config.InitialMoveDelay
	g.clock = NewClock(g.moveDelay, time.Now())

	food, ok := unoccupiedPoint(g.board, g.snake.Body)
	if !ok {
		// The board is smaller than the starting snake; nothing to eat,
		// nowhere to go.
		g.endGame(CauseBoardFull)
		return
	}
	g.food = food
}

// startingSnake builds the initial body: head at the center of the board,
// tail extending left, so the default heading (right) moves away from it.
func startingSnake(b board.Board) *board.Snake {
	head := board.Point{X: b.Width / 2, Y: b.Height / 2}
	s := &board.Snake{}
	for i := 0; i < config.InitialSnakeLength; i++ {
		s.Body = append(s.Body, board.Point{X: head.X - i, Y: head.Y})
	}
	return s
}

// Restart abandons the current run and starts a fresh one. It is accepted in
// any state; the high score carries over.
func (g *Game) Restart() {
	g.reset()
	log.WithFields(log.Fields{
		"GameID":    g.id,
		"HighScore": g.highScore,
	}).Info("game restarted")
}

// Update is the per-render-frame entry point. It advances the clock and runs
// one logical tick when one is due, returning true when a tick fired. Paused
// and finished games never tick.
func (g *Game) Update(now time.Time) bool {
	if g.status != GameStatusRunning {
		return false
	}
	if !g.clock.Advance(now) {
		return false
	}
	g.Tick()
	return true
}

// TogglePause flips between running and paused. It does nothing once the
// game is over.
func (g *Game) TogglePause() {
	switch g.status {
	case GameStatusRunning:
		g.status = GameStatusPaused
	case GameStatusPaused:
		g.status = GameStatusRunning
	}
}

func (g *Game) endGame(cause string) {
	g.status = GameStatusGameOver
	g.cause = cause
	log.WithFields(log.Fields{
		"GameID": g.id,
		"Turn":   g.turn,
		"Score":  g.score,
		"Cause":  cause,
	}).Info("game over")
}

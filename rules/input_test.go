package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurbabhaumik/snakegame/board"
)

func TestInputRejectsReversal(t *testing.T) {
	g := testGame(20, 20, startBody(), board.DirectionRight)

	g.HandleInput(InputMoveLeft)
	require.Equal(t, board.DirectionRight, g.pending)

	g.Tick()
	require.Equal(t, board.Point{X: 3, Y: 2}, g.snake.Head())
	require.Equal(t, board.DirectionRight, g.heading)
}

func TestInputPerpendicularAccepted(t *testing.T) {
	g := testGame(20, 20, startBody(), board.DirectionRight)

	g.HandleInput(InputMoveUp)
	require.Equal(t, board.DirectionUp, g.pending)

	g.Tick()
	require.Equal(t, board.Point{X: 2, Y: 1}, g.snake.Head())
	require.Equal(t, board.DirectionUp, g.heading)
}

func TestInputSecondTurnBeforeTick(t *testing.T) {
	// the reversal check runs against the committed heading, so a second
	// direction change before the tick fires may replace the first
	g := testGame(20, 20, startBody(), board.DirectionRight)

	g.HandleInput(InputMoveUp)
	g.HandleInput(InputMoveDown)
	require.Equal(t, board.DirectionDown, g.pending)

	g.Tick()
	require.Equal(t, board.Point{X: 2, Y: 3}, g.snake.Head())
}

func TestInputReversalAfterTurnCommits(t *testing.T) {
	g := testGame(20, 20, startBody(), board.DirectionRight)

	g.HandleInput(InputMoveUp)
	g.Tick()
	require.Equal(t, board.DirectionUp, g.heading)

	// down is now a reversal and stays rejected
	g.HandleInput(InputMoveDown)
	require.Equal(t, board.DirectionUp, g.pending)
}

func TestInputPauseToggles(t *testing.T) {
	g := testGame(20, 20, startBody(), board.DirectionRight)

	g.HandleInput(InputTogglePause)
	require.Equal(t, GameStatusPaused, g.status)

	g.HandleInput(InputTogglePause)
	require.Equal(t, GameStatusRunning, g.status)
}

func TestInputPauseIgnoredWhenGameOver(t *testing.T) {
	g := testGame(20, 20, startBody(), board.DirectionRight)
	g.endGame(CauseWallCollision)

	g.HandleInput(InputTogglePause)
	require.Equal(t, GameStatusGameOver, g.status)
}

func TestInputRestartAllowedAnytime(t *testing.T) {
	g := newGame(10, 10)
	g.Tick()
	require.Equal(t, int64(1), g.turn)

	g.HandleInput(InputRestart)
	require.Equal(t, int64(0), g.turn)
	require.Equal(t, GameStatusRunning, g.status)
}

func TestInputUnknownIgnored(t *testing.T) {
	g := testGame(20, 20, startBody(), board.DirectionRight)

	g.HandleInput(Input("bogus"))
	require.Equal(t, board.DirectionRight, g.pending)
	require.Equal(t, GameStatusRunning, g.status)
}

package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Apurbabhaumik/snakegame/board"
	"github.com/Apurbabhaumik/snakegame/config"
)

func TestNewGameDefaults(t *testing.T) {
	g := NewGame()

	require.Equal(t, GameStatusRunning, g.status)
	require.Equal(t, config.InitialSnakeLength, g.snake.Len())
	require.Equal(t, board.Point{X: config.BoardWidth / 2, Y: config.BoardHeight / 2}, g.snake.Head())
	require.Equal(t, board.DirectionRight, g.heading)
	require.Equal(t, 0, g.score)
	require.Equal(t, int64(0), g.turn)
	require.Equal(t, config.InitialMoveDelay, g.moveDelay)
	require.NotEmpty(t, g.id)

	require.True(t, g.board.InBounds(g.food))
	require.False(t, g.snake.Contains(g.food))

	for _, p := range g.snake.Body {
		require.True(t, g.board.InBounds(p))
	}
}

func TestRestartPreservesHighScore(t *testing.T) {
	g := newGame(10, 10)
	oldID := g.id
	g.score = 40
	g.highScore = 40
	g.moveDelay = config.MinMoveDelay
	g.endGame(CauseWallCollision)

	g.Restart()

	require.Equal(t, GameStatusRunning, g.status)
	require.Equal(t, 0, g.score)
	require.Equal(t, 40, g.highScore)
	require.Equal(t, int64(0), g.turn)
	require.Equal(t, config.InitialSnakeLength, g.snake.Len())
	require.Equal(t, config.InitialMoveDelay, g.moveDelay)
	require.Equal(t, board.DirectionRight, g.heading)
	require.Empty(t, g.cause)
	require.NotEqual(t, oldID, g.id)
}

func TestHighScoreWatermark(t *testing.T) {
	g := newGame(10, 10)
	g.highScore = 40

	g.eat()
	require.Equal(t, config.FoodScore, g.score)
	require.Equal(t, 40, g.highScore)

	g.score = 40
	g.eat()
	require.Equal(t, 50, g.score)
	require.Equal(t, 50, g.highScore)
}

func TestUpdateDrivesTicks(t *testing.T) {
	base := time.Unix(0, 0)
	g := testGame(20, 20, startBody(), board.DirectionRight)
	g.clock = NewClock(100*time.Millisecond, base)

	require.False(t, g.Update(base.Add(50*time.Millisecond)))
	require.Equal(t, int64(0), g.turn)

	require.True(t, g.Update(base.Add(120*time.Millisecond)))
	require.Equal(t, int64(1), g.turn)
}

func TestUpdateSkippedWhilePaused(t *testing.T) {
	base := time.Unix(0, 0)
	g := testGame(20, 20, startBody(), board.DirectionRight)
	g.clock = NewClock(100*time.Millisecond, base)

	g.TogglePause()
	require.False(t, g.Update(base.Add(500*time.Millisecond)))
	require.Equal(t, int64(0), g.turn)

	g.TogglePause()
	require.True(t, g.Update(base.Add(600*time.Millisecond)))
	require.Equal(t, int64(1), g.turn)
}

func TestUpdateSkippedWhenGameOver(t *testing.T) {
	base := time.Unix(0, 0)
	g := testGame(20, 20, startBody(), board.DirectionRight)
	g.clock = NewClock(100*time.Millisecond, base)
	g.endGame(CauseSelfCollision)

	require.False(t, g.Update(base.Add(1*time.Second)))
	require.Equal(t, int64(0), g.turn)
}

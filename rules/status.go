package rules

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	// GameStatusRunning represents a running game
	GameStatusRunning GameStatus = "running"
	// GameStatusPaused represents a game suspended by the player; logical
	// ticks do not fire while paused
	GameStatusPaused GameStatus = "paused"
	// GameStatusGameOver represents a finished game, see the end cause for
	// why it finished
	GameStatusGameOver GameStatus = "game-over"
)

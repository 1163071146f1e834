package rules

const (
	// CauseWallCollision is the end reason when the snake runs off the board
	CauseWallCollision = "wall-collision"
	// CauseSelfCollision is the end reason when the snake runs into its own
	// body
	CauseSelfCollision = "self-collision"
	// CauseBoardFull is the end reason when the snake occupies every cell and
	// no food can spawn. This is the win condition.
	CauseBoardFull = "board-full"
)

package config

import (
	"os"
	"strconv"
	"time"
)

// Configuration variables. These aren't user facing but useful for tuning the
// game without a rebuild. The defaults match the classic arcade tuning.
var (
	// BoardWidth and BoardHeight are the grid dimensions in cells.
	BoardWidth  = getEnvInt("SNAKE_BOARD_WIDTH", 28)
	BoardHeight = getEnvInt("SNAKE_BOARD_HEIGHT", 20)

	// InitialSnakeLength is the number of body segments a fresh snake starts
	// with.
	InitialSnakeLength = getEnvInt("SNAKE_START_LENGTH", 3)

	// InitialMoveDelay is the starting interval between logical ticks.
	// MoveDelayStep is subtracted from it on every food eaten, down to
	// MinMoveDelay.
	InitialMoveDelay = getEnvDuration("SNAKE_MOVE_DELAY_MS", 180)
	MoveDelayStep    = getEnvDuration("SNAKE_MOVE_DELAY_STEP_MS", 6)
	MinMoveDelay     = getEnvDuration("SNAKE_MIN_MOVE_DELAY_MS", 60)

	// FoodScore is the score awarded per food eaten.
	FoodScore = getEnvInt("SNAKE_FOOD_SCORE", 10)

	// FrameDelay is the interval between render frames, ~60fps by default.
	FrameDelay = getEnvDuration("SNAKE_FRAME_DELAY_MS", 17)
)

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvDuration(varName string, defaultMillis int) time.Duration {
	return time.Duration(getEnvInt(varName, defaultMillis)) * time.Millisecond
}

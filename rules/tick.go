package rules

import (
	log "github.com/sirupsen/logrus"

	"github.com/Apurbabhaumik/snakegame/config"
)

// Tick runs one logical simulation step:
// 1. freeze the pending direction as the heading
// 2. compute the candidate new head
// 3. wall collision ends the game
// 4. self collision ends the game
// 5. eating grows the snake, bumps score and speed, and respawns food
// 6. otherwise the snake advances at constant length
// Ticks only apply to a running game; Paused and GameOver are no-ops.
func (g *Game) Tick() {
	if g.status != GameStatusRunning {
		return
	}

	g.prevBody = g.snake.CloneBody()
	g.turn++
	g.heading = g.pending

	head := g.snake.Head().Moved(g.heading)

	if !g.board.InBounds(head) {
		g.endGame(CauseWallCollision)
		return
	}
	// The full pre-move body counts, including the tail cell about to be
	// vacated. Moving into the cell the tail is leaving this tick is still a
	// collision.
	if g.snake.Contains(head) {
		g.endGame(CauseSelfCollision)
		return
	}

	g.snake.Push(head)

	if head.Equal(g.food) {
		g.eat()
		return
	}
	g.snake.Shrink()
}

func (g *Game) eat() {
	g.score += config.FoodScore
	if g.score > g.highScore {
		g.highScore = g.score
	}

	if g.moveDelay > config.MinMoveDelay {
		g.moveDelay -= config.MoveDelayStep
		if g.moveDelay < config.MinMoveDelay {
			g.moveDelay = config.MinMoveDelay
		}
		g.clock.SetInterval(g.moveDelay)
	}

	log.WithFields(log.Fields{
		"GameID": g.id,
		"Turn":   g.turn,
		"Score":  g.score,
		"Food":   g.food,
	}).Info("snake ate")

	food, ok := unoccupiedPoint(g.board, g.snake.Body)
	if !ok {
		// Snake fills the whole board, there is nowhere left to spawn food.
		g.endGame(CauseBoardFull)
		return
	}
	g.food = food
}

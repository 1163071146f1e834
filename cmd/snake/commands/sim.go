package commands

import (
	"time"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Apurbabhaumik/snakegame/rules"
)

var (
	games    int
	maxTurns int
	verbose  bool
)

func init() {
	simCmd.Flags().IntVarP(&games, "num-games", "n", 10, "number of games to run")
	simCmd.Flags().IntVar(&maxTurns, "max-turns", 10000, "turn budget per game, in case the bot never dies")
	simCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "dump the final snapshot of every game")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "run headless games to completion, driven by a greedy bot",
	Run: func(*cobra.Command, []string) {
		start := time.Now()
		for i := 0; i < games; i++ {
			snap := runSim(maxTurns)
			log.WithFields(log.Fields{
				"GameID": snap.GameID,
				"Turns":  snap.Turn,
				"Score":  snap.Score,
				"Cause":  snap.Cause,
			}).Info("game finished")
			if verbose {
				spew.Dump(snap)
			}
		}
		log.WithFields(log.Fields{
			"elapsed": time.Since(start),
			"games":   games,
		}).Info("all games complete")
	},
}

// runSim drives a game by tick count rather than by the wall clock, so the
// simulation speed is whatever the machine can manage.
func runSim(maxTurns int) rules.Snapshot {
	game := rules.NewGame()
	for i := 0; i < maxTurns; i++ {
		snap := game.Snapshot()
		if snap.Status != rules.GameStatusRunning {
			break
		}
		game.HandleInput(greedyMove(snap))
		game.Tick()
	}
	return game.Snapshot()
}

// greedyMove heads straight for the food, preferring the axis with the larger
// gap. It knows nothing about walls or its own body, which is what ends most
// of its games.
func greedyMove(snap rules.Snapshot) rules.Input {
	head := snap.Snake[0]
	dx := snap.Food.X - head.X
	dy := snap.Food.Y - head.Y

	if abs(dx) >= abs(dy) && dx != 0 {
		if dx > 0 {
			return rules.InputMoveRight
		}
		return rules.InputMoveLeft
	}
	if dy > 0 {
		return rules.InputMoveDown
	}
	return rules.InputMoveUp
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

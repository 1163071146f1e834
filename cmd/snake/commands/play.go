package commands

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Apurbabhaumik/snakegame/config"
	"github.com/Apurbabhaumik/snakegame/rules"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play an interactive snake game in the terminal",
	Run: func(*cobra.Command, []string) {
		if err := playGame(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// liveView marks the replay index as "follow the running game".
const liveView = -1

func playGame() error {
	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to initialize terminal")
	}
	defer termbox.Close()

	// termbox owns the terminal while the game runs; keep logs off it.
	log.SetOutput(ioutil.Discard)
	defer log.SetOutput(os.Stderr)

	game := rules.NewGame()
	frames := &frameHolder{}
	frames.append(game.Snapshot())

	eventQueue := setupEventQueue()
	cycle := time.NewTicker(config.FrameDelay)
	defer cycle.Stop()

	replayIndex := liveView

	for {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			gameOver := game.Snapshot().Status == rules.GameStatusGameOver

			switch {
			case ev.Key == termbox.KeyEsc || ev.Ch == 'q':
				return nil
			case ev.Ch == 'p':
				game.HandleInput(rules.InputTogglePause)
			case ev.Ch == 'r':
				game.HandleInput(rules.InputRestart)
				frames = &frameHolder{}
				frames.append(game.Snapshot())
				replayIndex = liveView
			case ev.Key == termbox.KeyArrowUp:
				game.HandleInput(rules.InputMoveUp)
			case ev.Key == termbox.KeyArrowDown:
				game.HandleInput(rules.InputMoveDown)
			case ev.Key == termbox.KeyArrowLeft:
				// Once the run is over the arrows step through the recording
				// instead of steering.
				if gameOver {
					replayIndex = moveFrameBackwards(replayIndex, frames)
					continue
				}
				game.HandleInput(rules.InputMoveLeft)
			case ev.Key == termbox.KeyArrowRight:
				if gameOver {
					replayIndex = moveFrameForwards(replayIndex, frames)
					continue
				}
				game.HandleInput(rules.InputMoveRight)
			}
		case <-cycle.C:
			if game.Update(time.Now()) {
				frames.append(game.Snapshot())
			}

			view := game.Snapshot()
			if replayIndex != liveView {
				view = frames.get(replayIndex)
			}
			if err := render(view); err != nil {
				return err
			}
		}
	}
}

func moveFrameForwards(frameIndex int, frames *frameHolder) int {
	if frameIndex == liveView {
		return liveView
	}
	frameIndex++
	if frameIndex >= frames.count() {
		// past the last recorded frame, back to the live (final) view
		return liveView
	}
	return frameIndex
}

func moveFrameBackwards(frameIndex int, frames *frameHolder) int {
	if frameIndex == liveView {
		frameIndex = frames.count()
	}
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}

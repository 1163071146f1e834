package commands

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/Apurbabhaumik/snakegame/board"
	"github.com/Apurbabhaumik/snakegame/config"
	"github.com/Apurbabhaumik/snakegame/rules"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
)

func render(snap rules.Snapshot) error {
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		width  = config.BoardWidth
		height = config.BoardHeight
		left   = 4
		top    = 3
		bottom = top + height + 1
	)

	renderTitle(left, top, snap)
	renderBoard(width, top, bottom, left)
	renderSnake(left, top, snap)
	renderFood(left, top, snap.Food)
	renderOverlay(left, top, width, height, snap)

	return termbox.Flush()
}

func renderTitle(left, top int, snap rules.Snapshot) {
	tbprint(left, top-2, defaultColor, defaultColor,
		fmt.Sprintf("Snake! - Turn %d", snap.Turn))
	tbprint(left, top-1, defaultColor, defaultColor,
		fmt.Sprintf("Score: %d   High Score: %d", snap.Score, snap.HighScore))
}

func renderSnake(left, top int, snap rules.Snapshot) {
	for i, curr := range snap.Snake {
		prev := curr
		if i < len(snap.PrevSnake) {
			prev = snap.PrevSnake[i]
		}
		x := left + interpolate(prev.X, curr.X, snap.Fraction)
		y := top + 1 + interpolate(prev.Y, curr.Y, snap.Fraction)

		color := snakeColor
		if i == 0 {
			color = headColor
		}
		termbox.SetCell(x, y, ' ', color, color)
	}
}

// interpolate rounds the fractional position between the previous and current
// cell to the nearest character cell. Purely cosmetic.
func interpolate(prev, curr int, fraction float64) int {
	return int(math.Round(float64(prev) + float64(curr-prev)*fraction))
}

func renderFood(left, top int, food board.Point) {
	termbox.SetCell(left+food.X, top+food.Y+1, getFoodEmoji(food.X, food.Y), defaultColor, bgColor)
}

var foods = map[string]rune{}

func getFoodEmoji(x, y int) rune {
	key := fmt.Sprintf("(%d, %d)", x, y)
	r, ok := foods[key]
	if !ok {
		r = randomFoodEmoji()
		foods[key] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍍',
		'🍑',
		'🍇',
		'🍏',
		'🍌',
		'🍫',
		'🍭',
		'🍕',
		'🍩',
		'🍗',
		'🍖',
		'🍬',
		'🍤',
		'🍪',
	}

	return f[rand.Intn(len(f))]
}

func renderBoard(width, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, width, 1, termbox.Cell{Ch: '─'})
}

func renderOverlay(left, top, width, height int, snap rules.Snapshot) {
	midY := top + 1 + height/2

	switch {
	case snap.Status == rules.GameStatusPaused:
		tbprint(left+2, midY, termbox.ColorWhite, bgColor, "PAUSED - press p to resume")
	case snap.Status == rules.GameStatusGameOver && snap.Cause == rules.CauseBoardFull:
		tbprint(left+2, midY, termbox.ColorWhite, bgColor, "YOU WIN! the board is full")
		tbprint(left+2, midY+1, termbox.ColorWhite, bgColor, "r to restart, esc to quit")
	case snap.Status == rules.GameStatusGameOver:
		tbprint(left+2, midY, termbox.ColorWhite, bgColor, fmt.Sprintf("GAME OVER (%s)", snap.Cause))
		tbprint(left+2, midY+1, termbox.ColorWhite, bgColor, "r to restart, left/right to replay, esc to quit")
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}

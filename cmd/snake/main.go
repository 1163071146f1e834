package main

import (
	"math/rand"
	"time"

	"github.com/Apurbabhaumik/snakegame/cmd/snake/commands"
)

func init() { rand.Seed(time.Now().Unix()) }

func main() {
	commands.Execute()
}

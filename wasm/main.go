//go:build js && wasm

// Command wasm runs the emulated board in a web browser. Player 2 plays
// against the computer using the keyboard.
package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/jetsetilly/matrixpong/game"
	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/gui/ebiten"
	"github.com/jetsetilly/matrixpong/hardware"
	"github.com/jetsetilly/matrixpong/logger"
)

func main() {
	// logger messages will be viewable in the javascript console
	logger.SetEcho(os.Stderr, false)

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed))

	g := gui.NewGUI()
	con := hardware.Create(hardware.NewEmulation(g), g, rng, game.AI)

	// the browser tab closing ends everything so there is no need to stop
	// the console
	go func() {
		if err := con.Run(nil); err != nil {
			logger.Log(logger.Allow, "wasm", err)
		}
	}()

	if err := ebiten.Launch(nil, g); err != nil {
		logger.Log(logger.Allow, "wasm", err)
	}
}

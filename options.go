package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/matrixpong/game"
)

// the GPIO chip on a Raspberry Pi
const defaultChip = "gpiochip0"

const (
	displayEbiten   = "ebiten"
	displayTerminal = "terminal"
	displayGPIO     = "gpio"
)

type options struct {
	display string
	players int
	seed    uint64
	log     bool
	chip    string
	profile string
}

// parseOptions parses the command line arguments. the args slice should not
// include the program name
func parseOptions(args []string, output io.Writer) (options, error) {
	var opts options

	flgs := flag.NewFlagSet("matrixpong", flag.ContinueOnError)
	flgs.SetOutput(output)
	flgs.StringVar(&opts.display, "display", displayEbiten, "display to use: ebiten, terminal or gpio")
	flgs.IntVar(&opts.players, "players", 1, "number of human players. with one player the left paddle is played by the computer")
	flgs.Uint64Var(&opts.seed, "seed", 0, "seed for the random number generator. zero means seed from the time")
	flgs.BoolVar(&opts.log, "log", false, "echo log entries to stderr")
	flgs.StringVar(&opts.chip, "chip", defaultChip, "GPIO chip to use with the gpio display")
	flgs.StringVar(&opts.profile, "profile", "", "write a CPU profile to the named file")

	if err := flgs.Parse(args); err != nil {
		return opts, err
	}

	if flgs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(flgs.Args(), " "))
	}

	opts.display = strings.ToLower(opts.display)
	switch opts.display {
	case displayEbiten, displayTerminal, displayGPIO:
	default:
		return opts, fmt.Errorf("unknown display: %s", opts.display)
	}

	if opts.players < 1 || opts.players > 2 {
		return opts, fmt.Errorf("players must be 1 or 2")
	}

	return opts, nil
}

// left returns the controller for the left paddle
func (opts options) left() game.Controller {
	if opts.players == 2 {
		return game.Human
	}
	return game.AI
}

//go:build linux

package main

import (
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/jetsetilly/matrixpong/hardware"
	"github.com/jetsetilly/matrixpong/hardware/gpio"
	"github.com/jetsetilly/matrixpong/logger"
)

// runGPIO runs the console on real hardware until the process is interrupted
func runGPIO(opts options, rng *rand.Rand) error {
	board, err := gpio.NewBoard(opts.chip, gpio.DefaultPins)
	if err != nil {
		return err
	}

	stop := make(chan bool, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	go func() {
		s := <-sig
		logger.Logf(logger.Allow, "main", "received %s", s)
		stop <- true
	}()

	con := hardware.Create(board, nil, rng, opts.left())
	runErr := con.Run(stop)

	// leave the matrix dark
	board.PowerOn()

	return errors.Join(runErr, board.Close())
}

//go:build !linux

package main

import (
	"errors"
	"math/rand/v2"
)

func runGPIO(_ options, _ *rand.Rand) error {
	return errors.New("gpio display is only available on linux")
}

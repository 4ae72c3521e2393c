package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/gui/ebiten"
	"github.com/jetsetilly/matrixpong/gui/terminal"
	"github.com/jetsetilly/matrixpong/hardware"
	"github.com/jetsetilly/matrixpong/logger"
	"github.com/jetsetilly/matrixpong/version"
)

func main() {
	st := newStyles()

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Println(st.err.Render(fmt.Sprintf("*** %s", err)))
		os.Exit(2)
	}

	if err := run(opts, st); err != nil {
		fmt.Println(st.err.Render(fmt.Sprintf("*** %s", err)))
		os.Exit(1)
	}
}

func run(opts options, st styles) error {
	if opts.profile != "" {
		f, err := os.Create(opts.profile)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	// the terminal display owns the terminal so logging is echoed only with
	// the other displays. the terminal display shows the log tail on exit
	if opts.log && opts.display != displayTerminal {
		logger.SetEcho(os.Stderr, true)
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Logf(logger.Allow, "main", "random seed %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	fmt.Println(st.info.Render(fmt.Sprintf("%s: %s display, %s plays on the left",
		version.Title(), opts.display, opts.left())))

	switch opts.display {
	case displayGPIO:
		return runGPIO(opts, rng)
	case displayTerminal:
		err := runEmulation(opts, rng, terminal.Launch)
		if opts.log {
			logger.Tail(os.Stderr, -1)
		}
		return err
	}
	return runEmulation(opts, rng, ebiten.Launch)
}

// launcher starts a GUI. it returns when the GUI is closed or when endGui is
// signalled
type launcher func(endGui chan bool, g *gui.GUI) error

// runEmulation runs the console with an emulated board in a goroutine and the
// GUI in the calling goroutine. the ebiten GUI requires the main thread
func runEmulation(opts options, rng *rand.Rand, launch launcher) error {
	// buffered channels. this means we don't have to worry about the gui
	// closing before the console and vice versa
	endGui := make(chan bool, 1)
	endConsole := make(chan bool, 1)
	resultConsole := make(chan error, 1)

	g := gui.NewGUI()
	con := hardware.Create(hardware.NewEmulation(g), g, rng, opts.left())

	go func() {
		resultConsole <- con.Run(endConsole)
		endGui <- true
	}()

	guiErr := launch(endGui, g)
	endConsole <- true

	return errors.Join(guiErr, <-resultConsole)
}

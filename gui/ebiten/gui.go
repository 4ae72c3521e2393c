// Package ebiten is a GUI for the emulated board using the ebiten game engine.
// The LED matrix is drawn in a window and the buttons are operated with the
// keyboard or a gamepad.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/logger"
	"github.com/jetsetilly/matrixpong/version"
)

// dimensions of the matrix as drawn in the window, in pixels
const (
	ledSpacing = 48
	ledRadius  = 18
	border     = ledSpacing / 2
	screenSize = border*2 + ledSpacing*len(gui.Frame{})
)

// how quickly an LED fades after it is switched off. the value is the
// proportion of brightness kept from one drawn frame to the next
const persistence = 0.55

var (
	colBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	colUnlit      = color.RGBA{R: 48, G: 10, B: 10, A: 255}
	colLit        = color.RGBA{R: 255, G: 40, B: 30, A: 255}
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	endGui chan bool

	// the most recent frame received from the board
	frame gui.Frame

	// the brightness of each LED. lit LEDs are always at full brightness and
	// unlit LEDs fade out over a few frames
	brightness [8][8]float64
}

func (eg *guiEbiten) Update() error {
	// deal with quit condition
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	// handle user input
	err := eg.inputKeyboard()
	if err != nil {
		return err
	}
	eg.inputGamepad()

	// retrieve any pending frame
	select {
	case eg.frame = <-eg.g.SetImage:
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	for row := range len(eg.frame) {
		for col := range 8 {
			if eg.frame.Lit(row, col) {
				eg.brightness[row][col] = 1.0
			} else {
				eg.brightness[row][col] *= persistence
			}

			cx := float32(border + col*ledSpacing + ledSpacing/2)
			cy := float32(border + row*ledSpacing + ledSpacing/2)
			vector.DrawFilledCircle(screen, cx, cy, ledRadius, blend(colUnlit, colLit, eg.brightness[row][col]), true)
		}
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	return screenSize, screenSize
}

// blend returns a colour between a and b. an amount of zero is a and an
// amount of one is b
func blend(a, b color.RGBA, amount float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*amount)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// Launch the GUI. The function returns when the window is closed or when the
// endGui channel is signalled. It must be called from the main goroutine.
func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowPosition(10, 10)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
	}

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	} else if eg.geom.valid() {
		ebiten.SetWindowPosition(eg.geom.x, eg.geom.y)
		ebiten.SetWindowSize(eg.geom.w, eg.geom.h)
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}

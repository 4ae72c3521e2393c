package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/matrixpong/gui"
)

func (eg *guiEbiten) send(inp gui.Input) {
	select {
	case eg.g.UserInput <- inp:
	default:
	}
}

// keyInput converts a key to an input event. the second return value is false
// if the key is not used
func keyInput(key ebiten.Key, pressed bool) (gui.Input, bool) {
	switch key {
	case ebiten.KeyArrowUp, ebiten.KeyNumpad8:
		return gui.Input{Port: gui.Player2, Action: gui.StickUp, Data: pressed}, true
	case ebiten.KeyArrowDown, ebiten.KeyNumpad2:
		return gui.Input{Port: gui.Player2, Action: gui.StickDown, Data: pressed}, true
	case ebiten.KeyW:
		return gui.Input{Port: gui.Player1, Action: gui.StickUp, Data: pressed}, true
	case ebiten.KeyS:
		return gui.Input{Port: gui.Player1, Action: gui.StickDown, Data: pressed}, true
	case ebiten.KeyR, ebiten.KeyF1:
		return gui.Input{Port: gui.Panel, Action: gui.Restart, Data: pressed}, true
	}
	return gui.Input{}, false
}

func (eg *guiEbiten) inputKeyboard() error {
	var pressed []ebiten.Key
	var released []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	released = inpututil.AppendJustReleasedKeys(released)

	for _, k := range released {
		if inp, ok := keyInput(k, false); ok {
			eg.send(inp)
		}
	}

	for _, k := range pressed {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		if inp, ok := keyInput(k, true); ok {
			eg.send(inp)
		}
	}

	return nil
}

// the d-pad of the first gamepad controls player two
func (eg *guiEbiten) inputGamepad() {
	var pressed []ebiten.GamepadButton
	var released []ebiten.GamepadButton
	pressed = inpututil.AppendJustPressedGamepadButtons(0, pressed)
	released = inpututil.AppendJustReleasedGamepadButtons(0, released)

	button := func(b ebiten.GamepadButton, state bool) {
		switch b {
		case ebiten.GamepadButton11:
			eg.send(gui.Input{Port: gui.Player2, Action: gui.StickUp, Data: state})
		case ebiten.GamepadButton13:
			eg.send(gui.Input{Port: gui.Player2, Action: gui.StickDown, Data: state})
		case ebiten.GamepadButton7: // start button
			eg.send(gui.Input{Port: gui.Panel, Action: gui.Restart, Data: state})
		}
	}

	for _, b := range released {
		button(b, false)
	}
	for _, b := range pressed {
		button(b, true)
	}
}

package hardware

import (
	"github.com/jetsetilly/matrixpong/gui"
	"github.com/jetsetilly/matrixpong/logger"
)

// drain all pending user input. panel input is handled by the console, all
// other input is passed to the board
func (con *Console) handleInput() error {
	if con.g == nil {
		return nil
	}

	for {
		select {
		default:
			return nil
		case inp := <-con.g.UserInput:
			if inp.Port == gui.Panel {
				if inp.Action == gui.Restart && inp.Pressed() {
					logger.Log(logger.Allow, "console", "restart button pressed")
					con.restart = true
				}
				continue
			}

			b, ok := con.Board.(InputBoard)
			if !ok {
				continue
			}
			if err := b.HandleInput(inp); err != nil {
				logger.Log(logger.Allow, "console", err)
			}
		}
	}
}

package game

// Update applies the state of the two buttons to the paddle. A button must be
// held for more than DebounceTicks consecutive updates before the paddle
// moves, after which the hold count starts again.
//
// The velocity is derived from the hold counts on every update so that a
// held button affects the ball even on updates that don't move the paddle.
func (p *Paddle) Update(up bool, down bool) {
	if up {
		p.HoldUp++
	} else {
		p.HoldUp = 0
	}
	if down {
		p.HoldDown++
	} else {
		p.HoldDown = 0
	}

	if p.HoldUp > DebounceTicks {
		p.Position = min(PaddleMax, p.Position+1)
		p.HoldUp = 0
	}
	if p.HoldDown > DebounceTicks {
		p.Position = max(0, p.Position-1)
		p.HoldDown = 0
	}

	switch {
	case p.HoldUp > 0 && p.Position < PaddleMax:
		p.Velocity = 1
	case p.HoldDown > 0 && p.Position > 0:
		p.Velocity = -1
	default:
		p.Velocity = 0
	}
}

// Covers returns true if the paddle covers the row.
func (p Paddle) Covers(row int) bool {
	return row >= p.Position && row < p.Position+PaddleHeight
}

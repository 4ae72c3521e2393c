package game

// the columns used for the score and for the end of match indicator
const (
	leftScoreColumn  = 1
	rightScoreColumn = Size - 2
)

// Render decides what the matrix should show. The second return value is true
// if the match has been won and the right hand player is still pressing a
// button. In that case the board should be restarted.
func (g *Game) Render() (Frame, bool) {
	var f Frame

	now := g.hw.Now()
	since := now - g.Match.ServeStart
	blink := (now/BlinkPeriod)%2 == 1

	switch {
	case g.Match.WinsLeft >= WinThreshold:
		if g.Right.Velocity != 0 {
			return f, true
		}
		if blink {
			f.Column(leftScoreColumn)
		}

	case g.Match.WinsRight >= WinThreshold:
		if g.Right.Velocity != 0 {
			return f, true
		}
		if blink {
			f.Column(rightScoreColumn)
		}

	case since < ScoreDuration:
		// scores are drawn from the bottom row upwards
		for i := range Size {
			if g.Match.WinsLeft > i {
				f.Set(Size-1-i, leftScoreColumn)
			}
			if g.Match.WinsRight > i {
				f.Set(Size-1-i, rightScoreColumn)
			}
		}

	case since > HumanDelay:
		for i := range PaddleHeight {
			f.Set(g.Left.Position+i, 0)
			f.Set(g.Right.Position+i, Size-1)
		}
		f.Set(g.Ball.Row(), g.Ball.Column())
	}

	// between ScoreDuration and HumanDelay the matrix is blank

	return f, false
}

// Refresh drives the frame onto the matrix one scan line at a time. Each line
// is held for RowHold before moving on to the next.
func (g *Game) Refresh(f Frame) {
	for line := range Size {
		g.hw.SetRowDriver(f[line])
		g.hw.SetColumnEnable(^uint8(1 << line))
		g.hw.Delay(RowHold)
	}
}

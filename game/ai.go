package game

// Predict decides which buttons the AI should press for the left paddle.
// Nothing is pressed unless the ball is travelling towards the left.
//
// The prediction is a straight line extrapolation of the ball's path to the
// left paddle plane. It does not account for bounces off the top and bottom
// edges, other than by wrapping the prediction onto the matrix.
func Predict(b Ball, p Paddle) (up bool, down bool) {
	if b.VX >= 0 {
		return false, false
	}

	predicted := b.Y + PredictionFactor*float64(b.VY)*(b.X-LeftPlane)
	target := cell(predicted) % Size
	centre := p.Position + 1

	return target > centre, target < centre
}

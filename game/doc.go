// Package game is the simulation and display loop of a two player Pong game
// played on an 8x8 LED matrix.
//
// The Game type owns every piece of mutable state. A single call to Tick()
// samples the controls, advances the paddles and the ball, decides what the
// matrix should show and then refreshes the matrix one scan line at a time.
// Nothing in the package is safe for concurrent use and nothing needs to be:
// the tick runs to completion before the next one starts.
//
// The package never touches real hardware. Everything it needs from the
// outside world is described by the Hardware interface.
package game

// Package resources prepares paths for files that matrixpong keeps between
// sessions, such as the window geometry of the ebiten display.
//
// For builds with the "release" build tag the base path is in the user's
// configuration directory, for example:
//
//	/home/user/.config/matrixpong/
//
// Other builds use a directory in the current working directory:
//
//	.matrixpong
//
// If an empty file named 'portable.txt' exists next to the program binary then
// a directory named 'matrixpong_userdata', also next to the binary, is used
// regardless of how the binary was built.
package resources

// Package panel is the terminal front panel of the simulated board.
//
// It redraws the character display, the two indicator LEDs and the tone
// output on a fixed tick, and turns keystrokes into keypad presses, pad
// touches and tilt changes on the board.
package panel

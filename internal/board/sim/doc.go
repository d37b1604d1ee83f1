// Package sim is a host-side model of the alarm board.
//
// Each peripheral implements the interface its driver expects, so the
// scheduler loop runs unchanged while a front panel (or a test) presses pads,
// tilts the board and reads back LEDs, display and DAC state. Every part
// guards its state with its own mutex: the scheduler loop and the panel run
// on different goroutines.
package sim

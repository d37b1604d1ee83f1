// Package alarm contains the alarm state machine as pure functions.
//
// Control runs entry actions and key handling, Indicate runs the per-tick
// LED logic that consumes the touch flags. Both take a Snapshot by value and
// return the next Snapshot plus the Effects the caller must apply, so the
// whole machine can be driven tick by tick without hardware.
package alarm

// Package alarm runs the alarm state machine against the board.
//
// The Controller owns the machine's Snapshot and exposes two scheduler
// tasks: ControlTask (entry actions and keypad commands) and IndicatorTask
// (touch flags, LED blink, escalation to Alarm). Effects returned by the
// pure machine are applied to the LEDs, the tone output and the display.
package alarm

// Package timeofday renders the real-time clock on the status row.
package timeofday

import (
	"context"
	"errors"

	"github.com/oshokin/touch-alarm/internal/display"
)

// Position of the hh:mm:ss field.
const (
	Row    = 1
	Column = 9
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	hoursPerDay      = 24
	fieldWidth       = 2
)

// RTC counts seconds since it was set.
type RTC interface {
	Seconds() uint32
}

// Display is the sink for the time field.
type Display interface {
	MoveCursor(row, col int)
	WriteChar(c byte)
	WriteDecWord(value uint32, field int, mode display.DecMode)
}

var errMissingCollaborator = errors.New("clock collaborator is not set")

// Clock draws the time of day.
type Clock struct {
	rtc     RTC
	display Display
}

// New creates a clock task.
func New(rtc RTC, d Display) (*Clock, error) {
	if rtc == nil || d == nil {
		return nil, errMissingCollaborator
	}

	return &Clock{rtc: rtc, display: d}, nil
}

// Split breaks a seconds counter into hours (mod 24), minutes and seconds.
func Split(total uint32) (hours, minutes, seconds uint32) {
	hours = (total / secondsPerHour) % hoursPerDay
	minutes = (total % secondsPerHour) / secondsPerMinute
	seconds = total % secondsPerMinute

	return hours, minutes, seconds
}

// Task is the scheduler entry.
func (c *Clock) Task(_ context.Context) {
	h, m, s := Split(c.rtc.Seconds())

	c.display.MoveCursor(Row, Column)
	c.display.WriteDecWord(h, fieldWidth, display.DecLeadingZeros)
	c.display.WriteChar(':')
	c.display.WriteDecWord(m, fieldWidth, display.DecLeadingZeros)
	c.display.WriteChar(':')
	c.display.WriteDecWord(s, fieldWidth, display.DecLeadingZeros)
}

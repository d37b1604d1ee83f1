// Package tamper watches the accelerometer for the board being moved.
package tamper

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/touch-alarm/internal/config"
	"github.com/oshokin/touch-alarm/internal/logger"
)

// Message is shown on the diagnostic row while the board is tilted.
const Message = "TAMPERING ALARM"

const messageRow = 2

// Accelerometer reads the MSB of each axis.
type Accelerometer interface {
	Axes() (x, y, z int8, err error)
}

// Display is the sink for the tamper message.
type Display interface {
	ClearLine(row int)
	MoveCursor(row, col int)
	WriteString(s string)
}

var errMissingCollaborator = errors.New("tamper collaborator is not set")

// Monitor compares axis readings with the configured limits.
type Monitor struct {
	accel   Accelerometer
	display Display
	limits  config.Tamper
	tripped bool
}

// New creates a monitor.
func New(accel Accelerometer, display Display, limits config.Tamper) (*Monitor, error) {
	if accel == nil || display == nil {
		return nil, errMissingCollaborator
	}

	return &Monitor{
		accel:   accel,
		display: display,
		limits:  limits,
	}, nil
}

// Exceeds reports whether a reading is outside the resting envelope.
func Exceeds(limits config.Tamper, x, y, z int8) bool {
	return x >= limits.XMax || y >= limits.YMax || z <= limits.ZMin
}

// Check reads the axes once and reports whether they trip the limits.
func (m *Monitor) Check() (bool, error) {
	x, y, z, err := m.accel.Axes()
	if err != nil {
		return false, fmt.Errorf("read axes: %w", err)
	}

	return Exceeds(m.limits, x, y, z), nil
}

// Task is the scheduler entry. A failed read skips the tick.
func (m *Monitor) Task(ctx context.Context) {
	tripped, err := m.Check()
	if err != nil {
		logger.ErrorKV(ctx, "Accelerometer read failed", "error", err)

		return
	}

	if tripped != m.tripped {
		if tripped {
			logger.WarnKV(ctx, "Tamper limits exceeded")
		} else {
			logger.InfoKV(ctx, "Board back at rest")
		}

		m.tripped = tripped
	}

	if !tripped {
		return
	}

	m.display.ClearLine(messageRow)
	m.display.MoveCursor(messageRow, 1)
	m.display.WriteString(Message)
}

// Tripped reports the result of the last successful check.
func (m *Monitor) Tripped() bool {
	return m.tripped
}

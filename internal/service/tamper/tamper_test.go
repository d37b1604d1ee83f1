package tamper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/touch-alarm/internal/config"
	"github.com/oshokin/touch-alarm/internal/display"
)

var errBus = errors.New("bus nack")

type fakeAccel struct {
	x, y, z int8
	err     error
}

func (a *fakeAccel) Axes() (x, y, z int8, err error) {
	return a.x, a.y, a.z, a.err
}

func defaultLimits() config.Tamper {
	return config.Default().Tamper
}

// TestExceeds covers each axis limit and the resting envelope.
func TestExceeds(t *testing.T) {
	t.Parallel()

	limits := defaultLimits()

	tests := []struct {
		name    string
		x, y, z int8
		want    bool
	}{
		{name: "flat", x: 0, y: 0, z: 64, want: false},
		{name: "just below limits", x: 15, y: 15, z: 49, want: false},
		{name: "x at limit", x: 16, y: 0, z: 64, want: true},
		{name: "y at limit", x: 0, y: 16, z: 64, want: true},
		{name: "z at limit", x: 0, y: 0, z: 48, want: true},
		{name: "negative x is fine", x: -40, y: 0, z: 64, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, Exceeds(limits, tt.x, tt.y, tt.z))
		})
	}
}

// TestTask_WritesMessageWhenTilted shows the tamper message on row 2.
func TestTask_WritesMessageWhenTilted(t *testing.T) {
	t.Parallel()

	accel := &fakeAccel{z: 64}
	lcd := display.NewCharLCD()

	m, err := New(accel, lcd, defaultLimits())
	require.NoError(t, err)

	m.Task(context.Background())
	require.Empty(t, lcd.Line(2))
	require.False(t, m.Tripped())

	accel.x = 30
	m.Task(context.Background())
	require.Equal(t, Message, lcd.Line(2))
	require.True(t, m.Tripped())
}

// TestTask_SkipsTickOnReadError leaves the display and state untouched.
func TestTask_SkipsTickOnReadError(t *testing.T) {
	t.Parallel()

	accel := &fakeAccel{x: 30, err: errBus}
	lcd := display.NewCharLCD()

	m, err := New(accel, lcd, defaultLimits())
	require.NoError(t, err)

	m.Task(context.Background())
	require.Empty(t, lcd.Line(2))
	require.False(t, m.Tripped())

	_, err = m.Check()
	require.ErrorIs(t, err, errBus)
}

// TestNew_RequiresCollaborators rejects nil dependencies.
func TestNew_RequiresCollaborators(t *testing.T) {
	t.Parallel()

	_, err := New(nil, display.NewCharLCD(), defaultLimits())
	require.ErrorIs(t, err, errMissingCollaborator)
}

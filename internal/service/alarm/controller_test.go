package alarm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/touch-alarm/internal/display"
	domain "github.com/oshokin/touch-alarm/internal/domain/alarm"
	"github.com/oshokin/touch-alarm/internal/keypad"
	"github.com/oshokin/touch-alarm/internal/touch"
)

const (
	chanA uint8 = 12
	chanB uint8 = 11
)

var errChecksum = errors.New("flash unreadable")

type fakeLED struct{ on bool }

func (l *fakeLED) Set(on bool) { l.on = on }

type scriptedKeypad struct{ keys []keypad.Key }

func (k *scriptedKeypad) Get() keypad.Key {
	if len(k.keys) == 0 {
		return keypad.None
	}

	key := k.keys[0]
	k.keys = k.keys[1:]

	return key
}

type scriptedFlags struct{ flags []touch.Flags }

func (f *scriptedFlags) TakeFlags() touch.Flags {
	if len(f.flags) == 0 {
		return 0
	}

	v := f.flags[0]
	f.flags = f.flags[1:]

	return v
}

type fakeTone struct{ calls []bool }

func (t *fakeTone) Enable(on bool) { t.calls = append(t.calls, on) }

// recordingDisplay counts status strings written on top of a real LCD model.
type recordingDisplay struct {
	*display.CharLCD

	written []string
}

func (d *recordingDisplay) WriteString(s string) {
	d.written = append(d.written, s)
	d.CharLCD.WriteString(s)
}

type rig struct {
	ctrl    *Controller
	keys    *scriptedKeypad
	flags   *scriptedFlags
	tone    *fakeTone
	lcd     *recordingDisplay
	ledA    *fakeLED
	ledB    *fakeLED
	sumErr  error
	sumCall int
}

func newRig(t *testing.T) *rig {
	t.Helper()

	r := &rig{
		keys:  new(scriptedKeypad),
		flags: new(scriptedFlags),
		tone:  new(fakeTone),
		lcd:   &recordingDisplay{CharLCD: display.NewCharLCD()},
		ledA:  new(fakeLED),
		ledB:  new(fakeLED),
	}

	ctrl, err := New(Options{
		Keypad:   r.keys,
		Touch:    r.flags,
		Tone:     r.tone,
		Display:  r.lcd,
		LEDs:     [domain.PadCount]LED{r.ledA, r.ledB},
		Channels: [domain.PadCount]uint8{chanA, chanB},
		Checksum: func() (uint16, error) {
			r.sumCall++

			return 0xC0DE, r.sumErr
		},
	})
	require.NoError(t, err)

	r.ctrl = ctrl

	return r
}

// tick runs the controller tasks in scheduler order.
func (r *rig) tick() {
	ctx := context.Background()
	r.ctrl.ControlTask(ctx)
	r.ctrl.IndicatorTask(ctx)
}

// TestNew_RequiresCollaborators rejects incomplete options.
func TestNew_RequiresCollaborators(t *testing.T) {
	t.Parallel()

	_, err := New(Options{})
	require.ErrorIs(t, err, errMissingCollaborator)
}

// TestController_FirstTick shows DISARMED and silences the tone.
func TestController_FirstTick(t *testing.T) {
	t.Parallel()

	r := newRig(t)
	r.tick()

	require.Equal(t, domain.Disarmed, r.ctrl.State())
	require.Equal(t, "DISARMED", r.lcd.Line(StatusRow))
	require.Equal(t, []bool{false}, r.tone.calls)
}

// TestController_ArmTouchDisarm walks through a full alarm cycle.
func TestController_ArmTouchDisarm(t *testing.T) {
	t.Parallel()

	r := newRig(t)
	r.tick()

	r.keys.keys = []keypad.Key{keypad.DC1}
	r.tick()
	require.Equal(t, domain.Armed, r.ctrl.State())

	r.tick()
	r.tick()
	require.Equal(t, "ARMED", r.lcd.Line(StatusRow))

	// Pad B is touched once: escalation happens in the indicator task.
	r.flags.flags = []touch.Flags{1 << chanB}
	r.tick()
	require.Equal(t, domain.Alarm, r.ctrl.State())
	require.True(t, r.ctrl.Snapshot().Indicators[domain.PadB])

	r.tick()
	require.Equal(t, "ALARM", r.lcd.Line(StatusRow))
	require.Equal(t, []bool{false, true}, r.tone.calls)
	require.True(t, r.ledB.on, "fast blink starts lit")
	require.False(t, r.ledA.on)

	r.keys.keys = []keypad.Key{keypad.DC4}
	r.tick()
	r.tick()

	require.Equal(t, domain.Disarmed, r.ctrl.State())
	require.Equal(t, "DISARMED", r.lcd.Line(StatusRow))
	require.Equal(t, []bool{false, true, false}, r.tone.calls)
	require.Equal(t, domain.Indicators{}, r.ctrl.Snapshot().Indicators)

	require.Equal(t, []string{"DISARMED", "ARMED", "ALARM", "DISARMED"}, r.lcd.written)
}

// TestController_DumpChecksum writes the checksum on the diagnostic row without a transition.
func TestController_DumpChecksum(t *testing.T) {
	t.Parallel()

	r := newRig(t)
	r.tick()

	r.keys.keys = []keypad.Key{keypad.DC3}
	r.tick()

	require.Equal(t, domain.Disarmed, r.ctrl.State())
	require.Equal(t, "C0DE", r.lcd.Line(DiagnosticRow))
	require.Equal(t, 1, r.sumCall)
}

// TestController_DumpChecksumError leaves the display untouched.
func TestController_DumpChecksumError(t *testing.T) {
	t.Parallel()

	r := newRig(t)
	r.sumErr = errChecksum
	r.lcd.MoveCursor(DiagnosticRow, 1)
	r.lcd.CharLCD.WriteString("BOOT")

	r.keys.keys = []keypad.Key{keypad.DC3}
	r.tick()

	require.Equal(t, "BOOT", r.lcd.Line(DiagnosticRow))
}

// TestController_InvalidStateSelfHeals resets an unknown state to Disarmed and redraws it.
func TestController_InvalidStateSelfHeals(t *testing.T) {
	t.Parallel()

	r := newRig(t)
	r.tick()

	r.ctrl.snapshot.Current = domain.State(77)
	r.ctrl.ControlTask(context.Background())
	require.Equal(t, domain.Disarmed, r.ctrl.State())

	require.Equal(t, []string{"DISARMED"}, r.lcd.written)

	r.ctrl.snapshot.Previous = domain.State(77)
	r.tick()
	require.Equal(t, []string{"DISARMED", "DISARMED"}, r.lcd.written)
}

// TestController_IgnoresUnknownKeys keeps the state on keys without a command.
func TestController_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	r := newRig(t)
	r.keys.keys = []keypad.Key{keypad.DC2, keypad.FromRune('5')}

	r.tick()
	r.tick()

	require.Equal(t, domain.Disarmed, r.ctrl.State())
}

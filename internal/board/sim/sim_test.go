package sim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/touch-alarm/internal/config"
	"github.com/oshokin/touch-alarm/internal/device/mma8451"
	"github.com/oshokin/touch-alarm/internal/memory"
	"github.com/oshokin/touch-alarm/internal/touch"
	"github.com/oshokin/touch-alarm/internal/wavegen"
)

var errStuck = errors.New("bus stuck low")

// TestTouchController_PressRaisesCount lifts a pressed pad above its threshold.
func TestTouchController_PressRaisesCount(t *testing.T) {
	t.Parallel()

	hw := NewTouchController()
	sensor, err := touch.NewSensor(hw,
		touch.Pad{Channel: 12, Offset: config.DefaultTouchOffset},
		touch.Pad{Channel: 11, Offset: config.DefaultTouchOffset})
	require.NoError(t, err)

	a, b := sensor.CalibrateAll()
	require.Equal(t, BaseCount+12*ChannelStep, a.Baseline)
	require.Equal(t, BaseCount+11*ChannelStep, b.Baseline)

	sensor.Start()
	sensor.ScanAndEvaluate()
	sensor.ScanAndEvaluate()
	require.Zero(t, sensor.TakeFlags())

	require.True(t, hw.Toggle(11))
	sensor.ScanAndEvaluate()
	sensor.ScanAndEvaluate()

	flags := sensor.TakeFlags()
	require.True(t, flags.Has(11))
	require.False(t, flags.Has(12))
	require.Equal(t, uint32(6), hw.Scans())
}

// TestTouchController_IgnoresUnknownChannels keeps out-of-range channels inert.
func TestTouchController_IgnoresUnknownChannels(t *testing.T) {
	t.Parallel()

	hw := NewTouchController()
	hw.Press(touch.MaxChannels, true)
	require.False(t, hw.Pressed(touch.MaxChannels))
	require.False(t, hw.Toggle(touch.MaxChannels))

	hw.StartScan(3)
	hw.StartScan(touch.MaxChannels)
	require.Equal(t, BaseCount+3*ChannelStep, hw.WaitForCompletion())
}

// TestLED_CountsToggles ignores writes of the current state.
func TestLED_CountsToggles(t *testing.T) {
	t.Parallel()

	var led LED

	led.Set(false)
	led.Set(true)
	led.Set(true)
	led.Set(false)

	require.False(t, led.On())
	require.Equal(t, uint32(2), led.Toggles())
}

// TestDAC_PlaysBoundTable steps through the table once per sample period.
func TestDAC_PlaysBoundTable(t *testing.T) {
	t.Parallel()

	start := time.Unix(1000, 0)
	dac := NewDAC(config.DefaultSamplePeriod)
	dac.now = func() time.Time { return start }

	require.Equal(t, wavegen.Midscale, dac.Sample())

	out := wavegen.NewOutput(dac)
	out.Enable(true)
	out.Enable(true)

	require.Equal(t, &wavegen.ToneTable, dac.Bound())
	require.Equal(t, uint32(2), dac.Binds())
	require.Equal(t, wavegen.ToneTable[0], dac.SampleAt(start))
	require.Equal(t, wavegen.ToneTable[3], dac.SampleAt(start.Add(3*config.DefaultSamplePeriod)))
	require.Equal(t, wavegen.ToneTable[1],
		dac.SampleAt(start.Add((wavegen.TableSize+1)*config.DefaultSamplePeriod)))
	require.Equal(t, wavegen.Midscale, dac.SampleAt(start.Add(-time.Second)))
}

// TestAccelerometer_DrivenByDriver configures the model and reads tilt back.
func TestAccelerometer_DrivenByDriver(t *testing.T) {
	t.Parallel()

	model := NewAccelerometer()
	dev := mma8451.New(model)

	require.NoError(t, dev.Configure())
	require.Equal(t, byte(0xE0), model.Register(mma8451.PL_CFG))
	require.Equal(t, byte(0x01), model.Register(mma8451.CTRL_REG1)&0x01)

	x, y, z, err := dev.Axes()
	require.NoError(t, err)
	require.Equal(t, [3]int8{0, 0, 64}, [3]int8{x, y, z})

	model.SetTilt(true)
	require.True(t, model.Tilted())

	x, _, z, err = dev.Axes()
	require.NoError(t, err)
	require.Equal(t, int8(40), x)
	require.Equal(t, int8(24), z)

	model.SetFault(errStuck)
	_, _, _, err = dev.Axes()
	require.ErrorIs(t, err, errStuck)
}

// TestAccelerometer_WrongAddress does not acknowledge foreign addresses.
func TestAccelerometer_WrongAddress(t *testing.T) {
	t.Parallel()

	dev := mma8451.New(NewAccelerometer())
	dev.Address = 0x1C

	require.ErrorIs(t, dev.Configure(), errNack)
}

// TestFlash_Pattern is deterministic and sized like the board's flash.
func TestFlash_Pattern(t *testing.T) {
	t.Parallel()

	a, b := NewPatternFlash(), NewPatternFlash()
	require.Equal(t, FlashSize, a.Size())

	sumA, err := memory.Checksum(a, 0, config.DefaultChecksumEnd)
	require.NoError(t, err)

	sumB, err := memory.Checksum(b, 0, config.DefaultChecksumEnd)
	require.NoError(t, err)
	require.Equal(t, sumA, sumB)

	buf := make([]byte, 4)
	n, err := a.ReadAt(buf, FlashSize-2)
	require.Equal(t, 2, n)
	require.Error(t, err)
}

// TestFlash_LoadImage pads a short image with erased bytes.
func TestFlash_LoadImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "image.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o600))

	flash, err := OpenFlash(path)
	require.NoError(t, err)

	sum, err := memory.Checksum(flash, 0, 3)
	require.NoError(t, err)
	require.Equal(t, uint16(1+2+3+0xFF), sum)

	_, err = OpenFlash(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRTC_Set restarts counting from the new value.
func TestRTC_Set(t *testing.T) {
	t.Parallel()

	now := time.Unix(5000, 0)
	rtc := NewRTC(0)
	rtc.now = func() time.Time { return now }
	rtc.Set(3600)

	now = now.Add(61 * time.Second)
	require.Equal(t, uint32(3661), rtc.Seconds())
}

// TestNew_PowersUpFromConfig builds every peripheral.
func TestNew_PowersUpFromConfig(t *testing.T) {
	t.Parallel()

	board, err := New(config.Default())
	require.NoError(t, err)
	require.NotNil(t, board.Flash)
	require.False(t, board.LEDs[0].On())
	require.Empty(t, board.Display.Line(1))
}

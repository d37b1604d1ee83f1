package mma8451

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBus = errors.New("bus error")

// fakeBus is a register file behind drivers.I2C with auto-increment reads.
type fakeBus struct {
	regs   [0x40]byte
	writes [][]byte
	err    error
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}

	if addr != Address || len(w) == 0 {
		return errBus
	}

	reg := w[0]
	if len(w) > 1 {
		b.writes = append(b.writes, append([]byte(nil), w...))
		copy(b.regs[reg:], w[1:])
	}

	for i := range r {
		r[i] = b.regs[int(reg)+i]
	}

	return nil
}

// TestConfigure toggles standby around the portrait/landscape setup.
func TestConfigure(t *testing.T) {
	t.Parallel()

	bus := new(fakeBus)
	bus.regs[WHO_AM_I] = DeviceID
	bus.regs[CTRL_REG1] = 0x20

	require.NoError(t, New(bus).Configure())
	require.Equal(t, [][]byte{
		{CTRL_REG1, 0x20},
		{PL_CFG, 0xE0},
		{CTRL_REG1, 0x21},
	}, bus.writes)
}

// TestConfigure_Errors rejects a foreign device and propagates bus failures.
func TestConfigure_Errors(t *testing.T) {
	t.Parallel()

	bus := new(fakeBus)
	bus.regs[WHO_AM_I] = 0x5A

	require.ErrorIs(t, New(bus).Configure(), ErrUnknownDevice)

	bus.err = errBus
	require.ErrorIs(t, New(bus).Configure(), errBus)
}

// TestAxes decodes the signed MSB outputs.
func TestAxes(t *testing.T) {
	t.Parallel()

	bus := new(fakeBus)
	bus.regs[OUT_X_MSB] = 0xF0
	bus.regs[OUT_Y_MSB] = 0x05
	bus.regs[OUT_Z_MSB] = 0x40

	x, y, z, err := New(bus).Axes()
	require.NoError(t, err)
	require.Equal(t, int8(-16), x)
	require.Equal(t, int8(5), y)
	require.Equal(t, int8(64), z)
}

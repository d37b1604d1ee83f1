package sim

import (
	"errors"
	"sync"

	"github.com/oshokin/touch-alarm/internal/device/mma8451"
)

// Axis readings, MSB only, at the 2g range.
const (
	restZ   int8 = 64
	tiltX   int8 = 40
	tiltZ   int8 = 24
	regSize      = 0x40
)

// errNack is returned for an address nobody answers.
var errNack = errors.New("i2c: no acknowledge")

// Accelerometer is an MMA8451Q register file on the two-wire bus.
// It implements drivers.I2C.
type Accelerometer struct {
	regs   [regSize]byte
	tilted bool
	fault  error
	mu     sync.Mutex
}

// NewAccelerometer returns a sensor lying flat.
func NewAccelerometer() *Accelerometer {
	a := new(Accelerometer)
	a.regs[mma8451.WHO_AM_I] = mma8451.DeviceID
	a.setAxes(0, 0, restZ)

	return a
}

// Tx performs a register write of w[1:] at w[0] followed by an
// auto-incrementing read into r.
func (a *Accelerometer) Tx(addr uint16, w, r []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.fault != nil {
		return a.fault
	}

	if addr != mma8451.Address || len(w) == 0 {
		return errNack
	}

	reg := int(w[0])
	for i, v := range w[1:] {
		if reg+i < regSize {
			a.regs[reg+i] = v
		}
	}

	for i := range r {
		r[i] = a.regs[(reg+i)%regSize]
	}

	return nil
}

// SetTilt moves the board off or back to rest.
func (a *Accelerometer) SetTilt(tilted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tilted = tilted
	if tilted {
		a.setAxes(tiltX, 0, tiltZ)

		return
	}

	a.setAxes(0, 0, restZ)
}

// Tilted reports whether the board is off rest.
func (a *Accelerometer) Tilted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.tilted
}

// SetFault makes every transfer fail with err; nil clears it.
func (a *Accelerometer) SetFault(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.fault = err
}

// Register returns the raw value of reg.
func (a *Accelerometer) Register(reg uint8) byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.regs[int(reg)%regSize]
}

func (a *Accelerometer) setAxes(x, y, z int8) {
	a.regs[mma8451.OUT_X_MSB] = byte(x)
	a.regs[mma8451.OUT_Y_MSB] = byte(y)
	a.regs[mma8451.OUT_Z_MSB] = byte(z)
}

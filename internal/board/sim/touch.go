package sim

import (
	"sync"

	"github.com/oshokin/touch-alarm/internal/touch"
)

// Raw counts of the simulated electrodes.
const (
	// BaseCount is the untouched count of channel 0.
	BaseCount uint16 = 0x0600
	// ChannelStep spreads the untouched counts across channels.
	ChannelStep uint16 = 0x0010
	// TouchDelta is added to a pressed pad's count.
	TouchDelta uint16 = 0x0800
)

// TouchController models the capacitive scan unit.
type TouchController struct {
	pressed  [touch.MaxChannels]bool
	scanning uint8
	scans    uint32
	mu       sync.Mutex
}

// NewTouchController returns a controller with no pad pressed.
func NewTouchController() *TouchController {
	return new(TouchController)
}

// StartScan latches channel. Channels outside the electrode range are ignored.
func (c *TouchController) StartScan(channel uint8) {
	if channel >= touch.MaxChannels {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.scanning = channel
}

// WaitForCompletion returns the count of the last started channel as it is now.
func (c *TouchController) WaitForCompletion() uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scans++

	return c.count(c.scanning)
}

// Press sets whether channel is touched.
func (c *TouchController) Press(channel uint8, pressed bool) {
	if channel >= touch.MaxChannels {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pressed[channel] = pressed
}

// Toggle flips the touch state of channel and returns the new state.
func (c *TouchController) Toggle(channel uint8) bool {
	if channel >= touch.MaxChannels {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pressed[channel] = !c.pressed[channel]

	return c.pressed[channel]
}

// Pressed reports whether channel is touched.
func (c *TouchController) Pressed(channel uint8) bool {
	if channel >= touch.MaxChannels {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pressed[channel]
}

// Scans returns the number of completed scans.
func (c *TouchController) Scans() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.scans
}

func (c *TouchController) count(channel uint8) uint16 {
	n := BaseCount + uint16(channel)*ChannelStep
	if c.pressed[channel] {
		n += TouchDelta
	}

	return n
}

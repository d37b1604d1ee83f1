package touch

import "sync/atomic"

// Flags is a bitset over the touch channels, bit n for channel n.
type Flags uint16

// Has reports whether the channel's bit is set.
func (f Flags) Has(channel uint8) bool {
	return channel < MaxChannels && f&(1<<channel) != 0
}

// FlagCell is a single-producer, single-consumer flag register.
// Raise sets bits, Take returns the accumulated bits and clears them.
type FlagCell struct {
	bits atomic.Uint32
}

// Raise sets the bit of channel.
func (c *FlagCell) Raise(channel uint8) {
	if channel >= MaxChannels {
		return
	}

	c.bits.Or(1 << channel)
}

// Peek returns the current bits without clearing them.
func (c *FlagCell) Peek() Flags {
	return Flags(c.bits.Load())
}

// Take returns the current bits and clears them atomically.
func (c *FlagCell) Take() Flags {
	return Flags(c.bits.Swap(0))
}

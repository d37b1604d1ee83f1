// Package keypad decodes keypad input into controller commands.
package keypad

import (
	"sync"

	"github.com/oshokin/touch-alarm/internal/domain/alarm"
)

// Key is a keypad symbol.
type Key byte

// Keypad symbols. The A-D keys report the DC1-DC4 control characters.
const (
	None Key = 0
	DC1  Key = 0x11
	DC2  Key = 0x12
	DC3  Key = 0x13
	DC4  Key = 0x14
)

// Command maps a key to a controller command. Unknown keys map to NoCommand.
func Command(k Key) alarm.Command {
	switch k {
	case DC1:
		return alarm.ArmCommand
	case DC3:
		return alarm.DumpChecksumCommand
	case DC4:
		return alarm.DisarmCommand
	default:
		return alarm.NoCommand
	}
}

// FromRune maps a keypad legend to its symbol: A-D to DC1-DC4, digits and
// '*', '#' to themselves.
func FromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'd':
		return DC1 + Key(r-'a')
	case r >= 'A' && r <= 'D':
		return DC1 + Key(r-'A')
	case r >= '0' && r <= '9', r == '*', r == '#':
		return Key(r)
	default:
		return None
	}
}

// Buffer holds key presses until the scheduler picks them up.
// Press may be called from any goroutine; Task and Get belong to the
// scheduler loop.
type Buffer struct {
	pending []Key
	current Key
	mu      sync.Mutex
}

// maxPending caps the presses queued between two slices.
const maxPending = 8

// NewBuffer returns an empty keypad buffer.
func NewBuffer() *Buffer {
	return new(Buffer)
}

// Press queues a key. Presses beyond the queue capacity are dropped.
func (b *Buffer) Press(k Key) {
	if k == None {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.pending) >= maxPending {
		return
	}

	b.pending = append(b.pending, k)
}

// Task moves at most one queued press into the current slot.
func (b *Buffer) Task() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current != None || len(b.pending) == 0 {
		return
	}

	b.current = b.pending[0]
	b.pending = b.pending[1:]
}

// Get returns the current key and clears it, None when there is none.
func (b *Buffer) Get() Key {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := b.current
	b.current = None

	return k
}

package sim

import "sync"

// LED is one indicator.
type LED struct {
	on      bool
	toggles uint32
	mu      sync.Mutex
}

// Set drives the LED.
func (l *LED) Set(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.on != on {
		l.toggles++
	}

	l.on = on
}

// On reports whether the LED is lit.
func (l *LED) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.on
}

// Toggles counts the state changes since power-on.
func (l *LED) Toggles() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.toggles
}

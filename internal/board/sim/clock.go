package sim

import (
	"sync"
	"time"
)

// Clock is the free-running millisecond counter.
type Clock struct {
	start time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClock starts the counter at zero.
func NewClock() *Clock {
	return &Clock{
		start: time.Now(),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Millis returns milliseconds since the board started, wrapping at 2^32.
func (c *Clock) Millis() uint32 {
	return uint32(c.now().Sub(c.start).Milliseconds())
}

// Sleep pauses the caller.
func (c *Clock) Sleep(d time.Duration) {
	c.sleep(d)
}

// RTC is the seconds counter of the real-time clock.
type RTC struct {
	base  uint32
	setAt time.Time
	now   func() time.Time
	mu    sync.Mutex
}

// NewRTC starts the counter at seconds.
func NewRTC(seconds uint32) *RTC {
	return &RTC{
		base:  seconds,
		setAt: time.Now(),
		now:   time.Now,
	}
}

// NewRTCFromWallClock sets the counter to the local time of day.
func NewRTCFromWallClock() *RTC {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return NewRTC(uint32(now.Sub(midnight) / time.Second))
}

// Seconds returns the current counter value.
func (r *RTC) Seconds() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.base + uint32(r.now().Sub(r.setAt)/time.Second)
}

// Set loads a new counter value.
func (r *RTC) Set(seconds uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.base = seconds
	r.setAt = r.now()
}

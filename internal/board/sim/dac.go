package sim

import (
	"sync"
	"time"

	"github.com/oshokin/touch-alarm/internal/wavegen"
)

// DAC is the circular playback engine behind the tone output.
type DAC struct {
	table   *wavegen.Table
	boundAt time.Time
	binds   uint32
	period  time.Duration
	now     func() time.Time
	mu      sync.Mutex
}

// NewDAC creates an engine stepping one sample per period. Nothing is bound.
func NewDAC(period time.Duration) *DAC {
	return &DAC{
		period: period,
		now:    time.Now,
	}
}

// Bind restarts playback of table from its first sample.
func (d *DAC) Bind(table *wavegen.Table) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.table = table
	d.boundAt = d.now()
	d.binds++
}

// Bound returns the table being played, nil before the first Bind.
func (d *DAC) Bound() *wavegen.Table {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.table
}

// Binds counts the rebinds since power-on.
func (d *DAC) Binds() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.binds
}

// SampleAt returns the code on the output at t. Before any Bind, or for t
// before the last Bind, the output sits at midscale.
func (d *DAC) SampleAt(t time.Time) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.table == nil || d.period <= 0 || t.Before(d.boundAt) {
		return wavegen.Midscale
	}

	step := int64(t.Sub(d.boundAt) / d.period)

	return d.table[step%wavegen.TableSize]
}

// Sample returns the code on the output now.
func (d *DAC) Sample() uint16 {
	return d.SampleAt(d.now())
}

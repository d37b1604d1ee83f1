// Package wavegen selects the sample table played by the tone engine.
//
// The engine (a DMA channel feeding the DAC on the board) cycles through the
// bound table on its own; the host only rebinds it between the tone and the
// flat silence table.
package wavegen

import "sync"

// TableSize is the number of samples in one period.
const TableSize = 64

// Midscale is the DAC code of the zero level.
const Midscale uint16 = 0x07FF

// Table is one period of 12-bit DAC samples.
type Table [TableSize]uint16

// ToneTable is the alarm sound.
//
//nolint:gochecknoglobals // Read-only sample data shared with the playback engine.
var ToneTable = Table{
	0x07FF, 0x0CA4, 0x0D60, 0x0AA6, 0x0836, 0x085A, 0x09A5, 0x09AD,
	0x0877, 0x07F1, 0x08C9, 0x097C, 0x08D5, 0x07E1, 0x0845, 0x0989,
	0x0999, 0x0819, 0x0793, 0x0A36, 0x0E4C, 0x0F94, 0x0C45, 0x0763,
	0x0544, 0x06AC, 0x089B, 0x0889, 0x0746, 0x0711, 0x0828, 0x08C2,
	0x07FF, 0x073B, 0x07D6, 0x08ED, 0x08B8, 0x0775, 0x0763, 0x0952,
	0x0ABA, 0x089B, 0x03B9, 0x006A, 0x01B2, 0x05C8, 0x086B, 0x07E5,
	0x0665, 0x0675, 0x07B9, 0x081D, 0x0729, 0x0682, 0x0735, 0x080D,
	0x0787, 0x0651, 0x0659, 0x07A4, 0x07C8, 0x0558, 0x029E, 0x035A,
}

// SilenceTable holds the DAC at midscale.
//
//nolint:gochecknoglobals // Read-only sample data shared with the playback engine.
var SilenceTable = func() Table {
	var t Table
	for i := range t {
		t[i] = Midscale
	}

	return t
}()

// Engine plays a table in a loop without host intervention.
type Engine interface {
	// Bind rebinds the engine to table and re-arms circular playback.
	Bind(table *Table)
}

// Output switches the engine between tone and silence.
type Output struct {
	engine Engine
	active *Table
	mu     sync.Mutex
}

// NewOutput binds the silence table and returns the output.
func NewOutput(engine Engine) *Output {
	o := &Output{engine: engine}
	o.bind(&SilenceTable)

	return o
}

// Enable binds the tone table when on is true and the silence table otherwise.
// Enabling the table that is already bound does nothing.
func (o *Output) Enable(on bool) {
	table := &SilenceTable
	if on {
		table = &ToneTable
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.active == table {
		return
	}

	o.bind(table)
}

// Active returns the bound table.
func (o *Output) Active() *Table {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.active
}

// Sounding reports whether the tone table is bound.
func (o *Output) Sounding() bool {
	return o.Active() == &ToneTable
}

func (o *Output) bind(table *Table) {
	o.engine.Bind(table)
	o.active = table
}

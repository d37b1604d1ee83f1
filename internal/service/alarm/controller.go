package alarm

import (
	"context"
	"errors"
	"sync"

	domain "github.com/oshokin/touch-alarm/internal/domain/alarm"
	"github.com/oshokin/touch-alarm/internal/keypad"
	"github.com/oshokin/touch-alarm/internal/logger"
	"github.com/oshokin/touch-alarm/internal/touch"
)

// Display rows used by the controller.
const (
	StatusRow     = 1
	DiagnosticRow = 2
	checksumWidth = 4
)

// LED is one indicator output.
type LED interface {
	Set(on bool)
}

// Display is the status sink.
type Display interface {
	ClearLine(row int)
	MoveCursor(row, col int)
	WriteString(s string)
	WriteHexWord(value uint32, nibbles int)
}

// Keypad yields at most one key per call, keypad.None otherwise.
type Keypad interface {
	Get() keypad.Key
}

// FlagSource hands over the touch flags raised since the last call.
type FlagSource interface {
	TakeFlags() touch.Flags
}

// Tone switches the alarm sound.
type Tone interface {
	Enable(on bool)
}

// ChecksumFunc computes the diagnostic memory checksum.
type ChecksumFunc func() (uint16, error)

// Options wires the controller to its collaborators.
type Options struct {
	Keypad  Keypad
	Touch   FlagSource
	Tone    Tone
	Display Display
	// LEDs are the indicators of pad A and pad B.
	LEDs [domain.PadCount]LED
	// Channels are the touch channels of pad A and pad B.
	Channels [domain.PadCount]uint8
	Checksum ChecksumFunc
}

// errMissingCollaborator is returned when Options lacks a dependency.
var errMissingCollaborator = errors.New("controller collaborator is not set")

// Controller applies the alarm machine to the board.
type Controller struct {
	opts     Options
	snapshot domain.Snapshot
	// mu guards snapshot for readers outside the scheduler loop.
	mu sync.RWMutex
}

// New creates a controller in the power-on snapshot.
func New(opts Options) (*Controller, error) {
	if opts.Keypad == nil || opts.Touch == nil || opts.Tone == nil || opts.Display == nil ||
		opts.LEDs[domain.PadA] == nil || opts.LEDs[domain.PadB] == nil || opts.Checksum == nil {
		return nil, errMissingCollaborator
	}

	return &Controller{
		opts:     opts,
		snapshot: domain.Initial(),
	}, nil
}

// ControlTask runs entry actions and handles one keypad command.
func (c *Controller) ControlTask(ctx context.Context) {
	cmd := keypad.Command(c.opts.Keypad.Get())

	c.mu.Lock()
	before := c.snapshot
	next, fx := domain.Control(before, cmd)
	c.snapshot = next
	c.mu.Unlock()

	if !before.Current.Valid() {
		logger.WarnKV(ctx, "Unknown alarm state, resetting", "state", before.Current.String())
	}

	if fx.Status != "" {
		logger.InfoKV(ctx, "Alarm state entered", "state", next.Previous.String())
	}

	c.apply(ctx, fx)
}

// IndicatorTask consumes the touch flags and drives the LEDs.
func (c *Controller) IndicatorTask(ctx context.Context) {
	touches := c.touches(c.opts.Touch.TakeFlags())

	c.mu.Lock()
	before := c.snapshot
	next, fx := domain.Indicate(before, touches)
	c.snapshot = next
	c.mu.Unlock()

	if before.Current == domain.Armed && next.Current == domain.Alarm {
		logger.WarnKV(ctx, "Touch detected while armed",
			"pad_a", next.Indicators[domain.PadA],
			"pad_b", next.Indicators[domain.PadB])
	}

	c.apply(ctx, fx)
}

// Snapshot returns a copy of the machine state.
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.snapshot
}

// State returns the current alarm state.
func (c *Controller) State() domain.State {
	return c.Snapshot().Current
}

// ShowChecksum writes the memory checksum on the diagnostic row.
func (c *Controller) ShowChecksum(ctx context.Context) {
	sum, err := c.opts.Checksum()
	if err != nil {
		logger.ErrorKV(ctx, "Memory checksum failed", "error", err)

		return
	}

	logger.InfoKV(ctx, "Memory checksum", "sum", sum)

	c.opts.Display.ClearLine(DiagnosticRow)
	c.opts.Display.MoveCursor(DiagnosticRow, 1)
	c.opts.Display.WriteHexWord(uint32(sum), checksumWidth)
}

func (c *Controller) touches(flags touch.Flags) domain.Touches {
	return domain.Touches{
		flags.Has(c.opts.Channels[domain.PadA]),
		flags.Has(c.opts.Channels[domain.PadB]),
	}
}

func (c *Controller) apply(ctx context.Context, fx domain.Effects) {
	for pad, cmd := range fx.LEDs {
		switch cmd {
		case domain.LEDOn:
			c.opts.LEDs[pad].Set(true)
		case domain.LEDOff:
			c.opts.LEDs[pad].Set(false)
		case domain.LEDUnchanged:
		}
	}

	switch fx.Tone {
	case domain.ToneOn:
		c.opts.Tone.Enable(true)
	case domain.ToneOff:
		c.opts.Tone.Enable(false)
	case domain.ToneUnchanged:
	}

	if fx.Status != "" {
		c.opts.Display.ClearLine(StatusRow)
		c.opts.Display.MoveCursor(StatusRow, 1)
		c.opts.Display.WriteString(fx.Status)
	}

	if fx.DumpChecksum {
		c.ShowChecksum(ctx)
	}
}

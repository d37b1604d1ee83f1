package alarm

import "fmt"

// State is the alarm mode.
type State uint8

const (
	// Disarmed ignores touches except for the local blink feedback.
	Disarmed State = iota
	// Armed escalates to Alarm on any touch.
	Armed
	// Alarm sounds the tone until disarmed.
	Alarm
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Disarmed:
		return "DISARMED"
	case Armed:
		return "ARMED"
	case Alarm:
		return "ALARM"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	return s <= Alarm
}

// Command is a decoded keypad symbol.
type Command uint8

const (
	// NoCommand means no key was pressed this tick.
	NoCommand Command = iota
	// ArmCommand moves Disarmed to Armed.
	ArmCommand
	// DisarmCommand moves Armed or Alarm to Disarmed.
	DisarmCommand
	// DumpChecksumCommand shows the memory checksum in any state.
	DumpChecksumCommand
)

// Pad identifies one of the two touch pads.
type Pad uint8

const (
	// PadA is the first pad (LED8 on the board).
	PadA Pad = iota
	// PadB is the second pad (LED9 on the board).
	PadB
)

// PadCount is the number of pads the controller drives.
const PadCount = 2

// Touches holds which pads read touched in the latest flag set.
type Touches [PadCount]bool

// Any reports whether at least one pad is touched.
func (t Touches) Any() bool {
	return t[PadA] || t[PadB]
}

// Counters drive the blink cadence. They are reset on state entry only.
type Counters struct {
	First  uint8
	Second uint8
}

// Indicators latch which pad caused the alarm until the next Disarmed entry.
type Indicators [PadCount]bool

// Snapshot is the complete controller state.
type Snapshot struct {
	Current  State
	Previous State
	Counters Counters
	// Indicators are the led8/led9 latches.
	Indicators Indicators
}

// Initial returns the power-on snapshot. Previous differs from Current so
// the Disarmed entry actions run on the first tick.
func Initial() Snapshot {
	return Snapshot{
		Current:  Disarmed,
		Previous: Armed,
	}
}

// Entering reports whether the next Control call runs entry actions.
func (s Snapshot) Entering() bool {
	return s.Previous != s.Current
}

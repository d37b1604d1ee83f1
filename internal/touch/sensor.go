package touch

import (
	"errors"
	"fmt"
)

// MaxChannels is the number of addressable electrodes.
const MaxChannels = 16

// Controller is the scan hardware.
type Controller interface {
	// StartScan triggers a measurement of channel.
	StartScan(channel uint8)
	// WaitForCompletion blocks until the running scan ends, clears the
	// end-of-scan condition and returns the raw count.
	WaitForCompletion() uint16
}

// Pad configures one electrode.
type Pad struct {
	// Channel is the electrode index.
	Channel uint8
	// Offset is added to the baseline to form the threshold.
	Offset uint16
}

// Level is the calibration record of a channel.
type Level struct {
	Baseline  uint16
	Offset    uint16
	Threshold uint16
}

// phase is the two-state toggle of ScanAndEvaluate.
type phase uint8

const (
	procAStartB phase = iota
	procBStartA
)

var (
	// errChannelRange is returned for a channel outside 0-15.
	errChannelRange = errors.New("channel out of range")
	// errSameChannel is returned when both pads use one electrode.
	errSameChannel = errors.New("pads share a channel")
)

// Sensor scans two pads and records touches.
type Sensor struct {
	hw     Controller
	pads   [2]uint8
	levels [MaxChannels]Level
	phase  phase
	flags  FlagCell
}

// NewSensor creates a sensor for pads a and b. It does not touch the hardware;
// call CalibrateAll and then Start before the first ScanAndEvaluate.
func NewSensor(hw Controller, a, b Pad) (*Sensor, error) {
	for _, pad := range []Pad{a, b} {
		if pad.Channel >= MaxChannels {
			return nil, fmt.Errorf("%w: %d", errChannelRange, pad.Channel)
		}
	}

	if a.Channel == b.Channel {
		return nil, fmt.Errorf("%w: %d", errSameChannel, a.Channel)
	}

	s := &Sensor{
		hw:   hw,
		pads: [2]uint8{a.Channel, b.Channel},
	}

	s.levels[a.Channel].Offset = a.Offset
	s.levels[b.Channel].Offset = b.Offset

	return s, nil
}

// Channels returns the electrodes of pad A and pad B.
func (s *Sensor) Channels() (a, b uint8) {
	return s.pads[0], s.pads[1]
}

// Calibrate measures the untouched count of channel and derives its threshold.
// The pad must not be pressed; a pressed pad yields a threshold that no touch
// will exceed, and nothing detects it.
func (s *Sensor) Calibrate(channel uint8) Level {
	if channel >= MaxChannels {
		return Level{}
	}

	s.hw.StartScan(channel)

	lvl := &s.levels[channel]
	lvl.Baseline = s.hw.WaitForCompletion()
	lvl.Threshold = lvl.Baseline + lvl.Offset

	return *lvl
}

// CalibrateAll calibrates both pads, pad A first.
func (s *Sensor) CalibrateAll() (a, b Level) {
	return s.Calibrate(s.pads[0]), s.Calibrate(s.pads[1])
}

// Level returns the calibration record of channel.
func (s *Sensor) Level(channel uint8) Level {
	if channel >= MaxChannels {
		return Level{}
	}

	return s.levels[channel]
}

// Start primes the toggle by starting a scan of pad A.
func (s *Sensor) Start() {
	s.phase = procAStartB
	s.hw.StartScan(s.pads[0])
}

// ScanAndEvaluate finishes the pending scan of one pad, evaluates it and
// starts the other pad, so each call waits for at most one scan.
func (s *Sensor) ScanAndEvaluate() {
	switch s.phase {
	case procAStartB:
		s.evaluate(s.pads[0])
		s.hw.StartScan(s.pads[1])
		s.phase = procBStartA
	case procBStartA:
		s.evaluate(s.pads[1])
		s.hw.StartScan(s.pads[0])
		s.phase = procAStartB
	default:
		s.phase = procAStartB
	}
}

// TakeFlags returns the touched channels since the last call and clears them.
func (s *Sensor) TakeFlags() Flags {
	return s.flags.Take()
}

// evaluate waits for channel's scan and raises its flag above threshold.
func (s *Sensor) evaluate(channel uint8) {
	count := s.hw.WaitForCompletion()
	if count > s.levels[channel].Threshold {
		s.flags.Raise(channel)
	}
}

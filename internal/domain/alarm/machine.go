package alarm

// Blink cadence in ticks. Counters are incremented before being compared,
// so a counter reads 1 on the first tick of a window.
const (
	disarmedPadAOn  = 27
	disarmedPadAOff = 49
	disarmedPadBOn  = 25
	disarmedWrap    = 50
	armedPadAOn     = 25
	armedWrap       = 50
	alarmBlinkOn    = 5
	alarmBlinkWrap  = 10
)

// Control runs the entry actions of the current state once, then applies cmd.
// A snapshot holding an unknown state is reset to Disarmed.
func Control(s Snapshot, cmd Command) (Snapshot, Effects) {
	var fx Effects

	switch s.Current {
	case Disarmed:
		if s.Entering() {
			fx.allOff()
			fx.Tone = ToneOff
			fx.Status = Disarmed.String()
			s.Indicators = Indicators{}
			s.Counters = Counters{}
			s.Previous = Disarmed
		}

		if cmd == ArmCommand {
			s.Current = Armed
		}
	case Armed:
		if s.Entering() {
			fx.Status = Armed.String()
			s.Counters.First = 0
			s.Previous = Armed
		}

		if cmd == DisarmCommand {
			s.Current = Disarmed
		}
	case Alarm:
		if s.Entering() {
			fx.allOff()
			fx.Tone = ToneOn
			fx.Status = Alarm.String()
			s.Counters = Counters{}
			s.Previous = Alarm
		}

		if cmd == DisarmCommand {
			s.Current = Disarmed
		}
	default:
		s.Current = Disarmed

		return s, fx
	}

	fx.DumpChecksum = cmd == DumpChecksumCommand

	return s, fx
}

// Indicate runs the per-tick LED logic for the current state.
// While Armed, any touched pad latches its indicator and moves the machine to Alarm;
// the Alarm entry actions then run on the next Control call.
func Indicate(s Snapshot, touches Touches) (Snapshot, Effects) {
	var fx Effects

	switch s.Current {
	case Disarmed:
		s.Counters.First++
		s.Counters.Second++

		switch {
		case !touches[PadA]:
			fx.set(PadA, false)
		case s.Counters.First <= disarmedPadAOn:
			fx.set(PadA, true)
		case s.Counters.First <= disarmedPadAOff:
			fx.set(PadA, false)
		default:
			s.Counters.First = 0
		}

		switch {
		case !touches[PadB]:
			fx.set(PadB, false)
		case s.Counters.Second <= disarmedPadBOn:
			fx.set(PadB, true)
		default:
			fx.set(PadB, false)

			if s.Counters.Second >= disarmedWrap {
				s.Counters.Second = 0
			}
		}
	case Armed:
		s.latch(touches)

		if touches.Any() {
			s.Current = Alarm
		}

		s.Counters.First++

		firstHalf := s.Counters.First <= armedPadAOn
		fx.set(PadA, firstHalf)
		fx.set(PadB, !firstHalf)

		if !firstHalf && s.Counters.First >= armedWrap {
			s.Counters.First = 0
		}
	case Alarm:
		s.latch(touches)
		fastBlink(&fx, PadA, &s.Counters.First, s.Indicators[PadA])
		fastBlink(&fx, PadB, &s.Counters.Second, s.Indicators[PadB])
	default:
		s.Current = Disarmed
	}

	return s, fx
}

// latch records which pads were touched.
func (s *Snapshot) latch(touches Touches) {
	for pad, touched := range touches {
		if touched {
			s.Indicators[pad] = true
		}
	}
}

// fastBlink drives the alarm blink of one pad. The counter is held at zero
// while the pad's indicator is not latched.
func fastBlink(fx *Effects, pad Pad, counter *uint8, latched bool) {
	if !latched {
		*counter = 0

		return
	}

	*counter++
	if *counter <= alarmBlinkOn {
		fx.set(pad, true)

		return
	}

	fx.set(pad, false)

	if *counter >= alarmBlinkWrap {
		*counter = 0
	}
}

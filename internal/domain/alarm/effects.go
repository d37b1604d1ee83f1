package alarm

// LEDCommand is what to do with one indicator LED this tick.
type LEDCommand uint8

const (
	// LEDUnchanged leaves the LED as it is.
	LEDUnchanged LEDCommand = iota
	// LEDOn lights the LED.
	LEDOn
	// LEDOff turns the LED off.
	LEDOff
)

// ToneCommand is what to do with the waveform output.
type ToneCommand uint8

const (
	// ToneUnchanged keeps the current table bound.
	ToneUnchanged ToneCommand = iota
	// ToneOn binds the tone table.
	ToneOn
	// ToneOff binds the silence table.
	ToneOff
)

// Effects collects the outputs of one Control or Indicate step.
type Effects struct {
	LEDs [PadCount]LEDCommand
	Tone ToneCommand
	// Status is the new text for the status line, empty when unchanged.
	Status string
	// DumpChecksum asks for the memory checksum to be shown.
	DumpChecksum bool
}

func (e *Effects) set(pad Pad, on bool) {
	if on {
		e.LEDs[pad] = LEDOn

		return
	}

	e.LEDs[pad] = LEDOff
}

func (e *Effects) allOff() {
	e.LEDs = [PadCount]LEDCommand{LEDOff, LEDOff}
}

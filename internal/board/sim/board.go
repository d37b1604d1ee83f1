package sim

import (
	"fmt"

	"github.com/oshokin/touch-alarm/internal/config"
	"github.com/oshokin/touch-alarm/internal/display"
	"github.com/oshokin/touch-alarm/internal/keypad"
)

// Board bundles the simulated peripherals.
type Board struct {
	Clock   *Clock
	RTC     *RTC
	Touch   *TouchController
	LEDs    [2]*LED
	DAC     *DAC
	Accel   *Accelerometer
	Flash   *Flash
	Display *display.CharLCD
	Keys    *keypad.Buffer
}

// New powers up a board for cfg. The RTC starts at the local time of day.
func New(cfg *config.Config) (*Board, error) {
	flash, err := OpenFlash(cfg.Checksum.Image)
	if err != nil {
		return nil, fmt.Errorf("open flash: %w", err)
	}

	return &Board{
		Clock:   NewClock(),
		RTC:     NewRTCFromWallClock(),
		Touch:   NewTouchController(),
		LEDs:    [2]*LED{new(LED), new(LED)},
		DAC:     NewDAC(cfg.Waveform.SamplePeriod),
		Accel:   NewAccelerometer(),
		Flash:   flash,
		Display: display.NewCharLCD(),
		Keys:    keypad.NewBuffer(),
	}, nil
}

package appliance

import (
	"context"
	"fmt"

	"github.com/oshokin/touch-alarm/internal/board/sim"
	"github.com/oshokin/touch-alarm/internal/config"
	"github.com/oshokin/touch-alarm/internal/device/mma8451"
	"github.com/oshokin/touch-alarm/internal/domain/alarm"
	"github.com/oshokin/touch-alarm/internal/logger"
	"github.com/oshokin/touch-alarm/internal/memory"
	"github.com/oshokin/touch-alarm/internal/scheduler"
	alarmsvc "github.com/oshokin/touch-alarm/internal/service/alarm"
	"github.com/oshokin/touch-alarm/internal/service/tamper"
	"github.com/oshokin/touch-alarm/internal/service/timeofday"
	"github.com/oshokin/touch-alarm/internal/touch"
	"github.com/oshokin/touch-alarm/internal/wavegen"
)

// Task names in execution order.
const (
	TaskKey       = "key"
	TaskTouch     = "touch"
	TaskControl   = "control"
	TaskIndicator = "indicator"
	TaskTamper    = "tamper"
	TaskClock     = "clock"
)

// Appliance is a booted board with its task list.
type Appliance struct {
	cfg        *config.Config
	board      *sim.Board
	sensor     *touch.Sensor
	tone       *wavegen.Output
	controller *alarmsvc.Controller
	tamper     *tamper.Monitor
	clock      *timeofday.Clock
	scheduler  *scheduler.Scheduler
}

// New boots board: pads are calibrated (they must not be touched), the
// accelerometer is configured, the tone output is silenced and the memory
// checksum is shown on the diagnostic row.
func New(ctx context.Context, cfg *config.Config, board *sim.Board) (*Appliance, error) {
	a := &Appliance{
		cfg:   cfg,
		board: board,
	}

	if err := a.initTouch(ctx); err != nil {
		return nil, err
	}

	accel := mma8451.New(board.Accel)
	if err := accel.Configure(); err != nil {
		return nil, fmt.Errorf("configure accelerometer: %w", err)
	}

	a.tone = wavegen.NewOutput(board.DAC)

	padA, padB := a.sensor.Channels()

	var err error

	a.controller, err = alarmsvc.New(alarmsvc.Options{
		Keypad:   board.Keys,
		Touch:    a.sensor,
		Tone:     a.tone,
		Display:  board.Display,
		LEDs:     [alarm.PadCount]alarmsvc.LED{board.LEDs[alarm.PadA], board.LEDs[alarm.PadB]},
		Channels: [alarm.PadCount]uint8{padA, padB},
		Checksum: a.Checksum,
	})
	if err != nil {
		return nil, fmt.Errorf("create controller: %w", err)
	}

	if a.tamper, err = tamper.New(accel, board.Display, cfg.Tamper); err != nil {
		return nil, fmt.Errorf("create tamper monitor: %w", err)
	}

	if a.clock, err = timeofday.New(board.RTC, board.Display); err != nil {
		return nil, fmt.Errorf("create clock: %w", err)
	}

	a.scheduler, err = scheduler.New(board.Clock, cfg.SlicePeriod, a.tasks(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	a.controller.ShowChecksum(logger.WithName(ctx, "boot"))

	return a, nil
}

// Loop runs the task list until ctx is done and leaves the tone silenced.
func (a *Appliance) Loop(ctx context.Context) error {
	logger.InfoKV(ctx, "Scheduler started",
		"slice_period", a.cfg.SlicePeriod,
		"tasks", a.scheduler.Tasks())

	err := a.scheduler.Run(ctx)

	a.tone.Enable(false)

	logger.InfoKV(ctx, "Scheduler stopped",
		"slices", a.scheduler.Slices(),
		"state", a.controller.State().String())

	return err
}

// Board returns the board the appliance runs on.
func (a *Appliance) Board() *sim.Board {
	return a.board
}

// Controller returns the alarm controller.
func (a *Appliance) Controller() *alarmsvc.Controller {
	return a.controller
}

// Tone returns the waveform output.
func (a *Appliance) Tone() *wavegen.Output {
	return a.tone
}

// Channels returns the touch channels of pad A and pad B.
func (a *Appliance) Channels() [alarm.PadCount]uint8 {
	padA, padB := a.sensor.Channels()

	return [alarm.PadCount]uint8{padA, padB}
}

// Levels returns the calibration records of pad A and pad B.
func (a *Appliance) Levels() (padA, padB touch.Level) {
	chA, chB := a.sensor.Channels()

	return a.sensor.Level(chA), a.sensor.Level(chB)
}

// Checksum sums the configured flash range.
func (a *Appliance) Checksum() (uint16, error) {
	return memoryChecksum(a.board.Flash, a.cfg)
}

// RunOnce waits for the next timeslice and runs the task list once.
func (a *Appliance) RunOnce(ctx context.Context) {
	a.scheduler.RunOnce(ctx)
}

func memoryChecksum(flash *sim.Flash, cfg *config.Config) (uint16, error) {
	sum, err := memory.Checksum(flash, cfg.Checksum.Start, cfg.Checksum.End)
	if err != nil {
		return 0, fmt.Errorf("sum flash: %w", err)
	}

	return sum, nil
}

func (a *Appliance) initTouch(ctx context.Context) error {
	sensor, err := touch.NewSensor(a.board.Touch,
		touch.Pad{Channel: a.cfg.Touch.PadA.Channel, Offset: a.cfg.Touch.PadA.Offset},
		touch.Pad{Channel: a.cfg.Touch.PadB.Channel, Offset: a.cfg.Touch.PadB.Offset})
	if err != nil {
		return fmt.Errorf("create touch sensor: %w", err)
	}

	levelA, levelB := sensor.CalibrateAll()
	sensor.Start()

	logger.InfoKV(ctx, "Pads calibrated",
		"pad_a_baseline", levelA.Baseline, "pad_a_threshold", levelA.Threshold,
		"pad_b_baseline", levelB.Baseline, "pad_b_threshold", levelB.Threshold)

	a.sensor = sensor

	return nil
}

func (a *Appliance) tasks(ctx context.Context) []scheduler.Task {
	named := func(name string, run func(context.Context)) scheduler.Task {
		taskCtx := logger.WithName(ctx, name)

		return scheduler.Task{
			Name: name,
			Run: func(context.Context) {
				run(taskCtx)
			},
		}
	}

	return []scheduler.Task{
		named(TaskKey, func(context.Context) { a.board.Keys.Task() }),
		named(TaskTouch, func(context.Context) { a.sensor.ScanAndEvaluate() }),
		named(TaskControl, a.controller.ControlTask),
		named(TaskIndicator, a.controller.IndicatorTask),
		named(TaskTamper, a.tamper.Task),
		named(TaskClock, a.clock.Task),
	}
}

package appliance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/oshokin/touch-alarm/internal/board/sim"
	"github.com/oshokin/touch-alarm/internal/config"
	"github.com/oshokin/touch-alarm/internal/logger"
	"github.com/oshokin/touch-alarm/internal/panel"
	"github.com/oshokin/touch-alarm/internal/touch"
	"github.com/oshokin/touch-alarm/internal/version"
)

// Options controls one appliance run.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file. Defaults are used when it does not exist.
	ConfigPath string
	// Headless runs without the front panel and logs to stdout.
	Headless bool
	// Duration stops the appliance after the given time; zero runs until canceled.
	Duration time.Duration
}

// Run boots the appliance and blocks until ctx is canceled, Duration elapses
// or the front panel is closed.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	restoreLogger, err := setupLogging(cfg, opts.Headless)
	if err != nil {
		return err
	}

	defer restoreLogger()

	ctx = logger.WithName(ctx, "touch-alarm")
	logger.InfoKV(ctx, "Starting appliance", version.Fields()...)

	if err = ensureSingleInstance(ps.Processes); err != nil {
		return err
	}

	board, err := sim.New(cfg)
	if err != nil {
		return fmt.Errorf("power up board: %w", err)
	}

	app, err := New(ctx, cfg, board)
	if err != nil {
		return fmt.Errorf("boot appliance: %w", err)
	}

	if opts.Duration > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	if opts.Headless {
		return app.Loop(ctx)
	}

	return runWithPanel(ctx, app)
}

// runWithPanel drives the loop in the background while the panel owns the terminal.
func runWithPanel(ctx context.Context, app *Appliance) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loopErr := make(chan error, 1)

	go func() {
		loopErr <- app.Loop(ctx)
	}()

	panelErr := panel.Run(ctx, panel.Options{
		Board:    app.Board(),
		Channels: app.Channels(),
		Tone:     app.Tone(),
		State:    func() string { return app.Controller().State().String() },
	})

	cancel()

	return errors.Join(panelErr, <-loopErr)
}

// Calibrate powers up the board and returns the calibration records of both pads.
func Calibrate(ctx context.Context, configPath string) (padA, padB touch.Level, err error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return padA, padB, fmt.Errorf("load settings: %w", err)
	}

	board, err := sim.New(cfg)
	if err != nil {
		return padA, padB, fmt.Errorf("power up board: %w", err)
	}

	app, err := New(logger.WithName(ctx, "calibrate"), cfg, board)
	if err != nil {
		return padA, padB, fmt.Errorf("boot appliance: %w", err)
	}

	padA, padB = app.Levels()

	return padA, padB, nil
}

// Checksum returns the memory checksum of the configured range.
func Checksum(configPath string) (uint16, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return 0, fmt.Errorf("load settings: %w", err)
	}

	flash, err := sim.OpenFlash(cfg.Checksum.Image)
	if err != nil {
		return 0, fmt.Errorf("open flash: %w", err)
	}

	return memoryChecksum(flash, cfg)
}

// setupLogging applies the configured level. While the front panel owns the
// terminal, logs are appended to the configured file instead.
func setupLogging(cfg *config.Config, headless bool) (func(), error) {
	level, _ := logger.ParseLogLevel(cfg.LogLevel)
	logger.SetLevel(level)

	if headless {
		return func() {}, nil
	}

	file, err := os.OpenFile(filepath.Clean(cfg.LogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	previous := logger.Logger()
	logger.SetLogger(logger.NewWithWriter(file, nil, logger.WithLevel(level)))

	return func() {
		//nolint:errcheck // Nothing to do if the final flush fails.
		_ = logger.Logger().Sync()

		logger.SetLogger(previous)

		_ = file.Close()
	}, nil
}

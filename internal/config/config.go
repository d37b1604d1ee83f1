package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/touch-alarm/internal/logger"
)

// Config holds the appliance settings.
type Config struct {
	// SlicePeriod is the scheduler timeslice.
	SlicePeriod time.Duration `yaml:"slice_period"`
	// LogLevel is the minimum level written to the log.
	LogLevel string `yaml:"log_level"`
	// LogFile receives logs while the front panel owns the terminal.
	LogFile string `yaml:"log_file"`
	// Touch configures the two capacitive pads.
	Touch Touch `yaml:"touch"`
	// Tamper holds the accelerometer thresholds.
	Tamper Tamper `yaml:"tamper"`
	// Checksum selects the memory range shown on the diagnostic key.
	Checksum Checksum `yaml:"checksum"`
	// Waveform configures the tone playback engine.
	Waveform Waveform `yaml:"waveform"`
}

// Pad is a single touch electrode.
type Pad struct {
	// Channel is the sensing channel index, 0-15.
	Channel uint8 `yaml:"channel"`
	// Offset is added to the calibrated baseline to form the touch threshold.
	Offset uint16 `yaml:"offset"`
}

// Touch configures both pads.
type Touch struct {
	PadA Pad `yaml:"pad_a"`
	PadB Pad `yaml:"pad_b"`
}

// Tamper holds the axis limits of the tamper check.
type Tamper struct {
	// XMax trips the alarm when the X axis reads at or above it.
	XMax int8 `yaml:"x_max"`
	// YMax trips the alarm when the Y axis reads at or above it.
	YMax int8 `yaml:"y_max"`
	// ZMin trips the alarm when the Z axis reads at or below it.
	ZMin int8 `yaml:"z_min"`
}

// Checksum describes the memory range summed by the diagnostic command.
type Checksum struct {
	// Image is an optional file standing in for flash. A generated pattern is used when empty.
	Image string `yaml:"image"`
	// Start is the first address, inclusive.
	Start uint32 `yaml:"start"`
	// End is the last address, inclusive.
	End uint32 `yaml:"end"`
}

// Waveform configures the tone generator.
type Waveform struct {
	// SamplePeriod is the time between two DAC samples.
	SamplePeriod time.Duration `yaml:"sample_period"`
}

const (
	// DefaultConfigFilename is the default filename for appliance settings.
	DefaultConfigFilename = "touch-alarm.yaml"

	// DefaultLogFilename is where logs go while the front panel is shown.
	DefaultLogFilename = "touch-alarm.log"

	// DefaultSlicePeriod is the scheduler timeslice.
	DefaultSlicePeriod = 10 * time.Millisecond

	// MinSlicePeriod and MaxSlicePeriod bound the timeslice. Above ~25ms a
	// short touch can fall between two scans of the same pad.
	MinSlicePeriod = time.Millisecond
	MaxSlicePeriod = 25 * time.Millisecond

	// DefaultPadAChannel and DefaultPadBChannel are the electrodes wired to the pads.
	DefaultPadAChannel uint8 = 12
	DefaultPadBChannel uint8 = 11

	// DefaultTouchOffset was determined experimentally for the board's pads.
	DefaultTouchOffset uint16 = 0x0400

	// MaxChannel is the highest addressable touch channel.
	MaxChannel uint8 = 15

	// DefaultTamperXMax, DefaultTamperYMax and DefaultTamperZMin are MSB axis readings.
	DefaultTamperXMax int8 = 16
	DefaultTamperYMax int8 = 16
	DefaultTamperZMin int8 = 48

	// DefaultChecksumEnd is the last flash address summed by default.
	DefaultChecksumEnd uint32 = 0x001FFFFF

	// DefaultSamplePeriod is the DAC sample period (PIT reload 3124 at 60MHz).
	DefaultSamplePeriod = 52 * time.Microsecond

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errChannelOutOfRange is returned for a touch channel above MaxChannel.
	errChannelOutOfRange = errors.New("touch channel out of range")
	// errSameChannel is returned when both pads share one electrode.
	errSameChannel = errors.New("pads must use different channels")
	// errSlicePeriod is returned for a timeslice outside the supported bounds.
	errSlicePeriod = errors.New("slice period out of range")
	// errChecksumRange is returned when the checksum range is inverted.
	errChecksumRange = errors.New("checksum start is after end")
	// errLogLevel is returned for an unknown log level.
	errLogLevel = errors.New("unknown log level")
)

// Default returns a fully populated configuration.
func Default() *Config {
	cfg := new(Config)

	//nolint:errcheck // Defaults always validate.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults into zero fields and checks the result.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.SlicePeriod == 0 {
		cfg.SlicePeriod = DefaultSlicePeriod
	}

	if cfg.SlicePeriod < MinSlicePeriod || cfg.SlicePeriod > MaxSlicePeriod {
		return fmt.Errorf("%w: %s", errSlicePeriod, cfg.SlicePeriod)
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errLogLevel, cfg.LogLevel)
	}

	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFilename
	}

	if err := validateTouch(&cfg.Touch); err != nil {
		return err
	}

	if cfg.Tamper == (Tamper{}) {
		cfg.Tamper = Tamper{
			XMax: DefaultTamperXMax,
			YMax: DefaultTamperYMax,
			ZMin: DefaultTamperZMin,
		}
	}

	if cfg.Checksum.Start == 0 && cfg.Checksum.End == 0 {
		cfg.Checksum.End = DefaultChecksumEnd
	}

	if cfg.Checksum.Start > cfg.Checksum.End {
		return fmt.Errorf("%w: %#x > %#x", errChecksumRange, cfg.Checksum.Start, cfg.Checksum.End)
	}

	if cfg.Waveform.SamplePeriod <= 0 {
		cfg.Waveform.SamplePeriod = DefaultSamplePeriod
	}

	return nil
}

// validateTouch fills pad defaults and rejects bad channel assignments.
func validateTouch(touch *Touch) error {
	if touch.PadA.Channel == 0 && touch.PadB.Channel == 0 {
		touch.PadA.Channel = DefaultPadAChannel
		touch.PadB.Channel = DefaultPadBChannel
	}

	if touch.PadA.Offset == 0 {
		touch.PadA.Offset = DefaultTouchOffset
	}

	if touch.PadB.Offset == 0 {
		touch.PadB.Offset = DefaultTouchOffset
	}

	for _, pad := range []Pad{touch.PadA, touch.PadB} {
		if pad.Channel > MaxChannel {
			return fmt.Errorf("%w: %d", errChannelOutOfRange, pad.Channel)
		}
	}

	if touch.PadA.Channel == touch.PadB.Channel {
		return fmt.Errorf("%w: %d", errSameChannel, touch.PadA.Channel)
	}

	return nil
}

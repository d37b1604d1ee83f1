package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate_FillsDefaults checks that an empty configuration becomes the board defaults.
func TestValidate_FillsDefaults(t *testing.T) {
	t.Parallel()

	cfg := new(Config)
	require.NoError(t, Validate(cfg))

	require.Equal(t, DefaultSlicePeriod, cfg.SlicePeriod)
	require.Equal(t, DefaultPadAChannel, cfg.Touch.PadA.Channel)
	require.Equal(t, DefaultPadBChannel, cfg.Touch.PadB.Channel)
	require.Equal(t, DefaultTouchOffset, cfg.Touch.PadA.Offset)
	require.Equal(t, DefaultTouchOffset, cfg.Touch.PadB.Offset)
	require.Equal(t, DefaultTamperZMin, cfg.Tamper.ZMin)
	require.Equal(t, DefaultChecksumEnd, cfg.Checksum.End)
	require.Equal(t, DefaultSamplePeriod, cfg.Waveform.SamplePeriod)
	require.Equal(t, DefaultLogFilename, cfg.LogFile)
}

// TestValidate_Rejects covers the invalid settings.
func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]*Config{
		"nil":             nil,
		"slow slice":      {SlicePeriod: 40 * time.Millisecond},
		"fast slice":      {SlicePeriod: time.Microsecond},
		"channel too big": {Touch: Touch{PadA: Pad{Channel: 16}, PadB: Pad{Channel: 1}}},
		"shared channel":  {Touch: Touch{PadA: Pad{Channel: 3}, PadB: Pad{Channel: 3}}},
		"inverted range":  {Checksum: Checksum{Start: 0x100, End: 0x10}},
		"log level":       {LogLevel: "chatty"},
	}

	for name, cfg := range cases {
		require.Error(t, Validate(cfg), name)
	}
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "touch-alarm.yaml")

	cfg := &Config{
		SlicePeriod: 20 * time.Millisecond,
		Touch: Touch{
			PadA: Pad{Channel: 5, Offset: 0x200},
			PadB: Pad{Channel: 6, Offset: 0x300},
		},
		Checksum: Checksum{Start: 0x1000, End: 0x1FFF},
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoadOrDefault falls back to defaults only for a missing file.
func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := LoadOrDefault(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("slice_period: [\n"), DefaultFilePermissions))

	_, err = LoadOrDefault(broken)
	require.Error(t, err)
}

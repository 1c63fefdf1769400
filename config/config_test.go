package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/xgx-meta/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xgxdump.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func pinClock(t *testing.T) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	t.Cleanup(func() { timeNow = prev })
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, logging.LevelInfo, cfg.Log.Level)
	assert.Equal(t, ModeStream, cfg.Log.Mode)
	assert.Equal(t, logging.DefaultRingSize, cfg.Log.RingSize)
	assert.Equal(t, 256, cfg.Dump.Capacity)
	assert.Equal(t, 4, cfg.Dump.Parallelism)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[log]
level = "debug"
mode = "both"
ring_size = 16
color = "off"

[dump]
capacity = 64
level = "warn"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, logging.LevelDebug, cfg.Log.Level)
	assert.Equal(t, ModeBoth, cfg.Log.Mode)
	assert.Equal(t, 16, cfg.Log.RingSize)
	assert.Equal(t, ColorOff, cfg.Log.Color)
	assert.Equal(t, logging.DefaultTimeLayout, cfg.Log.TimeLayout, "unset keys keep defaults")
	assert.Equal(t, 64, cfg.Dump.Capacity)
	assert.Equal(t, 4, cfg.Dump.Parallelism)
	assert.Equal(t, logging.LevelWarning, cfg.Dump.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown_key", "[log]\nverbosity = 3\n", ErrUnknownKey},
		{"unknown_mode", "[log]\nmode = \"syslog\"\n", ErrModeUnknown},
		{"unknown_color", "[log]\ncolor = \"rainbow\"\n", ErrColorUnknown},
		{"ring_size", "[log]\nmode = \"ring\"\nring_size = 0\n", ErrRingSizeInvalid},
		{"capacity", "[dump]\ncapacity = 0\n", ErrCapacityInvalid},
		{"parallelism", "[dump]\nparallelism = -1\n", ErrParallelismInvalid},
		{"dump_level_off", "[dump]\nlevel = \"off\"\n", ErrLevelInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tt.body)
			_, err := Load(path)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "[log\nlevel = ")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse TOML")

	path = writeConfig(t, "[log]\nlevel = \"chatty\"\n")
	_, err = Load(path)
	assert.ErrorContains(t, err, `"chatty"`)
}

func TestLogConfig_UseColor(t *testing.T) {
	t.Parallel()

	c := Default().Log
	assert.True(t, c.UseColor(true))
	assert.False(t, c.UseColor(false))
	c.Color = ColorOn
	assert.True(t, c.UseColor(false))
	c.Color = ColorOff
	assert.False(t, c.UseColor(true))
}

func TestLogConfig_NewLogger(t *testing.T) {
	pinClock(t)

	t.Run("stream", func(t *testing.T) {
		var out bytes.Buffer
		c := Default().Log
		l, ring, err := c.NewLogger(&out, false)
		require.NoError(t, err)
		assert.Nil(t, ring)

		l.Log(logging.LevelInfo, "hi", "x.go", 1)
		l.Log(logging.LevelDebug, "below threshold", "x.go", 2)
		assert.Equal(t, "[INFO]:03:04:05.006:x.go:1: hi\n\r", out.String())
	})

	t.Run("ring", func(t *testing.T) {
		var out bytes.Buffer
		c := Default().Log
		c.Mode = ModeRing
		c.RingSize = 2
		c.TimeLayout = "15:04"
		l, ring, err := c.NewLogger(&out, false)
		require.NoError(t, err)
		require.NotNil(t, ring)

		l.Log(logging.LevelError, "kept", "x.go", 1)
		assert.Empty(t, out.String())
		assert.Equal(t, "[ERROR]:03:04:x.go:1: kept\n\r", ring.String())
	})

	t.Run("both", func(t *testing.T) {
		var out bytes.Buffer
		c := Default().Log
		c.Mode = ModeBoth
		l, ring, err := c.NewLogger(&out, false)
		require.NoError(t, err)
		require.NotNil(t, ring)

		l.Log(logging.LevelWarning, "twice", "x.go", 1)
		assert.Equal(t, out.String(), ring.String())
	})

	t.Run("off", func(t *testing.T) {
		var out bytes.Buffer
		c := Default().Log
		c.Level = logging.LevelOff
		l, ring, err := c.NewLogger(&out, true)
		require.NoError(t, err)
		assert.Nil(t, ring)
		assert.False(t, l.Enabled(logging.LevelError))
	})

	t.Run("invalid", func(t *testing.T) {
		c := Default().Log
		c.Mode = "nowhere"
		_, _, err := c.NewLogger(nil, false)
		assert.ErrorIs(t, err, ErrModeUnknown)
	})
}

// Package config loads the TOML settings of the xgxdump tool: where log
// records go, at which threshold, and how files are chunked through
// fixed-capacity buffers.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/xgx-io/xgx-meta/logging"
)

// Config is the root of xgxdump.toml.
type Config struct {
	Log  LogConfig  `toml:"log"`
	Dump DumpConfig `toml:"dump"`
}

// LogConfig selects the sink graph and threshold.
type LogConfig struct {
	Level      logging.Level `toml:"level"`
	Mode       string        `toml:"mode"`        // stream|ring|both
	RingSize   int           `toml:"ring_size"`   // chunks kept in ring mode
	Color      string        `toml:"color"`       // auto|on|off
	TimeLayout string        `toml:"time_layout"` // Go time layout for record stamps
}

// DumpConfig controls the dump command.
type DumpConfig struct {
	Capacity    int           `toml:"capacity"`    // bytes per chunk buffer
	Parallelism int           `toml:"parallelism"` // files processed at once
	Level       logging.Level `toml:"level"`       // level hex dumps are written at
}

// Log modes.
const (
	ModeStream = "stream"
	ModeRing   = "ring"
	ModeBoth   = "both"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config validation errors.
var (
	ErrLevelInvalid       = errors.New("log level out of range")
	ErrModeUnknown        = errors.New("unknown log mode")
	ErrColorUnknown       = errors.New("unknown color mode")
	ErrRingSizeInvalid    = errors.New("ring size must be positive")
	ErrCapacityInvalid    = errors.New("dump capacity must be positive")
	ErrParallelismInvalid = errors.New("dump parallelism must be positive")
	ErrUnknownKey         = errors.New("unknown configuration key")
)

// timeNow stamps log records; tests pin it.
var timeNow = time.Now

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      logging.LevelInfo,
			Mode:       ModeStream,
			RingSize:   logging.DefaultRingSize,
			Color:      ColorAuto,
			TimeLayout: logging.DefaultTimeLayout,
		},
		Dump: DumpConfig{
			Capacity:    256,
			Parallelism: 4,
			Level:       logging.LevelInfo,
		},
	}
}

// Load reads path over Default(). A missing file is not an error and
// yields the defaults. Keys the schema does not know are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return c.Dump.Validate()
}

// Validate checks the log section.
func (c LogConfig) Validate() error {
	if c.Level < logging.LevelDebug || c.Level > logging.LevelOff {
		return ErrLevelInvalid
	}
	switch c.Mode {
	case ModeStream, ModeRing, ModeBoth:
	default:
		return fmt.Errorf("%w: %q (expected: stream|ring|both)", ErrModeUnknown, c.Mode)
	}
	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return fmt.Errorf("%w: %q (expected: auto|on|off)", ErrColorUnknown, c.Color)
	}
	if c.Mode != ModeStream && c.RingSize <= 0 {
		return ErrRingSizeInvalid
	}
	return nil
}

// Validate checks the dump section.
func (c DumpConfig) Validate() error {
	if c.Level < logging.LevelDebug || c.Level >= logging.LevelOff {
		return ErrLevelInvalid
	}
	if c.Capacity <= 0 {
		return ErrCapacityInvalid
	}
	if c.Parallelism <= 0 {
		return ErrParallelismInvalid
	}
	return nil
}

// UseColor resolves the color mode; auto follows isTerminal.
func (c LogConfig) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorOn:
		return true
	case ColorOff:
		return false
	default:
		return isTerminal
	}
}

// NewLogger builds the sink graph described by c. Stream records go to
// out. The ring sink is returned when the mode keeps one, nil otherwise.
func (c LogConfig) NewLogger(out io.Writer, isTerminal bool) (*logging.Logger, *logging.RingSink, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	if c.Level == logging.LevelOff {
		return logging.Discard(), nil, nil
	}

	var (
		sink logging.Sink
		ring *logging.RingSink
	)
	switch c.Mode {
	case ModeStream:
		sink = logging.NewWriterSink(out).WithClock(timeNow, c.TimeLayout)
	case ModeRing:
		ring = logging.NewRingSink(c.RingSize).WithClock(timeNow, c.TimeLayout)
		sink = ring
	case ModeBoth:
		ring = logging.NewRingSink(c.RingSize).WithClock(timeNow, c.TimeLayout)
		sink = logging.NewMultiSink(logging.NewWriterSink(out).WithClock(timeNow, c.TimeLayout), ring)
	}
	l := logging.New(sink, c.Level).WithColor(c.UseColor(isTerminal))
	return l, ring, nil
}

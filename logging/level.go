package logging

import (
	"fmt"
	"strings"
)

// Level is a record severity. Higher is more severe.
type Level int8

const (
	LevelDebug   Level = iota // everything
	LevelInfo                 // progress messages
	LevelWarning              // recoverable anomalies
	LevelError                // failed operations
	LevelOff                  // threshold only: disables all records
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// tag is the record prefix, e.g. "[ERROR]:".
func (l Level) tag() string {
	return "[" + l.String() + "]:"
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts "warn" for LevelWarning.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "off":
		return LevelOff, nil
	default:
		return LevelOff, fmt.Errorf("invalid log level: %q (expected: debug|info|warning|error|off)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so levels decode
// directly from TOML strings.
func (l *Level) UnmarshalText(text []byte) error {
	lv, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lv
	return nil
}

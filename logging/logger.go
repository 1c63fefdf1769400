package logging

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/fatih/color"
)

// Logger renders records and hands them to a Sink when their level passes
// the threshold.
//
// Loggers are immutable once built: the With* methods return modified
// copies, so one Logger may be shared between goroutines as long as its
// Sink is goroutine-safe (all sinks in this package are).
type Logger struct {
	sink      Sink
	threshold Level
	colors    *palette
	metrics   *Metrics
}

// palette colors the level tags.
type palette [LevelOff]*color.Color

func newPalette() *palette {
	p := &palette{
		LevelDebug:   color.New(color.FgCyan),
		LevelInfo:    color.New(color.FgGreen),
		LevelWarning: color.New(color.FgYellow, color.Bold),
		LevelError:   color.New(color.FgRed, color.Bold),
	}
	// An explicit WithColor(true) wins over color.NoColor auto-detection.
	for _, c := range p {
		c.EnableColor()
	}
	return p
}

// New returns a Logger writing to sink records at or above threshold.
// A nil sink is replaced by Nop.
func New(sink Sink, threshold Level) *Logger {
	if sink == nil {
		sink = Nop
	}
	return &Logger{sink: sink, threshold: threshold}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger { return New(Nop, LevelOff) }

func (l *Logger) clone() *Logger {
	if l == nil {
		return Discard()
	}
	cp := *l
	return &cp
}

// WithColor returns a copy that colors level tags.
func (l *Logger) WithColor(on bool) *Logger {
	cp := l.clone()
	cp.colors = nil
	if on {
		cp.colors = newPalette()
	}
	return cp
}

// WithLevel returns a copy with a different threshold.
func (l *Logger) WithLevel(threshold Level) *Logger {
	cp := l.clone()
	cp.threshold = threshold
	return cp
}

// WithSink returns a copy writing to sink.
func (l *Logger) WithSink(sink Sink) *Logger {
	cp := l.clone()
	if sink == nil {
		sink = Nop
	}
	cp.sink = sink
	return cp
}

// WithMetrics returns a copy that counts emitted records in m.
func (l *Logger) WithMetrics(m *Metrics) *Logger {
	cp := l.clone()
	cp.metrics = m
	return cp
}

// Sink returns the destination sink.
func (l *Logger) Sink() Sink {
	if l == nil {
		return Nop
	}
	return l.sink
}

// Level returns the threshold. A nil Logger reports LevelOff.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelOff
	}
	return l.threshold
}

// Enabled reports whether a record at level would be written.
func (l *Logger) Enabled(level Level) bool {
	if l == nil || level < LevelDebug || level >= LevelOff {
		return false
	}
	return level >= l.threshold
}

// Log writes msg as one record attributed to file:line.
func (l *Logger) Log(level Level, msg, file string, line int) {
	if !l.Enabled(level) {
		return
	}
	var scratch [256]byte
	rec := l.appendHeader(scratch[:0], level, file, line)
	rec = append(rec, msg...)
	rec = append(rec, hexLineBreak...)
	l.sink.RawLog(string(rec))
	l.metrics.observeRecord(level)
}

// Logf is Log with a printf-style message.
func (l *Logger) Logf(level Level, file string, line int, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	l.Log(level, fmt.Sprintf(format, args...), file, line)
}

// Error logs at LevelError, attributed to the caller.
func (l *Logger) Error(format string, args ...any) { l.logCaller(LevelError, format, args) }

// Warn logs at LevelWarning, attributed to the caller.
func (l *Logger) Warn(format string, args ...any) { l.logCaller(LevelWarning, format, args) }

// Info logs at LevelInfo, attributed to the caller.
func (l *Logger) Info(format string, args ...any) { l.logCaller(LevelInfo, format, args) }

// Debug logs at LevelDebug, attributed to the caller.
func (l *Logger) Debug(format string, args ...any) { l.logCaller(LevelDebug, format, args) }

func (l *Logger) logCaller(level Level, format string, args []any) {
	if !l.Enabled(level) {
		return
	}
	file, line := Caller(2)
	l.Log(level, fmt.Sprintf(format, args...), file, line)
}

// HexDump writes msg as a record attributed to the caller, followed by the
// hex rendering of data.
func (l *Logger) HexDump(level Level, msg string, data []byte) {
	if !l.Enabled(level) {
		return
	}
	file, line := Caller(1)
	l.HexDumpAt(level, msg, file, line, data)
}

// HexDumpAt is HexDump with an explicit call site. The whole dump reaches
// the sink as a single chunk so concurrent dumps never interleave.
func (l *Logger) HexDumpAt(level Level, msg, file string, line int, data []byte) {
	if !l.Enabled(level) {
		return
	}
	rec := make([]byte, 0, 64+len(msg)+HexLen(len(data))+4)
	rec = l.appendHeader(rec, level, file, line)
	rec = append(rec, msg...)
	rec = append(rec, hexLineBreak...)
	rec = append(rec, "\r\n"...)
	rec = AppendHex(rec, data)
	rec = append(rec, hexLineBreak...)
	l.sink.RawLog(string(rec))
	l.metrics.observeRecord(level)
	l.metrics.observeHex(len(data))
}

// HexDumpRaw writes only the hex rendering of data, with no record header,
// continuing the line position tracked by hw. Use it to stream one long dump
// in pieces.
func (l *Logger) HexDumpRaw(level Level, hw *HexWriter, data []byte) {
	if !l.Enabled(level) || len(data) == 0 {
		return
	}
	l.sink.RawLog(string(hw.Append(make([]byte, 0, HexLen(len(data))+2), data)))
	l.metrics.observeHex(len(data))
}

// Raw writes text unmodified when level is enabled.
func (l *Logger) Raw(level Level, text string) {
	if !l.Enabled(level) {
		return
	}
	l.sink.RawLog(text)
}

func (l *Logger) appendHeader(dst []byte, level Level, file string, line int) []byte {
	if l.colors != nil {
		dst = append(dst, l.colors[level].Sprint(level.tag())...)
	} else {
		dst = append(dst, level.tag()...)
	}
	dst = append(dst, l.sink.Timestamp()...)
	dst = append(dst, ':')
	dst = append(dst, file...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(line), 10)
	dst = append(dst, ": "...)
	return dst
}

// Caller returns the base file name and line skip frames above the caller
// of Caller. skip=0 is the function calling Caller.
func Caller(skip int) (file string, line int) {
	_, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", 0
	}
	return filepath.Base(path), line
}

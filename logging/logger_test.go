package logging

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLogger returns a Logger over a ring with empty timestamps.
func newTestLogger(threshold Level) (*Logger, *RingSink) {
	ring := NewRingSink(32).WithClock(nil, "")
	return New(ring, threshold), ring
}

func line() int {
	_, _, l, _ := runtime.Caller(1)
	return l
}

func TestLogger_RecordLayout(t *testing.T) {
	t.Parallel()

	l, ring := newTestLogger(LevelDebug)
	l.Log(LevelWarning, "disk almost full", "store.go", 42)
	l.Logf(LevelInfo, "store.go", 7, "%d files", 3)

	assert.Equal(t, []string{
		"[WARNING]::store.go:42: disk almost full\n\r",
		"[INFO]::store.go:7: 3 files\n\r",
	}, ring.Snapshot())
}

func TestLogger_Timestamp(t *testing.T) {
	t.Parallel()

	ring := NewRingSink(4).WithClock(fixedClock, "")
	New(ring, LevelDebug).Log(LevelError, "boom", "a.go", 1)

	assert.Equal(t, "[ERROR]:09:30:15.250:a.go:1: boom\n\r", ring.String())
}

func TestLogger_Threshold(t *testing.T) {
	t.Parallel()

	l, ring := newTestLogger(LevelWarning)
	l.Log(LevelDebug, "d", "f.go", 1)
	l.Log(LevelInfo, "i", "f.go", 1)
	l.Log(LevelWarning, "w", "f.go", 1)
	l.Log(LevelError, "e", "f.go", 1)
	l.Log(LevelOff, "never a record level", "f.go", 1)

	require.Equal(t, 2, ring.Len())
	assert.True(t, strings.HasPrefix(ring.Snapshot()[0], "[WARNING]:"))
	assert.True(t, strings.HasPrefix(ring.Snapshot()[1], "[ERROR]:"))

	assert.False(t, l.WithLevel(LevelOff).Enabled(LevelError))
	assert.True(t, l.WithLevel(LevelDebug).Enabled(LevelDebug))
	assert.False(t, l.Enabled(Level(-1)))
}

func TestLogger_CallerAttribution(t *testing.T) {
	t.Parallel()

	l, ring := newTestLogger(LevelDebug)
	want := line() + 1
	l.Error("code %d", 7)
	l.Warn("w")
	l.Info("i")
	l.Debug("d")

	snap := ring.Snapshot()
	require.Len(t, snap, 4)
	assert.Equal(t, fmt.Sprintf("[ERROR]::logger_test.go:%d: code 7\n\r", want), snap[0])
	assert.Contains(t, snap[1], fmt.Sprintf("logger_test.go:%d: w", want+1))
	assert.Contains(t, snap[3], fmt.Sprintf("logger_test.go:%d: d", want+3))
}

func TestLogger_HexDump(t *testing.T) {
	t.Parallel()

	l, ring := newTestLogger(LevelDebug)
	l.HexDumpAt(LevelInfo, "frame", "wire.go", 9, []byte{0xCA, 0xFE})

	assert.Equal(t, "[INFO]::wire.go:9: frame\n\r\r\nCA FE \n\r", ring.String())
	assert.Equal(t, 1, ring.Len(), "a dump is one chunk")

	ring.Reset()
	want := line() + 1
	l.HexDump(LevelDebug, "here", []byte{1})
	assert.Equal(t, fmt.Sprintf("[DEBUG]::logger_test.go:%d: here\n\r\r\n01 \n\r", want), ring.String())
}

func TestLogger_HexDumpRawAndRaw(t *testing.T) {
	t.Parallel()

	l, ring := newTestLogger(LevelInfo)
	var hw HexWriter
	l.HexDumpRaw(LevelInfo, &hw, seq(10))
	l.HexDumpRaw(LevelInfo, &hw, seq(8)[:7])
	l.HexDumpRaw(LevelInfo, &hw, nil)
	l.HexDumpRaw(LevelDebug, &hw, seq(4))
	l.Raw(LevelInfo, "\n\r")
	l.Raw(LevelDebug, "dropped")

	assert.Equal(t, 17, hw.Written())
	assert.Equal(t, FormatHex(append(seq(10), seq(7)...))+"\n\r", ring.String())
}

func TestLogger_Color(t *testing.T) {
	t.Parallel()

	l, ring := newTestLogger(LevelDebug)
	l.WithColor(true).Log(LevelError, "red", "c.go", 1)
	l.WithColor(true).WithColor(false).Log(LevelError, "plain", "c.go", 2)

	snap := ring.Snapshot()
	require.Len(t, snap, 2)
	assert.True(t, strings.HasPrefix(snap[0], "\x1b["), "colored tag: %q", snap[0])
	assert.Contains(t, snap[0], "[ERROR]:")
	assert.Equal(t, "[ERROR]::c.go:2: plain\n\r", snap[1])
}

func TestLogger_NilAndDiscard(t *testing.T) {
	t.Parallel()

	var l *Logger
	assert.False(t, l.Enabled(LevelError))
	assert.Equal(t, LevelOff, l.Level())
	assert.Equal(t, Nop, l.Sink())
	assert.NotPanics(t, func() {
		l.Log(LevelError, "x", "f.go", 1)
		l.Error("x")
		l.HexDump(LevelError, "x", []byte{1})
		l.Raw(LevelError, "x")
	})

	// With* on nil builds from Discard.
	ring := NewRingSink(2).WithClock(nil, "")
	l.WithSink(ring).WithLevel(LevelInfo).Log(LevelInfo, "ok", "f.go", 3)
	assert.Equal(t, "[INFO]::f.go:3: ok\n\r", ring.String())

	assert.False(t, Discard().Enabled(LevelError))
	assert.Equal(t, Nop, New(nil, LevelDebug).Sink())
}

func TestLogger_WithCopies(t *testing.T) {
	t.Parallel()

	base, ring := newTestLogger(LevelError)
	quiet := base.WithLevel(LevelOff)
	other := NewRingSink(2)
	moved := base.WithSink(other)

	assert.Equal(t, LevelError, base.Level())
	assert.Equal(t, LevelOff, quiet.Level())
	assert.Same(t, ring, base.Sink())
	assert.Same(t, other, moved.Sink())
}

func TestLogger_ConcurrentHexDumpsDoNotInterleave(t *testing.T) {
	t.Parallel()

	l, ring := newTestLogger(LevelDebug)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			l.HexDumpAt(LevelInfo, "w", "c.go", i, seq(20))
		})
	}
	wg.Wait()

	body := "w\n\r\r\n" + FormatHex(seq(20)) + "\n\r"
	for _, chunk := range ring.Snapshot() {
		assert.True(t, strings.HasSuffix(chunk, body), "%q", chunk)
	}
}

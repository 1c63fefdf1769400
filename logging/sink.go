package logging

import (
	"io"
	"strings"
	"sync"
	"time"
)

// Sink receives fully rendered log text.
type Sink interface {
	// RawLog writes text as-is. Must be goroutine-safe and must not fail
	// loudly: sinks are best-effort.
	RawLog(text string)

	// Timestamp returns the text stamped into the next record.
	Timestamp() string
}

// DefaultTimeLayout is the timestamp layout used by WriterSink and RingSink.
const DefaultTimeLayout = "15:04:05.000"

type nopSink struct{}

func (nopSink) RawLog(string)     {}
func (nopSink) Timestamp() string { return "" }

// Nop is the package-level sink that discards everything.
var Nop Sink = nopSink{}

// clock formats timestamps for the sinks that carry one.
type clock struct {
	now    func() time.Time
	layout string
}

func (c clock) stamp() string {
	if c.now == nil {
		return ""
	}
	return c.now().Format(c.layout)
}

// WriterSink writes each chunk immediately to an io.Writer.
type WriterSink struct {
	mu  sync.Mutex
	w   io.Writer
	clk clock
}

// NewWriterSink returns a sink streaming to w. A nil w discards output.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	return &WriterSink{w: w, clk: clock{now: time.Now, layout: DefaultTimeLayout}}
}

// WithClock replaces the time source and layout. An empty layout keeps the
// current one. Intended for deterministic tests.
func (s *WriterSink) WithClock(now func() time.Time, layout string) *WriterSink {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clk.now = now
	if layout != "" {
		s.clk.layout = layout
	}
	return s
}

// RawLog writes text to the underlying writer.
func (s *WriterSink) RawLog(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Best-effort write; diagnostics never fail the caller.
	_, _ = io.WriteString(s.w, text)
}

// Timestamp implements Sink.
func (s *WriterSink) Timestamp() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clk.stamp()
}

// RingSink keeps the last N chunks in memory (circular buffer).
type RingSink struct {
	mu       sync.RWMutex
	chunks   []string
	capacity int
	head     int  // next write position
	full     bool // has wrapped around
	clk      clock
}

// DefaultRingSize is used when NewRingSink gets a non-positive capacity.
const DefaultRingSize = 256

// NewRingSink creates a RingSink holding at most capacity chunks.
func NewRingSink(capacity int) *RingSink {
	if capacity <= 0 {
		capacity = DefaultRingSize
	}
	return &RingSink{
		chunks:   make([]string, capacity),
		capacity: capacity,
		clk:      clock{now: time.Now, layout: DefaultTimeLayout},
	}
}

// WithClock replaces the time source and layout. An empty layout keeps the
// current one.
func (s *RingSink) WithClock(now func() time.Time, layout string) *RingSink {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clk.now = now
	if layout != "" {
		s.clk.layout = layout
	}
	return s
}

// RawLog stores text, evicting the oldest chunk when full.
func (s *RingSink) RawLog(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chunks[s.head] = text
	s.head = (s.head + 1) % s.capacity
	if s.head == 0 {
		s.full = true
	}
}

// Timestamp implements Sink.
func (s *RingSink) Timestamp() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clk.stamp()
}

// Len returns the number of stored chunks.
func (s *RingSink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return s.capacity
	}
	return s.head
}

// Snapshot returns a copy of the stored chunks, oldest first.
func (s *RingSink) Snapshot() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.full {
		out := make([]string, s.head)
		copy(out, s.chunks[:s.head])
		return out
	}

	out := make([]string, s.capacity)
	copy(out, s.chunks[s.head:])
	copy(out[s.capacity-s.head:], s.chunks[:s.head])
	return out
}

// String concatenates the stored chunks, oldest first.
func (s *RingSink) String() string {
	return strings.Join(s.Snapshot(), "")
}

// Dump writes the stored chunks to w, oldest first.
func (s *RingSink) Dump(w io.Writer) error {
	for _, c := range s.Snapshot() {
		if _, err := io.WriteString(w, c); err != nil {
			return err
		}
	}
	return nil
}

// Reset discards all stored chunks.
func (s *RingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.chunks)
	s.head = 0
	s.full = false
}

// MultiSink fans out every chunk to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink returns a sink writing to every non-nil sink in order.
func NewMultiSink(sinks ...Sink) *MultiSink {
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &MultiSink{sinks: kept}
}

// RawLog implements Sink.
func (m *MultiSink) RawLog(text string) {
	for _, s := range m.sinks {
		s.RawLog(text)
	}
}

// Timestamp returns the first sink's timestamp, so every sink sees the same
// stamp for one record.
func (m *MultiSink) Timestamp() string {
	if len(m.sinks) == 0 {
		return ""
	}
	return m.sinks[0].Timestamp()
}

var (
	_ Sink = nopSink{}
	_ Sink = (*WriterSink)(nil)
	_ Sink = (*RingSink)(nil)
	_ Sink = (*MultiSink)(nil)
)

// buffer.go - fixed-capacity sequence container.
//
// Invariants:
//   - len(b.data) is the capacity and never changes after construction.
//   - 0 <= b.length <= len(b.data).
//   - A failed mutation leaves length and every slot unchanged.
//
// Slots [length, capacity) hold filler: zero values at construction and
// stale values after removals. Iteration never shows them; Raw, At and
// SubBuffer can.
package xgxmeta

import (
	"fmt"
	"iter"
	"path/filepath"

	"github.com/xgx-io/xgx-meta/logging"
)

// Element is the set of element types a Buffer can hold: fixed-width
// integers, which have a defined little-endian byte decomposition.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Rest as a count means "everything from offset to the source's length".
const Rest = -1

// Buffer is a sequence of at most Cap() elements backed by storage that is
// allocated once and never grows.
//
// A Buffer is a single-owner value: it performs no internal locking.
// Share one across goroutines only through Guarded or an equivalent lock.
// Buffers must not be copied by value; use Clone.
type Buffer[T Element] struct {
	_      noCopy
	data   []T
	length int
	log    *logging.Logger
}

// New returns an empty Buffer with the given capacity. Storage is allocated
// here and nowhere else. New panics if capacity is negative.
func New[T Element](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("xgxmeta: negative buffer capacity %d", capacity))
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// Wrap returns an empty Buffer using storage as its backing array. The
// capacity is len(storage) and the storage is zeroed. When storage is a
// local array that does not escape, the elements stay on the stack:
//
//	var arr [64]byte
//	b := xgxmeta.Wrap(arr[:])
//
// The caller must not touch storage directly while b is in use.
func Wrap[T Element](storage []T) *Buffer[T] {
	storage = storage[:len(storage):len(storage)]
	clear(storage)
	return &Buffer[T]{data: storage}
}

// FromSlice returns a Buffer of the given capacity holding a copy of elems.
// It fails with BufferOverrun if elems does not fit.
func FromSlice[T Element](capacity int, elems []T) Result[*Buffer[T]] {
	if capacity < 0 || len(elems) > capacity {
		return Fail[*Buffer[T]](newError(BufferOverrun,
			fmt.Sprintf("%d elements exceed capacity %d", len(elems), capacity), 1))
	}
	b := New[T](capacity)
	b.length = copy(b.data, elems)
	return Ok(b)
}

// WithLogger attaches the logger that receives failure records and hex
// dumps. A nil logger discards them. It returns b.
func (b *Buffer[T]) WithLogger(l *logging.Logger) *Buffer[T] {
	b.log = l
	return b
}

// Logger returns the attached logger, possibly nil.
func (b *Buffer[T]) Logger() *logging.Logger { return b.log }

// Clone returns an independent Buffer with the same capacity, elements and
// logger. Filler slots are not copied.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := New[T](len(b.data))
	c.length = copy(c.data, b.data[:b.length])
	c.log = b.log
	return c
}

// MoveFrom replaces b's contents with src's and leaves src empty. src keeps
// its storage. It fails with BufferOverrun, changing neither buffer, when
// src.Cap() > b.Cap().
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) Status {
	if src == b {
		return OK()
	}
	if len(src.data) > len(b.data) {
		return Failed(b.fail(BufferOverrun, "move from capacity %d into capacity %d", len(src.data), len(b.data)))
	}
	b.length = copy(b.data, src.data[:src.length])
	src.length = 0
	return OK()
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return b.length }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Free returns the number of elements that can still be added.
func (b *Buffer[T]) Free() int { return len(b.data) - b.length }

// Full reports whether Len() == Cap().
func (b *Buffer[T]) Full() bool { return b.length == len(b.data) }

// Empty reports whether Len() == 0.
func (b *Buffer[T]) Empty() bool { return b.length == 0 }

// At returns the element at i without checking i against Len(). Indexes in
// [Len(), Cap()) return filler; indexes outside the storage panic.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Set stores v at i without checking i against Len() and without changing
// the length.
func (b *Buffer[T]) Set(i int, v T) { b.data[i] = v }

// Slice returns the elements [0, Len()). The slice aliases the storage and
// its capacity is clipped so appends cannot reach filler.
func (b *Buffer[T]) Slice() []T { return b.data[:b.length:b.length] }

// Raw returns the whole storage, filler included. Treat it as read-only.
func (b *Buffer[T]) Raw() []T { return b.data }

// All iterates index/element pairs over [0, Len()).
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range b.data[:b.length] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values iterates the elements over [0, Len()).
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range b.data[:b.length] {
			if !yield(v) {
				return
			}
		}
	}
}

// Equal reports whether b and other hold the same elements. Capacities and
// filler are ignored.
func (b *Buffer[T]) Equal(other *Buffer[T]) bool {
	if b.length != other.length {
		return false
	}
	for i, v := range b.data[:b.length] {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String renders the buffer as "Buffer[len/cap]{e0 e1 ...}".
func (b *Buffer[T]) String() string {
	return fmt.Sprintf("Buffer[%d/%d]%v", b.length, len(b.data), b.data[:b.length])
}

// PushBack appends v. It fails with BufferOverrun when the buffer is full.
func (b *Buffer[T]) PushBack(v T) Status {
	if b.length == len(b.data) {
		return Failed(b.fail(BufferOverrun, "push onto full buffer (capacity %d)", len(b.data)))
	}
	b.data[b.length] = v
	b.length++
	return OK()
}

// Append appends elems. It fails with BufferOverrun, copying nothing, when
// they do not all fit.
func (b *Buffer[T]) Append(elems ...T) Status {
	if len(elems) > len(b.data)-b.length {
		return Failed(b.fail(BufferOverrun, "append %d elements with %d free", len(elems), len(b.data)-b.length))
	}
	b.length += copy(b.data[b.length:], elems)
	return OK()
}

// AppendBuffer appends other's elements. It fails with BufferOverrun when
// other.Cap() > b.Cap(), regardless of lengths, or when the elements do not
// fit. Appending a buffer to itself is allowed.
func (b *Buffer[T]) AppendBuffer(other *Buffer[T]) Status {
	if len(other.data) > len(b.data) {
		return Failed(b.fail(BufferOverrun, "append from capacity %d into capacity %d", len(other.data), len(b.data)))
	}
	if other.length > len(b.data)-b.length {
		return Failed(b.fail(BufferOverrun, "append %d elements with %d free", other.length, len(b.data)-b.length))
	}
	b.length += copy(b.data[b.length:], other.data[:other.length])
	return OK()
}

// PopBack removes and returns the last element. It fails with
// BufferUnderflow on an empty buffer.
func (b *Buffer[T]) PopBack() Result[T] {
	if b.length == 0 {
		return Fail[T](b.fail(BufferUnderflow, "pop from empty buffer"))
	}
	b.length--
	return Ok(b.data[b.length])
}

// Clear empties the buffer. Storage is not zeroed.
func (b *Buffer[T]) Clear() { b.length = 0 }

// fail builds the failure for a public method, attributing it to that
// method's caller, and logs it at LevelError.
func (b *Buffer[T]) fail(def ErrorDef, format string, args ...any) Error {
	fr := callerFrame(2)
	e := Error{Def: def, Msg: fmt.Sprintf(format, args...), Line: fr.Line}
	if b.log.Enabled(logging.LevelError) {
		b.log.Log(logging.LevelError, e.Error(), filepath.Base(fr.File), fr.Line)
	}
	return e
}

// noCopy may be embedded in structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

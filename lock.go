// lock.go - external synchronization for shared buffers.
//
// Buffers never lock. Code that shares one across goroutines pairs it with a
// sync.Locker for the whole period of shared use, through Guarded.
package xgxmeta

import "sync"

// Guarded serializes access to a Buffer with a caller-supplied lock.
type Guarded[T Element] struct {
	mu  sync.Locker
	buf *Buffer[T]
}

// Guard pairs b with mu. A nil mu gets a fresh sync.Mutex.
func Guard[T Element](mu sync.Locker, b *Buffer[T]) *Guarded[T] {
	if mu == nil {
		mu = new(sync.Mutex)
	}
	return &Guarded[T]{mu: mu, buf: b}
}

// Do runs fn with the lock held. fn must not retain b after it returns.
func (g *Guarded[T]) Do(fn func(b *Buffer[T])) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.buf)
}

// PushBack appends v under the lock.
func (g *Guarded[T]) PushBack(v T) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.buf.PushBack(v)
}

// Append appends elems under the lock.
func (g *Guarded[T]) Append(elems ...T) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.buf.Append(elems...)
}

// Drain moves every element into dst under the lock, leaving the guarded
// buffer empty. It fails like Buffer.MoveFrom.
func (g *Guarded[T]) Drain(dst *Buffer[T]) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return dst.MoveFrom(g.buf)
}

// Len returns the length under the lock.
func (g *Guarded[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.buf.Len()
}

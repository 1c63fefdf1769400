// bytes.go - little-endian byte decomposition of buffers.
package xgxmeta

import (
	"fmt"
	"unsafe"
)

// SizeOf returns the width of T in bytes.
func SizeOf[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// ToBytes returns a new byte Buffer with capacity Cap()*SizeOf[T]() holding
// each element's little-endian bytes in element order. Its length is
// Len()*SizeOf[T](). It always succeeds.
func (b *Buffer[T]) ToBytes() *Buffer[byte] {
	size := SizeOf[T]()
	out := New[byte](len(b.data) * size)
	out.length = len(b.appendBytes(out.data[:0]))
	out.log = b.log
	return out
}

// BytesInto replaces dst's contents with b's byte decomposition without
// allocating. It fails with BufferOverrun when dst.Cap() < Len()*SizeOf[T]().
func (b *Buffer[T]) BytesInto(dst *Buffer[byte]) Status {
	need := b.length * SizeOf[T]()
	if need > len(dst.data) {
		return Failed(b.fail(BufferOverrun, "%d bytes into capacity %d", need, len(dst.data)))
	}
	dst.length = len(b.appendBytes(dst.data[:0]))
	return OK()
}

// appendBytes appends the decomposition of [0, Len()) to dst.
func (b *Buffer[T]) appendBytes(dst []byte) []byte {
	for _, v := range b.data[:b.length] {
		dst = AppendBytes(dst, v)
	}
	return dst
}

// FromBytes reassembles little-endian elements from src, the inverse of
// ToBytes. The result has capacity src.Cap()/SizeOf[T]() and length
// src.Len()/SizeOf[T](). It fails with BufferOverrun when src.Len() is not a
// multiple of the element width.
func FromBytes[T Element](src *Buffer[byte]) Result[*Buffer[T]] {
	size := SizeOf[T]()
	if src.length%size != 0 {
		return Fail[*Buffer[T]](newError(BufferOverrun,
			fmt.Sprintf("%d bytes leave %d trailing for width %d", src.length, src.length%size, size), 1))
	}
	out := New[T](len(src.data) / size)
	out.log = src.log
	for i := 0; i < src.length; i += size {
		out.data[out.length] = fromLittleEndian[T](src.data[i : i+size])
		out.length++
	}
	return Ok(out)
}

func fromLittleEndian[T Element](p []byte) T {
	var u uint64
	for k := len(p) - 1; k >= 0; k-- {
		u = u<<8 | uint64(p[k])
	}
	return T(u)
}

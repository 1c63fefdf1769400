// buffer_copy.go - range transfers between buffers.
//
// Every operation validates all indexes before the first write, so a
// failure is never partially applied. Transfers use the builtin copy, which
// is overlap-safe, so a buffer may be its own source.
package xgxmeta

// span resolves offset/count against a source length. count may be Rest.
func span(srcLen, offset, count int) (int, bool) {
	if offset < 0 || offset > srcLen {
		return 0, false
	}
	if count == Rest {
		count = srcLen - offset
	}
	if count < 0 || count > srcLen-offset {
		return 0, false
	}
	return count, true
}

// Copy appends count elements of from, starting at offset, after b's last
// element. count may be Rest. It fails with BufferOverrun when offset or
// offset+count fall outside [0, from.Len()] or the elements do not fit.
func (b *Buffer[T]) Copy(from *Buffer[T], offset, count int) Status {
	n, ok := span(from.length, offset, count)
	if !ok {
		return Failed(b.fail(BufferOverrun, "copy range offset %d count %d outside source length %d", offset, count, from.length))
	}
	if n > len(b.data)-b.length {
		return Failed(b.fail(BufferOverrun, "copy %d elements with %d free", n, len(b.data)-b.length))
	}
	b.length += copy(b.data[b.length:], from.data[offset:offset+n])
	return OK()
}

// CopyOver writes count elements of from, starting at offset, into b at
// absolute position over. count may be Rest.
//
// The length becomes max(Len(), over+count): writing past the end extends
// the buffer, writing inside it leaves the length alone. over must not
// exceed Len(), so no filler is ever pulled into [0, Len()).
//
// It fails with BufferOverrun when the source range is invalid, when
// over > Len(), or when over+count > Cap().
func (b *Buffer[T]) CopyOver(over int, from *Buffer[T], offset, count int) Status {
	n, ok := span(from.length, offset, count)
	if !ok {
		return Failed(b.fail(BufferOverrun, "copy range offset %d count %d outside source length %d", offset, count, from.length))
	}
	if over < 0 || over > b.length {
		return Failed(b.fail(BufferOverrun, "copy over position %d outside [0, %d]", over, b.length))
	}
	if n > len(b.data)-over {
		return Failed(b.fail(BufferOverrun, "copy over %d+%d exceeds capacity %d", over, n, len(b.data)))
	}
	b.overwrite(over, from.data[offset:offset+n])
	return OK()
}

// overwrite is the unchecked body of CopyOver.
func (b *Buffer[T]) overwrite(over int, src []T) {
	end := over + copy(b.data[over:], src)
	b.length = max(b.length, end)
}

// shift drops the first n elements and moves the rest down to index 0.
func (b *Buffer[T]) shift(n int) {
	copy(b.data, b.data[n:b.length])
	b.length -= n
}

// Take removes the first n elements and returns them in a new Buffer of the
// given capacity. The remaining elements move down to index 0 in order.
//
// It fails with BufferUnderflow when n > Len() and with BufferOverrun when
// n > capacity. Nothing changes on failure.
func (b *Buffer[T]) Take(capacity, n int) Result[*Buffer[T]] {
	if n < 0 || n > b.length {
		return Fail[*Buffer[T]](b.fail(BufferUnderflow, "take %d of %d elements", n, b.length))
	}
	if capacity < n {
		return Fail[*Buffer[T]](b.fail(BufferOverrun, "take %d elements into capacity %d", n, capacity))
	}
	out := New[T](capacity)
	out.length = copy(out.data, b.data[:n])
	out.log = b.log
	b.shift(n)
	return Ok(out)
}

// TakeInto is Take into a caller-owned buffer: dst's previous contents are
// replaced by the first n elements of b. It never allocates.
//
// It fails with BufferUnderflow when n > Len() and with BufferOverrun when
// n > dst.Cap() or dst is b. Neither buffer changes on failure.
func (b *Buffer[T]) TakeInto(dst *Buffer[T], n int) Status {
	if dst == b {
		return Failed(b.fail(BufferOverrun, "take into self"))
	}
	if n < 0 || n > b.length {
		return Failed(b.fail(BufferUnderflow, "take %d of %d elements", n, b.length))
	}
	if n > len(dst.data) {
		return Failed(b.fail(BufferOverrun, "take %d elements into capacity %d", n, len(dst.data)))
	}
	dst.length = copy(dst.data, b.data[:n])
	b.shift(n)
	return OK()
}

// SubBuffer returns a new Buffer holding the raw slots [start, end), with
// capacity and length end-start.
//
// Bounds are checked against Cap(), not Len(): slots past Len() yield
// whatever filler they hold. It fails with BufferOverrun unless
// 0 <= start <= end <= Cap().
func (b *Buffer[T]) SubBuffer(start, end int) Result[*Buffer[T]] {
	if start < 0 || start > end || end > len(b.data) {
		return Fail[*Buffer[T]](b.fail(BufferOverrun, "sub-buffer [%d, %d) outside capacity %d", start, end, len(b.data)))
	}
	out := New[T](end - start)
	out.length = copy(out.data, b.data[start:end])
	out.log = b.log
	return Ok(out)
}

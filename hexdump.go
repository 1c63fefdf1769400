// hexdump.go - diagnostic hex rendering of buffers.
//
// The rendering is the byte decomposition of [0, Len()) in the logging
// package's hex layout. It is a diagnostic format, not a wire format.
package xgxmeta

import (
	"path/filepath"

	"github.com/xgx-io/xgx-meta/logging"
)

// HexString renders the buffer's bytes regardless of any log level.
func (b *Buffer[T]) HexString() string {
	size := SizeOf[T]()
	return string(b.appendHex(make([]byte, 0, logging.HexLen(b.length*size))))
}

func (b *Buffer[T]) appendHex(dst []byte) []byte {
	var hw logging.HexWriter
	var scratch [8]byte
	for _, v := range b.data[:b.length] {
		dst = hw.Append(dst, AppendBytes(scratch[:0], v))
	}
	return dst
}

// HexDump logs msg at level, attributed to the caller, followed by the
// hex rendering of the buffer. Nothing is rendered unless the attached
// logger enables level.
func (b *Buffer[T]) HexDump(level logging.Level, msg string) {
	if !b.log.Enabled(level) {
		return
	}
	fr := callerFrame(1)
	b.log.HexDumpAt(level, msg, filepath.Base(fr.File), fr.Line, b.appendBytes(nil))
}

// DumpBytes logs only the hex rendering of the buffer, with no record
// header, followed by a line break.
func (b *Buffer[T]) DumpBytes(level logging.Level) {
	if !b.log.Enabled(level) {
		return
	}
	var hw logging.HexWriter
	b.log.HexDumpRaw(level, &hw, b.appendBytes(nil))
	b.log.Raw(level, "\n\r")
}

// DumpValues logs the hex rendering of elems at level with no record
// header. It is the slice counterpart of Buffer.DumpBytes.
func DumpValues[T Element](l *logging.Logger, level logging.Level, elems []T) {
	if !l.Enabled(level) {
		return
	}
	var hw logging.HexWriter
	l.HexDumpRaw(level, &hw, ToByteArray(elems))
}

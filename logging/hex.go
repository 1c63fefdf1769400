package logging

// Hex layout constants.
const (
	hexLineBytes  = 16
	hexGroupBytes = 8
	hexLineBreak  = "\n\r"
)

const upperHex = "0123456789ABCDEF"

// AppendHex appends the hex rendering of data to dst and returns the
// extended slice. Each byte becomes "XX ", every 16th byte is followed by
// "\n\r" and every other 8th byte by an extra space.
func AppendHex(dst, data []byte) []byte {
	for i, b := range data {
		dst = appendOctet(dst, b, i+1)
	}
	return dst
}

// FormatHex returns the hex rendering of data.
func FormatHex(data []byte) string {
	return string(AppendHex(make([]byte, 0, HexLen(len(data))), data))
}

// HexLen returns the length of the rendering of n bytes.
func HexLen(n int) int {
	return 3*n + 2*(n/hexLineBytes) + (n/hexGroupBytes - n/hexLineBytes)
}

// HexWriter renders a byte stream incrementally, keeping line position
// across calls. The zero value starts at the beginning of a line.
type HexWriter struct {
	written int
}

// Append renders data after everything already rendered by w.
func (w *HexWriter) Append(dst, data []byte) []byte {
	for _, b := range data {
		w.written++
		dst = appendOctet(dst, b, w.written)
	}
	return dst
}

// Written returns the number of bytes rendered so far.
func (w *HexWriter) Written() int { return w.written }

// appendOctet renders b as the nth byte of a dump (n counts from 1).
func appendOctet(dst []byte, b byte, n int) []byte {
	dst = append(dst, upperHex[b>>4], upperHex[b&0x0f], ' ')
	switch {
	case n%hexLineBytes == 0:
		dst = append(dst, hexLineBreak...)
	case n%hexGroupBytes == 0:
		dst = append(dst, ' ')
	}
	return dst
}

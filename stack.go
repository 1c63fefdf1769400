// stack.go - call-site capture for error occurrences and log records.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames so inlined frames resolve
//     to the source line the reader expects.
//   - Capture exactly one frame: occurrences record a line, not a trace.
package xgxmeta

import "runtime"

// Frame is a single resolved call site.
type Frame struct {
	File     string // absolute path as reported by the runtime
	Line     int
	Function string
}

// callerFrame resolves the frame skip levels above the caller of
// callerFrame. skip=0 is the function that called callerFrame.
//
// Skip accounting: runtime.Callers counts itself as 0 and callerFrame as 1,
// so the caller of callerFrame is at skip+2.
func callerFrame(skip int) Frame {
	var pcs [1]uintptr
	n := runtime.Callers(skip+2, pcs[:])
	if n == 0 {
		return Frame{}
	}
	fr, _ := runtime.CallersFrames(pcs[:n]).Next()
	return Frame{
		File:     fr.File,
		Line:     fr.Line,
		Function: fr.Function,
	}
}

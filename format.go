// format.go - fmt.Formatter for error occurrences.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, single header line plus an optional cause line:
//	             code=E0001 name=BUFFER_ERROR_OVERRUN msg="..." line=42 origin=buffer.go
//	             cause: <foreign error formatted with %+v>
//	%q       → quoted concise string.
//
// Keeps the core free of logging policy; the logging package decides where
// the text goes.
package xgxmeta

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
func (e Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func formatVerbose(w io.Writer, e Error) {
	_, _ = fmt.Fprintf(w, "code=%s name=%s msg=%q", e.Def.Code, e.Def.Name, e.Msg)
	if e.Line > 0 {
		_, _ = fmt.Fprintf(w, " line=%d", e.Line)
	}
	if e.Def.File != "" {
		_, _ = fmt.Fprintf(w, " origin=%s", e.Def.File)
	}
	if e.cause != nil && e.cause.err != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", e.cause.err)
	}
}

var _ fmt.Formatter = Error{}

// predicates.go - classification helpers over arbitrary errors.
//
// Scope:
//   - Interop-first: use errors.As so an Error found anywhere in a wrap chain
//     (fmt.Errorf %w, errors.Join) is classified.
//   - No policy: callers decide what a class means to them.
package xgxmeta

import "errors"

// CodeOf returns the code of the first Error along err's chain.
// ok is false when err is nil or carries no Error.
func CodeOf(err error) (code Code, ok bool) {
	if err == nil {
		return CodeUnknown, false
	}
	var e Error
	if errors.As(err, &e) {
		return e.Def.Code, true
	}
	var pe *Error
	if errors.As(err, &pe) && pe != nil {
		return pe.Def.Code, true
	}
	return CodeUnknown, false
}

// HasCode reports whether err is, or wraps, an occurrence of code.
func HasCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// IsOverrun reports whether err is a buffer capacity or bounds failure.
func IsOverrun(err error) bool { return HasCode(err, CodeBufferOverrun) }

// IsUnderflow reports whether err is a removal from an empty buffer.
func IsUnderflow(err error) bool { return HasCode(err, CodeBufferUnderflow) }

// IsContractViolation reports whether v, typically a value returned by
// recover(), is a contract-violation panic raised by Result or Status.
func IsContractViolation(v any) bool {
	switch x := v.(type) {
	case Error:
		return x.Def.Code == CodeContract
	case error:
		return HasCode(x, CodeContract)
	}
	return false
}

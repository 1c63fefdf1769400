// doc.go - package documentation for xgx-meta
//
// Package xgxmeta is a foundation toolkit for resource-constrained code:
// error classes with stable codes, a value-or-error Result, and a
// fixed-capacity Buffer whose every capacity violation is a returned value.
// It is designed to be:
//   - Predictable (storage is allocated once; nothing grows)
//   - All-or-nothing (a failed mutation changes nothing)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter, iter)
//
// # Error Classes
//
// An ErrorDef is a class: a Code, a name and the file that registered it.
// An Error is one occurrence: the class, a message and the source line.
// Classes are compared by Code only.
//
//	var ErrShortFrame = xgxmeta.Register("SHORT_FRAME")
//
//	e := xgxmeta.MakeError(ErrShortFrame, "need 4 bytes")
//	errors.Is(e, ErrShortFrame) // true
//	e.Matches(ErrShortFrame)    // true
//
// Builtin classes (BufferOverrun, BufferUnderflow, ContractViolation,
// Foreign) have fixed ordinals. Register numbers project classes after them,
// in call order, without deduplication: register each class once, in a
// package-level var block.
//
// # Results
//
// Every fallible operation returns a Result[T] or, when there is no value,
// a Status. Check HasError before reading:
//
//	r := buf.PopBack()
//	if r.HasError() {
//		return r.Err()
//	}
//	v := r.Value()
//
//	+------------------------+----------------------+---------------------------+
//	| Accessor               | On success           | On failure                |
//	+------------------------+----------------------+---------------------------+
//	| HasError()             | false                | true                      |
//	| Value()                | the value            | contract violation        |
//	| Err()                  | contract violation   | the Error                 |
//	| Get()                  | (value, nil)         | (zero, Error)             |
//	| ValueOr(x)             | the value            | x                         |
//	+------------------------+----------------------+---------------------------+
//
// A contract violation panics with a ContractViolation Error in default
// builds. Building with -tags metarelease removes the check and the
// accessor returns the zero member instead.
//
// # Buffers
//
// Buffer[T] holds at most Cap() fixed-width integers. Capacity is set by New
// (one allocation) or by Wrap over caller storage (none), and never changes.
//
//	b := xgxmeta.New[uint8](4)
//	for _, v := range []uint8{1, 2, 3, 4} {
//		b.PushBack(v)
//	}
//	s := b.PushBack(5) // s.HasError(), b is still {1 2 3 4}
//
// Failures are logged at LevelError through the logger attached with
// WithLogger; a buffer without one stays silent. Filler past Len() is
// reachable through At, Raw and SubBuffer and nowhere else.
//
// Buffers are not synchronized. Share one across goroutines through Guarded.
//
// # Formatting
//
// Error implements fmt.Formatter:
//   - `%v`, `%s`   → `NAME: msg`
//   - `%+v`        → `code=E0001 name=NAME msg="..." line=N origin=file.go`
//   - `%q`         → quoted `Error()`
package xgxmeta

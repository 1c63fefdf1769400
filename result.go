// result.go - value-or-error results without panics on the failure path.
//
// Result[T] holds exactly one of a value or an Error; Status is the
// value-less form. Both are plain values: constructing, copying and
// inspecting them never allocates.
package xgxmeta

// Result is either a success carrying a T or a failure carrying an Error.
//
// The zero Result is a success holding the zero T.
type Result[T any] struct {
	val    T
	err    Error
	failed bool
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] { return Result[T]{val: v} }

// Fail returns a failed Result holding e.
func Fail[T any](e Error) Result[T] { return Result[T]{err: e, failed: true} }

// HasError reports whether r is a failure. Always safe to call.
func (r Result[T]) HasError() bool { return r.failed }

// Value returns the success value. Calling it on a failure is a contract
// violation.
func (r Result[T]) Value() T {
	if contractChecks && r.failed {
		violate("Value called on a failed Result: " + r.err.Error())
	}
	return r.val
}

// Err returns the failure. Calling it on a success is a contract violation.
func (r Result[T]) Err() Error {
	if contractChecks && !r.failed {
		violate("Err called on a successful Result")
	}
	return r.err
}

// Get returns the Result as a conventional Go pair. The error is nil on
// success, so the returned error never holds a typed nil.
func (r Result[T]) Get() (T, error) {
	if r.failed {
		var zero T
		return zero, r.err
	}
	return r.val, nil
}

// ValueOr returns the value, or fallback on failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.failed {
		return fallback
	}
	return r.val
}

// Match calls exactly one of onValue or onError. Nil callbacks are skipped.
func (r Result[T]) Match(onValue func(T), onError func(Error)) {
	if r.failed {
		if onError != nil {
			onError(r.err)
		}
		return
	}
	if onValue != nil {
		onValue(r.val)
	}
}

// Status drops the value.
func (r Result[T]) Status() Status {
	return Status{err: r.err, failed: r.failed}
}

// Status is the value-less Result: success, or a failure with an Error.
//
// The zero Status is success.
type Status struct {
	err    Error
	failed bool
}

// OK returns a successful Status.
func OK() Status { return Status{} }

// Failed returns a failed Status holding e.
func Failed(e Error) Status { return Status{err: e, failed: true} }

// HasError reports whether s is a failure. Always safe to call.
func (s Status) HasError() bool { return s.failed }

// Err returns the failure. Calling it on a success is a contract violation.
func (s Status) Err() Error {
	if contractChecks && !s.failed {
		violate("Err called on a successful Status")
	}
	return s.err
}

// AsError returns the failure as an error, or nil on success.
func (s Status) AsError() error {
	if !s.failed {
		return nil
	}
	return s.err
}

// wrap.go - adoption of ordinary Go errors into Error values.
//
// Purpose
//   - Let (T, error) APIs feed code that speaks Result/Status.
//   - Preserve interop: the adopted error stays reachable through Unwrap, so
//     errors.Is/As keep seeing it.
package xgxmeta

import "errors"

// From converts err into an Error.
//   - nil → (zero Error, false)
//   - an Error anywhere in err's chain → that Error, unchanged
//   - any other error → a Foreign occurrence wrapping err
func From(err error) (Error, bool) {
	if err == nil {
		return Error{}, false
	}
	return adopt(err, 2), true
}

// Try lifts a (value, error) pair into a Result.
//
//	r := xgxmeta.Try(strconv.Atoi(s))
func Try[T any](v T, err error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	return Fail[T](adopt(err, 2))
}

// TryStatus lifts an error into a Status.
func TryStatus(err error) Status {
	if err == nil {
		return OK()
	}
	return Failed(adopt(err, 2))
}

// adopt records the line skip levels above its caller for foreign errors.
func adopt(err error, skip int) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	fe := newError(Foreign, err.Error(), skip)
	fe.cause = &foreignCause{err: err}
	return fe
}

// WrapAs adopts err as an occurrence of def, keeping err reachable through
// Unwrap. The message is err's text. An err that already carries def's code
// is returned unchanged. A nil err yields an occurrence with no message.
func WrapAs(def ErrorDef, err error) Error {
	if err == nil {
		return newError(def, "", 1)
	}
	var e Error
	if errors.As(err, &e) && e.Def.Code == def.Code {
		return e
	}
	we := newError(def, err.Error(), 1)
	we.cause = &foreignCause{err: err}
	return we
}

// error.go - error classes and their occurrences.
package xgxmeta

// Code is the stable numeric identity of an error class.
//
// Builtin classes occupy the range below codeBuiltinEnd (see codes.go);
// classes created with Register are numbered sequentially after them.
type Code uint32

// ErrorDef is an immutable, registered error class.
//
// Two ErrorDefs describe the same class iff their Codes are equal. Name and
// File are diagnostic only.
type ErrorDef struct {
	Code Code
	Name string
	File string // base name of the file that registered the class
}

// Error makes ErrorDef usable as an errors.Is target.
func (d ErrorDef) Error() string { return d.Name }

// Matches reports whether e is an occurrence of this class.
func (d ErrorDef) Matches(e Error) bool { return e.Def.Code == d.Code }

// Is reports whether target names the same class as d.
func (d ErrorDef) Is(target error) bool {
	c, ok := codeOfTarget(target)
	return ok && c == d.Code
}

// Error is one occurrence of an ErrorDef: the class, a diagnostic message and
// the source line that produced it.
//
// Equality against a class is by code only; Msg and Line never take part.
type Error struct {
	Def  ErrorDef
	Msg  string
	Line int

	// cause is set only for foreign errors adopted through From/Try.
	// Held behind a pointer so Error stays safely comparable.
	cause *foreignCause
}

type foreignCause struct{ err error }

// Error returns "NAME: msg", or just NAME when the message is empty.
func (e Error) Error() string {
	if e.Msg == "" {
		if e.Def.Name == "" {
			return "error"
		}
		return e.Def.Name
	}
	if e.Def.Name == "" {
		return e.Msg
	}
	return e.Def.Name + ": " + e.Msg
}

// Code returns the class code of this occurrence.
func (e Error) Code() Code { return e.Def.Code }

// Matches reports whether e is an occurrence of d.
func (e Error) Matches(d ErrorDef) bool { return e.Def.Code == d.Code }

// Is lets errors.Is compare an occurrence with a class (ErrorDef) or with
// another occurrence. Only codes are compared.
func (e Error) Is(target error) bool {
	c, ok := codeOfTarget(target)
	return ok && c == e.Def.Code
}

// Unwrap exposes the adopted foreign error, if any.
func (e Error) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause.err
}

func codeOfTarget(target error) (Code, bool) {
	switch t := target.(type) {
	case ErrorDef:
		return t.Code, true
	case *ErrorDef:
		if t == nil {
			return 0, false
		}
		return t.Code, true
	case Error:
		return t.Def.Code, true
	case *Error:
		if t == nil {
			return 0, false
		}
		return t.Def.Code, true
	}
	return 0, false
}

var (
	_ error = ErrorDef{}
	_ error = Error{}
)

// construct.go - error class registration and occurrence constructors.
//
// Scope:
//   - Register creates project-specific classes after the builtin range.
//   - MakeError/MakeErrorf create occurrences and capture the caller's line.
//
// Notes:
//   - Registration never deduplicates: registering the same name twice yields
//     two distinct classes with distinct codes. Register classes once, in a
//     package-level var block, so codes are fixed before first comparison.
//   - Constructors are pure apart from reading the call stack.
package xgxmeta

import (
	"fmt"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
)

// classRegistry hands out codes for classes created at runtime.
type classRegistry struct {
	mu   sync.Mutex
	defs []ErrorDef // index i holds code codeBuiltinEnd+i
}

var registry classRegistry

func (r *classRegistry) add(name, file string) ErrorDef {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot, err := safecast.Conv[uint32](len(r.defs))
	if err != nil || Code(slot) > ^Code(0)-codeBuiltinEnd {
		panic(fmt.Errorf("error class registry overflow registering %q", name))
	}
	def := ErrorDef{
		Code: codeBuiltinEnd + Code(slot),
		Name: name,
		File: file,
	}
	r.defs = append(r.defs, def)
	return def
}

func (r *classRegistry) lookup(c Code) (ErrorDef, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c < codeBuiltinEnd {
		return ErrorDef{}, false
	}
	i := int(c - codeBuiltinEnd)
	if i >= len(r.defs) {
		return ErrorDef{}, false
	}
	return r.defs[i], true
}

func (r *classRegistry) snapshot() []ErrorDef {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]ErrorDef, len(r.defs))
	copy(out, r.defs)
	return out
}

// Register creates a new error class named name and assigns it the next
// sequential code. The registering file is taken from the call site.
//
//	var ErrFrameTooShort = xgxmeta.Register("FRAME_TOO_SHORT")
func Register(name string) ErrorDef {
	fr := callerFrame(1)
	return registry.add(name, filepath.Base(fr.File))
}

// RegisterAt is Register with an explicit origin file. Only the base name of
// file is kept.
func RegisterAt(name, file string) ErrorDef {
	if file != "" {
		file = filepath.Base(file)
	}
	return registry.add(name, file)
}

// Registered returns a copy of every class created with Register or
// RegisterAt, in registration order.
func Registered() []ErrorDef {
	return registry.snapshot()
}

// MakeError creates an occurrence of def carrying msg and the caller's line.
func MakeError(def ErrorDef, msg string) Error {
	return newError(def, msg, 1)
}

// MakeErrorf is MakeError with a printf-style message.
func MakeErrorf(def ErrorDef, format string, args ...any) Error {
	return newError(def, fmt.Sprintf(format, args...), 1)
}

// newError records the line of the function skip levels above its caller.
// skip=0 is the direct caller of newError.
func newError(def ErrorDef, msg string, skip int) Error {
	fr := callerFrame(skip + 1)
	return Error{Def: def, Msg: msg, Line: fr.Line}
}

// codes.go - builtin error classes with stable ordinals.
//
// Intent:
//   - One explicit enumeration of the classes the core itself can produce.
//   - Ordinals are part of the contract: never renumber, only append.
//   - Projects add their own classes with Register (construct.go); those are
//     numbered after codeBuiltinEnd in registration order.
package xgxmeta

import "fmt"

// Builtin class codes. Values are stable.
const (
	CodeUnknown         Code = iota // zero value; never produced by the core
	CodeBufferOverrun               // capacity or bounds would be exceeded
	CodeBufferUnderflow             // removal from an empty buffer
	CodeContract                    // wrong-member access on a Result/Status
	CodeForeign                     // a plain Go error adopted by From/Try

	codeBuiltinEnd
)

// Builtin classes.
var (
	Unknown           = ErrorDef{Code: CodeUnknown, Name: "UNKNOWN", File: "codes.go"}
	BufferOverrun     = ErrorDef{Code: CodeBufferOverrun, Name: "BUFFER_ERROR_OVERRUN", File: "buffer.go"}
	BufferUnderflow   = ErrorDef{Code: CodeBufferUnderflow, Name: "BUFFER_ERROR_UNDERFLOW", File: "buffer.go"}
	ContractViolation = ErrorDef{Code: CodeContract, Name: "CONTRACT_VIOLATION", File: "contract.go"}
	Foreign           = ErrorDef{Code: CodeForeign, Name: "FOREIGN_ERROR", File: "wrap.go"}
)

// allBuiltinDefs is indexed by Code. Unexported so callers cannot mutate it.
var allBuiltinDefs = [...]ErrorDef{
	CodeUnknown:         Unknown,
	CodeBufferOverrun:   BufferOverrun,
	CodeBufferUnderflow: BufferUnderflow,
	CodeContract:        ContractViolation,
	CodeForeign:         Foreign,
}

// BuiltinDefs returns a copy of the builtin classes in ordinal order.
func BuiltinDefs() []ErrorDef {
	out := make([]ErrorDef, len(allBuiltinDefs))
	copy(out, allBuiltinDefs[:])
	return out
}

// IsBuiltin reports whether c belongs to the builtin range.
func (c Code) IsBuiltin() bool { return c < codeBuiltinEnd }

// String renders the code as "E0001".
func (c Code) String() string { return fmt.Sprintf("E%04d", uint32(c)) }

// Lookup resolves a code to its class, searching builtins first and then the
// classes created with Register.
func Lookup(c Code) (ErrorDef, bool) {
	if c.IsBuiltin() {
		return allBuiltinDefs[c], true
	}
	return registry.lookup(c)
}

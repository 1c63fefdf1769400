// contract.go - contract violations.
//
// A contract violation is a programming error, not a failure value: reading
// the value of a failed Result, or the error of a successful one. Default
// builds panic with a ContractViolation Error; metarelease builds skip the
// check and return the zero member instead.
package xgxmeta

// violate panics with a ContractViolation occurrence that records the line of
// the caller's caller (the user code that misused the accessor).
func violate(msg string) {
	panic(newError(ContractViolation, msg, 2))
}

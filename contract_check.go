//go:build !metarelease

package xgxmeta

// contractChecks enables wrong-member checks on Result and Status.
// Build with -tags metarelease to compile them out.
const contractChecks = true

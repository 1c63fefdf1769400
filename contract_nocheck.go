//go:build metarelease

package xgxmeta

const contractChecks = false

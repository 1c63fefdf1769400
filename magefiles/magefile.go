//go:build mage

// Package main provides build targets for xgx-meta using Mage.
//
// Usage:
//
//	mage build      Compile xgxdump to bin/
//	mage test       Run all tests
//	mage testRace   Run all tests with the race detector
//	mage release    Run core tests with contract checks compiled out
//	mage fuzz       Fuzz the buffer mutation protocol for 30s
//	mage bench      Run benchmarks with allocation counts
//	mage lint       Run go vet and golangci-lint
//	mage clean      Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "xgxdump"
	binaryDir  = "bin"
	cmdDir     = "./cmd/xgxdump"
)

// Build compiles the xgxdump binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestRace runs all tests with the race detector.
func TestRace() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Release runs the core package tests with contract checks compiled out.
func Release() error {
	return sh.RunV("go", "test", "-tags", "metarelease", ".")
}

// Fuzz runs the buffer fuzz target.
func Fuzz() error {
	return sh.RunV("go", "test", "-run", "^$", "-fuzz", "^FuzzBufferOps$", "-fuzztime", "30s", ".")
}

// Bench runs the core benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-run", "^$", "-bench", ".", "-benchmem", ".")
}

// Lint runs go vet and golangci-lint.
func Lint() error {
	mg.Deps(Vet)
	return sh.RunV("golangci-lint", "run", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

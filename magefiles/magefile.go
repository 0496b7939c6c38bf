// Package main provides build targets for the bookshelf project using Mage.
//
// Usage:
//
//	mage build      Compile bookshelf binary to bin/
//	mage test       Run all tests
//	mage coverage   Run tests with coverage report
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install bookshelf to GOPATH/bin

//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/sh"
)

const (
	binaryName = "bookshelf"
	binaryDir  = "bin"
	cmdDir     = "./cmd/bookshelf"
	binGo      = "go"
)

// Build compiles the bookshelf binary into bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	out := fmt.Sprintf("%s/%s", binaryDir, binaryName)
	return sh.RunV(binGo, "build", "-o", out, cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "-v", "./...")
}

// Coverage runs tests with a coverage summary.
func Coverage() error {
	if err := sh.RunV(binGo, "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func=coverage.out")
}

// Lint runs golangci-lint over the module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs the bookshelf binary to GOPATH/bin.
func Install() error {
	return sh.RunV(binGo, "install", cmdDir)
}

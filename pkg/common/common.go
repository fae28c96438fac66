// 29 Apr 2025

// Package common holds the few constants and helpers shared by the
// commands and the tests.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// WrtTemp writes a string to a temporary file and returns the
// filename. It is used all over the place in testing. The caller
// removes the file.
func WrtTemp(s string) (string, error) {
	f, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	if _, err := io.WriteString(f, s); err != nil {
		f.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f.Name(), err)
	}
	name := f.Name()
	f.Close()
	return name, nil
}

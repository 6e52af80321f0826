// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// exitError carries a process exit status through cobra's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// exitCode maps a command error to the process status: 0 on success, the
// code of an exitError, 1 for anything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return 1
}

func main() {
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seidel: %v\n", err)
	}
	os.Exit(exitCode(err))
}

//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop a running build.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

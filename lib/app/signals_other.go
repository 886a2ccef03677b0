//go:build !unix

package app

import "os"

var shutdownSignals = []os.Signal{os.Interrupt}

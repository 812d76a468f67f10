// Copyright 2022 by Gilbert Ramirez <gram@alumni.rice.edu>

// Package genericstack provides a fixed-capacity stack container for any
// element type. A Stack owns its storage: copies are deep, pushes and pops
// are bounds-checked, and the contents are read through a Cursor that only
// moves from the top of the stack toward the bottom.
//
// Stacks can also be built, or rebuilt in place, from a pair of Cursors
// delimiting a range of another Stack. The two Cursors may be given in
// either order.
package genericstack

import (
	"io"
	"log"
)

// The debug logger for this module. By default, output is discarded.
var dlog *log.Logger

func init() {
	dlog = log.New(io.Discard, "[DEBUG] ", log.Ldate|log.Lmicroseconds|log.Lshortfile)
}

// Change the debug logger object in this module
func SetDebugLogger(logger *log.Logger) {
	dlog = logger
}

// Returns the current debug logger in this module.
// You can then call SetOutput on the object, for example.
func GetDebugLogger() *log.Logger {
	return dlog
}

// MaxCapacity is the largest capacity a Stack may be created with.
// Requests above it fail with ErrAllocationFailure instead of
// asking the runtime for the memory.
var MaxCapacity = 1 << 30

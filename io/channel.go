// Package io provides the integer channels used to drive an Intcode
// machine: an in-memory FIFO (Temporary) and a text stream (Tape).
package io

import (
	"iter"

	"github.com/ezrec/intcode/intcode"
)

// Channel defines the interface for all I/O channels feeding or draining
// a machine.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields values from the channel.
	Receive() iter.Seq[intcode.Int]
	// Send writes a single value to the channel.
	Send(value intcode.Int) error
}

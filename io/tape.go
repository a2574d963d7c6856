package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/ezrec/intcode/intcode"
)

// Tape provides sequential I/O of values over byte streams.
//
// In the default mode, input values are base-10 integers separated by commas
// or whitespace, and each output value is written on its own line. In Ascii
// mode every input byte is one value, and output values in 0..127 are
// written as the byte itself.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool

	Err error // First input or output error, if any.

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// Rewind drops buffered input and clears Err. The underlying streams
// cannot be rewound.
func (tc *Tape) Rewind() {
	tc.scanner = nil
	tc.Err = nil
}

func isSeparator(c byte) bool {
	switch c {
	case ',', ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// scanValues is a bufio.SplitFunc for separated integer tokens.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}

	for n := start; n < len(data); n++ {
		if isSeparator(data[n]) {
			return n + 1, data[start:n], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}

// Receive returns an iterator that yields values from the input stream,
// reading as needed. A malformed value stops the iterator and sets Err.
func (tc *Tape) Receive() iter.Seq[intcode.Int] {
	return func(yield func(value intcode.Int) bool) {
		if tc.Input == nil || tc.Err != nil {
			return
		}

		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			if tc.Ascii {
				tc.scanner.Split(bufio.ScanBytes)
			} else {
				tc.scanner.Split(scanValues)
			}
		}

		for tc.scanner.Scan() {
			var value intcode.Int
			if tc.Ascii {
				value = intcode.Int(tc.scanner.Bytes()[0])
			} else {
				var err error
				value, err = strconv.ParseInt(tc.scanner.Text(), 10, 64)
				if err != nil {
					tc.Err = err
					return
				}
			}
			if !yield(value) {
				return
			}
		}

		if err := tc.scanner.Err(); err != nil {
			tc.Err = err
		}
	}
}

// Send writes a value to the output stream. Without an output stream,
// values are discarded.
func (tc *Tape) Send(value intcode.Int) (err error) {
	if tc.Output == nil {
		return
	}

	if tc.Ascii && value >= 0 && value < 128 {
		_, err = tc.Output.Write([]byte{byte(value)})
	} else {
		_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	}

	if err != nil && tc.Err == nil {
		tc.Err = err
	}

	return
}

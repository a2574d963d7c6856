package io

import (
	"iter"

	"github.com/ezrec/intcode/intcode"
)

// Temporary is a bounded FIFO of values, used to queue machine input.
type Temporary struct {
	Capacity int // Capacity in values.

	head int           // Index of the oldest value.
	size int           // Number of queued values.
	data []intcode.Int // Ring storage, allocated on first Push.
}

var _ Channel = (*Temporary)(nil)

// Rewind empties the queue.
func (temp *Temporary) Rewind() {
	temp.head = 0
	temp.size = 0
	temp.data = nil
}

// Len returns the number of values waiting to be received.
func (temp *Temporary) Len() int {
	return temp.size
}

// Push appends a value, failing with ErrChannelFull at capacity.
func (temp *Temporary) Push(value intcode.Int) (err error) {
	if temp.size >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	if len(temp.data) != temp.Capacity {
		data := make([]intcode.Int, temp.Capacity)
		for n := range temp.size {
			data[n] = temp.data[(temp.head+n)%len(temp.data)]
		}
		temp.data = data
		temp.head = 0
	}

	temp.data[(temp.head+temp.size)%temp.Capacity] = value
	temp.size++

	return
}

// Pop removes the oldest value.
func (temp *Temporary) Pop() (value intcode.Int, ok bool) {
	if temp.size == 0 {
		return
	}

	value, ok = temp.data[temp.head], true
	temp.head = (temp.head + 1) % len(temp.data)
	temp.size--

	return
}

// Receive returns an iterator that pops values until the queue is empty.
func (temp *Temporary) Receive() iter.Seq[intcode.Int] {
	return func(yield func(value intcode.Int) bool) {
		for {
			value, ok := temp.Pop()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Send queues a value.
func (temp *Temporary) Send(value intcode.Int) error {
	return temp.Push(value)
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"strconv"

	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/io"
)

const (
	QUEUE_SIZE = 4096 // Capacity of the fed input queue.
)

var _emulator_defines = map[string]string{
	"QUEUE_SIZE": fmt.Sprintf("%v", QUEUE_SIZE),
}

// Emulator state. Machine + program + IO channels.
type Emulator struct {
	Verbose          bool            // If set, enables verbose logging.
	*intcode.Machine                 // Reference to the machine.
	Program          intcode.Program // Pristine program, reloaded on Reset.

	Queue io.Temporary // Fed values, consumed before the tape.
	Tape  io.Tape      // Tape IO channel.

	Output []intcode.Int // Values emitted by the last Tick.

	define  map[string]intcode.Int
	patches []Patch
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog intcode.Program) (emu *Emulator) {
	emu = &Emulator{
		Machine: intcode.New(prog),
		Program: prog,
		define:  map[string]intcode.Int{},
	}

	emu.Queue.Capacity = QUEUE_SIZE
	emu.Queue.Rewind()

	return
}

// Define sets a name usable by patch expressions.
func (emu *Emulator) Define(name string, value intcode.Int) {
	emu.define[name] = value
}

// Patch adds a memory patch, applied in order on every Reset.
func (emu *Emulator) Patch(patch Patch) {
	emu.patches = append(emu.patches, patch)
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	program := map[string]string{
		"PROGRAM_SIZE": strconv.Itoa(len(emu.Program)),
	}

	user := map[string]string{}
	for name, value := range emu.define {
		user[name] = strconv.FormatInt(value, 10)
	}

	return internal.Seq2Concat(maps.All(_emulator_defines),
		maps.All(program),
		maps.All(user),
	)
}

// Reset reloads the program, applies the patches and rewinds the channels.
func (emu *Emulator) Reset() (err error) {
	emu.Machine = intcode.New(emu.Program)
	emu.Machine.Verbose = emu.Verbose
	emu.Queue.Rewind()
	emu.Tape.Rewind()
	emu.Output = nil

	for _, patch := range emu.patches {
		var value intcode.Int
		value, err = emu.evaluate(patch.Expr)
		if err == nil && patch.Addr < 0 {
			err = intcode.ErrAddressNegative
		}
		if err != nil {
			err = &ErrPatch{Addr: patch.Addr, Expr: patch.Expr, Err: err}
			return
		}
		if emu.Verbose {
			log.Printf("emulator: patch %d = %d", patch.Addr, value)
		}
		emu.Machine.SetMem(patch.Addr, value)
	}

	return
}

// Feed queues values for the next Tick.
func (emu *Emulator) Feed(values ...intcode.Int) (err error) {
	for _, value := range values {
		err = emu.Queue.Send(value)
		if err != nil {
			return
		}
	}

	return
}

// Tick runs the machine until it halts or fails. Input comes from the
// queue first; each time the machine suspends, its output so far is sent to
// the tape and a single tape value is queued before resuming, so prompts are
// written before their answers are read. Tick returns with done unset once
// the queue and the tape are both drained.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose
	emu.Output = nil

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Machine.Ip(), Err: err}
		}
	}()

	for {
		var output []intcode.Int
		done, output, err = emu.Machine.Run(emu.Queue.Receive())
		emu.Output = append(emu.Output, output...)

		for _, value := range output {
			if serr := emu.Tape.Send(value); serr != nil {
				if err == nil {
					err = serr
				}
				break
			}
		}

		if err != nil || done {
			break
		}

		fed := false
		for value := range emu.Tape.Receive() {
			err = emu.Queue.Send(value)
			fed = true
			break
		}
		if err != nil || !fed {
			break
		}
	}

	if err == nil && emu.Tape.Err != nil {
		err = emu.Tape.Err
	}

	if emu.Verbose {
		log.Printf("emulator: tick done=%v output=%d ticks=%d", done, len(emu.Output), emu.Machine.Ticks)
	}

	return
}

// Run ticks the emulator until the machine halts. A machine waiting for
// input once the queue and tape are drained fails with ErrInputExhausted.
func (emu *Emulator) Run() (err error) {
	done, err := emu.Tick()
	if err != nil || done {
		return
	}

	err = &ErrRuntime{Ip: emu.Machine.Ip(), Err: ErrInputExhausted}
	return
}

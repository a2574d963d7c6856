package intcode

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
)

// Machine is the execution context of an Intcode program.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Ticks int // Executed instruction counter.

	mem     []Int // Memory, grown on write.
	ip      int   // Instruction pointer.
	relBase Int   // Relative base register.
}

// New creates a machine whose memory is a copy of the program.
func New(prog Program) (m *Machine) {
	m = &Machine{
		mem: slices.Clone([]Int(prog)),
	}

	return
}

// Clone returns an independent copy of the machine, memory included.
func (m *Machine) Clone() *Machine {
	clone := *m
	clone.mem = slices.Clone(m.mem)
	return &clone
}

// Ip returns the instruction pointer.
func (m *Machine) Ip() int {
	return m.ip
}

// RelBase returns the relative base register.
func (m *Machine) RelBase() Int {
	return m.relBase
}

// Len returns the current memory size.
func (m *Machine) Len() int {
	return len(m.mem)
}

// Memory returns a snapshot of the memory.
func (m *Machine) Memory() Program {
	return slices.Clone(m.mem)
}

// Mem reads memory. Addresses outside of memory read as 0.
func (m *Machine) Mem(addr int) Int {
	if addr < 0 || addr >= len(m.mem) {
		return 0
	}
	return m.mem[addr]
}

// SetMem writes memory, growing it with zeros to hold addr.
// A negative address panics.
func (m *Machine) SetMem(addr int, value Int) {
	if addr < 0 {
		panic(fmt.Sprintf("intcode: SetMem at negative address %d", addr))
	}
	if addr >= len(m.mem) {
		m.mem = append(m.mem, make([]Int, addr+1-len(m.mem))...)
	}
	m.mem[addr] = value
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("   ip: %d\n", m.ip)
	text += fmt.Sprintf("  rel: %d\n", m.relBase)
	text += fmt.Sprintf("  mem: %d\n", len(m.mem))
	text += fmt.Sprintf("ticks: %d\n", m.Ticks)
	if code, err := Decode(m.Mem(m.ip)); err == nil {
		text += fmt.Sprintf(" next: %v\n", code)
	} else {
		text += fmt.Sprintf(" next: %d ?\n", m.Mem(m.ip))
	}

	return
}

// fetch reads the word at the IP and advances past it.
func (m *Machine) fetch() (value Int) {
	value = m.Mem(m.ip)
	m.ip++
	return
}

// value resolves a source parameter.
func (m *Machine) value(mode CodeMode, param Int) Int {
	switch mode {
	case MODE_IMMEDIATE:
		return param
	case MODE_RELATIVE:
		return m.Mem(int(m.relBase + param))
	default:
		return m.Mem(int(param))
	}
}

// address resolves a destination parameter.
func (m *Machine) address(mode CodeMode, param Int) (addr int, err error) {
	switch mode {
	case MODE_IMMEDIATE:
		err = ErrWriteImmediate
		return
	case MODE_RELATIVE:
		addr = int(m.relBase + param)
	default:
		addr = int(param)
	}

	if addr < 0 {
		err = ErrAddressNegative
	}

	return
}

// RunValues runs the machine with the given input values.
func (m *Machine) RunValues(input ...Int) (halted bool, output []Int, err error) {
	return m.Run(slices.Values(input))
}

// Run executes instructions until the program halts, an instruction fails,
// or an input instruction finds the input exhausted.
//
// On halt, halted is true. When input runs out, halted is false and the IP
// is left on the input instruction, so that a later call to Run with more
// input continues the program. On error the IP is left on the failing
// instruction and no memory is changed by it.
//
// Output holds the values emitted during this call, including those
// emitted before an error. A nil input is treated as empty.
func (m *Machine) Run(input iter.Seq[Int]) (halted bool, output []Int, err error) {
	if input == nil {
		input = func(yield func(Int) bool) {}
	}

	next, stop := iter.Pull(input)
	defer stop()

	var param [3]Int

	for {
		start := m.ip

		var code Code
		code, err = Decode(m.fetch())
		if err != nil {
			m.ip = start
			var de *ErrDecode
			if errors.As(err, &de) {
				de.Addr = start
				de.Fetched = true
			}
			return
		}

		for n := range code.Op.Params() {
			param[n] = m.fetch()
		}

		if m.Verbose {
			log.Printf("intcode: %04d: %v %v", start, code, param[:code.Op.Params()])
		}

		var target int
		if t := code.Op.Target(); t >= 0 && code.Op != OP_INPUT {
			target, err = m.address(code.Mode[t], param[t])
			if err != nil {
				m.ip = start
				return
			}
		}

		switch code.Op {
		case OP_ADD:
			m.SetMem(target, m.value(code.Mode[0], param[0])+m.value(code.Mode[1], param[1]))
		case OP_MUL:
			m.SetMem(target, m.value(code.Mode[0], param[0])*m.value(code.Mode[1], param[1]))
		case OP_INPUT:
			value, ok := next()
			if !ok {
				if m.Verbose {
					log.Printf("intcode: %04d: input exhausted", start)
				}
				m.ip = start
				return
			}
			target, err = m.address(code.Mode[0], param[0])
			if err != nil {
				m.ip = start
				return
			}
			m.SetMem(target, value)
		case OP_OUTPUT:
			output = append(output, m.value(code.Mode[0], param[0]))
		case OP_JUMP_NZ:
			if m.value(code.Mode[0], param[0]) != 0 {
				m.ip = int(m.value(code.Mode[1], param[1]))
			}
		case OP_JUMP_Z:
			if m.value(code.Mode[0], param[0]) == 0 {
				m.ip = int(m.value(code.Mode[1], param[1]))
			}
		case OP_LESS:
			var result Int
			if m.value(code.Mode[0], param[0]) < m.value(code.Mode[1], param[1]) {
				result = 1
			}
			m.SetMem(target, result)
		case OP_EQUAL:
			var result Int
			if m.value(code.Mode[0], param[0]) == m.value(code.Mode[1], param[1]) {
				result = 1
			}
			m.SetMem(target, result)
		case OP_REL_BASE:
			m.relBase += m.value(code.Mode[0], param[0])
		case OP_HALT:
			m.ip = start
			halted = true
			return
		}

		m.Ticks++
	}
}

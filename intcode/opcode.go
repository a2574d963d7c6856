package intcode

import (
	"strings"
)

// Int is the machine word: a memory cell, a parameter, or an I/O value.
type Int = int64

// CodeMode is a parameter addressing mode.
type CodeMode int

//go:generate go tool stringer -linecomment -type=CodeMode
const (
	MODE_POSITION  = CodeMode(0) // pos
	MODE_IMMEDIATE = CodeMode(1) // imm
	MODE_RELATIVE  = CodeMode(2) // rel
)

// Valid returns true if the mode is one of the three defined modes.
func (mode CodeMode) Valid() bool {
	return mode >= MODE_POSITION && mode <= MODE_RELATIVE
}

// CodeOp is an instruction opcode.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_ADD      = CodeOp(1)  // add
	OP_MUL      = CodeOp(2)  // mul
	OP_INPUT    = CodeOp(3)  // in
	OP_OUTPUT   = CodeOp(4)  // out
	OP_JUMP_NZ  = CodeOp(5)  // jnz
	OP_JUMP_Z   = CodeOp(6)  // jz
	OP_LESS     = CodeOp(7)  // lt
	OP_EQUAL    = CodeOp(8)  // eq
	OP_REL_BASE = CodeOp(9)  // arb
	OP_HALT     = CodeOp(99) // halt
)

// Valid returns true if the opcode is in the instruction set.
func (op CodeOp) Valid() bool {
	switch op {
	case OP_ADD, OP_MUL, OP_INPUT, OP_OUTPUT, OP_JUMP_NZ, OP_JUMP_Z,
		OP_LESS, OP_EQUAL, OP_REL_BASE, OP_HALT:
		return true
	}
	return false
}

// Params returns the number of parameter words following the opcode word.
func (op CodeOp) Params() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LESS, OP_EQUAL:
		return 3
	case OP_JUMP_NZ, OP_JUMP_Z:
		return 2
	case OP_INPUT, OP_OUTPUT, OP_REL_BASE:
		return 1
	}
	return 0
}

// Target returns the index of the parameter written by the opcode,
// or -1 if the opcode does not write memory.
func (op CodeOp) Target() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LESS, OP_EQUAL:
		return 2
	case OP_INPUT:
		return 0
	}
	return -1
}

// Code is a decoded instruction word.
type Code struct {
	Word Int         // Word as stored in memory.
	Op   CodeOp      // Opcode, from the two low decimal digits.
	Mode [3]CodeMode // Parameter modes, from the hundreds digit up.
}

// Decode splits an instruction word into its opcode and parameter modes.
//
// All three mode digits are checked, even for opcodes with fewer
// parameters, before the opcode itself.
func Decode(word Int) (code Code, err error) {
	code.Word = word

	digits := word / 100
	for n := range code.Mode {
		mode := CodeMode(digits % 10)
		if !mode.Valid() {
			err = &ErrDecode{Word: word, Value: Int(mode), Err: ErrIllegalMode}
			return
		}
		code.Mode[n] = mode
		digits /= 10
	}

	code.Op = CodeOp(word % 100)
	if !code.Op.Valid() {
		err = &ErrDecode{Word: word, Value: word % 100, Err: ErrIllegalOpcode}
		return
	}

	return
}

// String returns the mnemonic form, ie "add.pos.imm.rel".
func (code Code) String() string {
	parts := []string{code.Op.String()}
	for n := range code.Op.Params() {
		parts = append(parts, code.Mode[n].String())
	}
	return strings.Join(parts, ".")
}

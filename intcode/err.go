package intcode

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrIllegalOpcode = errors.New(f("illegal opcode"))
	ErrIllegalMode   = errors.New(f("illegal parameter mode"))

	// Execution errors
	ErrWriteImmediate  = errors.New(f("write to immediate parameter"))
	ErrAddressNegative = errors.New(f("negative address"))

	// Program errors
	ErrProgramEmpty = errors.New(f("program empty"))
)

// ErrDecode reports an instruction word that could not be decoded.
type ErrDecode struct {
	Word    Int   // Instruction word as fetched.
	Value   Int   // Offending opcode or mode digit.
	Addr    int   // Address of the word, valid when Fetched is set.
	Fetched bool  // Set when the word was fetched from memory.
	Err     error // ErrIllegalOpcode or ErrIllegalMode.
}

// Numbers are formatted before translation, so they never pick up
// locale digit grouping.
func (err *ErrDecode) Error() string {
	value := strconv.FormatInt(err.Value, 10)
	word := strconv.FormatInt(err.Word, 10)
	if !err.Fetched {
		return f("%v %v in word %v", err.Err, value, word)
	}
	return f("%v %v in word %v at %v", err.Err, value, word, strconv.Itoa(err.Addr))
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}

// ErrParse reports a program token that is not a base-10 integer.
type ErrParse struct {
	Index int    // Index of the token in the program.
	Token string // Offending token, trimmed.
	Err   error
}

func (err *ErrParse) Error() string {
	return f("token %v '%v': %v", strconv.Itoa(err.Index), err.Token, err.Err)
}

func (err *ErrParse) Unwrap() error {
	return err.Err
}

package emulator

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrInputExhausted = errors.New(f("input exhausted"))
	ErrPatchSyntax    = errors.New(f("patch syntax, expected addr=expr"))
	ErrPatchValue     = errors.New(f("patch value not an integer"))
	ErrDefineSyntax   = errors.New(f("define syntax, expected name=value"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("ip %v %v", strconv.Itoa(err.Ip), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrPatch indicates a memory patch that could not be applied.
type ErrPatch struct {
	Addr int
	Expr string
	Err  error
}

func (err *ErrPatch) Error() string {
	return f("patch %v '%v' %v", strconv.Itoa(err.Addr), err.Expr, err.Err)
}

func (err *ErrPatch) Unwrap() error {
	return err.Err
}

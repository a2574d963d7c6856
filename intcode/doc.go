// Package intcode implements the Intcode virtual machine.
//
// A Machine holds a growable memory of signed 64-bit integers, an instruction
// pointer (IP) and a relative base register. Instructions encode their opcode
// in the two low decimal digits of the first word, and the parameter modes
// (position, immediate, relative) in the digits above that.
//
// Run executes until the program halts, fails to decode, or needs input that
// has not been supplied. In the last case the IP is left on the pending input
// instruction, so a later Run with more input resumes where it left off.
package intcode

package intcode

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, text string) Program {
	prog, err := ParseString(text)
	if err != nil {
		t.Fatalf("%v: %v", text, err)
	}
	return prog
}

func TestMachine_Halt(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{99})
	halted, output, err := m.RunValues(1, 2, 3)
	assert.NoError(err)
	assert.True(halted)
	assert.Empty(output)
	assert.Equal(0, m.Ip())
	assert.Equal(0, m.Ticks)
}

func TestMachine_SelfAdd(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{1, 0, 0, 0, 99})
	halted, output, err := m.RunValues()
	assert.NoError(err)
	assert.True(halted)
	assert.Empty(output)
	assert.Equal(Int(2), m.Mem(0))
	assert.Equal(4, m.Ip())
	assert.Equal(1, m.Ticks)
}

func TestMachine_Programs(t *testing.T) {
	assert := assert.New(t)

	quine := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	cmp8 := "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"

	table := [](struct {
		name    string
		program string
		input   []Int
		output  []Int
	}){
		{"echo", "3,0,4,0,99", []Int{7}, []Int{7}},
		{"eq8_pos_true", "3,9,8,9,10,9,4,9,99,-1,8", []Int{8}, []Int{1}},
		{"eq8_pos_false", "3,9,8,9,10,9,4,9,99,-1,8", []Int{5}, []Int{0}},
		{"lt8_pos", "3,9,7,9,10,9,4,9,99,-1,8", []Int{5}, []Int{1}},
		{"eq8_imm", "3,3,1108,-1,8,3,4,3,99", []Int{8}, []Int{1}},
		{"lt8_imm", "3,3,1107,-1,8,3,4,3,99", []Int{9}, []Int{0}},
		{"jump_pos_zero", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", []Int{0}, []Int{0}},
		{"jump_imm_nonzero", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", []Int{3}, []Int{1}},
		{"cmp8_below", cmp8, []Int{7}, []Int{999}},
		{"cmp8_equal", cmp8, []Int{8}, []Int{1000}},
		{"cmp8_above", cmp8, []Int{9}, []Int{1001}},
		{"quine", quine, nil, []Int(mustParse(t, quine))},
		{"large_mul", "1102,34915192,34915192,7,4,7,99,0", nil, []Int{1219070632396864}},
		{"large_out", "104,1125899906842624,99", nil, []Int{1125899906842624}},
		{"extra_input", "3,0,4,0,99", []Int{1, 2, 3}, []Int{1}},
	}

	for _, entry := range table {
		m := New(mustParse(t, entry.program))
		halted, output, err := m.Run(slices.Values(entry.input))
		assert.NoError(err, entry.name)
		assert.True(halted, entry.name)
		assert.Equal(entry.output, output, entry.name)
	}
}

func TestMachine_Day2(t *testing.T) {
	assert := assert.New(t)

	m := New(mustParse(t, "1,9,10,3,2,3,11,0,99,30,40,50"))
	halted, _, err := m.RunValues()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal(Program{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}, m.Memory())
}

func TestMachine_Suspend(t *testing.T) {
	assert := assert.New(t)

	prog := Program{3, 0, 4, 0, 99}

	m := New(prog)
	halted, output, err := m.RunValues()
	assert.NoError(err)
	assert.False(halted)
	assert.Empty(output)
	assert.Equal(0, m.Ip())
	assert.Equal(prog, m.Memory())

	// Suspending again is harmless.
	halted, output, err = m.RunValues()
	assert.NoError(err)
	assert.False(halted)
	assert.Empty(output)

	halted, output, err = m.RunValues(5)
	assert.NoError(err)
	assert.True(halted)
	assert.Equal([]Int{5}, output)

	direct := New(prog)
	halted, output, err = direct.RunValues(5)
	assert.NoError(err)
	assert.True(halted)
	assert.Equal([]Int{5}, output)

	assert.Equal(direct.Memory(), m.Memory())
	assert.Equal(direct.Ip(), m.Ip())
	assert.Equal(direct.Ticks, m.Ticks)
}

func TestMachine_SuspendMidProgram(t *testing.T) {
	assert := assert.New(t)

	// Sum two inputs, emitting a marker after the first.
	prog := mustParse(t, "3,13,104,-1,3,14,1,13,14,15,4,15,99,0,0,0")

	m := New(prog)
	halted, output, err := m.RunValues(40)
	assert.NoError(err)
	assert.False(halted)
	assert.Equal([]Int{-1}, output)
	assert.Equal(4, m.Ip())

	halted, output, err = m.RunValues(2)
	assert.NoError(err)
	assert.True(halted)
	assert.Equal([]Int{42}, output)
}

func TestMachine_HaltIdempotent(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{1, 0, 0, 0, 99})
	halted, _, err := m.RunValues()
	assert.NoError(err)
	assert.True(halted)

	mem := m.Memory()
	ticks := m.Ticks

	halted, output, err := m.RunValues(1, 2)
	assert.NoError(err)
	assert.True(halted)
	assert.Empty(output)
	assert.Equal(mem, m.Memory())
	assert.Equal(ticks, m.Ticks)
	assert.Equal(4, m.Ip())
}

func TestMachine_Relative(t *testing.T) {
	assert := assert.New(t)

	// arb 10; add imm 3, imm 4 -> rel 5; out rel 5
	m := New(Program{109, 10, 21101, 3, 4, 5, 204, 5, 99})
	halted, output, err := m.RunValues()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal([]Int{7}, output)
	assert.Equal(Int(10), m.RelBase())
	assert.Equal(16, m.Len())
	for addr := 9; addr < 15; addr++ {
		assert.Equal(Int(0), m.Mem(addr))
	}
	assert.Equal(Int(7), m.Mem(15))

	// Relative read out of bounds yields 0, memory does not grow.
	m = New(Program{109, 100, 204, 0, 99})
	halted, output, err = m.RunValues()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal([]Int{0}, output)
	assert.Equal(5, m.Len())

	// Negative relative base.
	m = New(Program{109, -3, 204, 5, 99})
	_, output, err = m.RunValues()
	assert.NoError(err)
	assert.Equal([]Int{204}, output)
}

func TestMachine_DecodeError(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{1, 0, 0, 0, 150, 99})
	halted, output, err := m.RunValues()
	assert.False(halted)
	assert.Empty(output)
	assert.ErrorIs(err, ErrIllegalOpcode)

	var de *ErrDecode
	if assert.ErrorAs(err, &de) {
		assert.Equal(Int(50), de.Value)
		assert.Equal(Int(150), de.Word)
		assert.Equal(4, de.Addr)
		assert.True(de.Fetched)
	}

	assert.Equal(4, m.Ip())
	assert.Equal(Program{2, 0, 0, 0, 150, 99}, m.Memory())

	m = New(Program{301, 0, 0, 0, 99})
	_, _, err = m.RunValues()
	assert.ErrorIs(err, ErrIllegalMode)
	if assert.ErrorAs(err, &de) {
		assert.Equal(Int(3), de.Value)
		assert.Equal(0, de.Addr)
	}
	assert.Equal(0, m.Ip())
	assert.Equal(Program{301, 0, 0, 0, 99}, m.Memory())
}

func TestMachine_OutputBeforeError(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{104, 42, 77})
	halted, output, err := m.RunValues()
	assert.False(halted)
	assert.Equal([]Int{42}, output)
	assert.ErrorIs(err, ErrIllegalOpcode)
	assert.Equal(2, m.Ip())
}

func TestMachine_RunOffEnd(t *testing.T) {
	assert := assert.New(t)

	// Memory past the end reads as 0, which is not an opcode.
	m := New(Program{104, 1})
	_, output, err := m.RunValues()
	assert.Equal([]Int{1}, output)
	var de *ErrDecode
	if assert.ErrorAs(err, &de) {
		assert.Equal(Int(0), de.Word)
		assert.Equal(2, de.Addr)
	}
}

func TestMachine_WriteImmediate(t *testing.T) {
	assert := assert.New(t)

	prog := Program{11101, 1, 2, 0, 99}
	m := New(prog)
	halted, _, err := m.RunValues()
	assert.False(halted)
	assert.ErrorIs(err, ErrWriteImmediate)
	assert.Equal(0, m.Ip())
	assert.Equal(prog, m.Memory())

	m = New(Program{103, 0, 99})
	_, _, err = m.RunValues(1)
	assert.ErrorIs(err, ErrWriteImmediate)
	assert.Equal(0, m.Ip())
}

func TestMachine_NegativeAddress(t *testing.T) {
	assert := assert.New(t)

	prog := Program{1101, 1, 2, -1, 99}
	m := New(prog)
	_, _, err := m.RunValues()
	assert.ErrorIs(err, ErrAddressNegative)
	assert.Equal(0, m.Ip())
	assert.Equal(prog, m.Memory())

	// Reads at a negative address yield 0.
	m = New(Program{4, -5, 99})
	_, output, err := m.RunValues()
	assert.NoError(err)
	assert.Equal([]Int{0}, output)
}

func TestMachine_Mem(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{1, 2, 3})
	assert.Equal(Int(2), m.Mem(1))
	assert.Equal(Int(0), m.Mem(3))
	assert.Equal(Int(0), m.Mem(-1))
	assert.Equal(3, m.Len())

	m.SetMem(1, 20)
	assert.Equal(Int(20), m.Mem(1))
	assert.Equal(3, m.Len())

	m.SetMem(6, 60)
	assert.Equal(7, m.Len())
	assert.Equal(Program{1, 20, 3, 0, 0, 0, 60}, m.Memory())

	assert.Panics(func() { m.SetMem(-1, 0) })
}

func TestMachine_Patch(t *testing.T) {
	assert := assert.New(t)

	prog := Program{1, 0, 0, 0, 99, 30, 40}
	m := New(prog)
	m.SetMem(1, 5)
	m.SetMem(2, 6)
	halted, _, err := m.RunValues()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal(Int(70), m.Mem(0))
	assert.Equal(Int(0), prog[1])
}

func TestMachine_Clone(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{3, 0, 4, 0, 99})
	_, _, err := m.RunValues()
	assert.NoError(err)

	clone := m.Clone()

	_, output, err := m.RunValues(1)
	assert.NoError(err)
	assert.Equal([]Int{1}, output)

	_, output, err = clone.RunValues(2)
	assert.NoError(err)
	assert.Equal([]Int{2}, output)

	assert.Equal(Int(1), m.Mem(0))
	assert.Equal(Int(2), clone.Mem(0))
}

func TestMachine_NewCopiesProgram(t *testing.T) {
	assert := assert.New(t)

	prog := Program{1, 0, 0, 0, 99}
	m := New(prog)
	_, _, err := m.RunValues()
	assert.NoError(err)
	assert.Equal(Int(1), prog[0])
	assert.Equal(Int(2), m.Mem(0))
}

func TestMachine_String(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{1002, 4, 3, 4, 33})
	text := m.String()
	assert.Contains(text, "ip: 0")
	assert.Contains(text, "mul.pos.imm.pos")
}

func TestMachine_JumpNegative(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{1106, 0, -7})
	halted, _, err := m.RunValues()
	assert.False(halted)
	assert.ErrorIs(err, ErrIllegalOpcode)
	assert.Equal(-7, m.Ip())

	var de *ErrDecode
	if assert.ErrorAs(err, &de) {
		assert.True(de.Fetched)
		assert.Equal(-7, de.Addr)
		assert.Equal(Int(0), de.Word)
	}
	assert.Contains(err.Error(), "at -7")
}

func TestErrDecode_Error(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(30099)
	assert.Contains(err.Error(), "word 30099")
	assert.NotContains(err.Error(), " at ")

	m := New(Program{99, 99, 99, 99, 99, 99, 99, 99, 99, 99})
	// jnz 99, 1234
	m.SetMem(1234, 1050)
	m.SetMem(0, 1105)
	m.SetMem(2, 1234)
	_, _, err = m.RunValues()
	assert.Contains(err.Error(), "illegal opcode 50 in word 1050 at 1234")
}

func TestMachine_RunNil(t *testing.T) {
	assert := assert.New(t)

	m := New(Program{3, 0, 99})
	var halted bool
	var err error
	assert.NotPanics(func() {
		halted, _, err = m.Run(nil)
	})
	assert.NoError(err)
	assert.False(halted)
	assert.Equal(0, m.Ip())

	halted, _, err = New(Program{104, 1, 99}).Run(nil)
	assert.NoError(err)
	assert.True(halted)
}

package intcode

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// Program is an Intcode memory image, as loaded from its text form.
type Program []Int

// Parse reads a comma separated list of base-10 integers.
//
// Whitespace around each value is ignored, as is a trailing comma or
// newline at the end of the input.
func Parse(r io.Reader) (prog Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	tokens := strings.Split(text, ",")
	if strings.TrimSpace(tokens[len(tokens)-1]) == "" {
		tokens = tokens[:len(tokens)-1]
	}

	prog = make(Program, 0, len(tokens))
	for n, token := range tokens {
		token = strings.TrimSpace(token)
		var value int64
		value, err = strconv.ParseInt(token, 10, 64)
		if err != nil {
			prog = nil
			err = &ErrParse{Index: n, Token: token, Err: err}
			return
		}
		prog = append(prog, value)
	}

	return
}

// ParseString parses a program from its text form.
func ParseString(text string) (prog Program, err error) {
	return Parse(strings.NewReader(text))
}

// ReadProgram loads a program from a file.
func ReadProgram(path string) (prog Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Parse(inf)
}

// String returns the program in its comma separated text form.
func (prog Program) String() string {
	var sb strings.Builder
	for n, value := range prog {
		if n > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(value, 10))
	}
	return sb.String()
}

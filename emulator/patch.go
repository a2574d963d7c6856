package emulator

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/intcode"
)

// Patch is a memory write applied after each Reset.
//
// Expr is a Starlark expression. Its predeclared names are the emulator
// defines, plus a mem(addr) builtin reading the memory as patched so far.
type Patch struct {
	Addr int
	Expr string
}

// ParsePatch parses a patch in the 'addr=expr' form.
func ParsePatch(text string) (patch Patch, err error) {
	addr, expr, ok := strings.Cut(text, "=")
	if !ok || len(strings.TrimSpace(expr)) == 0 {
		err = ErrPatchSyntax
		return
	}

	patch.Addr, err = strconv.Atoi(strings.TrimSpace(addr))
	if err != nil {
		err = ErrPatchSyntax
		return
	}
	patch.Expr = strings.TrimSpace(expr)

	return
}

// ParseDefine parses a define in the 'name=value' form.
func ParseDefine(text string) (name string, value intcode.Int, err error) {
	name, str, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)
	if !ok || !isIdent(name) {
		err = ErrDefineSyntax
		return
	}

	value, err = strconv.ParseInt(strings.TrimSpace(str), 0, 64)
	if err != nil {
		err = ErrDefineSyntax
		return
	}

	return
}

// isIdent returns true if name parses as a lone Starlark identifier.
func isIdent(name string) bool {
	opts := syntax.FileOptions{}
	expr, err := opts.ParseExpr("define", name, 0)
	if err != nil {
		return false
	}
	_, ok := expr.(*syntax.Ident)
	return ok
}

// evaluate computes the value of a patch expression.
func (emu *Emulator) evaluate(expr string) (value intcode.Int, err error) {
	thread := starlark.Thread{Name: "patch"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range emu.Defines() {
		var value64 int64
		value64, err = strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer defines.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	pred["mem"] = starlark.NewBuiltin("mem", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr); err != nil {
			return nil, err
		}
		return starlark.MakeInt64(emu.Machine.Mem(addr)), nil
	})

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "patch", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrPatchValue
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrPatchValue
		return
	}

	return
}

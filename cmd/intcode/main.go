// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/intcode"
)

// listFlag collects repeated string flags.
type listFlag []string

func (lf *listFlag) String() string {
	return strings.Join(*lf, ",")
}

func (lf *listFlag) Set(value string) error {
	*lf = append(*lf, value)
	return nil
}

func main() {
	var program string
	var conf string
	var input string
	var output string
	var ascii bool
	var verbose bool
	var dump bool
	var patches listFlag
	var defines listFlag

	flag.StringVar(&program, "p", "", "Intcode program file")
	flag.StringVar(&conf, "c", "", "Run description ("+config.FILENAME+")")
	flag.StringVar(&input, "i", "", "Tape input (default -)")
	flag.StringVar(&output, "o", "", "Tape output (default -)")
	flag.BoolVar(&ascii, "a", false, "ASCII tape mode")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "m", false, "Print memory address 0 after halt")
	flag.Var(&patches, "set", "Patch memory, as addr=expr (repeatable)")
	flag.Var(&defines, "D", "Define a patch name, as name=value (repeatable)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := &config.Config{Input: config.STDIO, Output: config.STDIO}
	if len(conf) != 0 {
		var err error
		cfg, err = config.Load(conf)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(program) != 0 {
		cfg.Program = program
	}
	if len(input) != 0 {
		cfg.Input = input
	}
	if len(output) != 0 {
		cfg.Output = output
	}
	if len(cfg.Program) == 0 {
		log.Fatalf("%v: %v", os.Args[0], config.ErrProgramMissing)
	}

	prog, err := intcode.ReadProgram(cfg.ProgramPath())
	if err != nil {
		log.Fatalf("%v: %v", cfg.ProgramPath(), err)
	}

	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.Tape.Ascii = ascii

	err = cfg.Apply(emu)
	if err != nil {
		log.Fatal(err)
	}

	for _, text := range defines {
		name, value, err := emulator.ParseDefine(text)
		if err != nil {
			log.Fatalf("-D %v: %v", text, err)
		}
		emu.Define(name, value)
	}

	for _, text := range patches {
		patch, err := emulator.ParsePatch(text)
		if err != nil {
			log.Fatalf("-set %v: %v", text, err)
		}
		emu.Patch(patch)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = cfg.Feed(emu)
	if err != nil {
		log.Fatal(err)
	}

	if path := cfg.Path(cfg.Input); path == config.STDIO {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if path := cfg.Path(cfg.Output); path == config.STDIO {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(path)
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Run()
	if err != nil {
		if emu.Verbose {
			log.Print(emu.Machine.String())
		}
		log.Fatal(err)
	}

	if dump {
		fmt.Fprintf(os.Stderr, "mem[0] = %d\n", emu.Mem(0))
	}
}

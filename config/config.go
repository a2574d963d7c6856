// Package config handles intcode.toml run descriptions.
package config

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

// FILENAME is the default run description file name.
const FILENAME = "intcode.toml"

// STDIO selects standard input or output in place of a file path.
const STDIO = "-"

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("program missing"))
	ErrPatchAddress   = errors.New(f("patch address invalid"))
	ErrPatchDuplicate = errors.New(f("patch address duplicated"))
)

// ErrPatchKey indicates a [patch] table key that does not name a unique address.
type ErrPatchKey struct {
	Key string
	Err error
}

func (err *ErrPatchKey) Error() string {
	return f("patch %q: %v", err.Key, err.Err)
}

func (err *ErrPatchKey) Unwrap() error {
	return err.Err
}

// ErrConfig indicates a run description that could not be loaded.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config describes a program run.
type Config struct {
	Program string            `toml:"program"` // Program file.
	Input   string            `toml:"input"`   // Tape input file, or "-".
	Output  string            `toml:"output"`  // Tape output file, or "-".
	Ascii   bool              `toml:"ascii"`   // Tape in ASCII mode.
	Verbose bool              `toml:"verbose"` // Verbose logging.
	Values  []int64           `toml:"values"`  // Values fed before the tape.
	Define  map[string]int64  `toml:"define"`  // Names for patch expressions.
	Patch   map[string]string `toml:"patch"`   // Address to patch expression.

	// Dir is the directory containing the file (set at load time).
	Dir string `toml:"-"`
}

// Load parses a run description file.
func Load(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	cfg, err = Parse(string(data), dir)
	if err != nil {
		cfg = nil
		err = &ErrConfig{Path: path, Err: err}
		return
	}

	return
}

// Parse decodes a run description. Relative paths resolve against dir.
func Parse(text string, dir string) (cfg *Config, err error) {
	cfg = &Config{}
	_, err = toml.Decode(text, cfg)
	if err != nil {
		return
	}

	cfg.Dir = dir

	// Defaults
	if len(cfg.Input) == 0 {
		cfg.Input = STDIO
	}
	if len(cfg.Output) == 0 {
		cfg.Output = STDIO
	}

	if len(cfg.Program) == 0 {
		err = ErrProgramMissing
		return
	}

	return
}

// Path resolves a file name relative to the configuration directory.
func (cfg *Config) Path(name string) string {
	if name == STDIO || len(name) == 0 || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.Dir, name)
}

// ProgramPath returns the resolved program file path.
func (cfg *Config) ProgramPath() string {
	return cfg.Path(cfg.Program)
}

// Patches returns the configured patches, ordered by address. Keys that
// spell the same address ("1" and "01") are rejected.
func (cfg *Config) Patches() (patches []emulator.Patch, err error) {
	keys := slices.Sorted(maps.Keys(cfg.Patch))
	seen := make(map[int]bool, len(keys))

	for _, key := range keys {
		addr, aerr := strconv.Atoi(key)
		if aerr != nil || addr < 0 {
			err = &ErrPatchKey{Key: key, Err: ErrPatchAddress}
			return
		}
		if seen[addr] {
			err = &ErrPatchKey{Key: key, Err: ErrPatchDuplicate}
			return
		}
		seen[addr] = true
		patches = append(patches, emulator.Patch{Addr: addr, Expr: cfg.Patch[key]})
	}

	slices.SortFunc(patches, func(a, b emulator.Patch) int {
		return a.Addr - b.Addr
	})

	return
}

// Apply configures an emulator with the defines, patches, values and tape
// mode. The emulator must be Reset afterwards for the patches to apply.
func (cfg *Config) Apply(emu *emulator.Emulator) (err error) {
	patches, err := cfg.Patches()
	if err != nil {
		return
	}

	emu.Verbose = emu.Verbose || cfg.Verbose
	emu.Tape.Ascii = emu.Tape.Ascii || cfg.Ascii

	for name, value := range cfg.Define {
		emu.Define(name, intcode.Int(value))
	}
	for _, patch := range patches {
		emu.Patch(patch)
	}

	return
}

// Feed queues the configured values. Call after the emulator's Reset.
func (cfg *Config) Feed(emu *emulator.Emulator) (err error) {
	values := make([]intcode.Int, len(cfg.Values))
	for n, value := range cfg.Values {
		values[n] = intcode.Int(value)
	}

	return emu.Feed(values...)
}

// Package driver implements the batch command driver of spec §4.6: a
// line-oriented interpreter that sequences URP kernel operations over
// named slots, reading/writing .pcn files through package pcn. Grounded
// on original_source/bce.py's BCE class (an operations dispatch table
// keyed by command token) and restyled after the teacher's
// pkgs/engine.Engine command dispatch and structured-error reporting.
package driver

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/the-pinbo/ROBDD/internal/cube"
	"github.com/the-pinbo/ROBDD/internal/errs"
	"github.com/the-pinbo/ROBDD/internal/pcn"
)

// slot is one bound value: its cube list plus the numVars bound it was
// last produced or loaded with.
type slot struct {
	cubes   cube.List
	numVars int
}

// Driver holds the per-run slot bindings and the input/output directories
// the `r`/`p` commands resolve slot files against (spec §4.6/§6).
type Driver struct {
	InDir, OutDir string
	Log           *slog.Logger

	// cache memoizes `r` reads by (path, mtime) and lets Watch tell mtime
	// churn from content churn (SPEC_FULL §2).
	cache *pcn.Cache

	slots map[string]slot
	ops   map[string]func(line int, args []string) error
	quit  bool
}

// New returns a Driver bound to inDir/outDir. Its Log writes to stderr at
// warn level and above, so the per-command debug trace is not shown.
func New(inDir, outDir string) *Driver {
	d := &Driver{
		InDir:  inDir,
		OutDir: outDir,
		Log:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		cache:  pcn.NewCache(),
		slots:  make(map[string]slot),
	}
	d.ops = map[string]func(int, []string) error{
		"r":   d.cmdRead,
		"p":   d.cmdWrite,
		"!":   d.cmdComplement,
		"+":   d.cmdOr,
		"&":   d.cmdAnd,
		"xor": d.cmdXor,
		"dx":  d.cmdBoolDiff,
		"cx":  d.cmdConsensus,
		"sx":  d.cmdSmoothing,
		"q":   d.cmdQuit,
	}
	return d
}

// arity is the exact argument count each command requires (spec §4.6
// table), checked before dispatch so every handler can assume its
// args slice is exactly the right length.
var arity = map[string]int{
	"r": 1, "p": 1, "!": 2, "+": 3, "&": 3, "xor": 3, "dx": 3, "cx": 3, "sx": 3, "q": 0,
}

// Run reads commandFilePath line by line and executes each command
// against the driver's slots, stopping at `q` or the end of file (spec
// §4.6/§6). Any malformed line is fatal and reported via *errs.Error
// naming the line.
func (d *Driver) Run(commandFilePath string) error {
	f, err := os.Open(commandFilePath)
	if err != nil {
		return errs.IOFailure(commandFilePath, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		d.Log.Debug("exec", "line", lineNo, "cmd", cmd, "args", args)

		handler, ok := d.ops[cmd]
		if !ok {
			return errs.UnknownCommand(lineNo, cmd, d.suggestCommand(cmd))
		}
		want := arity[cmd]
		if len(args) != want {
			return errs.WrongArity(lineNo, cmd, want, len(args))
		}
		if err := handler(lineNo, args); err != nil {
			return err
		}
		if d.quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return errs.IOFailure(commandFilePath, err)
	}
	return nil
}

func (d *Driver) suggestCommand(cmd string) []string {
	known := make([]string, 0, len(d.ops))
	for k := range d.ops {
		known = append(known, k)
	}
	return suggest(cmd, known)
}

func (d *Driver) get(line int, name string) (cube.List, int, error) {
	s, ok := d.slots[name]
	if !ok {
		return nil, 0, errs.SlotNotFound(line, name)
	}
	return s.cubes, s.numVars, nil
}

func (d *Driver) set(name string, cubes cube.List, numVars int) {
	d.slots[name] = slot{cubes: cube.NewList(cubes), numVars: numVars}
}

func (d *Driver) cmdRead(line int, args []string) error {
	name := args[0]
	path := filepath.Join(d.InDir, name+".pcn")
	numVars, cubes, _, err := d.cache.Parse(path)
	if err != nil {
		return err
	}
	d.set(name, cubes, numVars)
	return nil
}

func (d *Driver) cmdWrite(line int, args []string) error {
	name := args[0]
	cubes, numVars, err := d.get(line, name)
	if err != nil {
		return err
	}
	path := filepath.Join(d.OutDir, name+".pcn")
	return pcn.Write(path, cubes, numVars)
}

func (d *Driver) cmdComplement(line int, args []string) error {
	r, in := args[0], args[1]
	cubes, numVars, err := d.get(line, in)
	if err != nil {
		return err
	}
	d.set(r, cube.Complement(cubes), numVars)
	return nil
}

func (d *Driver) binaryOp(line int, args []string, op func(a, b cube.List) cube.List) error {
	r, a, b := args[0], args[1], args[2]
	ca, na, err := d.get(line, a)
	if err != nil {
		return err
	}
	cb, nb, err := d.get(line, b)
	if err != nil {
		return err
	}
	numVars := na
	if nb > numVars {
		numVars = nb
	}
	d.set(r, op(ca, cb), numVars)
	return nil
}

func (d *Driver) cmdOr(line int, args []string) error {
	return d.binaryOp(line, args, cube.Or)
}

func (d *Driver) cmdAnd(line int, args []string) error {
	return d.binaryOp(line, args, cube.And)
}

func (d *Driver) cmdXor(line int, args []string) error {
	return d.binaryOp(line, args, cube.Xor)
}

func (d *Driver) varOp(line int, args []string, op func(f cube.List, k int) cube.List) error {
	r, in, kArg := args[0], args[1], args[2]
	cubes, numVars, err := d.get(line, in)
	if err != nil {
		return err
	}
	k, convErr := parseVar(kArg)
	if convErr != nil {
		return errs.New(errs.KindBadPcnFile, fmt.Sprintf("line %d: %v", line, convErr))
	}
	d.set(r, op(cubes, k), numVars)
	return nil
}

func (d *Driver) cmdBoolDiff(line int, args []string) error {
	return d.varOp(line, args, cube.BoolDiff)
}

func (d *Driver) cmdConsensus(line int, args []string) error {
	return d.varOp(line, args, cube.Consensus)
}

func (d *Driver) cmdSmoothing(line int, args []string) error {
	return d.varOp(line, args, cube.Smoothing)
}

func (d *Driver) cmdQuit(line int, args []string) error {
	d.quit = true
	return nil
}

func parseVar(s string) (int, error) {
	var k int
	_, err := fmt.Sscanf(s, "%d", &k)
	if err != nil {
		return 0, fmt.Errorf("invalid variable index %q", s)
	}
	return k, nil
}

// Package pcn implements the positional-cube-notation file codec (spec
// §4.1): a line-oriented ASCII format binding cube.List values to disk.
package pcn

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/the-pinbo/ROBDD/internal/cube"
	"github.com/the-pinbo/ROBDD/internal/errs"
)

// Parse reads a PCN file at path. The wire format is:
//
//	<numVars>
//	<numCubes>
//	<k1> <lit1,1> <lit1,2> ... <lit1,k1>
//	...
//
// Every non-empty field must be an integer, and each cube line's leading
// count must equal the number of literals that follow. Any deviation
// fails with a single *errs.Error{Kind: errs.KindBadPcnFile} naming path.
func Parse(path string) (numVars int, cubes cube.List, err error) {
	f, openErr := os.Open(path)
	if openErr != nil {
		return 0, nil, errs.BadPcnFile(path, openErr)
	}
	defer f.Close()

	n, cubes, parseErr := parseReader(f)
	if parseErr != nil {
		return 0, nil, errs.BadPcnFile(path, parseErr)
	}
	return n, cubes, nil
}

func parseReader(f *os.File) (int, cube.List, error) {
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	numVars, err := nextInt(sc)
	if err != nil {
		return 0, nil, fmt.Errorf("reading numVars: %w", err)
	}

	numCubes, err := nextInt(sc)
	if err != nil {
		return 0, nil, fmt.Errorf("reading numCubes: %w", err)
	}
	if numCubes < 0 {
		return 0, nil, fmt.Errorf("negative cube count %d", numCubes)
	}

	cubes := make([]cube.Cube, numCubes)
	for i := 0; i < numCubes; i++ {
		if !sc.Scan() {
			if scErr := sc.Err(); scErr != nil {
				return 0, nil, fmt.Errorf("reading cube %d: %w", i, scErr)
			}
			return 0, nil, fmt.Errorf("reading cube %d: unexpected eof", i)
		}
		fields := strings.Fields(sc.Text())
		ints := make([]int, len(fields))
		for j, field := range fields {
			v, convErr := strconv.Atoi(field)
			if convErr != nil {
				return 0, nil, fmt.Errorf("cube %d field %d: %w", i, j, convErr)
			}
			ints[j] = v
		}
		if len(ints) == 0 {
			return 0, nil, fmt.Errorf("cube %d: missing literal count", i)
		}
		count, lits := ints[0], ints[1:]
		if count != len(lits) {
			return 0, nil, fmt.Errorf("cube %d: declared %d literals, found %d", i, count, len(lits))
		}
		litsT := make([]cube.Literal, len(lits))
		for j, v := range lits {
			litsT[j] = cube.Literal(v)
		}
		cubes[i] = cube.NewCube(litsT...)
	}

	return numVars, cube.NewList(cubes), nil
}

func nextInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("unexpected eof")
	}
	text := strings.TrimSpace(sc.Text())
	return strconv.Atoi(text)
}

// Encode renders cubes/numVars into the wire format described above.
// Literals within each cube are sorted by absolute value ascending for
// stable textual output, and cubes are deduplicated (set semantics)
// before writing, per spec §4.1.
func Encode(cubes cube.List, numVars int) string {
	deduped := cube.NewList(cubes)
	// Stable order in the output: sort cubes lexicographically by their
	// (already variable-sorted) literal sequence so repeated Encode calls
	// on the same set are byte-identical.
	sorted := make([]cube.Cube, len(deduped))
	copy(sorted, deduped)
	sort.Slice(sorted, func(i, j int) bool { return cubeLess(sorted[i], sorted[j]) })

	var b strings.Builder
	fmt.Fprintln(&b, numVars)
	fmt.Fprintln(&b, len(sorted))
	for _, c := range sorted {
		fmt.Fprint(&b, len(c))
		for _, l := range c {
			fmt.Fprintf(&b, " %d", int(l))
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

func cubeLess(a, b cube.Cube) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// Write serializes cubes/numVars to path using Encode.
func Write(path string, cubes cube.List, numVars int) error {
	if err := os.WriteFile(path, []byte(Encode(cubes, numVars)), 0o644); err != nil {
		return errs.IOFailure(path, err)
	}
	return nil
}

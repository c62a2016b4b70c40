package pcn

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/fxamacker/cbor/v2"

	"github.com/the-pinbo/ROBDD/internal/cube"
	"github.com/the-pinbo/ROBDD/internal/errs"
)

// canonicalPcn is the CBOR-encodable canonical form of a parsed PCN value,
// used only to compute a content hash - never written to disk. Cubes are
// rendered as sorted []int so that two semantically-equal PCN values
// (same set of cubes, any file ordering) hash identically. Grounded on the
// teacher's core/planfmt.CanonicalPlan.MarshalBinary/Hash pipeline
// (deterministic CBOR + SHA-256), generalized from execution plans to
// cube lists.
type canonicalPcn struct {
	NumVars int
	Cubes   [][]int
}

func canonicalize(numVars int, cubes cube.List) canonicalPcn {
	deduped := cube.NewList(cubes)
	sorted := make([]cube.Cube, len(deduped))
	copy(sorted, deduped)
	sort.Slice(sorted, func(i, j int) bool { return cubeLess(sorted[i], sorted[j]) })
	out := make([][]int, len(sorted))
	for i, c := range sorted {
		lits := make([]int, len(c))
		for j, l := range c {
			lits[j] = int(l)
		}
		out[i] = lits
	}
	return canonicalPcn{NumVars: numVars, Cubes: out}
}

// hash returns the content-addressed digest of a parsed PCN value:
// sha256(cbor(canonical form)).
func hash(numVars int, cubes cube.List) ([32]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return [32]byte{}, fmt.Errorf("cbor encoder: %w", err)
	}
	data, err := encMode.Marshal(canonicalize(numVars, cubes))
	if err != nil {
		return [32]byte{}, fmt.Errorf("cbor encode: %w", err)
	}
	return sha256.Sum256(data), nil
}

// entry is one cached parse result plus the mtime it was taken at.
type entry struct {
	modTime int64
	numVars int
	cubes   cube.List
	digest  [32]byte
}

// Cache memoizes Parse by (path, mtime), avoiding re-reading and
// re-parsing a .pcn file that has not changed since last read. It also
// retains each entry's content digest so a caller (e.g. watch mode, spec
// SPEC_FULL §2) can tell whether a file's mtime changed but its Boolean
// content did not, and skip rerunning downstream commands.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
}

// NewCache returns an empty parse cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Parse returns the cached parse of path if its mtime is unchanged since
// the last call, otherwise it parses, hashes, and caches the result.
func (c *Cache) Parse(path string) (numVars int, cubes cube.List, changed bool, err error) {
	info, statErr := os.Stat(path)
	if statErr != nil {
		return 0, nil, false, errs.BadPcnFile(path, statErr)
	}
	mt := info.ModTime().UnixNano()

	c.mu.Lock()
	prev, ok := c.entries[path]
	c.mu.Unlock()
	if ok && prev.modTime == mt {
		return prev.numVars, prev.cubes, false, nil
	}

	n, cubes, err := Parse(path)
	if err != nil {
		return 0, nil, false, err
	}
	digest, err := hash(n, cubes)
	if err != nil {
		return 0, nil, false, err
	}

	c.mu.Lock()
	contentChanged := !ok || digest != prev.digest
	c.entries[path] = entry{modTime: mt, numVars: n, cubes: cubes, digest: digest}
	c.mu.Unlock()

	return n, cubes, contentChanged, nil
}

// Package registry implements the variable registry of spec §3/§4: an
// append-only bijection between external variable keys (a name plus an
// optional tuple of indices, e.g. "x" or "data[2][3]") and dense positive
// integers ("uniqid", starting at 1). The ascending uniqid order is the
// BDD variable order. Grounded on the teacher's core/types.Registry
// (mutex-guarded map, New*/Register*/Get* split), generalized from
// decorator paths to variable keys.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// key canonicalizes a name + index tuple into a single lookup string,
// e.g. key("data", 2, 3) == "data[2][3]".
func key(name string, indices ...int) string {
	if len(indices) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	for _, i := range indices {
		fmt.Fprintf(&b, "[%d]", i)
	}
	return b.String()
}

type entry struct {
	name    string
	indices []int
	uniqid  int
}

// Registry is the process-wide variable name <-> uniqid table.
type Registry struct {
	mu       sync.RWMutex
	byKey    map[string]*entry
	byID     map[int]*entry
	nextID   int
	allNames []string // insertion order, for Suggest
}

// New returns an empty registry; the first Intern call assigns uniqid 1.
func New() *Registry {
	return &Registry{
		byKey:  make(map[string]*entry),
		byID:   make(map[int]*entry),
		nextID: 1,
	}
}

// Lookup returns the uniqid already bound to name/indices, if any.
func (r *Registry) Lookup(name string, indices ...int) (uniqid int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byKey[key(name, indices...)]
	if !ok {
		return 0, false
	}
	return e.uniqid, true
}

// Intern returns the uniqid for name/indices, assigning the next dense
// integer the first time this key is seen. The registry is append-only:
// a key, once interned, always maps to the same uniqid.
func (r *Registry) Intern(name string, indices ...int) int {
	k := key(name, indices...)

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byKey[k]; ok {
		return e.uniqid
	}
	e := &entry{name: name, indices: append([]int(nil), indices...), uniqid: r.nextID}
	r.nextID++
	r.byKey[k] = e
	r.byID[e.uniqid] = e
	r.allNames = append(r.allNames, k)
	return e.uniqid
}

// Name resolves a uniqid back to its name and index tuple.
func (r *Registry) Name(uniqid int) (name string, indices []int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[uniqid]
	if !ok {
		return "", nil, false
	}
	return e.name, e.indices, true
}

// Order returns every interned uniqid in ascending order: the BDD
// variable order spec §3 mandates.
func (r *Registry) Order() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Suggest returns up to 3 registered keys that fuzzy-match name, for
// "unknown variable, did you mean ...?" diagnostics (SPEC_FULL §2).
func (r *Registry) Suggest(name string) []string {
	r.mu.RLock()
	candidates := append([]string(nil), r.allNames...)
	r.mu.RUnlock()

	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	sort.Sort(ranks)
	out := make([]string, 0, 3)
	for i := 0; i < len(ranks) && i < 3; i++ {
		out = append(out, ranks[i].Target)
	}
	return out
}

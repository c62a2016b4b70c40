package bdd

// Not returns the unique node for ¬n (spec §4.4 "Negation"). Terminals
// swap; an internal node (v, lo, hi) maps to (v, ¬lo, ¬hi). A
// visited-node memo keyed by node identity makes this linear in the DAG
// rather than the tree it unfolds to.
func (t *Table) Not(n *Node) *Node {
	memo := make(map[*Node]*Node)
	return t.not(n, memo)
}

func (t *Table) not(n *Node, memo map[*Node]*Node) *Node {
	switch n {
	case t.zero:
		return t.one
	case t.one:
		return t.zero
	}
	if r, ok := memo[n]; ok {
		return r
	}
	r := t.Mk(n.v, t.not(n.lo, memo), t.not(n.hi, memo))
	memo[n] = r
	return r
}

// iteKey is a plain comparable struct (three pointers), usable directly
// as a map key with no hashing required - unlike the unique table's
// striped shards, the ITE memo is scoped to a single top-level Ite call
// and is never contended across goroutines.
type iteKey struct{ f, g, h *Node }

// Ite is the single Boolean primitive the engine is built on (spec
// §4.4): ite(f, g, h) = (f ∧ g) ∨ (¬f ∧ h). OR/AND/XOR/implication are
// all one-line specializations of it: f∨g = Ite(f, 1, g), f∧g =
// Ite(f, g, 0), f⊕g = Ite(f, ¬g, g), f⇒g = Ite(f, g, 1).
func (t *Table) Ite(f, g, h *Node) *Node {
	memo := make(map[iteKey]*Node)
	return t.ite(f, g, h, memo)
}

func (t *Table) ite(f, g, h *Node, memo map[iteKey]*Node) *Node {
	switch {
	case g == t.one && h == t.zero:
		return f
	case g == t.zero && h == t.one:
		return t.Not(f)
	case f == t.one:
		return g
	case f == t.zero:
		return h
	case g == h:
		return g
	}

	k := iteKey{f, g, h}
	if r, ok := memo[k]; ok {
		return r
	}

	v := minTopVar(f, g, h)
	f0, g0, h0 := restrictVar(f, v, false), restrictVar(g, v, false), restrictVar(h, v, false)
	f1, g1, h1 := restrictVar(f, v, true), restrictVar(g, v, true), restrictVar(h, v, true)

	lo := t.ite(f0, g0, h0, memo)
	hi := t.ite(f1, g1, h1, memo)
	r := t.Mk(v, lo, hi)
	memo[k] = r
	return r
}

// minTopVar returns the smallest variable index among f, g, h's
// non-terminal top variables (spec §4.4 "let v be the minimum top
// variable among {f, g, h} restricted to non-terminals").
func minTopVar(nodes ...*Node) int {
	v := -1
	for _, n := range nodes {
		if n.IsTerminal() {
			continue
		}
		if v == -1 || n.v < v {
			v = n.v
		}
	}
	return v
}

// restrictVar returns n with variable v fixed to 1 (toOne) or 0, used
// only for the single-variable splits inside Ite. It is a one-level
// specialization of the general Restrict in restrict.go: if n is terminal or n's
// top variable isn't v, n passes through unchanged (every other variable
// in the BDD strictly exceeds v on any reachable path, by the ordered
// invariant, so splitting on v cannot affect a node whose own top
// variable is > v).
func restrictVar(n *Node, v int, toOne bool) *Node {
	if n.IsTerminal() || n.v != v {
		return n
	}
	if toOne {
		return n.hi
	}
	return n.lo
}

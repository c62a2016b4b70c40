// Package bdd implements the Reduced Ordered Binary Decision Diagram
// engine of spec §4.3/§4.4: a hash-consed unique table and the recursive
// ITE operator core, plus negation, restrict, compose, traversals, and
// the cube-list-to-BDD bridge. Grounded on the original Python's two BDD
// modules (original_source/bdd.py: weak-reference global unique table +
// free ite; original_source/myBdd.py: ordering-driven expression builder)
// per SPEC_FULL §3, unified into one Table type.
package bdd

// terminal markers, mirroring the original's root=-1 (false) / root=-2
// (true) convention (original_source/bdd.py BDDNODEZERO/BDDNODEONE).
const (
	zeroVar = -1
	oneVar  = -2
)

// Node is either one of the two singleton terminals or an internal node
// (v, lo, hi). Node identity is Go pointer identity: two BDD roots denote
// the same Boolean function iff they are the same *Node (spec §3's
// "Unique" invariant) - this is enforced entirely by Table.Mk never
// handing out two distinct *Node values for the same (v, lo, hi) triple.
type Node struct {
	v      int
	lo, hi *Node
}

// IsTerminal reports whether n is one of the two terminals.
func (n *Node) IsTerminal() bool { return n.v < 0 }

// Var returns the decision variable of an internal node. Calling this on
// a terminal is a contract violation - callers must check IsTerminal
// first, exactly as the kernel's cofactor operations require k > 0.
func (n *Node) Var() int { return n.v }

// Lo returns the "variable = 0" child of an internal node.
func (n *Node) Lo() *Node { return n.lo }

// Hi returns the "variable = 1" child of an internal node.
func (n *Node) Hi() *Node { return n.hi }

type nodeKey struct {
	v      int
	lo, hi *Node
}

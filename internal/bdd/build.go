package bdd

import (
	"fmt"

	"github.com/the-pinbo/ROBDD/internal/expr"
)

// Build constructs a BDD from a cube-list-backed Expression under the
// given variable order, top-down (spec §4.4 "Cube-list / expression
// bridge"): at each step, a false/true expression maps to the
// corresponding terminal; otherwise the first ordering variable present
// in the expression is cofactored and the two results become an internal
// node via Table.Mk, which performs reduction and sharing. Following the
// ordering monotonically is what preserves the ROBDD invariants.
//
// A memo keyed by (variable, lo-cubes, hi-cubes) avoids rebuilding a
// cofactor pair reached by more than one path - the same role
// original_source/myBdd.py's per-call `cache` dict plays, generalized
// from an expression-object cache key to an explicit string key since Go
// cube lists are not directly hashable.
func (t *Table) Build(e expr.Expression, order []int) *Node {
	memo := make(map[string]*Node)
	return t.build(e, order, memo)
}

func (t *Table) build(e expr.Expression, order []int, memo map[string]*Node) *Node {
	if e.IsFalse() {
		return t.zero
	}
	if e.IsTrue() {
		return t.one
	}
	for _, v := range order {
		if e.IsPresent(v) {
			return t.buildNode(e, v, order, memo)
		}
	}
	panic(fmt.Sprintf("bdd: ordering %v does not cover a variable present in %s", order, e))
}

func (t *Table) buildNode(e expr.Expression, v int, order []int, memo map[string]*Node) *Node {
	lo := e.NegativeCofactor(v)
	hi := e.PositiveCofactor(v)

	if expr.Equal(lo, hi) {
		return t.build(lo, order, memo)
	}

	key := fmt.Sprintf("%d|%s|%s", v, lo, hi)
	if n, ok := memo[key]; ok {
		return n
	}

	loNode := t.build(lo, order, memo)
	hiNode := t.build(hi, order, memo)
	n := t.Mk(v, loNode, hiNode)
	memo[key] = n
	return n
}

package bdd

// Point maps variable indices to the terminal they are restricted to.
type Point map[int]bool // true = restrict to 1, false = restrict to 0

// Restrict returns n with every variable in point fixed to its mapped
// value (spec §4.4 "Restrict"). A visited-node memo keyed by node
// identity makes this linear in the DAG.
func (t *Table) Restrict(n *Node, point Point) *Node {
	memo := make(map[*Node]*Node)
	return t.restrict(n, point, memo)
}

func (t *Table) restrict(n *Node, point Point, memo map[*Node]*Node) *Node {
	if n.IsTerminal() {
		return n
	}
	if r, ok := memo[n]; ok {
		return r
	}

	var r *Node
	if val, ok := point[n.v]; ok {
		if val {
			r = t.restrict(n.hi, point, memo)
		} else {
			r = t.restrict(n.lo, point, memo)
		}
	} else {
		lo := t.restrict(n.lo, point, memo)
		hi := t.restrict(n.hi, point, memo)
		r = t.Mk(n.v, lo, hi)
	}
	memo[n] = r
	return r
}

// Substitution is one (variable, replacement BDD) pair for Compose. A
// slice, not a map, so callers get a deterministic substitution order -
// significant when two substituted variables are not independent.
type Substitution struct {
	Var  int
	Expr *Node
}

// Compose substitutes each variable v_i in subst by the BDD g_i in order
// (spec §4.4 "Compose"): for each pair, cofactor the current accumulator
// by v and rebuild via Ite(g, f1, f0).
func (t *Table) Compose(f *Node, subst []Substitution) *Node {
	acc := f
	for _, s := range subst {
		f0 := t.Restrict(acc, Point{s.Var: false})
		f1 := t.Restrict(acc, Point{s.Var: true})
		acc = t.Ite(s.Expr, f1, f0)
	}
	return acc
}

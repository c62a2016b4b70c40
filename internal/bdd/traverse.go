package bdd

// DFSPreorder visits every reachable node from n exactly once, in
// depth-first pre-order (spec §4.4 "Traversals").
func DFSPreorder(n *Node) []*Node {
	var out []*Node
	visited := make(map[*Node]bool)
	var walk func(*Node)
	walk = func(x *Node) {
		if visited[x] {
			return
		}
		visited[x] = true
		out = append(out, x)
		if !x.IsTerminal() {
			walk(x.lo)
			walk(x.hi)
		}
	}
	walk(n)
	return out
}

// DFSPostorder visits every reachable node from n exactly once, in
// depth-first post-order.
func DFSPostorder(n *Node) []*Node {
	var out []*Node
	visited := make(map[*Node]bool)
	var walk func(*Node)
	walk = func(x *Node) {
		if visited[x] {
			return
		}
		visited[x] = true
		if !x.IsTerminal() {
			walk(x.lo)
			walk(x.hi)
		}
		out = append(out, x)
	}
	walk(n)
	return out
}

// BFS visits every reachable node from n exactly once, in breadth-first
// order.
func BFS(n *Node) []*Node {
	var out []*Node
	visited := map[*Node]bool{n: true}
	queue := []*Node{n}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		out = append(out, x)
		if x.IsTerminal() {
			continue
		}
		for _, c := range []*Node{x.lo, x.hi} {
			if !visited[c] {
				visited[c] = true
				queue = append(queue, c)
			}
		}
	}
	return out
}

// Model maps a variable index to the boolean value it was assigned along
// a satisfying path. Variables not mentioned on the path are
// unconstrained (spec §4.4).
type Model map[int]bool

// SatisfyOne finds any path from n to the true terminal, preferring the
// lo child (false assignment) when it is not the false terminal,
// otherwise the hi child, emitting the corresponding literal into the
// model at each step (spec §4.4). Reports false if n is unsatisfiable.
func (t *Table) SatisfyOne(n *Node) (Model, bool) {
	m := Model{}
	cur := n
	for !cur.IsTerminal() {
		if cur.lo != t.zero {
			m[cur.v] = false
			cur = cur.lo
		} else {
			m[cur.v] = true
			cur = cur.hi
		}
	}
	if cur == t.zero {
		return nil, false
	}
	return m, true
}

// SatisfyAll enumerates every satisfying path from n to the true
// terminal, exhaustively (spec §4.4). Unlike a DAG traversal, a shared
// subtree is followed once per distinct path it participates in, not
// once per node - this is deliberate (spec §9 "cube lists derived from
// BDD": enumerate paths, not nodes).
func (t *Table) SatisfyAll(n *Node) []Model {
	var out []Model
	var walk func(*Node, Model)
	walk = func(x *Node, acc Model) {
		if x == t.zero {
			return
		}
		if x == t.one {
			cp := make(Model, len(acc))
			for k, v := range acc {
				cp[k] = v
			}
			out = append(out, cp)
			return
		}
		acc[x.v] = false
		walk(x.lo, acc)
		acc[x.v] = true
		walk(x.hi, acc)
		delete(acc, x.v)
	}
	walk(n, Model{})
	return out
}

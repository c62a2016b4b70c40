package cube

// Cofactor returns the cofactor of f with respect to literal lit: drop
// every cube containing -lit, then strip any remaining occurrence of lit
// itself from the surviving cubes (spec §4.2).
func Cofactor(f List, lit Literal) List {
	out := make([]Cube, 0, len(f))
	for _, c := range f {
		if c.Has(-lit) {
			continue
		}
		out = append(out, c.Without(lit))
	}
	return NewList(out)
}

// PositiveCofactor is Cofactor(f, +k); k must be > 0.
func PositiveCofactor(f List, k int) List {
	checkVar(k)
	return Cofactor(f, Literal(k))
}

// NegativeCofactor is Cofactor(f, -k); k must be > 0.
func NegativeCofactor(f List, k int) List {
	checkVar(k)
	return Cofactor(f, Literal(-k))
}

// Or returns the set union of two cube lists (disjunction).
func Or(a, b List) List {
	out := make([]Cube, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return NewList(out)
}

// andCube appends lit to every cube of f (the URP "AND a decision literal"
// step, spec §4.2 step 4).
func andCube(f List, lit Literal) List {
	out := make([]Cube, len(f))
	for i, c := range f {
		out[i] = c.WithLiteral(lit)
	}
	return NewList(out)
}

// And returns the Boolean AND of two cube lists, defined via De Morgan:
// A∧B = ¬(¬A ∨ ¬B) (spec §4.2).
func And(a, b List) List {
	return Complement(Or(Complement(a), Complement(b)))
}

// Xor returns the Boolean XOR of two cube lists:
// A⊕B = (A∧¬B) ∨ (¬A∧B) (spec §4.2).
func Xor(a, b List) List {
	return Or(And(a, Complement(b)), And(Complement(a), b))
}

// Complement is the URP recursion (spec §4.2), the hard part of the
// kernel: every other binary Boolean operation above is defined in terms
// of it.
func Complement(f List) List {
	switch {
	case len(f) == 0:
		// Boolean equation "0" -> return the single don't-care cube ("1").
		return NewList([]Cube{NewCube()})
	case len(f) == 1:
		// Single cube: De Morgan expansion.
		return ComplementCube(f[0])
	}
	for _, c := range f {
		if len(c) == 0 {
			// F already contains the don't-care cube -> F == "1" -> ¬F == "0".
			return NewList(nil)
		}
	}

	x := mostBinate(f)
	pCubes := Complement(PositiveCofactor(f, x))
	nCubes := Complement(NegativeCofactor(f, x))
	p := andCube(pCubes, Literal(x))
	n := andCube(nCubes, Literal(-x))
	return Or(p, n)
}

// BoolDiff returns ∂F/∂x = F|x=1 ⊕ F|x=0.
func BoolDiff(f List, k int) List {
	checkVar(k)
	return Xor(PositiveCofactor(f, k), NegativeCofactor(f, k))
}

// Consensus returns F|x=1 ∧ F|x=0 (existential quantification removed).
func Consensus(f List, k int) List {
	checkVar(k)
	return And(PositiveCofactor(f, k), NegativeCofactor(f, k))
}

// Smoothing returns F|x=1 ∨ F|x=0 (existential quantification of x).
func Smoothing(f List, k int) List {
	checkVar(k)
	return Or(PositiveCofactor(f, k), NegativeCofactor(f, k))
}

// varCounts tracks per-variable positive/negative/total occurrence counts
// for most-binate selection.
type varCounts struct {
	pos, neg, total int
}

// mostBinate selects the splitting variable for URP complement (spec
// §4.2 "Most-binate variable selection"):
//
//  1. Among binate variables (appear both positively and negatively),
//     choose maximum total occurrence count, breaking ties by minimum
//     |pos-neg|, breaking further ties by smallest variable index.
//  2. Otherwise, among unate variables, choose maximum total occurrence
//     count, breaking ties by smallest variable index.
func mostBinate(f List) int {
	counts := make(map[int]*varCounts)
	order := make([]int, 0)
	for _, c := range f {
		for _, l := range c {
			v := l.Var()
			vc, ok := counts[v]
			if !ok {
				vc = &varCounts{}
				counts[v] = vc
				order = append(order, v)
			}
			if l.Polarity() {
				vc.pos++
			} else {
				vc.neg++
			}
			vc.total++
		}
	}

	var binate []int
	for _, v := range order {
		if counts[v].pos > 0 && counts[v].neg > 0 {
			binate = append(binate, v)
		}
	}

	candidates := order
	binateMode := len(binate) > 0
	if binateMode {
		candidates = binate
	}

	best := candidates[0]
	for _, v := range candidates[1:] {
		if better(counts, v, best, binateMode) {
			best = v
		}
	}
	return best
}

// better reports whether candidate v should replace the current best pick
// under the tie-break rules of mostBinate.
func better(counts map[int]*varCounts, v, best int, binateMode bool) bool {
	cv, cb := counts[v], counts[best]
	if cv.total != cb.total {
		return cv.total > cb.total
	}
	if binateMode {
		dv := absInt(cv.pos - cv.neg)
		db := absInt(cb.pos - cb.neg)
		if dv != db {
			return dv < db
		}
	}
	return v < best
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

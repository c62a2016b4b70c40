// Package cube implements the positional cube notation (PCN) data model and
// the Unate Recursive Paradigm (URP) algebra over it: cofactor, AND, OR,
// XOR, complement, and the quantifier-like derivatives (Boolean difference,
// consensus, smoothing). Every function here is pure; List values are
// never mutated in place.
package cube

import (
	"sort"
	"strconv"
	"strings"

	"github.com/the-pinbo/ROBDD/internal/invariant"
)

// Literal is a signed nonzero integer: +k means variable x_k, -k means its
// negation. Zero is never a valid literal.
type Literal int

// Var returns the variable index this literal refers to (always positive).
func (l Literal) Var() int { return abs(int(l)) }

// Polarity reports whether the literal is the positive form of its variable.
func (l Literal) Polarity() bool { return l > 0 }

// Cube is an unordered set of literals in canonical (sorted-by-variable)
// form, denoting the conjunction of its literals. The empty cube denotes
// the constant true (the don't-care cube). A well-formed cube never
// contains both +k and -k for the same k; constructors here do not
// fabricate such a cube because every caller in this engine derives cubes
// from cofactors, De Morgan expansion, or literal-append, none of which
// can introduce the opposite literal of one already present.
type Cube []Literal

// NewCube sorts lits by variable index ascending and returns the canonical
// Cube. It does not deduplicate literals (a well-formed cube has at most
// one occurrence of a given variable, by construction in every caller of
// this package); it is the caller's job to hand it a well-formed slice.
func NewCube(lits ...Literal) Cube {
	out := make(Cube, len(lits))
	copy(out, lits)
	sort.Slice(out, func(i, j int) bool { return abs(int(out[i])) < abs(int(out[j])) })
	return out
}

// Key returns a canonical string encoding of the cube suitable for set
// membership (map key). Two cubes with the same literals, in any order,
// produce the same key.
func (c Cube) Key() string {
	sorted := NewCube(c...)
	parts := make([]string, len(sorted))
	for i, l := range sorted {
		parts[i] = strconv.Itoa(int(l))
	}
	return strings.Join(parts, ",")
}

// Has reports whether the cube contains the literal ℓ exactly as given
// (same sign).
func (c Cube) Has(l Literal) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}
	return false
}

// Without returns a copy of c with every occurrence of l removed.
func (c Cube) Without(l Literal) Cube {
	out := make(Cube, 0, len(c))
	for _, x := range c {
		if x != l {
			out = append(out, x)
		}
	}
	return NewCube(out...)
}

// WithLiteral returns a copy of c with l appended (the "AND a literal onto
// every cube" step of URP complement, spec §4.2 step 4).
func (c Cube) WithLiteral(l Literal) Cube {
	out := make(Cube, len(c), len(c)+1)
	copy(out, c)
	out = append(out, l)
	return NewCube(out...)
}

// ComplementCube returns the De Morgan expansion of a single cube: one unit
// cube per literal, each negated. Used by URP's singleton-cube base case.
func ComplementCube(c Cube) List {
	out := make(List, len(c))
	for i, l := range c {
		out[i] = NewCube(-l)
	}
	return NewList(out)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NumVarsFor returns the minimum variable count implied by cubes' literals:
// the highest |ℓ| across every cube, or 0 for an empty cube list. Grounded
// on the original Python's pcn.findNumVars (original_source/pcn.py),
// reinstated per SPEC_FULL §3.
func NumVarsFor(cubes List) int {
	max := 0
	for _, c := range cubes {
		for _, l := range c {
			if v := l.Var(); v > max {
				max = v
			}
		}
	}
	return max
}

// checkVar is the shared precondition for every variable-indexed
// operation: k must be a positive literal/variable index (spec §4.2,
// "k ≤ 0 to any cofactor-based operation is a programmer error").
func checkVar(k int) {
	invariant.PositiveVar(k, "variable index")
}

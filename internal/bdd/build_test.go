package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-pinbo/ROBDD/internal/bdd"
	"github.com/the-pinbo/ROBDD/internal/cube"
	"github.com/the-pinbo/ROBDD/internal/expr"
)

func TestBuildConstantsMapToTerminals(t *testing.T) {
	tbl := bdd.NewTable()
	assert.Same(t, tbl.Zero(), tbl.Build(expr.Zero(2), []int{1, 2}))
	assert.Same(t, tbl.One(), tbl.Build(expr.One(2), []int{1, 2}))
}

func TestBuildCollapsesEquivalentCofactors(t *testing.T) {
	// x1 ∨ ¬x1 is constant true; if the order lists x1 first, the builder
	// must collapse straight to the one terminal rather than creating a
	// node whose two children both resolve to one.
	e := expr.FromCubes(cube.NewList([]cube.Cube{
		cube.NewCube(1),
		cube.NewCube(-1),
	}), 1)
	tbl := bdd.NewTable()
	root := tbl.Build(e, []int{1})
	assert.Same(t, tbl.One(), root)
}

// TestBuildRootIsDerivationIndependent exercises spec §8 scenario #6:
// a⊕b⊕c built directly from its minimal cube-list form and from its fully
// expanded sum-of-products form must produce the identical root reference
// under the same variable order - ROBDD canonicity, not mere structural
// cube-list equality.
func TestBuildRootIsDerivationIndependent(t *testing.T) {
	order := []int{1, 2, 3}

	// The fully expanded sum-of-products form: one cube per odd-parity
	// minterm.
	expanded := expr.FromCubes(cube.NewList([]cube.Cube{
		cube.NewCube(1, -2, -3),
		cube.NewCube(-1, 2, -3),
		cube.NewCube(-1, -2, 3),
		cube.NewCube(1, 2, 3),
	}), 3)

	// The same function reached through the URP XOR chain over the three
	// single-variable cube lists, an entirely different derivation path.
	x1 := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(1)}), 3)
	x2 := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(2)}), 3)
	x3 := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(3)}), 3)
	viaXor := x1.Xor(x2).Xor(x3)

	tbl := bdd.NewTable()
	a := tbl.Build(expanded, order)
	b := tbl.Build(viaXor, order)
	assert.Same(t, a, b, "two different cube-list derivations of a⊕b⊕c must build to the identical ROBDD root")
}

func TestBuildPanicsWhenOrderMissesAVariable(t *testing.T) {
	e := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(1, 2)}), 2)
	tbl := bdd.NewTable()
	assert.Panics(t, func() {
		tbl.Build(e, []int{1})
	})
}

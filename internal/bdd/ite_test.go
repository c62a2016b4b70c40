package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-pinbo/ROBDD/internal/bdd"
)

func var1(tbl *bdd.Table) *bdd.Node { return tbl.Mk(1, tbl.Zero(), tbl.One()) }
func var2(tbl *bdd.Table) *bdd.Node { return tbl.Mk(2, tbl.Zero(), tbl.One()) }

func TestNotIsInvolution(t *testing.T) {
	tbl := bdd.NewTable()
	x1 := var1(tbl)
	assert.Same(t, x1, tbl.Not(tbl.Not(x1)))
}

func TestNotTerminals(t *testing.T) {
	tbl := bdd.NewTable()
	assert.Same(t, tbl.One(), tbl.Not(tbl.Zero()))
	assert.Same(t, tbl.Zero(), tbl.Not(tbl.One()))
}

func TestIteAsIdentity(t *testing.T) {
	tbl := bdd.NewTable()
	x1 := var1(tbl)
	// ite(f, 1, 0) == f
	assert.Same(t, x1, tbl.Ite(x1, tbl.One(), tbl.Zero()))
	// ite(f, 0, 1) == ¬f
	assert.Same(t, tbl.Not(x1), tbl.Ite(x1, tbl.Zero(), tbl.One()))
}

func TestIteAndOrViaIte(t *testing.T) {
	tbl := bdd.NewTable()
	x1 := var1(tbl)
	x2 := var2(tbl)

	and := tbl.Ite(x1, x2, tbl.Zero())
	or := tbl.Ite(x1, tbl.One(), x2)

	// and must be satisfiable only at x1=x2=true.
	m, ok := tbl.SatisfyOne(and)
	assert.True(t, ok)
	assert.Equal(t, bdd.Model{1: true, 2: true}, m)

	// or must be unsatisfiable only at x1=x2=false - check via restrict.
	allFalse := tbl.Restrict(or, bdd.Point{1: false, 2: false})
	assert.Same(t, tbl.Zero(), allFalse)
}

func TestIteSharesStructureAcrossEquivalentBuilds(t *testing.T) {
	tbl := bdd.NewTable()
	x1 := var1(tbl)
	x2 := var2(tbl)

	a := tbl.Ite(x1, x2, tbl.Zero())
	b := tbl.Ite(x1, x2, tbl.Zero())
	assert.Same(t, a, b, "rebuilding the same function must return the same canonical node")
}

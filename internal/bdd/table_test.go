package bdd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-pinbo/ROBDD/internal/bdd"
)

func TestMkReducesEqualChildren(t *testing.T) {
	tbl := bdd.NewTable()
	n := tbl.Mk(1, tbl.Zero(), tbl.Zero())
	assert.Same(t, tbl.Zero(), n, "Mk must collapse a node whose lo == hi")
}

func TestMkIsCanonical(t *testing.T) {
	tbl := bdd.NewTable()
	a := tbl.Mk(1, tbl.Zero(), tbl.One())
	b := tbl.Mk(1, tbl.Zero(), tbl.One())
	assert.Same(t, a, b, "two calls with the same (v, lo, hi) must return the same *Node")
}

func TestMkDistinguishesDifferentTriples(t *testing.T) {
	tbl := bdd.NewTable()
	a := tbl.Mk(1, tbl.Zero(), tbl.One())
	b := tbl.Mk(2, tbl.Zero(), tbl.One())
	assert.NotSame(t, a, b)
}

func TestTerminalsAreTerminal(t *testing.T) {
	tbl := bdd.NewTable()
	assert.True(t, tbl.Zero().IsTerminal())
	assert.True(t, tbl.One().IsTerminal())
}

// Package expr provides the Boolean expression façade of spec §4.5: a
// single cube-list-backed value type used by both the batch driver and
// the BDD builder, validating every variable-indexed operation against
// [1, numVars].
package expr

import (
	"github.com/the-pinbo/ROBDD/internal/cube"
	"github.com/the-pinbo/ROBDD/internal/invariant"
	"github.com/the-pinbo/ROBDD/internal/pcn"
)

// Expression pairs a cube.List with the variable-count bound it was
// constructed against. The zero value is not meaningful - use Zero, One,
// FromCubes, or FromFile.
type Expression struct {
	numVars int
	cubes   cube.List
}

// Zero returns the constant-false expression over numVars variables.
func Zero(numVars int) Expression {
	return Expression{numVars: numVars, cubes: cube.NewList(nil)}
}

// One returns the constant-true expression over numVars variables.
func One(numVars int) Expression {
	return Expression{numVars: numVars, cubes: cube.NewList([]cube.Cube{cube.NewCube()})}
}

// FromCubes constructs an Expression from an explicit (cubes, numVars)
// pair. This and FromFile are the two named constructors spec §4.5/§9
// calls for, replacing the original's either-or runtime type check with
// a compile-time choice between functions.
func FromCubes(cubes cube.List, numVars int) Expression {
	return Expression{numVars: numVars, cubes: cube.NewList(cubes)}
}

// FromFile constructs an Expression by parsing a PCN file.
func FromFile(path string) (Expression, error) {
	numVars, cubes, err := pcn.Parse(path)
	if err != nil {
		return Expression{}, err
	}
	return Expression{numVars: numVars, cubes: cubes}, nil
}

// NumVars returns the variable-count bound this expression was
// constructed against.
func (e Expression) NumVars() int { return e.numVars }

// Cubes returns the underlying cube list.
func (e Expression) Cubes() cube.List { return e.cubes }

// IsTrue reports whether some cube is the empty (don't-care) cube.
func (e Expression) IsTrue() bool { return e.cubes.IsTrue() }

// IsFalse reports whether the expression has no cubes.
func (e Expression) IsFalse() bool { return e.cubes.IsFalse() }

// IsPresent reports whether variable k appears in any cube.
func (e Expression) IsPresent(k int) bool { return e.cubes.IsPresent(k) }

// Complement returns ¬e.
func (e Expression) Complement() Expression {
	return Expression{numVars: e.numVars, cubes: cube.Complement(e.cubes)}
}

// And returns e ∧ f. The wider of the two numVars bounds is kept.
func (e Expression) And(f Expression) Expression {
	return Expression{numVars: maxInt(e.numVars, f.numVars), cubes: cube.And(e.cubes, f.cubes)}
}

// Or returns e ∨ f.
func (e Expression) Or(f Expression) Expression {
	return Expression{numVars: maxInt(e.numVars, f.numVars), cubes: cube.Or(e.cubes, f.cubes)}
}

// Xor returns e ⊕ f.
func (e Expression) Xor(f Expression) Expression {
	return Expression{numVars: maxInt(e.numVars, f.numVars), cubes: cube.Xor(e.cubes, f.cubes)}
}

// PositiveCofactor returns e|x_k=1. k must lie in [1, numVars].
func (e Expression) PositiveCofactor(k int) Expression {
	e.checkVar(k)
	return Expression{numVars: e.numVars, cubes: cube.PositiveCofactor(e.cubes, k)}
}

// NegativeCofactor returns e|x_k=0. k must lie in [1, numVars].
func (e Expression) NegativeCofactor(k int) Expression {
	e.checkVar(k)
	return Expression{numVars: e.numVars, cubes: cube.NegativeCofactor(e.cubes, k)}
}

// BoolDiff returns ∂e/∂x_k. k must lie in [1, numVars].
func (e Expression) BoolDiff(k int) Expression {
	e.checkVar(k)
	return Expression{numVars: e.numVars, cubes: cube.BoolDiff(e.cubes, k)}
}

// Consensus returns the consensus of e w.r.t. x_k. k must lie in [1, numVars].
func (e Expression) Consensus(k int) Expression {
	e.checkVar(k)
	return Expression{numVars: e.numVars, cubes: cube.Consensus(e.cubes, k)}
}

// Smoothing returns the smoothing of e w.r.t. x_k. k must lie in [1, numVars].
func (e Expression) Smoothing(k int) Expression {
	e.checkVar(k)
	return Expression{numVars: e.numVars, cubes: cube.Smoothing(e.cubes, k)}
}

// String renders e in PCN text form.
func (e Expression) String() string {
	return pcn.Encode(e.cubes, e.numVars)
}

// Equal reports whether e and f denote the same set of cubes (not
// necessarily the same numVars bound - the bound is metadata, not part
// of the Boolean function).
func Equal(e, f Expression) bool {
	return cube.Equal(e.cubes, f.cubes)
}

func (e Expression) checkVar(k int) {
	invariant.VarInRange(k, e.numVars, "variable index")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

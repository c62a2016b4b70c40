package expr_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-pinbo/ROBDD/internal/cube"
	"github.com/the-pinbo/ROBDD/internal/expr"
)

func TestZeroAndOne(t *testing.T) {
	assert.True(t, expr.Zero(2).IsFalse())
	assert.True(t, expr.One(2).IsTrue())
}

func TestFromCubesAndComplement(t *testing.T) {
	e := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(1)}), 1)
	c := e.Complement()
	assert.True(t, expr.Equal(c, expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(-1)}), 1)))
}

func TestAndOrXorWidenNumVars(t *testing.T) {
	a := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(1)}), 1)
	b := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(2)}), 2)

	assert.Equal(t, 2, a.And(b).NumVars())
	assert.Equal(t, 2, a.Or(b).NumVars())
	assert.Equal(t, 2, a.Xor(b).NumVars())
}

func TestCofactorsValidateVariableRange(t *testing.T) {
	e := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(1)}), 1)
	assert.Panics(t, func() { e.PositiveCofactor(0) })
	assert.Panics(t, func() { e.PositiveCofactor(2) })
	assert.NotPanics(t, func() { e.PositiveCofactor(1) })
}

func TestFromFileRoundTripsThroughString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.pcn")
	require.NoError(t, os.WriteFile(path, []byte("2\n1\n2 1 -2\n"), 0o644))

	e, err := expr.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, e.NumVars())

	path2 := filepath.Join(t.TempDir(), "g.pcn")
	require.NoError(t, os.WriteFile(path2, []byte(e.String()), 0o644))
	roundTripped, err := expr.FromFile(path2)
	require.NoError(t, err)
	assert.True(t, expr.Equal(e, roundTripped))
}

func TestStringRendersPcn(t *testing.T) {
	e := expr.FromCubes(cube.NewList([]cube.Cube{cube.NewCube(1)}), 1)
	assert.Equal(t, "1\n1\n1 1\n", e.String())
}
